package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "volunteer-hub.com/volunteer-hub/pkg/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		log.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(&model.Project{}, &model.Application{}, &model.User{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
