package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "volunteer-hub.com/volunteer-hub/internal/errors"
	model "volunteer-hub.com/volunteer-hub/pkg/models"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts an application after checking the referenced project exists.
// The check and the insert are the gateway's referential-integrity guarantee.
func (r *ApplicationRepository) Create(ctx context.Context, insert model.InsertApplication) (*model.Application, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", insert.ProjectID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.ErrUnknownProject
	}

	application := &model.Application{
		ProjectID:      insert.ProjectID,
		VolunteerName:  insert.VolunteerName,
		VolunteerEmail: insert.VolunteerEmail,
		VolunteerPhone: insert.VolunteerPhone,
		Motivation:     insert.Motivation,
		AppliedAt:      time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		return nil, err
	}

	return application, nil
}

func (r *ApplicationRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Application, error) {
	applications := make([]model.Application, 0)
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepository) List(ctx context.Context) ([]model.Application, error) {
	applications := make([]model.Application, 0)
	err := r.db.WithContext(ctx).Order("applied_at asc").Find(&applications).Error
	return applications, err
}
