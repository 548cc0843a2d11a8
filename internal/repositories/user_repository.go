package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "volunteer-hub.com/volunteer-hub/internal/errors"
	model "volunteer-hub.com/volunteer-hub/pkg/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// EnsureUser creates the user if absent; an existing user keeps its stored
// hash so reseeding never rotates credentials.
func (r *UserRepository) EnsureUser(ctx context.Context, username, passwordHash string) error {
	user := model.User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	return r.db.WithContext(ctx).
		Where("username = ?", username).
		FirstOrCreate(&user).Error
}
