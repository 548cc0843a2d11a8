package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "volunteer-hub.com/volunteer-hub/internal/errors"
	model "volunteer-hub.com/volunteer-hub/pkg/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, insert model.InsertProject) (*model.Project, error) {
	status := insert.Status
	if status == "" {
		status = model.StatusAvailable
	}

	project := &model.Project{
		Title:          insert.Title,
		Description:    insert.Description,
		Category:       insert.Category,
		Status:         status,
		TimeCommitment: insert.TimeCommitment,
		Duration:       insert.Duration,
		Location:       insert.Location,
		CreatedAt:      time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	projects := make([]model.Project, 0)
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&projects).Error
	return projects, err
}

// UpdateStatus touches only the status column. A missing project is a valid
// outcome reported as ErrProjectNotFound, not a failure of the store.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id uint, status model.ProjectStatus) (*model.Project, error) {
	res := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Update("status", status)

	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		return nil, apperrors.ErrProjectNotFound
	}

	return r.FindByID(ctx, id)
}
