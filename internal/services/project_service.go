package services

import (
	"context"

	repository "volunteer-hub.com/volunteer-hub/internal/repositories"
	model "volunteer-hub.com/volunteer-hub/pkg/models"
)

type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) CreateProject(ctx context.Context, insert model.InsertProject) (*model.Project, error) {
	return s.repo.Create(ctx, insert)
}

func (s *ProjectService) GetProject(ctx context.Context, id uint) (*model.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.repo.List(ctx)
}
