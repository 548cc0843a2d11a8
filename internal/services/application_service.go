package services

import (
	"context"

	repository "volunteer-hub.com/volunteer-hub/internal/repositories"
	model "volunteer-hub.com/volunteer-hub/pkg/models"
)

type ApplicationService struct {
	applications *repository.ApplicationRepository
	projects     *repository.ProjectRepository
	notifier     *Notifier
}

func NewApplicationService(
	applications *repository.ApplicationRepository,
	projects *repository.ProjectRepository,
	notifier *Notifier,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		projects:     projects,
		notifier:     notifier,
	}
}

// CreateApplication inserts the application and then marks the referenced
// project accepted. The two writes are sequential, not one transaction: a
// failure between them leaves an application against an available project.
func (s *ApplicationService) CreateApplication(ctx context.Context, insert model.InsertApplication) (*model.Application, error) {
	application, err := s.applications.Create(ctx, insert)
	if err != nil {
		return nil, err
	}

	if _, err := s.projects.UpdateStatus(ctx, insert.ProjectID, model.StatusAccepted); err != nil {
		return nil, err
	}

	s.notifier.Enqueue(Notification{
		Email:     application.VolunteerEmail,
		ProjectID: application.ProjectID,
	})

	return application, nil
}

func (s *ApplicationService) ListApplications(ctx context.Context) ([]model.Application, error) {
	return s.applications.List(ctx)
}

func (s *ApplicationService) ListApplicationsByProject(ctx context.Context, projectID uint) ([]model.Application, error) {
	return s.applications.ListByProject(ctx, projectID)
}
