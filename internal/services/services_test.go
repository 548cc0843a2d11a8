package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "volunteer-hub.com/volunteer-hub/internal/errors"
	repository "volunteer-hub.com/volunteer-hub/internal/repositories"
	"volunteer-hub.com/volunteer-hub/internal/sessions"
	model "volunteer-hub.com/volunteer-hub/pkg/models"
)

// memStore is a simple in-memory session store for testing.
type memStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newMemStore() *memStore {
	return &memStore{tokens: make(map[string]string)}
}

func (m *memStore) Create(ctx context.Context, token, username string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens[token] = username
	return nil
}

func (m *memStore) Get(ctx context.Context, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	username, ok := m.tokens[token]
	if !ok {
		return "", sessions.ErrSessionNotFound
	}
	return username, nil
}

func (m *memStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tokens, token)
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&model.Project{}, &model.Application{}, &model.User{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func newApplicationService(t *testing.T, db *gorm.DB) (*ApplicationService, *repository.ProjectRepository) {
	t.Helper()

	projectRepo := repository.NewProjectRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	notifier := NewNotifier(1, 8)
	t.Cleanup(func() { notifier.Shutdown(context.Background()) })

	return NewApplicationService(applicationRepo, projectRepo, notifier), projectRepo
}

func TestApplicationService_AcceptsProjectOnApply(t *testing.T) {
	db := setupTestDB(t)
	service, projectRepo := newApplicationService(t, db)
	ctx := context.Background()

	project, err := projectRepo.Create(ctx, model.InsertProject{
		Title:       "Beach Cleanup",
		Description: "Pick up litter along the shore",
		Category:    "environment",
	})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	if project.Status != model.StatusAvailable {
		t.Fatalf("expected new project to be available, got %s", project.Status)
	}

	application, err := service.CreateApplication(ctx, model.InsertApplication{
		ProjectID:      project.ID,
		VolunteerName:  "Jane Doe",
		VolunteerEmail: "jane@example.com",
	})
	if err != nil {
		t.Fatalf("failed to create application: %v", err)
	}
	if application.ID == 0 {
		t.Error("expected generated application ID")
	}
	if application.AppliedAt.IsZero() {
		t.Error("expected appliedAt to be set")
	}

	updated, err := projectRepo.FindByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("failed to reload project: %v", err)
	}
	if updated.Status != model.StatusAccepted {
		t.Errorf("expected project status %s after apply, got %s", model.StatusAccepted, updated.Status)
	}
}

func TestApplicationService_UnknownProjectCreatesNoRow(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newApplicationService(t, db)
	ctx := context.Background()

	_, err := service.CreateApplication(ctx, model.InsertApplication{
		ProjectID:      999999,
		VolunteerName:  "Jane Doe",
		VolunteerEmail: "jane@example.com",
	})
	if !errors.Is(err, apperrors.ErrUnknownProject) {
		t.Fatalf("expected ErrUnknownProject, got %v", err)
	}

	applications, err := service.ListApplications(ctx)
	if err != nil {
		t.Fatalf("failed to list applications: %v", err)
	}
	if len(applications) != 0 {
		t.Errorf("expected no applications, got %d", len(applications))
	}
}

func TestApplicationService_ApplyToAcceptedProjectPermitted(t *testing.T) {
	db := setupTestDB(t)
	service, projectRepo := newApplicationService(t, db)
	ctx := context.Background()

	project, err := projectRepo.Create(ctx, model.InsertProject{
		Title:       "Food Drive",
		Description: "Sort donations",
		Category:    "community",
	})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	for _, name := range []string{"Jane Doe", "John Smith"} {
		if _, err := service.CreateApplication(ctx, model.InsertApplication{
			ProjectID:      project.ID,
			VolunteerName:  name,
			VolunteerEmail: "volunteer@example.com",
		}); err != nil {
			t.Fatalf("application by %s failed: %v", name, err)
		}
	}

	applications, err := service.ListApplicationsByProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("failed to list applications: %v", err)
	}
	if len(applications) != 2 {
		t.Errorf("expected 2 applications against the accepted project, got %d", len(applications))
	}

	updated, err := projectRepo.FindByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("failed to reload project: %v", err)
	}
	if updated.Status != model.StatusAccepted {
		t.Errorf("expected project to stay accepted, got %s", updated.Status)
	}
}

func TestAuthService_LoginAndLogout(t *testing.T) {
	db := setupTestDB(t)
	store := newMemStore()
	auth := NewAuthService(repository.NewUserRepository(db), store, time.Hour)
	ctx := context.Background()

	if err := auth.EnsureAdminUser(ctx, "admin", "password"); err != nil {
		t.Fatalf("failed to seed admin user: %v", err)
	}

	token, expiresAt, err := auth.Login(ctx, "admin", "password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if !expiresAt.After(time.Now()) {
		t.Error("expected expiry in the future")
	}

	username, err := auth.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if username != "admin" {
		t.Errorf("expected username admin, got %s", username)
	}

	if err := auth.Logout(ctx, token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := auth.Authenticate(ctx, token); !errors.Is(err, apperrors.ErrSessionRequired) {
		t.Errorf("expected ErrSessionRequired after logout, got %v", err)
	}
}

func TestAuthService_RejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(repository.NewUserRepository(db), newMemStore(), time.Hour)
	ctx := context.Background()

	if err := auth.EnsureAdminUser(ctx, "admin", "password"); err != nil {
		t.Fatalf("failed to seed admin user: %v", err)
	}

	if _, _, err := auth.Login(ctx, "admin", "wrong"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := auth.Login(ctx, "ghost", "password"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestNotifier_DropsWhenQueueFull(t *testing.T) {
	notifier := NewNotifier(0, 1)
	defer notifier.Shutdown(context.Background())

	msg := Notification{Email: "jane@example.com", ProjectID: 1}
	if !notifier.Enqueue(msg) {
		t.Error("expected first notification to be queued")
	}
	if notifier.Enqueue(msg) {
		t.Error("expected second notification to be dropped, not queued")
	}
}
