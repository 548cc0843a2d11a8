package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "volunteer-hub.com/volunteer-hub/internal/configs"
	httpapi "volunteer-hub.com/volunteer-hub/internal/http"
	repository "volunteer-hub.com/volunteer-hub/internal/repositories"
	"volunteer-hub.com/volunteer-hub/internal/services"
	"volunteer-hub.com/volunteer-hub/internal/sessions"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the volunteer project listing API and the notification workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		database := config.New(cfg.DatabaseDSN)

		projectRepo := repository.NewProjectRepository(database)
		applicationRepo := repository.NewApplicationRepository(database)
		userRepo := repository.NewUserRepository(database)

		sessionStore := sessions.NewRedisStore(redisClient, "session:")
		sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute

		notifier := services.NewNotifier(cfg.NotifyWorkers, cfg.NotifyQueueSize)

		authService := services.NewAuthService(userRepo, sessionStore, sessionTTL)
		if err := authService.EnsureAdminUser(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}

		projectService := services.NewProjectService(projectRepo)
		applicationService := services.NewApplicationService(applicationRepo, projectRepo, notifier)

		e := echo.New()

		handler := httpapi.NewHandler(projectService, applicationService, authService)
		httpapi.Register(e, handler, authService, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)
		notifier.Shutdown(ctx)

		log.Println("HTTP server and notification workers shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
