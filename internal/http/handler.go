package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "volunteer-hub.com/volunteer-hub/internal/errors"
	"volunteer-hub.com/volunteer-hub/internal/http/validators"
	"volunteer-hub.com/volunteer-hub/internal/services"
	model "volunteer-hub.com/volunteer-hub/pkg/models"
)

type Handler struct {
	projects     *services.ProjectService
	applications *services.ApplicationService
	auth         *services.AuthService
}

func NewHandler(
	projects *services.ProjectService,
	applications *services.ApplicationService,
	auth *services.AuthService,
) *Handler {
	return &Handler{
		projects:     projects,
		applications: applications,
		auth:         auth,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// decodeBody rejects unknown fields so callers cannot smuggle generated
// fields (id, createdAt, appliedAt) into a write body.
func decodeBody(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if _, field, found := strings.Cut(err.Error(), "unknown field "); found {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown field "+field+" is not allowed")
		}
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}

	return nil
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.projects.ListProjects(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch projects")
	}

	return c.JSON(http.StatusOK, projects)
}

func (h *Handler) CreateProject(c echo.Context) error {
	var req model.InsertProject
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateInsertProject(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.CreateProject(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create project")
	}

	return c.JSON(http.StatusCreated, project)
}

func (h *Handler) GetProject(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "project id must be a positive integer")
	}

	project, err := h.projects.GetProject(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrProjectNotFound.Message)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch project")
	}

	return c.JSON(http.StatusOK, project)
}

func (h *Handler) CreateApplication(c echo.Context) error {
	var req model.InsertApplication
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateInsertApplication(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	application, err := h.applications.CreateApplication(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownProject) {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrUnknownProject.Message)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create application")
	}

	return c.JSON(http.StatusCreated, application)
}

func (h *Handler) ListApplications(c echo.Context) error {
	applications, err := h.applications.ListApplications(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch applications")
	}

	return c.JSON(http.StatusOK, applications)
}

func (h *Handler) ListProjectApplications(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "project id must be a positive integer")
	}

	applications, err := h.applications.ListApplicationsByProject(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch applications")
	}

	return c.JSON(http.StatusOK, applications)
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	token, expiresAt, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Message)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to log in")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "login successful",
		"token":     token,
		"expiresAt": expiresAt.Format(time.RFC3339),
	})
}

func (h *Handler) Logout(c echo.Context) error {
	token, ok := c.Get("session_token").(string)
	if !ok || token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to log out")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidJSON
	}
	return uint(id), nil
}
