package validators

import (
	"strings"

	apperrors "volunteer-hub.com/volunteer-hub/internal/errors"
	model "volunteer-hub.com/volunteer-hub/pkg/models"
)

func ValidateInsertProject(r *model.InsertProject) error {
	fields := map[string]string{}

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(r.Description) == "" {
		fields["description"] = "description is required"
	}
	if strings.TrimSpace(r.Category) == "" {
		fields["category"] = "category is required"
	}
	if r.Status != "" && r.Status != model.StatusAvailable && r.Status != model.StatusAccepted {
		fields["status"] = "status must be one of: available, accepted"
	}

	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}
