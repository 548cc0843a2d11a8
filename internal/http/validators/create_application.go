package validators

import (
	"strings"

	apperrors "volunteer-hub.com/volunteer-hub/internal/errors"
	model "volunteer-hub.com/volunteer-hub/pkg/models"
)

func ValidateInsertApplication(r *model.InsertApplication) error {
	fields := map[string]string{}

	if r.ProjectID == 0 {
		fields["projectId"] = "projectId is required"
	}
	if strings.TrimSpace(r.VolunteerName) == "" {
		fields["volunteerName"] = "volunteerName is required"
	}
	if strings.TrimSpace(r.VolunteerEmail) == "" {
		fields["volunteerEmail"] = "volunteerEmail is required"
	} else if !strings.Contains(r.VolunteerEmail, "@") {
		fields["volunteerEmail"] = "volunteerEmail must be a valid email address"
	}

	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}
