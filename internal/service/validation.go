package service

import (
	"fmt"
	"strings"

	apperrors "team-management-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// fieldJSONNames maps struct field names on the request DTOs to their wire names.
var fieldJSONNames = map[string]string{
	"Name":        "name",
	"Description": "description",
	"Email":       "email",
	"Role":        "role",
	"TeamID":      "team_id",
	"TeamIDs":     "team_ids",
}

// translateValidationErrors converts validator failures into the public
// field-to-message map shape before any domain logic runs.
func translateValidationErrors(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationErrors(map[string]string{"request": err.Error()})
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fieldJSONNames[fe.Field()]
		if name == "" {
			name = strings.ToLower(fe.Field())
		}
		fields[name] = validationMessage(fe)
	}
	return apperrors.NewValidationErrors(fields)
}

func validationMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required", "min":
		return fmt.Sprintf("%s is required", label)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", label, fe.Param())
	case "email":
		return "Email should be valid"
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func fieldLabel(field string) string {
	switch field {
	case "TeamID":
		return "Team id"
	case "TeamIDs":
		return "Team ids"
	default:
		return field
	}
}
