package http

import (
	"errors"

	"resume-builder/internal/draft"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/internal/wizard"
	"resume-builder/pkg/ai"

	"github.com/gofiber/fiber/v2"
)

// HTTPStatus returns the status code for an error from the core packages.
func HTTPStatus(err error) int {
	var (
		ve  model.ValidationErrors
		ve1 *model.ValidationError
		te  *wizard.TransitionError
		ie  *wizard.IndexError
		ee  *usecase.ExportError
		pe  *draft.PersistenceError
		ue  *ai.UpstreamError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &ve1):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &te):
		return fiber.StatusConflict
	case errors.As(err, &ie):
		return fiber.StatusNotFound
	case errors.As(err, &ee):
		switch ee.Kind {
		case usecase.ErrKindNoTemplate, usecase.ErrKindUnknownTemplate:
			return fiber.StatusBadRequest
		}
		return fiber.StatusInternalServerError
	case errors.As(err, &pe):
		if pe.Op == "parse" {
			return fiber.StatusBadRequest
		}
		return fiber.StatusInternalServerError
	case errors.As(err, &ue):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

type fieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// fail writes {"error": msg}. Validation failures also carry the per-field
// reasons so the form can show them inline.
func fail(c *fiber.Ctx, err error, msg string) error {
	body := fiber.Map{"error": msg}
	if fields := validationFields(err); fields != nil {
		body["fields"] = fields
	}
	return c.Status(HTTPStatus(err)).JSON(body)
}

// validationFields lists the field errors in err, or nil if there are none.
func validationFields(err error) []fieldError {
	var ve model.ValidationErrors
	var single *model.ValidationError
	switch {
	case errors.As(err, &ve):
		fields := make([]fieldError, 0, len(ve))
		for _, e := range ve {
			fields = append(fields, fieldError{Field: e.Field, Reason: e.Reason})
		}
		return fields
	case errors.As(err, &single):
		return []fieldError{{Field: single.Field, Reason: single.Reason}}
	}
	return nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
