package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"seekr/backend/internal/repositories"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// validateBody runs struct validation and writes a 422 response on failure.
// The returned bool is false when a response has already been written.
func validateBody(c *fiber.Ctx, body any) (bool, error) {
	err := validate.Struct(body)
	if err == nil {
		return true, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false, errorJSON(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	details := make([]fieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, fieldError{
			Field:   fe.Namespace(),
			Message: validationMessage(fe),
		})
	}

	return false, c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":   "validation failed",
		"details": details,
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

func parsePage(c *fiber.Ctx) (repositories.Page, error) {
	page, err := queryInt(c, "page", 1)
	if err != nil || page < 1 {
		return repositories.Page{}, errors.New("page must be an integer >= 1")
	}

	size, err := queryInt(c, "page_size", defaultPageSize)
	if err != nil || size < 1 || size > maxPageSize {
		return repositories.Page{}, fmt.Errorf("page_size must be an integer between 1 and %d", maxPageSize)
	}

	return repositories.Page{Number: page, Size: size}, nil
}

func queryInt(c *fiber.Ctx, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
