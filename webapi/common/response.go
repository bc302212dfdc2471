// Package common holds the response envelope, problem-details rendering and
// request binding shared by the webapi handlers.
package common

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type      string    `json:"type,omitempty"`
	Title     string    `json:"title"`
	Status    int       `json:"status"`
	Detail    string    `json:"detail,omitempty"`
	Instance  string    `json:"instance,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SuccessResponseJSON writes a success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes a problem-details response. When no explicit
// status is given it is derived from the error's classification.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, status ...int) error {
	code := fiber.StatusInternalServerError
	if len(status) > 0 {
		code = status[0]
	} else if err != nil {
		code = ErrorToStatusCode(err)
	}

	pd := ProblemDetails{
		Type:      "about:blank",
		Title:     title,
		Status:    code,
		Instance:  c.OriginalURL(),
		Timestamp: time.Now(),
	}
	if err != nil {
		pd.Detail = err.Error()
	}
	if err := c.Status(code).JSON(pd); err != nil {
		return err
	}
	// JSON() stamps application/json; the problem media type must win.
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return nil
}

// ErrorToStatusCode maps a classified failure to its HTTP status code.
func ErrorToStatusCode(err error) int {
	switch domain.Classify(err) {
	case domain.KindBadRequest:
		return fiber.StatusBadRequest
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	case domain.KindForbidden:
		return fiber.StatusForbidden
	case domain.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. Returns the populated struct, or writes an error
// response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest) //nolint:errcheck
		return nil, err
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest) //nolint:errcheck
		return nil, err
	}
	return &input, nil
}
