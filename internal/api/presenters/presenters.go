package presenters

import (
	"errors"
	"time"

	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	// Response is the uniform envelope for successful calls.
	Response struct {
		Timestamp time.Time `json:"timestamp"`
		Message   string    `json:"message"`
		Code      int       `json:"code"`
		Data      any       `json:"data,omitempty"`
	}

	ErrorBody struct {
		Status    int       `json:"status"`
		Message   string    `json:"message"`
		Errors    []string  `json:"errors"`
		Timestamp time.Time `json:"timestamp"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Timestamp: time.Now(),
		Message:   message,
		Code:      code,
		Data:      data,
	})
}

// BadRequestResponse reports malformed input that never reached a service,
// such as an unparseable body or path parameter.
func BadRequestResponse(c *fiber.Ctx, message string, err error) error {
	details := []string{}
	if err != nil {
		details = []string{err.Error()}
	}
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{
		Status:    fiber.StatusBadRequest,
		Message:   message,
		Errors:    details,
		Timestamp: time.Now(),
	})
}

// ErrorResponse maps an error to its HTTP status exactly once per request and
// renders the structured error body. Unknown errors become a fixed 500 so no
// internals leak to the client.
func ErrorResponse(c *fiber.Ctx, message string, err error) error {
	status := statusFromError(err)

	details := []string{}
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			details = utils.ValidationMessages(err)
		} else if status != fiber.StatusInternalServerError {
			details = []string{err.Error()}
		} else {
			details = []string{domain.MessageInternalServerError}
		}
	}

	return c.Status(status).JSON(ErrorBody{
		Status:    status,
		Message:   message,
		Errors:    details,
		Timestamp: time.Now(),
	})
}

func statusFromError(err error) int {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return fiber.StatusBadRequest
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrIngredientNotLinked),
		errors.Is(err, domain.ErrAdviceNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrRecipeNameConflict),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrAlreadyPremium):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrCredentialsInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
