package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried in error responses.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeDraftExpired     = "DRAFT_EXPIRED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeInternal         = "INTERNAL"
)

// ErrorBody is the code and message of a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error  ErrorBody             `json:"error"`
	Errors []entities.FieldError `json:"errors,omitempty"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := CodeInternal
	msg := "internal error"
	var fields []entities.FieldError

	var verr *entities.ValidationError
	var ferr *fiber.Error
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		code = CodeValidationFailed
		msg = "validation failed"
		fields = verr.Fields
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrNotFound):
		status = http.StatusNotFound
		code = CodeNotFound
		msg = err.Error()
	case errors.Is(err, entities.ErrDraftExpired):
		status = http.StatusGone
		code = CodeDraftExpired
		msg = err.Error()
	case errors.Is(err, entities.ErrConflict):
		status = http.StatusConflict
		code = CodeConflict
		msg = err.Error()
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = CodeUnauthorized
		msg = err.Error()
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = CodeForbidden
		msg = err.Error()
	case errors.As(err, &ferr):
		status = ferr.Code
		code = strings.ToUpper(strings.ReplaceAll(http.StatusText(ferr.Code), " ", "_"))
		msg = ferr.Message
	}

	return c.Status(status).JSON(ErrorResponse{Error: ErrorBody{Code: code, Message: msg}, Errors: fields})
}

// ErrorHandler renders errors returned by handlers and middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return writeError(c, err)
}

func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fmt.Errorf("%w: invalid body", entities.ErrInvalidArgument)
	}
	return nil
}

// queryInt reads a non-negative integer query parameter.
func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", entities.ErrInvalidArgument, key)
	}
	return n, nil
}

func queryBool(c *fiber.Ctx, key string) bool {
	return c.QueryBool(key, false)
}

func created(c *fiber.Ctx, v any) error {
	return c.Status(http.StatusCreated).JSON(v)
}

func sendOK(c *fiber.Ctx, v any) error {
	return c.Status(http.StatusOK).JSON(v)
}

func noContent(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusNoContent)
}
