package apperror

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmcare/pkg/planting"
	"farmcare/pkg/schedule"
)

// AppError carries the HTTP status an error should be answered with.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func BadRequest(msg string) *AppError   { return New(http.StatusBadRequest, msg) }
func NotFound(msg string) *AppError     { return New(http.StatusNotFound, msg) }
func Unauthorized(msg string) *AppError { return New(http.StatusUnauthorized, msg) }
func Conflict(msg string) *AppError     { return New(http.StatusConflict, msg) }
func Internal(msg string) *AppError     { return New(http.StatusInternalServerError, msg) }

// From maps domain and store errors onto an AppError.
func From(err error) *AppError {
	var ae *AppError
	var pe *schedule.PersistenceError
	switch {
	case errors.As(err, &ae):
		return ae
	case errors.Is(err, schedule.ErrInvalidRange), errors.Is(err, schedule.ErrInvalidInterval),
		errors.Is(err, planting.ErrMissingDates):
		return BadRequest(err.Error())
	case errors.Is(err, schedule.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("not found")
	case errors.Is(err, schedule.ErrNotCompletable), errors.Is(err, schedule.ErrHasHistory):
		return Conflict(err.Error())
	case errors.As(err, &pe):
		return New(http.StatusServiceUnavailable, pe.Error())
	default:
		return Internal(err.Error())
	}
}

// JSON writes err as {"error": "..."} with its mapped status.
func JSON(c echo.Context, err error) error {
	ae := From(err)
	return c.JSON(ae.Code, map[string]string{"error": ae.Message})
}
