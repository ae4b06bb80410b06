package app_error

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrValidation        = errors.New("validation failed")
	ErrScoreLocked       = errors.New("score is locked")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrLoginLocked       = errors.New("too many failed login attempts")
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// Status wraps err so that Respond answers with the given code.
func Status(err error, status int) error {
	return statusError{error: err, status: status}
}

// Validation returns an ErrValidation carrying msg.
func Validation(msg string) error {
	return &wrapped{msg: msg, base: ErrValidation}
}

func Conflict(msg string) error {
	return &wrapped{msg: msg, base: ErrConflict}
}

func Forbidden(msg string) error {
	return &wrapped{msg: msg, base: ErrForbidden}
}

func NotFound(msg string) error {
	return &wrapped{msg: msg, base: ErrNotFound}
}

type wrapped struct {
	msg  string
	base error
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.base }

// HTTPStatus maps a service error onto a response code.
func HTTPStatus(err error) int {
	var se statusError
	if errors.As(err, &se) {
		return se.status
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrConflict), errors.Is(err, ErrScoreLocked), errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrLoginLocked):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func Respond(c *gin.Context, err error) {
	WithHTTPStatus(c, err, HTTPStatus(err))
}
