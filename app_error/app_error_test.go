package app_error

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("loading club: %w", gorm.ErrRecordNotFound), http.StatusNotFound},
		{Forbidden("not the club creator"), http.StatusForbidden},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{fmt.Errorf("record end: %w", ErrScoreLocked), http.StatusConflict},
		{ErrInvalidTransition, http.StatusConflict},
		{Conflict("username taken"), http.StatusConflict},
		{Validation("arrow out of range"), http.StatusBadRequest},
		{ErrLoginLocked, http.StatusTooManyRequests},
		{Status(errors.New("teapot"), http.StatusTeapot), http.StatusTeapot},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestRespondWritesErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, Validation("name must be between 3 and 60 characters"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"name must be between 3 and 60 characters"}`, w.Body.String())
}

func TestWrappedKeepsMessage(t *testing.T) {
	err := Conflict("club already exists")
	assert.Equal(t, "club already exists", err.Error())
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
}
