package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/coursehub/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runHandleAPIError(t *testing.T, err error) (int, string) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body["error"]
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"comment not found", apperrors.ErrCommentNotFound, http.StatusNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"account disabled", apperrors.ErrAccountDisabled, http.StatusForbidden},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, http.StatusConflict},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"not enrolled", apperrors.ErrNotEnrolled, http.StatusForbidden},
		{"not published", apperrors.ErrCourseNotPublished, http.StatusBadRequest},
		{"bad rating", apperrors.ErrInvalidRatingValue, http.StatusBadRequest},
		{"bad level", apperrors.ErrInvalidCourseLevel, http.StatusBadRequest},
		{"file type", apperrors.ErrFileTypeNotAllowed, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := runHandleAPIError(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.err.Error(), message)
		})
	}
}

func TestHandleAPIErrorWrappedError(t *testing.T) {
	err := fmt.Errorf("loading course: %w", apperrors.ErrCourseNotFound)
	status, message := runHandleAPIError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "loading course: course not found", message)
}

func TestHandleAPIErrorCustomMessage(t *testing.T) {
	err := apperrors.NewBadRequestError("course has no lessons to publish")
	status, message := runHandleAPIError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "course has no lessons to publish", message)
}

func TestHandleAPIErrorUnknownErrorIsOpaque(t *testing.T) {
	status, message := runHandleAPIError(t, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", message)
}

func TestHandleBindingError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", nil)

	HandleBindingError(c, errors.New("unexpected EOF"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "invalid request body"}`, w.Body.String())
}
