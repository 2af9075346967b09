package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/pkg/apperrors"
	"github.com/emre/coursehub/internal/pkg/logger"
)

// HandleAPIError translates service errors into HTTP responses. Every
// error body has the shape {"error": "message"}; unknown errors are
// logged server-side and returned as an opaque 500.
func HandleAPIError(c *gin.Context, err error) {
	status := statusForError(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(status, dto.NewErrorResponse("internal server error"))
		return
	}

	message := err.Error()
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	c.JSON(status, dto.NewErrorResponse(message))
}

func statusForError(err error) int {
	switch {
	case apperrors.Is(err,
		apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrLessonNotFound,
		apperrors.ErrCommentNotFound):
		return http.StatusNotFound

	case apperrors.Is(err,
		apperrors.ErrInvalidCredentials,
		apperrors.ErrTokenExpired,
		apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized

	case apperrors.Is(err,
		apperrors.ErrPermissionDenied,
		apperrors.ErrAccountDisabled,
		apperrors.ErrNotEnrolled):
		return http.StatusForbidden

	case apperrors.Is(err,
		apperrors.ErrResourceAlreadyExists,
		apperrors.ErrConflict,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrAlreadyEnrolled):
		return http.StatusConflict

	case apperrors.Is(err,
		apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrInvalidEmail,
		apperrors.ErrInvalidPassword,
		apperrors.ErrCourseNotPublished,
		apperrors.ErrInvalidRatingValue,
		apperrors.ErrInvalidCourseLevel,
		apperrors.ErrNoFileUploaded,
		apperrors.ErrFileTypeNotAllowed):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// HandleBindingError reports request body decoding failures as 400s
// without echoing decoder internals
func HandleBindingError(c *gin.Context, err error) {
	logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Request binding failed")
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
}
