package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/pkg/apperrors"
)

func TestCourseProgressPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		expected  float64
	}{
		{"no lessons", 0, 0, 0},
		{"negative total", 0, -1, 0},
		{"none completed", 0, 10, 0},
		{"all completed", 10, 10, 100},
		{"half completed", 5, 10, 50},
		{"one third rounds to one decimal", 1, 3, 33.3},
		{"two thirds rounds to one decimal", 2, 3, 66.7},
		{"one of seven", 1, 7, 14.3},
		{"six of seven", 6, 7, 85.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CourseProgressPercentage(tt.completed, tt.total))
		})
	}
}

func TestNegativeWatchTimeRejected(t *testing.T) {
	svc := &ProgressService{}
	user := &models.User{ID: 1, Role: models.RoleStudent}
	negative := -30

	t.Run("complete lesson", func(t *testing.T) {
		_, err := svc.CompleteLesson(context.Background(), "lesson-uuid", user,
			&dto.CompleteLessonRequest{WatchTime: &negative})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("record progress", func(t *testing.T) {
		_, err := svc.RecordProgress(context.Background(), "lesson-uuid", user,
			&dto.RecordProgressRequest{WatchTime: &negative})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})
}
