package dto

import "github.com/emre/coursehub/internal/app/models"

// CreateLessonRequest is the payload for appending a lesson to a course.
// The order index is assigned server-side.
type CreateLessonRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Content       string `json:"content"`
	VideoURL      string `json:"video_url"`
	VideoDuration int    `json:"video_duration"`
	IsFree        bool   `json:"is_free"`
}

// UpdateLessonRequest carries optional lesson fields; nil means unchanged.
// There is deliberately no way to change the order index.
type UpdateLessonRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Content       *string `json:"content"`
	VideoURL      *string `json:"video_url"`
	VideoDuration *int    `json:"video_duration"`
	IsFree        *bool   `json:"is_free"`
}

// LessonResponse wraps a single lesson.
type LessonResponse struct {
	Lesson *models.Lesson `json:"lesson"`
}

// LessonListResponse is a course's lessons in order.
type LessonListResponse struct {
	Lessons []models.Lesson `json:"lessons"`
}
