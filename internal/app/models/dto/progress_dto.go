package dto

import "github.com/emre/coursehub/internal/app/models"

// CompleteLessonRequest optionally reports watch time alongside completion.
type CompleteLessonRequest struct {
	WatchTime *int `json:"watch_time"`
}

// RecordProgressRequest updates watch time and, optionally, completion.
// Completion is monotonic: completed=false never reverts an earlier true.
type RecordProgressRequest struct {
	WatchTime *int  `json:"watch_time"`
	Completed *bool `json:"completed"`
}

// ProgressResponse wraps a single lesson progress record.
type ProgressResponse struct {
	Message  string                 `json:"message"`
	Progress *models.LessonProgress `json:"progress"`
}
