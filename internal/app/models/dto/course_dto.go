package dto

import "github.com/emre/coursehub/internal/app/models"

// CreateCourseRequest is the payload for authoring a new course.
type CreateCourseRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Level         string  `json:"level"`
	Price         float64 `json:"price"`
	DurationHours int     `json:"duration_hours"`
	ThumbnailURL  string  `json:"thumbnail_url"`
}

// UpdateCourseRequest carries optional course fields; nil means unchanged.
type UpdateCourseRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Level         *string  `json:"level"`
	Price         *float64 `json:"price"`
	DurationHours *int     `json:"duration_hours"`
	ThumbnailURL  *string  `json:"thumbnail_url"`
	IsFeatured    *bool    `json:"is_featured"`
}

// CourseFilterRequest holds the listing filters, combined with AND semantics.
type CourseFilterRequest struct {
	Category    string `form:"category"`
	Level       string `form:"level"`
	Search      string `form:"search"`
	Featured    bool   `form:"featured"`
	CreatorUUID string `form:"creator"`
	Sort        string `form:"sort"`
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
}

// CourseResponse is a course together with its recomputed aggregates.
type CourseResponse struct {
	Course *models.Course      `json:"course"`
	Stats  *models.CourseStats `json:"stats,omitempty"`
}

// CourseDetailResponse wraps a single course.
type CourseDetailResponse struct {
	Course *models.Course `json:"course"`
}

// CourseListResponse is one page of the public catalog.
type CourseListResponse struct {
	Courses    []models.Course `json:"courses"`
	Pagination PaginationInfo  `json:"pagination"`
}
