package dto

import "github.com/emre/coursehub/internal/app/models"

// RateCourseRequest submits a 1..5 star rating with an optional comment.
// A second submission for the same course replaces the first.
type RateCourseRequest struct {
	Value   int    `json:"value" binding:"required"`
	Comment string `json:"comment"`
}

// RatingListResponse is one page of a course's ratings.
type RatingListResponse struct {
	Ratings    []models.Rating `json:"ratings"`
	Pagination PaginationInfo  `json:"pagination"`
}
