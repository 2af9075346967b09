package dto

import "github.com/emre/coursehub/internal/app/models"

// CreateCommentRequest posts a comment or, when ParentUUID is set, a reply.
type CreateCommentRequest struct {
	Content    string `json:"content" binding:"required"`
	ParentUUID string `json:"parent_uuid"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Message string          `json:"message"`
	Comment *models.Comment `json:"comment"`
}

// CommentListResponse is a course's top-level comments, replies nested one level.
type CommentListResponse struct {
	Comments []models.Comment `json:"comments"`
}
