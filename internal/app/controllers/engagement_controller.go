package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/services"
	"github.com/emre/coursehub/internal/middleware"
	"github.com/emre/coursehub/internal/pkg/helpers"
)

// EngagementController handles course comments and ratings
type EngagementController struct {
	engagementService *services.EngagementService
}

// NewEngagementController creates a new EngagementController
func NewEngagementController(engagementService *services.EngagementService) *EngagementController {
	return &EngagementController{
		engagementService: engagementService,
	}
}

// AddComment posts a comment or reply on a course
// @Summary Comment on a course
// @Tags engagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Course UUID"
// @Param request body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} dto.CommentResponse "Comment posted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid}/comments [post]
func (c *EngagementController) AddComment(ctx *gin.Context) {
	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	comment, err := c.engagementService.AddComment(ctx.Request.Context(), ctx.Param("uuid"), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CommentResponse{
		Message: "comment posted",
		Comment: comment,
	})
}

// GetComments returns a course's comment tree
// @Summary List course comments
// @Tags engagement
// @Produce json
// @Param uuid path string true "Course UUID"
// @Success 200 {object} dto.CommentListResponse "Comments"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid}/comments [get]
func (c *EngagementController) GetComments(ctx *gin.Context) {
	comments, err := c.engagementService.GetComments(ctx.Request.Context(), ctx.Param("uuid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CommentListResponse{Comments: comments})
}

// DeleteComment removes a comment
// @Summary Delete a comment
// @Tags engagement
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Comment UUID"
// @Success 200 {object} dto.MessageResponse "Comment deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Router /comments/{uuid} [delete]
func (c *EngagementController) DeleteComment(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	if err := c.engagementService.DeleteComment(ctx.Request.Context(), ctx.Param("uuid"), user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "comment deleted"})
}

// RateCourse records or replaces the caller's rating
// @Summary Rate a course
// @Description Stores a 1..5 rating. Submitting again replaces the previous rating.
// @Tags engagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Course UUID"
// @Param request body dto.RateCourseRequest true "Rating"
// @Success 200 {object} dto.MessageResponse "Rating saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating value"
// @Failure 403 {object} dto.ErrorResponse "Not enrolled"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid}/ratings [post]
func (c *EngagementController) RateCourse(ctx *gin.Context) {
	var req dto.RateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	if _, err := c.engagementService.RateCourse(ctx.Request.Context(), ctx.Param("uuid"), user, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "rating saved"})
}

// GetRatings lists a course's ratings
// @Summary List course ratings
// @Tags engagement
// @Produce json
// @Param uuid path string true "Course UUID"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} dto.RatingListResponse "Ratings"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid}/ratings [get]
func (c *EngagementController) GetRatings(ctx *gin.Context) {
	page, perPage := helpers.ParsePaginationParams(ctx)

	ratings, pagination, err := c.engagementService.GetRatings(ctx.Request.Context(), ctx.Param("uuid"), page, perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RatingListResponse{
		Ratings:    ratings,
		Pagination: *pagination,
	})
}
