package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/services"
	"github.com/emre/coursehub/internal/middleware"
)

// ProgressController handles lesson completion and course progress
type ProgressController struct {
	progressService *services.ProgressService
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService *services.ProgressService) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

// CompleteLesson marks a lesson as completed
// @Summary Complete a lesson
// @Description Marks a lesson done for the caller. Completion never reverts.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Lesson UUID"
// @Param request body dto.CompleteLessonRequest false "Optional watch time"
// @Success 200 {object} dto.ProgressResponse "Progress recorded"
// @Failure 403 {object} dto.ErrorResponse "Not enrolled"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{uuid}/complete [post]
func (c *ProgressController) CompleteLesson(ctx *gin.Context) {
	var req dto.CompleteLessonRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			middleware.HandleBindingError(ctx, err)
			return
		}
	}

	user := middleware.CurrentUser(ctx)
	progress, err := c.progressService.CompleteLesson(ctx.Request.Context(), ctx.Param("uuid"), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProgressResponse{
		Message:  "lesson completed",
		Progress: progress,
	})
}

// RecordProgress records watch time and optional completion
// @Summary Record lesson progress
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Lesson UUID"
// @Param request body dto.RecordProgressRequest true "Progress data"
// @Success 200 {object} dto.ProgressResponse "Progress recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{uuid}/progress [post]
func (c *ProgressController) RecordProgress(ctx *gin.Context) {
	var req dto.RecordProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	progress, err := c.progressService.RecordProgress(ctx.Request.Context(), ctx.Param("uuid"), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProgressResponse{
		Message:  "progress recorded",
		Progress: progress,
	})
}

// GetCourseProgress returns the caller's progress across a course
// @Summary Get course progress
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Course UUID"
// @Success 200 {object} models.CourseProgress "Progress"
// @Failure 403 {object} dto.ErrorResponse "Not enrolled"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid}/progress [get]
func (c *ProgressController) GetCourseProgress(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	progress, err := c.progressService.GetCourseProgress(ctx.Request.Context(), ctx.Param("uuid"), user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, progress)
}
