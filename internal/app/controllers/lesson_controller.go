package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/services"
	"github.com/emre/coursehub/internal/middleware"
)

// LessonController handles lesson management and gated lesson access
type LessonController struct {
	lessonService *services.LessonService
}

// NewLessonController creates a new LessonController
func NewLessonController(lessonService *services.LessonService) *LessonController {
	return &LessonController{
		lessonService: lessonService,
	}
}

// Create appends a lesson to a course
// @Summary Create a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Course UUID"
// @Param request body dto.CreateLessonRequest true "Lesson information"
// @Success 201 {object} dto.LessonResponse "Lesson created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid}/lessons [post]
func (c *LessonController) Create(ctx *gin.Context) {
	var req dto.CreateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	lesson, err := c.lessonService.Create(ctx.Request.Context(), ctx.Param("uuid"), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.LessonResponse{Lesson: lesson})
}

// GetByCourse lists a course's lessons in order
// @Summary List course lessons
// @Description Lists lessons in display order. Content of locked lessons is omitted.
// @Tags lessons
// @Produce json
// @Param uuid path string true "Course UUID"
// @Success 200 {object} dto.LessonListResponse "Lessons"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid}/lessons [get]
func (c *LessonController) GetByCourse(ctx *gin.Context) {
	viewer := middleware.CurrentUser(ctx)

	lessons, err := c.lessonService.GetByCourse(ctx.Request.Context(), ctx.Param("uuid"), viewer)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LessonListResponse{Lessons: lessons})
}

// Get returns a single lesson with content
// @Summary Get a lesson
// @Description Returns lesson content. Requires a free lesson, an enrollment, or course ownership.
// @Tags lessons
// @Produce json
// @Param uuid path string true "Lesson UUID"
// @Success 200 {object} dto.LessonResponse "Lesson"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{uuid} [get]
func (c *LessonController) Get(ctx *gin.Context) {
	viewer := middleware.CurrentUser(ctx)

	lesson, err := c.lessonService.Get(ctx.Request.Context(), ctx.Param("uuid"), viewer)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LessonResponse{Lesson: lesson})
}

// Update handles partial lesson updates
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Lesson UUID"
// @Param request body dto.UpdateLessonRequest true "Fields to change"
// @Success 200 {object} dto.LessonResponse "Updated lesson"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{uuid} [put]
func (c *LessonController) Update(ctx *gin.Context) {
	var req dto.UpdateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	lesson, err := c.lessonService.Update(ctx.Request.Context(), ctx.Param("uuid"), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LessonResponse{Lesson: lesson})
}

// Delete removes a lesson
// @Summary Delete a lesson
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Lesson UUID"
// @Success 200 {object} dto.MessageResponse "Lesson deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{uuid} [delete]
func (c *LessonController) Delete(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	if err := c.lessonService.Delete(ctx.Request.Context(), ctx.Param("uuid"), user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "lesson deleted"})
}
