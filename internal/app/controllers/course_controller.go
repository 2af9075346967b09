package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/services"
	"github.com/emre/coursehub/internal/middleware"
)

// CourseController handles course catalog and lifecycle operations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// Create handles course creation
// @Summary Create a course
// @Description Creates an unpublished course owned by the caller. Teachers and admins only.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.CourseDetailResponse "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	course, err := c.courseService.Create(ctx.Request.Context(), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CourseDetailResponse{Course: course})
}

// GetAll lists published courses
// @Summary Browse the course catalog
// @Tags courses
// @Produce json
// @Param category query string false "Filter by category"
// @Param level query string false "Filter by level"
// @Param search query string false "Search in title and description"
// @Param featured query bool false "Only featured courses"
// @Param creator query string false "Filter by creator UUID"
// @Param sort query string false "Sort order: recent, popular or rating"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} dto.CourseListResponse "Courses"
// @Router /courses [get]
func (c *CourseController) GetAll(ctx *gin.Context) {
	var filter dto.CourseFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	viewer := middleware.CurrentUser(ctx)
	courses, pagination, err := c.courseService.GetAll(ctx.Request.Context(), &filter, viewer)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseListResponse{
		Courses:    courses,
		Pagination: *pagination,
	})
}

// Get returns course details with lessons and stats
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param uuid path string true "Course UUID"
// @Success 200 {object} dto.CourseResponse "Course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	viewer := middleware.CurrentUser(ctx)

	resp, err := c.courseService.GetDetail(ctx.Request.Context(), ctx.Param("uuid"), viewer)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Update handles partial course updates
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Course UUID"
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.CourseDetailResponse "Updated course"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	course, err := c.courseService.Update(ctx.Request.Context(), ctx.Param("uuid"), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseDetailResponse{Course: course})
}

// Publish makes a course visible in the catalog
// @Summary Publish a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Course UUID"
// @Success 200 {object} dto.CourseDetailResponse "Published course"
// @Failure 400 {object} dto.ErrorResponse "Course has no lessons"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid}/publish [post]
func (c *CourseController) Publish(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	course, err := c.courseService.Publish(ctx.Request.Context(), ctx.Param("uuid"), user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseDetailResponse{Course: course})
}

// Delete removes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Course UUID"
// @Success 200 {object} dto.MessageResponse "Course deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	if err := c.courseService.Delete(ctx.Request.Context(), ctx.Param("uuid"), user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "course deleted"})
}

// Enroll adds the caller to a published course
// @Summary Enroll in a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Course UUID"
// @Success 200 {object} dto.MessageResponse "Enrolled"
// @Failure 400 {object} dto.ErrorResponse "Course not published"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Router /courses/{uuid}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	if _, err := c.courseService.Enroll(ctx.Request.Context(), ctx.Param("uuid"), user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "enrolled successfully"})
}
