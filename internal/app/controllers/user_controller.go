package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/services"
	"github.com/emre/coursehub/internal/middleware"
	"github.com/emre/coursehub/internal/pkg/helpers"
)

// UserController handles user profile operations
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetProfile returns the authenticated user's profile
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse "Profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	profile, err := c.userService.GetProfile(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserResponse{User: profile})
}

// UpdateProfile updates the authenticated user's profile
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} dto.UserResponse "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users/me [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	updated, err := c.userService.UpdateProfile(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserResponse{User: updated})
}

// GetUser returns a user's public profile
// @Summary Get a user by UUID
// @Tags users
// @Produce json
// @Param uuid path string true "User UUID"
// @Success 200 {object} dto.UserResponse "Profile"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{uuid} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.userService.GetByUUID(ctx.Request.Context(), ctx.Param("uuid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserResponse{User: user})
}

// GetEnrolledCourses lists the authenticated user's enrollments
// @Summary List enrolled courses
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} dto.CourseListResponse "Enrolled courses"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users/me/courses [get]
func (c *UserController) GetEnrolledCourses(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	page, perPage := helpers.ParsePaginationParams(ctx)

	courses, pagination, err := c.userService.GetEnrolledCourses(ctx.Request.Context(), user.ID, page, perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseListResponse{
		Courses:    courses,
		Pagination: *pagination,
	})
}
