package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/services"
	"github.com/emre/coursehub/internal/middleware"
	"github.com/emre/coursehub/internal/pkg/apperrors"
)

// MaterialController handles file uploads and course materials
type MaterialController struct {
	materialService *services.MaterialService
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService *services.MaterialService) *MaterialController {
	return &MaterialController{
		materialService: materialService,
	}
}

// UploadCourseMaterial attaches an uploaded file to a course
// @Summary Upload course material
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Course UUID"
// @Param file formData file true "File to upload"
// @Param title formData string false "Material title"
// @Success 201 {object} dto.UploadResponse "File uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing file or disallowed type"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid}/materials [post]
func (c *MaterialController) UploadCourseMaterial(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrNoFileUploaded)
		return
	}

	user := middleware.CurrentUser(ctx)
	material, err := c.materialService.UploadCourseMaterial(ctx.Request.Context(), ctx.Param("uuid"), user, file, ctx.PostForm("title"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.UploadResponse{
		Message:  "file uploaded",
		FileURL:  material.FileURL,
		Filename: material.FileName,
	})
}

// GetCourseMaterials lists a course's materials
// @Summary List course materials
// @Tags materials
// @Produce json
// @Param uuid path string true "Course UUID"
// @Success 200 {object} map[string][]models.Material "Materials"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{uuid}/materials [get]
func (c *MaterialController) GetCourseMaterials(ctx *gin.Context) {
	materials, err := c.materialService.GetCourseMaterials(ctx.Request.Context(), ctx.Param("uuid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if materials == nil {
		materials = []models.Material{}
	}
	ctx.JSON(http.StatusOK, gin.H{"materials": materials})
}

// DeleteMaterial removes a material and its stored file
// @Summary Delete a material
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Material UUID"
// @Success 200 {object} dto.MessageResponse "Material deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Router /materials/{uuid} [delete]
func (c *MaterialController) DeleteMaterial(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	if err := c.materialService.DeleteMaterial(ctx.Request.Context(), ctx.Param("uuid"), user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "material deleted"})
}

// Upload stores a standalone file for the caller
// @Summary Upload a file
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 200 {object} dto.UploadResponse "File uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing file or disallowed type"
// @Router /upload [post]
func (c *MaterialController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrNoFileUploaded)
		return
	}

	user := middleware.CurrentUser(ctx)
	fileURL, err := c.materialService.UploadFile(ctx.Request.Context(), user, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadResponse{
		Message:  "file uploaded",
		FileURL:  fileURL,
		Filename: file.Filename,
	})
}

// UploadAvatar stores a profile image for the caller
// @Summary Upload an avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 200 {object} dto.UploadResponse "Avatar updated"
// @Failure 400 {object} dto.ErrorResponse "Missing file or disallowed type"
// @Router /users/me/avatar [post]
func (c *MaterialController) UploadAvatar(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrNoFileUploaded)
		return
	}

	user := middleware.CurrentUser(ctx)
	fileURL, err := c.materialService.UploadAvatar(ctx.Request.Context(), user, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadResponse{
		Message:  "avatar updated",
		FileURL:  fileURL,
		Filename: file.Filename,
	})
}
