package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emre/coursehub/internal/app/auth"
	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/app/repositories"
	"github.com/emre/coursehub/internal/pkg/apperrors"
	"github.com/emre/coursehub/internal/pkg/filestorage"
)

// Upload subdirectories by content kind
const (
	SubdirMaterial = "material"
	SubdirVideo    = "video"
	SubdirAvatar   = "avatar"
)

// MaterialService handles file uploads and course material records
type MaterialService struct {
	materialRepo *repositories.MaterialRepository
	courseRepo   *repositories.CourseRepository
	userRepo     *repositories.UserRepository
	storage      filestorage.FileStorage
	logger       zerolog.Logger
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(
	materialRepo *repositories.MaterialRepository,
	courseRepo *repositories.CourseRepository,
	userRepo *repositories.UserRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		courseRepo:   courseRepo,
		userRepo:     userRepo,
		storage:      storage,
		logger:       logger,
	}
}

func subdirForExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4", ".mov", ".avi":
		return SubdirVideo
	default:
		return SubdirMaterial
	}
}

// UploadCourseMaterial stores a file and attaches it to a course owned
// by the caller
func (s *MaterialService) UploadCourseMaterial(ctx context.Context, courseUUID string, user *models.User, file *multipart.FileHeader, title string) (*models.Material, error) {
	if file == nil {
		return nil, apperrors.ErrNoFileUploaded
	}
	if !filestorage.IsAllowedExtension(file.Filename) {
		return nil, apperrors.ErrFileTypeNotAllowed
	}

	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return nil, err
	}
	if !auth.CanManageCourse(user, course) {
		return nil, apperrors.ErrPermissionDenied
	}

	fileURL, err := s.storage.SaveFileWithPath(file, subdirForExtension(file.Filename))
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = file.Filename
	}

	material := &models.Material{
		UUID:     uuid.NewString(),
		CourseID: &course.ID,
		Title:    title,
		FileName: file.Filename,
		FileURL:  fileURL,
		FileType: strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), "."),
		FileSize: file.Size,
	}
	if err := s.materialRepo.Create(ctx, material); err != nil {
		if delErr := s.storage.DeleteFile(fileURL); delErr != nil {
			s.logger.Warn().Err(delErr).Str("fileURL", fileURL).Msg("Failed to clean up orphaned upload")
		}
		return nil, err
	}

	s.logger.Info().Str("courseUUID", courseUUID).Str("fileURL", fileURL).Msg("Course material uploaded")
	return material, nil
}

// GetCourseMaterials lists the materials attached to a course
func (s *MaterialService) GetCourseMaterials(ctx context.Context, courseUUID string) ([]models.Material, error) {
	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return nil, err
	}
	return s.materialRepo.GetByCourseID(ctx, course.ID)
}

// DeleteMaterial removes a material record and its stored file
func (s *MaterialService) DeleteMaterial(ctx context.Context, materialUUID string, user *models.User) error {
	material, err := s.materialRepo.GetByUUID(ctx, materialUUID)
	if err != nil {
		return err
	}

	if material.CourseID != nil {
		course, err := s.courseRepo.GetByID(ctx, *material.CourseID)
		if err != nil {
			return err
		}
		if !auth.CanManageCourse(user, course) {
			return apperrors.ErrPermissionDenied
		}
	} else if user.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	if err := s.materialRepo.Delete(ctx, material.ID); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(material.FileURL); err != nil {
		s.logger.Warn().Err(err).Str("fileURL", material.FileURL).Msg("Failed to delete stored file")
	}

	return nil
}

// UploadFile stores a standalone file for the caller without attaching
// it to a course. The subdirectory is picked from the file extension.
func (s *MaterialService) UploadFile(ctx context.Context, user *models.User, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", apperrors.ErrNoFileUploaded
	}
	if !filestorage.IsAllowedExtension(file.Filename) {
		return "", apperrors.ErrFileTypeNotAllowed
	}

	fileURL, err := s.storage.SaveFileWithPath(file, subdirForExtension(file.Filename))
	if err != nil {
		return "", err
	}

	s.logger.Info().Int64("userID", user.ID).Str("fileURL", fileURL).Msg("File uploaded")
	return fileURL, nil
}

// UploadAvatar stores a profile image and updates the user's avatar URL
func (s *MaterialService) UploadAvatar(ctx context.Context, user *models.User, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", apperrors.ErrNoFileUploaded
	}

	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".png", ".jpg", ".jpeg", ".gif":
	default:
		return "", apperrors.ErrFileTypeNotAllowed
	}

	fileURL, err := s.storage.SaveFileWithPath(file, SubdirAvatar)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateAvatarURL(ctx, user.ID, fileURL); err != nil {
		if delErr := s.storage.DeleteFile(fileURL); delErr != nil {
			s.logger.Warn().Err(delErr).Str("fileURL", fileURL).Msg("Failed to clean up orphaned upload")
		}
		return "", err
	}

	return fileURL, nil
}
