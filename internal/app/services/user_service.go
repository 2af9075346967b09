package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/repositories"
	"github.com/emre/coursehub/internal/pkg/apperrors"
	"github.com/emre/coursehub/internal/pkg/helpers"
	"github.com/emre/coursehub/internal/pkg/validation"
)

// UserService handles user profile operations
type UserService struct {
	userRepo       *repositories.UserRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo *repositories.UserRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// GetProfile returns the authenticated user's profile
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// GetByUUID returns a user's public profile
func (s *UserService) GetByUUID(ctx context.Context, uuid string) (*models.User, error) {
	return s.userRepo.GetByUUID(ctx, uuid)
}

// UpdateProfile applies the provided fields to the user's profile
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		nameOK := validation.NewStringValidation(*req.Name).
			WithMinLength(validation.NameMinLength).
			WithMaxLength(validation.NameMaxLength).
			Validate()
		if !nameOK {
			return nil, apperrors.NewBadRequestError("invalid name")
		}
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Msg("User profile updated")
	return user, nil
}

// GetEnrolledCourses lists the courses the user is enrolled in
func (s *UserService) GetEnrolledCourses(ctx context.Context, userID int64, page, perPage int) ([]models.Course, *dto.PaginationInfo, error) {
	courses, total, err := s.enrollmentRepo.GetCoursesByUserID(ctx, userID, page, perPage)
	if err != nil {
		return nil, nil, err
	}

	pagination := helpers.NewPaginationInfo(total, page, perPage)
	return courses, &pagination, nil
}
