package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/repositories"
	"github.com/emre/coursehub/internal/pkg/apperrors"
)

// AnalyticsService serves the engagement dashboard
type AnalyticsService struct {
	analyticsRepo *repositories.AnalyticsRepository
	logger        zerolog.Logger
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(analyticsRepo *repositories.AnalyticsRepository, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

// GetDashboard aggregates platform activity. Teachers see only their
// own courses; admins see everything.
func (s *AnalyticsService) GetDashboard(ctx context.Context, user *models.User) (*dto.DashboardResponse, error) {
	var creatorID *int64
	switch user.Role {
	case models.RoleAdmin:
	case models.RoleTeacher:
		creatorID = &user.ID
	default:
		return nil, apperrors.ErrPermissionDenied
	}

	summary, err := s.analyticsRepo.GetSummary(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	courses, err := s.analyticsRepo.GetCourseActivity(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Summary: *summary,
		Courses: courses,
	}, nil
}
