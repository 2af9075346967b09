package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emre/coursehub/internal/app/auth"
	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/repositories"
	"github.com/emre/coursehub/internal/pkg/apperrors"
)

// LessonService handles lesson management and gated lesson access
type LessonService struct {
	lessonRepo    *repositories.LessonRepository
	courseRepo    *repositories.CourseRepository
	authService   *auth.AuthorizationService
	analyticsRepo *repositories.AnalyticsRepository
	logger        zerolog.Logger
}

// NewLessonService creates a new LessonService
func NewLessonService(
	lessonRepo *repositories.LessonRepository,
	courseRepo *repositories.CourseRepository,
	authService *auth.AuthorizationService,
	analyticsRepo *repositories.AnalyticsRepository,
	logger zerolog.Logger,
) *LessonService {
	return &LessonService{
		lessonRepo:    lessonRepo,
		courseRepo:    courseRepo,
		authService:   authService,
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

// Create appends a lesson to a course owned by the caller
func (s *LessonService) Create(ctx context.Context, courseUUID string, user *models.User, req *dto.CreateLessonRequest) (*models.Lesson, error) {
	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return nil, err
	}
	if !auth.CanManageCourse(user, course) {
		return nil, apperrors.ErrPermissionDenied
	}

	lesson := &models.Lesson{
		UUID:          uuid.NewString(),
		CourseID:      course.ID,
		Title:         req.Title,
		Description:   req.Description,
		Content:       req.Content,
		VideoDuration: req.VideoDuration,
		IsFree:        req.IsFree,
	}
	if req.VideoURL != "" {
		lesson.VideoURL = &req.VideoURL
	}

	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, err
	}

	s.logger.Info().Str("lessonUUID", lesson.UUID).Str("courseUUID", courseUUID).Msg("Lesson created")
	return lesson, nil
}

// GetByCourse lists a course's lessons in order. Content of non-free
// lessons is blanked for viewers without access.
func (s *LessonService) GetByCourse(ctx context.Context, courseUUID string, viewer *models.User) ([]models.Lesson, error) {
	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished && !auth.CanManageCourse(viewer, course) {
		return nil, apperrors.ErrCourseNotFound
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	for i := range lessons {
		canView, err := s.authService.CanViewLesson(ctx, viewer, course, &lessons[i])
		if err != nil {
			return nil, err
		}
		if !canView {
			lessons[i].Content = ""
			lessons[i].VideoURL = nil
		}
	}

	return lessons, nil
}

// Get returns a single lesson with its content, enforcing the access gate
func (s *LessonService) Get(ctx context.Context, lessonUUID string, viewer *models.User) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByUUID(ctx, lessonUUID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, lesson.CourseID)
	if err != nil {
		return nil, err
	}

	canView, err := s.authService.CanViewLesson(ctx, viewer, course, lesson)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, apperrors.ErrPermissionDenied
	}

	if viewer != nil {
		event := &models.AnalyticsEvent{
			EventType: models.EventLessonViewed,
			UserID:    &viewer.ID,
			CourseID:  &lesson.CourseID,
			LessonID:  &lesson.ID,
		}
		if err := s.analyticsRepo.RecordEvent(ctx, event); err != nil {
			s.logger.Warn().Err(err).Str("lessonUUID", lessonUUID).Msg("Failed to record analytics event")
		}
	}

	return lesson, nil
}

// Update applies partial changes to a lesson in a course owned by the caller
func (s *LessonService) Update(ctx context.Context, lessonUUID string, user *models.User, req *dto.UpdateLessonRequest) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByUUID(ctx, lessonUUID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, lesson.CourseID)
	if err != nil {
		return nil, err
	}
	if !auth.CanManageCourse(user, course) {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.Content != nil {
		lesson.Content = *req.Content
	}
	if req.VideoURL != nil {
		lesson.VideoURL = req.VideoURL
	}
	if req.VideoDuration != nil {
		lesson.VideoDuration = *req.VideoDuration
	}
	if req.IsFree != nil {
		lesson.IsFree = *req.IsFree
	}

	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, err
	}

	return lesson, nil
}

// Delete removes a lesson from a course owned by the caller
func (s *LessonService) Delete(ctx context.Context, lessonUUID string, user *models.User) error {
	lesson, err := s.lessonRepo.GetByUUID(ctx, lessonUUID)
	if err != nil {
		return err
	}

	course, err := s.courseRepo.GetByID(ctx, lesson.CourseID)
	if err != nil {
		return err
	}
	if !auth.CanManageCourse(user, course) {
		return apperrors.ErrPermissionDenied
	}

	return s.lessonRepo.Delete(ctx, lesson.ID)
}
