package services

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/repositories"
	"github.com/emre/coursehub/internal/pkg/apperrors"
)

// ProgressService tracks per-lesson completion and derives course progress
type ProgressService struct {
	progressRepo   *repositories.ProgressRepository
	lessonRepo     *repositories.LessonRepository
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
	analyticsRepo  *repositories.AnalyticsRepository
	logger         zerolog.Logger
}

// NewProgressService creates a new ProgressService
func NewProgressService(
	progressRepo *repositories.ProgressRepository,
	lessonRepo *repositories.LessonRepository,
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	analyticsRepo *repositories.AnalyticsRepository,
	logger zerolog.Logger,
) *ProgressService {
	return &ProgressService{
		progressRepo:   progressRepo,
		lessonRepo:     lessonRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		analyticsRepo:  analyticsRepo,
		logger:         logger,
	}
}

// CourseProgressPercentage computes a completion percentage rounded to
// one decimal place. A course with no lessons is 0 percent complete.
func CourseProgressPercentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

// CompleteLesson marks a lesson done for the user. Completion never
// reverts: repeating the call keeps the original completion time.
func (s *ProgressService) CompleteLesson(ctx context.Context, lessonUUID string, user *models.User, req *dto.CompleteLessonRequest) (*models.LessonProgress, error) {
	watchTime := 0
	if req != nil && req.WatchTime != nil {
		if *req.WatchTime < 0 {
			return nil, apperrors.NewBadRequestError("watch_time cannot be negative")
		}
		watchTime = *req.WatchTime
	}
	return s.record(ctx, lessonUUID, user, true, watchTime)
}

// RecordProgress records watch time and, optionally, completion for a lesson
func (s *ProgressService) RecordProgress(ctx context.Context, lessonUUID string, user *models.User, req *dto.RecordProgressRequest) (*models.LessonProgress, error) {
	watchTime := 0
	if req.WatchTime != nil {
		if *req.WatchTime < 0 {
			return nil, apperrors.NewBadRequestError("watch_time cannot be negative")
		}
		watchTime = *req.WatchTime
	}
	completed := req.Completed != nil && *req.Completed
	return s.record(ctx, lessonUUID, user, completed, watchTime)
}

func (s *ProgressService) record(ctx context.Context, lessonUUID string, user *models.User, completed bool, watchTime int) (*models.LessonProgress, error) {
	lesson, err := s.lessonRepo.GetByUUID(ctx, lessonUUID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, lesson.CourseID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, user.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled && !lesson.IsFree && course.CreatorID != user.ID && user.Role != models.RoleAdmin {
		return nil, apperrors.ErrNotEnrolled
	}

	progress := &models.LessonProgress{
		UserID:     user.ID,
		LessonID:   lesson.ID,
		LessonUUID: lesson.UUID,
		Completed:  completed,
		WatchTime:  watchTime,
	}
	if err := s.progressRepo.Upsert(ctx, progress); err != nil {
		return nil, err
	}

	if enrolled {
		if err := s.refreshCourseProgress(ctx, user.ID, course.ID); err != nil {
			return nil, err
		}
	}

	if progress.Completed {
		event := &models.AnalyticsEvent{
			EventType: models.EventLessonCompleted,
			UserID:    &user.ID,
			CourseID:  &course.ID,
			LessonID:  &lesson.ID,
		}
		if err := s.analyticsRepo.RecordEvent(ctx, event); err != nil {
			s.logger.Warn().Err(err).Str("lessonUUID", lessonUUID).Msg("Failed to record analytics event")
		}
	}

	return progress, nil
}

// refreshCourseProgress recomputes the stored course percentage from
// completed lesson counts
func (s *ProgressService) refreshCourseProgress(ctx context.Context, userID, courseID int64) error {
	total, err := s.lessonRepo.CountByCourseID(ctx, courseID)
	if err != nil {
		return err
	}
	completed, err := s.progressRepo.CountCompleted(ctx, userID, courseID)
	if err != nil {
		return err
	}

	percentage := CourseProgressPercentage(completed, total)
	err = s.enrollmentRepo.UpdateProgress(ctx, userID, courseID, percentage)
	if err != nil && !errors.Is(err, apperrors.ErrNotEnrolled) {
		return err
	}
	return nil
}

// GetCourseProgress returns the user's progress across a course's lessons
func (s *ProgressService) GetCourseProgress(ctx context.Context, courseUUID string, user *models.User) (*models.CourseProgress, error) {
	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, user.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled && course.CreatorID != user.ID && user.Role != models.RoleAdmin {
		return nil, apperrors.ErrNotEnrolled
	}

	total, err := s.lessonRepo.CountByCourseID(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	items, err := s.progressRepo.GetByUserAndCourse(ctx, user.ID, course.ID)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}

	return &models.CourseProgress{
		CourseUUID:         course.UUID,
		TotalLessons:       total,
		CompletedLessons:   completed,
		ProgressPercentage: CourseProgressPercentage(completed, total),
		LessonProgress:     items,
	}, nil
}
