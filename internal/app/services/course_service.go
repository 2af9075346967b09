package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emre/coursehub/internal/app/auth"
	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/repositories"
	"github.com/emre/coursehub/internal/pkg/apperrors"
	"github.com/emre/coursehub/internal/pkg/helpers"
)

// CourseService handles course lifecycle and enrollment
type CourseService struct {
	courseRepo     *repositories.CourseRepository
	lessonRepo     *repositories.LessonRepository
	enrollmentRepo *repositories.EnrollmentRepository
	analyticsRepo  *repositories.AnalyticsRepository
	logger         zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	lessonRepo *repositories.LessonRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	analyticsRepo *repositories.AnalyticsRepository,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
		analyticsRepo:  analyticsRepo,
		logger:         logger,
	}
}

// Create creates a new unpublished course owned by the caller
func (s *CourseService) Create(ctx context.Context, creator *models.User, req *dto.CreateCourseRequest) (*models.Course, error) {
	if !auth.CanCreateCourses(creator.Role) {
		return nil, apperrors.ErrPermissionDenied
	}

	level := models.LevelBeginner
	if req.Level != "" {
		level = models.CourseLevel(req.Level)
		if !level.IsValid() {
			return nil, apperrors.ErrInvalidCourseLevel
		}
	}
	if req.Price < 0 {
		return nil, apperrors.NewBadRequestError("price cannot be negative")
	}

	course := &models.Course{
		UUID:          uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		Level:         level,
		Price:         req.Price,
		DurationHours: req.DurationHours,
		CreatorID:     creator.ID,
	}
	if req.Category != "" {
		course.Category = &req.Category
	}
	if req.ThumbnailURL != "" {
		course.ThumbnailURL = &req.ThumbnailURL
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	course.Creator = creator

	s.recordEvent(ctx, models.EventCourseCreated, creator.ID, course.ID)
	s.logger.Info().Str("courseUUID", course.UUID).Int64("creatorID", creator.ID).Msg("Course created")

	return course, nil
}

// canListDrafts reports whether a creator-scoped listing may include
// unpublished courses. Only that creator and admins qualify; the public
// catalog never shows drafts.
func canListDrafts(viewer *models.User, creatorUUID string) bool {
	if creatorUUID == "" || viewer == nil {
		return false
	}
	return viewer.Role == models.RoleAdmin || viewer.UUID == creatorUUID
}

// GetAll lists catalog courses with filters, sorting and pagination.
// Drafts appear only in a creator's own listing or for admins.
func (s *CourseService) GetAll(ctx context.Context, filter *dto.CourseFilterRequest, viewer *models.User) ([]models.Course, *dto.PaginationInfo, error) {
	page := filter.Page
	if page < 1 {
		page = helpers.DefaultPage
	}
	perPage := filter.PerPage
	if perPage <= 0 || perPage > helpers.MaxPerPage {
		perPage = helpers.DefaultPerPage
	}

	courses, total, err := s.courseRepo.GetAll(ctx, filter, canListDrafts(viewer, filter.CreatorUUID), page, perPage)
	if err != nil {
		return nil, nil, err
	}

	pagination := helpers.NewPaginationInfo(total, page, perPage)
	return courses, &pagination, nil
}

// GetDetail returns a course with its lessons and aggregate stats.
// Unpublished courses are visible only to their creator and admins.
func (s *CourseService) GetDetail(ctx context.Context, courseUUID string, viewer *models.User) (*dto.CourseResponse, error) {
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
	course.Lessons = lessons

	stats, err := s.courseRepo.GetStats(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	var viewerID *int64
	if viewer != nil {
		viewerID = &viewer.ID
	}
	s.recordCourseEvent(ctx, models.EventCourseViewed, viewerID, course.ID)

	return &dto.CourseResponse{Course: course, Stats: stats}, nil
}

// Update applies partial changes to a course owned by the caller
func (s *CourseService) Update(ctx context.Context, courseUUID string, user *models.User, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return nil, err
	}
	if !auth.CanManageCourse(user, course) {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Category != nil {
		course.Category = req.Category
	}
	if req.ThumbnailURL != nil {
		course.ThumbnailURL = req.ThumbnailURL
	}
	if req.Level != nil {
		level := models.CourseLevel(*req.Level)
		if !level.IsValid() {
			return nil, apperrors.ErrInvalidCourseLevel
		}
		course.Level = level
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperrors.NewBadRequestError("price cannot be negative")
		}
		course.Price = *req.Price
	}
	if req.DurationHours != nil {
		course.DurationHours = *req.DurationHours
	}
	if req.IsFeatured != nil {
		if user.Role != models.RoleAdmin {
			return nil, apperrors.ErrPermissionDenied
		}
		course.IsFeatured = *req.IsFeatured
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Publish makes a course visible in the catalog. Publishing twice is a
// no-op; publishing a course with no lessons is rejected.
func (s *CourseService) Publish(ctx context.Context, courseUUID string, user *models.User) (*models.Course, error) {
	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return nil, err
	}
	if !auth.CanManageCourse(user, course) {
		return nil, apperrors.ErrPermissionDenied
	}
	if course.IsPublished {
		return course, nil
	}

	count, err := s.lessonRepo.CountByCourseID(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NewBadRequestError("cannot publish a course without lessons")
	}

	now := time.Now()
	course.IsPublished = true
	course.PublishedAt = &now

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, models.EventCoursePublished, user.ID, course.ID)
	s.logger.Info().Str("courseUUID", course.UUID).Msg("Course published")

	return course, nil
}

// Delete removes a course owned by the caller
func (s *CourseService) Delete(ctx context.Context, courseUUID string, user *models.User) error {
	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return err
	}
	if !auth.CanManageCourse(user, course) {
		return apperrors.ErrPermissionDenied
	}

	return s.courseRepo.Delete(ctx, course.ID)
}

// Enroll adds a user to a published course. The unique enrollment
// constraint resolves concurrent duplicates.
func (s *CourseService) Enroll(ctx context.Context, courseUUID string, user *models.User) (*models.Enrollment, error) {
	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished {
		// drafts are invisible to everyone but their managers
		if auth.CanManageCourse(user, course) {
			return nil, apperrors.ErrCourseNotPublished
		}
		return nil, apperrors.ErrCourseNotFound
	}

	enrollment := &models.Enrollment{
		UserID:   user.ID,
		CourseID: course.ID,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	enrollment.Course = course

	s.recordEvent(ctx, models.EventCourseEnrolled, user.ID, course.ID)
	s.logger.Info().Str("courseUUID", course.UUID).Int64("userID", user.ID).Msg("User enrolled in course")

	return enrollment, nil
}

func (s *CourseService) recordEvent(ctx context.Context, eventType string, userID, courseID int64) {
	s.recordCourseEvent(ctx, eventType, &userID, courseID)
}

func (s *CourseService) recordCourseEvent(ctx context.Context, eventType string, userID *int64, courseID int64) {
	event := &models.AnalyticsEvent{
		EventType: eventType,
		UserID:    userID,
		CourseID:  &courseID,
	}
	if err := s.analyticsRepo.RecordEvent(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("eventType", eventType).Msg("Failed to record analytics event")
	}
}
