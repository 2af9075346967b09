package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emre/coursehub/internal/app/auth"
	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/repositories"
	"github.com/emre/coursehub/internal/pkg/apperrors"
	"github.com/emre/coursehub/internal/pkg/helpers"
	"github.com/emre/coursehub/internal/pkg/validation"
)

// EngagementService handles course comments and ratings
type EngagementService struct {
	commentRepo    *repositories.CommentRepository
	ratingRepo     *repositories.RatingRepository
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	commentRepo *repositories.CommentRepository,
	ratingRepo *repositories.RatingRepository,
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) *EngagementService {
	return &EngagementService{
		commentRepo:    commentRepo,
		ratingRepo:     ratingRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// AddComment posts a comment on a published course. Replies nest one
// level deep: replying to a reply attaches to the top-level parent.
func (s *EngagementService) AddComment(ctx context.Context, courseUUID string, user *models.User, req *dto.CreateCommentRequest) (*models.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewBadRequestError("comment content cannot be empty")
	}

	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished && !auth.CanManageCourse(user, course) {
		return nil, apperrors.ErrCourseNotFound
	}

	comment := &models.Comment{
		UUID:     uuid.NewString(),
		CourseID: course.ID,
		AuthorID: user.ID,
		Content:  content,
	}

	if req.ParentUUID != "" {
		parent, err := s.commentRepo.GetByUUID(ctx, req.ParentUUID)
		if err != nil {
			return nil, err
		}
		if parent.CourseID != course.ID {
			return nil, apperrors.NewBadRequestError("parent comment belongs to a different course")
		}
		parentID := parent.ID
		if parent.ParentID != nil {
			parentID = *parent.ParentID
		}
		comment.ParentID = &parentID
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.Author = user

	return comment, nil
}

// GetComments returns the comment tree for a course
func (s *EngagementService) GetComments(ctx context.Context, courseUUID string) ([]models.Comment, error) {
	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return nil, err
	}
	return s.commentRepo.GetByCourseID(ctx, course.ID)
}

// DeleteComment removes a comment. Allowed for the author, the course
// creator and admins.
func (s *EngagementService) DeleteComment(ctx context.Context, commentUUID string, user *models.User) error {
	comment, err := s.commentRepo.GetByUUID(ctx, commentUUID)
	if err != nil {
		return err
	}

	if comment.AuthorID != user.ID && user.Role != models.RoleAdmin {
		course, err := s.courseRepo.GetByID(ctx, comment.CourseID)
		if err != nil {
			return err
		}
		if course.CreatorID != user.ID {
			return apperrors.ErrPermissionDenied
		}
	}

	return s.commentRepo.Delete(ctx, comment.ID)
}

// RateCourse records or replaces the user's rating for a course.
// Rating requires an enrollment.
func (s *EngagementService) RateCourse(ctx context.Context, courseUUID string, user *models.User, req *dto.RateCourseRequest) (*models.Rating, error) {
	if !validation.IsValidRating(req.Value) {
		return nil, apperrors.ErrInvalidRatingValue
	}

	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, user.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.ErrNotEnrolled
	}

	rating := &models.Rating{
		CourseID: course.ID,
		UserID:   user.ID,
		Value:    req.Value,
	}
	if comment := strings.TrimSpace(req.Comment); comment != "" {
		rating.Comment = &comment
	}

	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, err
	}
	rating.Author = user

	return rating, nil
}

// GetRatings lists a course's ratings with pagination
func (s *EngagementService) GetRatings(ctx context.Context, courseUUID string, page, perPage int) ([]models.Rating, *dto.PaginationInfo, error) {
	course, err := s.courseRepo.GetByUUID(ctx, courseUUID)
	if err != nil {
		return nil, nil, err
	}

	ratings, total, err := s.ratingRepo.GetByCourseID(ctx, course.ID, page, perPage)
	if err != nil {
		return nil, nil, err
	}

	pagination := helpers.NewPaginationInfo(total, page, perPage)
	return ratings, &pagination, nil
}
