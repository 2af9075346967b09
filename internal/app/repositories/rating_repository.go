package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/pkg/apperrors"
	"github.com/emre/coursehub/internal/pkg/dberrors"
	"github.com/emre/coursehub/internal/pkg/helpers"
)

// RatingRepository handles database operations for course ratings
type RatingRepository struct {
	db *pgxpool.Pool
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert stores a user's rating for a course. Re-rating replaces the
// previous value via the unique (course_id, user_id) constraint.
func (r *RatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	query := squirrel.Insert("ratings").
		Columns("course_id", "user_id", "value", "comment").
		Values(rating.CourseID, rating.UserID, rating.Value, rating.Comment).
		Suffix(`ON CONFLICT (course_id, user_id) DO UPDATE SET
			value = EXCLUDED.value,
			comment = EXCLUDED.comment,
			created_at = NOW()
			RETURNING id, created_at`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&rating.ID, &rating.CreatedAt)
	if err != nil {
		// the CHECK constraint backs the service-level range validation
		if dberrors.IsCheckViolation(err, "ratings_value_check") {
			return apperrors.ErrInvalidRatingValue
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByCourseID lists ratings for a course with their authors, newest first
func (r *RatingRepository) GetByCourseID(ctx context.Context, courseID int64, page, perPage int) ([]models.Rating, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, perPage)
	query := squirrel.Select("r.id", "r.course_id", "r.user_id", "r.value", "r.comment", "r.created_at",
		"u.uuid", "u.name", "u.avatar_url", "COUNT(*) OVER()").
		From("ratings r").
		Join("users u ON u.id = r.user_id").
		Where(squirrel.Eq{"r.course_id": courseID}).
		OrderBy("r.created_at DESC", "r.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var ratings []models.Rating
	var total int64

	for rows.Next() {
		var rating models.Rating
		var author models.User
		err := rows.Scan(&rating.ID, &rating.CourseID, &rating.UserID, &rating.Value, &rating.Comment,
			&rating.CreatedAt, &author.UUID, &author.Name, &author.AvatarURL, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		rating.Author = &author
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error reading rows: %w", err)
	}

	return ratings, total, nil
}
