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

// EnrollmentRepository handles database operations for course enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create enrolls a user in a course. The unique (user_id, course_id)
// constraint is the authority on duplicates, so a concurrent double
// enroll surfaces as apperrors.ErrAlreadyEnrolled rather than a second row.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := squirrel.Insert("enrollments").
		Columns("user_id", "course_id").
		Values(enrollment.UserID, enrollment.CourseID).
		Suffix("RETURNING id, enrolled_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&enrollment.ID, &enrollment.EnrolledAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_user_id_course_id_key") {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Exists reports whether a user is enrolled in a course
func (r *EnrollmentRepository) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	query := squirrel.Select("COUNT(1)").
		From("enrollments").
		Where(squirrel.Eq{"user_id": userID, "course_id": courseID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return count > 0, nil
}

// GetCoursesByUserID lists the courses a user is enrolled in, newest first
func (r *EnrollmentRepository) GetCoursesByUserID(ctx context.Context, userID int64, page, perPage int) ([]models.Course, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, perPage)
	query := courseSelect().
		Column("COUNT(*) OVER()").
		Join("enrollments e ON e.course_id = c.id").
		Where(squirrel.Eq{"e.user_id": userID}).
		OrderBy("e.enrolled_at DESC", "e.id DESC").
		Limit(uint64(limit)).
		Offset(offset)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	var total int64

	for rows.Next() {
		course, err := scanCourse(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error reading rows: %w", err)
	}

	return courses, total, nil
}

// UpdateProgress stores the recomputed course percentage and stamps
// completed_at the first time the course reaches 100.
func (r *EnrollmentRepository) UpdateProgress(ctx context.Context, userID, courseID int64, progress float64) error {
	query := squirrel.Update("enrollments").
		Set("progress", progress).
		Where(squirrel.Eq{"user_id": userID, "course_id": courseID}).
		PlaceholderFormat(squirrel.Dollar)

	if progress >= 100 {
		query = query.Set("completed_at", squirrel.Expr("COALESCE(completed_at, NOW())"))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotEnrolled
	}

	return nil
}
