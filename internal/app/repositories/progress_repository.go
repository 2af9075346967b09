package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/coursehub/internal/app/models"
)

// ProgressRepository handles database operations for per-lesson progress
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Upsert records progress for a lesson. The unique (user_id, lesson_id)
// constraint makes the row a singleton; ON CONFLICT keeps the completed
// flag monotonic and never shrinks the recorded watch time.
func (r *ProgressRepository) Upsert(ctx context.Context, progress *models.LessonProgress) error {
	query := squirrel.Insert("lesson_progress").
		Columns("user_id", "lesson_id", "completed", "completed_at", "watch_time").
		Values(progress.UserID, progress.LessonID, progress.Completed,
			squirrel.Expr("CASE WHEN ? THEN NOW() ELSE NULL END", progress.Completed),
			progress.WatchTime).
		Suffix(`ON CONFLICT (user_id, lesson_id) DO UPDATE SET
			completed = lesson_progress.completed OR EXCLUDED.completed,
			completed_at = COALESCE(lesson_progress.completed_at, EXCLUDED.completed_at),
			watch_time = GREATEST(lesson_progress.watch_time, EXCLUDED.watch_time),
			updated_at = NOW()
			RETURNING id, completed, completed_at, watch_time, updated_at`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&progress.ID,
		&progress.Completed,
		&progress.CompletedAt,
		&progress.WatchTime,
		&progress.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByUserAndCourse lists a user's progress rows for every lesson of a
// course, in lesson display order
func (r *ProgressRepository) GetByUserAndCourse(ctx context.Context, userID, courseID int64) ([]models.LessonProgress, error) {
	query := squirrel.Select("lp.id", "lp.user_id", "lp.lesson_id", "l.uuid",
		"lp.completed", "lp.completed_at", "lp.watch_time", "lp.updated_at").
		From("lesson_progress lp").
		Join("lessons l ON l.id = lp.lesson_id").
		Where(squirrel.Eq{"lp.user_id": userID, "l.course_id": courseID}).
		OrderBy("l.order_index ASC", "l.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var items []models.LessonProgress
	for rows.Next() {
		var p models.LessonProgress
		err := rows.Scan(&p.ID, &p.UserID, &p.LessonID, &p.LessonUUID,
			&p.Completed, &p.CompletedAt, &p.WatchTime, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return items, nil
}

// CountCompleted returns how many lessons of a course the user has completed
func (r *ProgressRepository) CountCompleted(ctx context.Context, userID, courseID int64) (int, error) {
	query := squirrel.Select("COUNT(1)").
		From("lesson_progress lp").
		Join("lessons l ON l.id = lp.lesson_id").
		Where(squirrel.Eq{"lp.user_id": userID, "l.course_id": courseID, "lp.completed": true}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return count, nil
}
