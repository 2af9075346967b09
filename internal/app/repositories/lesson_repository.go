package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/pkg/apperrors"
)

const lessonColumns = "id, uuid, course_id, title, description, content, video_url, video_duration, order_index, is_free, created_at, updated_at"

// LessonRepository handles database operations for lessons
type LessonRepository struct {
	db *pgxpool.Pool
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{db: db}
}

func scanLesson(row pgx.Row) (*models.Lesson, error) {
	var lesson models.Lesson
	err := row.Scan(
		&lesson.ID,
		&lesson.UUID,
		&lesson.CourseID,
		&lesson.Title,
		&lesson.Description,
		&lesson.Content,
		&lesson.VideoURL,
		&lesson.VideoDuration,
		&lesson.OrderIndex,
		&lesson.IsFree,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// Create appends a lesson to a course. The order index is assigned
// inside the insert so concurrent appends cannot race on a stale max.
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	query := squirrel.Insert("lessons").
		Columns("uuid", "course_id", "title", "description", "content", "video_url",
			"video_duration", "order_index", "is_free").
		Values(lesson.UUID, lesson.CourseID, lesson.Title, lesson.Description, lesson.Content,
			lesson.VideoURL, lesson.VideoDuration,
			squirrel.Expr("(SELECT COALESCE(MAX(order_index), 0) + 1 FROM lessons WHERE course_id = ?)", lesson.CourseID),
			lesson.IsFree).
		Suffix("RETURNING id, order_index, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&lesson.ID, &lesson.OrderIndex, &lesson.CreatedAt, &lesson.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByUUID retrieves a lesson by public UUID
func (r *LessonRepository) GetByUUID(ctx context.Context, uuid string) (*models.Lesson, error) {
	query := squirrel.Select(lessonColumns).
		From("lessons").
		Where(squirrel.Eq{"uuid": uuid}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	lesson, err := scanLesson(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return lesson, nil
}

// GetByCourseID retrieves all lessons of a course in display order
func (r *LessonRepository) GetByCourseID(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	query := squirrel.Select(lessonColumns).
		From("lessons").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("order_index ASC", "id ASC").
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

	var lessons []models.Lesson
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		lessons = append(lessons, *lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return lessons, nil
}

// CountByCourseID returns the number of lessons in a course
func (r *LessonRepository) CountByCourseID(ctx context.Context, courseID int64) (int, error) {
	query := squirrel.Select("COUNT(1)").
		From("lessons").
		Where(squirrel.Eq{"course_id": courseID}).
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

// Update updates an existing lesson
func (r *LessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	query := squirrel.Update("lessons").
		Set("title", lesson.Title).
		Set("description", lesson.Description).
		Set("content", lesson.Content).
		Set("video_url", lesson.VideoURL).
		Set("video_duration", lesson.VideoDuration).
		Set("is_free", lesson.IsFree).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": lesson.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrLessonNotFound
	}

	return nil
}

// Delete removes a lesson
func (r *LessonRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("lessons").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrLessonNotFound
	}

	return nil
}
