package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/pkg/apperrors"
	"github.com/emre/coursehub/internal/pkg/helpers"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

func courseSelect() squirrel.SelectBuilder {
	return squirrel.Select(
		"c.id", "c.uuid", "c.title", "c.description", "c.thumbnail_url", "c.category",
		"c.level", "c.price", "c.duration_hours", "c.creator_id", "c.is_published",
		"c.published_at", "c.is_featured", "c.created_at", "c.updated_at",
		"u.uuid", "u.name", "u.email", "u.role", "u.avatar_url", "u.bio",
	).
		From("courses c").
		Join("users u ON u.id = c.creator_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanCourse(row pgx.Row, extra ...interface{}) (*models.Course, error) {
	var course models.Course
	var creator models.User
	dest := []interface{}{
		&course.ID, &course.UUID, &course.Title, &course.Description, &course.ThumbnailURL,
		&course.Category, &course.Level, &course.Price, &course.DurationHours, &course.CreatorID,
		&course.IsPublished, &course.PublishedAt, &course.IsFeatured, &course.CreatedAt, &course.UpdatedAt,
		&creator.UUID, &creator.Name, &creator.Email, &creator.Role, &creator.AvatarURL, &creator.Bio,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	course.Creator = &creator
	return &course, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := squirrel.Insert("courses").
		Columns("uuid", "title", "description", "thumbnail_url", "category", "level",
			"price", "duration_hours", "creator_id", "is_published", "is_featured").
		Values(course.UUID, course.Title, course.Description, course.ThumbnailURL, course.Category,
			course.Level, course.Price, course.DurationHours, course.CreatorID, course.IsPublished, course.IsFeatured).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByUUID retrieves a course with its creator by public UUID
func (r *CourseRepository) GetByUUID(ctx context.Context, uuid string) (*models.Course, error) {
	return r.getOne(ctx, squirrel.Eq{"c.uuid": uuid})
}

// GetByID retrieves a course with its creator by internal ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return r.getOne(ctx, squirrel.Eq{"c.id": id})
}

func (r *CourseRepository) getOne(ctx context.Context, pred squirrel.Eq) (*models.Course, error) {
	query := courseSelect().Where(pred)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return course, nil
}

// applyCatalogFilter adds the listing predicates, combined with AND
// semantics. The published predicate is always present unless the caller
// may see the creator's drafts, so anonymous listings never leak them.
func applyCatalogFilter(query squirrel.SelectBuilder, filter *dto.CourseFilterRequest, includeDrafts bool) squirrel.SelectBuilder {
	if !includeDrafts {
		query = query.Where(squirrel.Eq{"c.is_published": true})
	}
	if filter.CreatorUUID != "" {
		query = query.Where(squirrel.Eq{"u.uuid": filter.CreatorUUID})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"c.category": filter.Category})
	}
	if filter.Level != "" {
		query = query.Where(squirrel.Eq{"c.level": filter.Level})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"c.title": pattern},
			squirrel.ILike{"c.description": pattern},
		})
	}
	if filter.Featured {
		query = query.Where(squirrel.Eq{"c.is_featured": true})
	}
	return query
}

// GetAll retrieves catalog courses with filtering, sorting and pagination.
// Sort orders carry an id tie-break so pages are stable across requests.
func (r *CourseRepository) GetAll(ctx context.Context, filter *dto.CourseFilterRequest, includeDrafts bool, page, perPage int) ([]models.Course, int64, error) {
	query := courseSelect().
		Column("(SELECT COUNT(1) FROM enrollments e WHERE e.course_id = c.id)").
		Column("(SELECT COUNT(1) FROM lessons l WHERE l.course_id = c.id)").
		Column("(SELECT COALESCE(ROUND(AVG(value)::numeric, 1), 0) FROM ratings rt WHERE rt.course_id = c.id)").
		Column("(SELECT COUNT(1) FROM ratings rt WHERE rt.course_id = c.id)").
		Column("COUNT(*) OVER()")

	query = applyCatalogFilter(query, filter, includeDrafts)

	switch filter.Sort {
	case "popular":
		query = query.OrderBy("(SELECT COUNT(1) FROM enrollments e WHERE e.course_id = c.id) DESC", "c.id DESC")
	case "rating":
		query = query.OrderBy("(SELECT COALESCE(AVG(value), 0) FROM ratings rt WHERE rt.course_id = c.id) DESC", "c.id DESC")
	default:
		query = query.OrderBy("c.created_at DESC", "c.id DESC")
	}

	offset, limit := helpers.CalculateOffsetLimit(page, perPage)
	query = query.Limit(uint64(limit)).Offset(offset)

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
		var stats models.CourseStats
		course, err := scanCourse(rows,
			&stats.TotalStudents, &stats.TotalLessons, &stats.AvgRating, &stats.TotalRatings, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		course.Stats = &stats
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error reading rows: %w", err)
	}

	return courses, total, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := squirrel.Update("courses").
		Set("title", course.Title).
		Set("description", course.Description).
		Set("thumbnail_url", course.ThumbnailURL).
		Set("category", course.Category).
		Set("level", course.Level).
		Set("price", course.Price).
		Set("duration_hours", course.DurationHours).
		Set("is_published", course.IsPublished).
		Set("published_at", course.PublishedAt).
		Set("is_featured", course.IsFeatured).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": course.ID}).
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
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course; lessons, enrollments and engagement rows
// go with it via ON DELETE CASCADE.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("courses").
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
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// GetStats aggregates enrollment, lesson and rating counters for a course
func (r *CourseRepository) GetStats(ctx context.Context, courseID int64) (*models.CourseStats, error) {
	query := squirrel.Select(
		"(SELECT COUNT(1) FROM enrollments WHERE course_id = $1)",
		"(SELECT COUNT(1) FROM lessons WHERE course_id = $1)",
		"(SELECT COALESCE(ROUND(AVG(value)::numeric, 1), 0) FROM ratings WHERE course_id = $1)",
		"(SELECT COUNT(1) FROM ratings WHERE course_id = $1)",
	)

	sql, _, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var stats models.CourseStats
	err = r.db.QueryRow(ctx, sql, courseID).Scan(
		&stats.TotalStudents,
		&stats.TotalLessons,
		&stats.AvgRating,
		&stats.TotalRatings,
	)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &stats, nil
}
