package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/app/models/dto"
)

// AnalyticsRepository handles database operations for analytics events
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// RecordEvent stores a single analytics event
func (r *AnalyticsRepository) RecordEvent(ctx context.Context, event *models.AnalyticsEvent) error {
	var metadata []byte
	if event.Metadata != nil {
		var err error
		metadata, err = json.Marshal(event.Metadata)
		if err != nil {
			return fmt.Errorf("error encoding metadata: %w", err)
		}
	}

	query := squirrel.Insert("analytics_events").
		Columns("event_type", "user_id", "course_id", "lesson_id", "metadata").
		Values(event.EventType, event.UserID, event.CourseID, event.LessonID, metadata).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetSummary aggregates platform-wide counters. A non-nil creatorID
// restricts every counter to that creator's courses.
func (r *AnalyticsRepository) GetSummary(ctx context.Context, creatorID *int64) (*dto.DashboardSummary, error) {
	courseFilter := ""
	var args []interface{}
	if creatorID != nil {
		courseFilter = " WHERE creator_id = $1"
		args = append(args, *creatorID)
	}

	sql := fmt.Sprintf(`SELECT
		(SELECT COUNT(1) FROM courses%[1]s),
		(SELECT COUNT(DISTINCT e.user_id) FROM enrollments e JOIN courses c ON c.id = e.course_id%[2]s),
		(SELECT COUNT(1) FROM lessons l JOIN courses c ON c.id = l.course_id%[2]s),
		(SELECT COUNT(1) FROM ratings r JOIN courses c ON c.id = r.course_id%[2]s),
		(SELECT COALESCE(ROUND(AVG(r.value)::numeric, 1), 0) FROM ratings r JOIN courses c ON c.id = r.course_id%[2]s),
		(SELECT COUNT(1) FROM enrollments e JOIN courses c ON c.id = e.course_id%[2]s)`,
		courseFilter, joinedCourseFilter(creatorID))

	var summary dto.DashboardSummary
	err := r.db.QueryRow(ctx, sql, args...).Scan(
		&summary.TotalCourses,
		&summary.TotalStudents,
		&summary.TotalLessons,
		&summary.TotalRatings,
		&summary.AverageRating,
		&summary.TotalEnrollments,
	)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &summary, nil
}

func joinedCourseFilter(creatorID *int64) string {
	if creatorID == nil {
		return ""
	}
	return " WHERE c.creator_id = $1"
}

// GetCourseActivity lists per-course engagement rows for the dashboard.
// Recent events cover the last 30 days.
func (r *AnalyticsRepository) GetCourseActivity(ctx context.Context, creatorID *int64) ([]dto.CourseActivity, error) {
	query := squirrel.Select(
		"c.uuid",
		"c.title",
		"(SELECT COUNT(1) FROM enrollments e WHERE e.course_id = c.id)",
		"(SELECT COUNT(1) FROM enrollments e WHERE e.course_id = c.id AND e.completed_at IS NOT NULL)",
		"(SELECT COALESCE(ROUND(AVG(value)::numeric, 1), 0) FROM ratings r WHERE r.course_id = c.id)",
		"(SELECT COUNT(1) FROM analytics_events ae WHERE ae.course_id = c.id AND ae.occurred_at > NOW() - INTERVAL '30 days')",
	).
		From("courses c").
		OrderBy("c.created_at DESC", "c.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if creatorID != nil {
		query = query.Where(squirrel.Eq{"c.creator_id": *creatorID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var activity []dto.CourseActivity
	for rows.Next() {
		var row dto.CourseActivity
		err := rows.Scan(&row.CourseUUID, &row.Title, &row.Enrollments,
			&row.Completions, &row.AvgRating, &row.RecentEvents)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		activity = append(activity, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return activity, nil
}
