//go:build integration

package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/pkg/apperrors"
)

// These tests exercise the constraint-backed invariants against a real
// database. Point TEST_DATABASE_URL at a migrated Postgres to run them:
//
//	go test -tags integration ./internal/app/repositories/

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func createTestUser(t *testing.T, pool *pgxpool.Pool, role models.RoleType) *models.User {
	t.Helper()
	user := &models.User{
		UUID:     uuid.NewString(),
		Name:     "Test User",
		Email:    uuid.NewString() + "@example.com",
		Password: "not-a-real-hash",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, NewUserRepository(pool).Create(context.Background(), user))
	t.Cleanup(func() {
		// cascades take the user's courses, enrollments and progress along
		_, _ = pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, user.ID)
	})
	return user
}

func createTestCourse(t *testing.T, pool *pgxpool.Pool, creator *models.User, published bool) *models.Course {
	t.Helper()
	course := &models.Course{
		UUID:        uuid.NewString(),
		Title:       "Test Course",
		Description: "integration fixture",
		Level:       models.LevelBeginner,
		CreatorID:   creator.ID,
		IsPublished: published,
	}
	require.NoError(t, NewCourseRepository(pool).Create(context.Background(), course))
	return course
}

func createTestLesson(t *testing.T, pool *pgxpool.Pool, course *models.Course) *models.Lesson {
	t.Helper()
	lesson := &models.Lesson{
		UUID:     uuid.NewString(),
		CourseID: course.ID,
		Title:    "Test Lesson",
	}
	require.NoError(t, NewLessonRepository(pool).Create(context.Background(), lesson))
	return lesson
}

func countRows(t *testing.T, pool *pgxpool.Pool, query string, args ...interface{}) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func TestEnrollmentDuplicateInsertTranslatesToConflict(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewEnrollmentRepository(pool)

	student := createTestUser(t, pool, models.RoleStudent)
	teacher := createTestUser(t, pool, models.RoleTeacher)
	course := createTestCourse(t, pool, teacher, true)

	first := &models.Enrollment{UserID: student.ID, CourseID: course.ID}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.Enrollment{UserID: student.ID, CourseID: course.ID}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

	rows := countRows(t, pool,
		`SELECT COUNT(1) FROM enrollments WHERE user_id = $1 AND course_id = $2`,
		student.ID, course.ID)
	assert.Equal(t, 1, rows)
}

func TestProgressCompletedNeverReverts(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewProgressRepository(pool)

	student := createTestUser(t, pool, models.RoleStudent)
	teacher := createTestUser(t, pool, models.RoleTeacher)
	course := createTestCourse(t, pool, teacher, true)
	lesson := createTestLesson(t, pool, course)

	done := &models.LessonProgress{
		UserID:    student.ID,
		LessonID:  lesson.ID,
		Completed: true,
		WatchTime: 60,
	}
	require.NoError(t, repo.Upsert(ctx, done))
	require.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)
	firstCompletedAt := *done.CompletedAt

	undo := &models.LessonProgress{
		UserID:    student.ID,
		LessonID:  lesson.ID,
		Completed: false,
		WatchTime: 30,
	}
	require.NoError(t, repo.Upsert(ctx, undo))

	assert.True(t, undo.Completed, "completed must not revert to false")
	require.NotNil(t, undo.CompletedAt)
	assert.True(t, firstCompletedAt.Equal(*undo.CompletedAt), "completion time keeps the first value")
	assert.Equal(t, 60, undo.WatchTime, "watch time never shrinks")

	rows := countRows(t, pool,
		`SELECT COUNT(1) FROM lesson_progress WHERE user_id = $1 AND lesson_id = $2`,
		student.ID, lesson.ID)
	assert.Equal(t, 1, rows)
}

func TestProgressWatchTimeOnlyGrows(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewProgressRepository(pool)

	student := createTestUser(t, pool, models.RoleStudent)
	teacher := createTestUser(t, pool, models.RoleTeacher)
	course := createTestCourse(t, pool, teacher, true)
	lesson := createTestLesson(t, pool, course)

	for _, step := range []struct {
		watch    int
		expected int
	}{
		{watch: 10, expected: 10},
		{watch: 45, expected: 45},
		{watch: 20, expected: 45},
	} {
		progress := &models.LessonProgress{
			UserID:    student.ID,
			LessonID:  lesson.ID,
			WatchTime: step.watch,
		}
		require.NoError(t, repo.Upsert(ctx, progress))
		assert.Equal(t, step.expected, progress.WatchTime)
	}
}

func TestRatingResubmissionReplacesSingleRow(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewRatingRepository(pool)

	student := createTestUser(t, pool, models.RoleStudent)
	teacher := createTestUser(t, pool, models.RoleTeacher)
	course := createTestCourse(t, pool, teacher, true)

	require.NoError(t, repo.Upsert(ctx, &models.Rating{
		CourseID: course.ID,
		UserID:   student.ID,
		Value:    5,
	}))

	comment := "changed my mind"
	require.NoError(t, repo.Upsert(ctx, &models.Rating{
		CourseID: course.ID,
		UserID:   student.ID,
		Value:    2,
		Comment:  &comment,
	}))

	rows := countRows(t, pool,
		`SELECT COUNT(1) FROM ratings WHERE course_id = $1 AND user_id = $2`,
		course.ID, student.ID)
	assert.Equal(t, 1, rows)

	var value int
	var stored *string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT value, comment FROM ratings WHERE course_id = $1 AND user_id = $2`,
		course.ID, student.ID).Scan(&value, &stored))
	assert.Equal(t, 2, value)
	require.NotNil(t, stored)
	assert.Equal(t, comment, *stored)
}

func TestRatingOutOfRangeRejectedByCheckConstraint(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewRatingRepository(pool)

	student := createTestUser(t, pool, models.RoleStudent)
	teacher := createTestUser(t, pool, models.RoleTeacher)
	course := createTestCourse(t, pool, teacher, true)

	err := repo.Upsert(ctx, &models.Rating{
		CourseID: course.ID,
		UserID:   student.ID,
		Value:    6,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRatingValue)
}
