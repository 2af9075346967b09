package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	LessonRepository     *LessonRepository
	EnrollmentRepository *EnrollmentRepository
	ProgressRepository   *ProgressRepository
	RatingRepository     *RatingRepository
	CommentRepository    *CommentRepository
	MaterialRepository   *MaterialRepository
	AnalyticsRepository  *AnalyticsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		CourseRepository:     NewCourseRepository(db),
		LessonRepository:     NewLessonRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		ProgressRepository:   NewProgressRepository(db),
		RatingRepository:     NewRatingRepository(db),
		CommentRepository:    NewCommentRepository(db),
		MaterialRepository:   NewMaterialRepository(db),
		AnalyticsRepository:  NewAnalyticsRepository(db),
	}
}
