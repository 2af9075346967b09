package models

import "time"

// LessonProgress is the per-(user, lesson) completion record. At most one row
// exists per pair; updates go through an upsert. Completed never transitions
// back to false once set.
type LessonProgress struct {
	ID          int64      `json:"-" db:"id"`
	UserID      int64      `json:"-" db:"user_id"`
	LessonID    int64      `json:"-" db:"lesson_id"`
	LessonUUID  string     `json:"lesson_uuid" db:"lesson_uuid"`
	Completed   bool       `json:"completed" db:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	WatchTime   int        `json:"watch_time" db:"watch_time"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// CourseProgress is the aggregate derived from LessonProgress rows for one
// user across one course's lessons.
type CourseProgress struct {
	CourseUUID         string           `json:"course_uuid"`
	TotalLessons       int              `json:"total_lessons"`
	CompletedLessons   int              `json:"completed_lessons"`
	ProgressPercentage float64          `json:"progress_percentage"`
	LessonProgress     []LessonProgress `json:"lesson_progress"`
}
