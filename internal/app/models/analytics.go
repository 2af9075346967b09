package models

import "time"

// Analytics event types recorded by the platform.
const (
	EventUserRegistered  = "user_registered"
	EventUserLogin       = "user_login"
	EventCourseViewed    = "course_viewed"
	EventCourseCreated   = "course_created"
	EventCoursePublished = "course_published"
	EventCourseEnrolled  = "course_enrolled"
	EventLessonViewed    = "lesson_viewed"
	EventLessonCompleted = "lesson_completed"
)

// AnalyticsEvent is a best-effort audit record. Writing one never fails the
// request that produced it.
type AnalyticsEvent struct {
	ID         int64                  `json:"-" db:"id"`
	EventType  string                 `json:"event_type" db:"event_type"`
	UserID     *int64                 `json:"-" db:"user_id"`
	CourseID   *int64                 `json:"-" db:"course_id"`
	LessonID   *int64                 `json:"-" db:"lesson_id"`
	Metadata   map[string]interface{} `json:"metadata,omitempty" db:"metadata"`
	OccurredAt time.Time              `json:"occurred_at" db:"occurred_at"`
}
