package models

import "time"

// Enrollment records that a user has access to a course's non-free lessons.
// The (user_id, course_id) pair is unique at the storage layer; there is no
// un-enroll operation.
type Enrollment struct {
	ID          int64      `json:"-" db:"id"`
	UserID      int64      `json:"-" db:"user_id"`
	CourseID    int64      `json:"-" db:"course_id"`
	EnrolledAt  time.Time  `json:"enrolled_at" db:"enrolled_at"`
	Progress    float64    `json:"progress" db:"progress"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`

	// Related entities
	User   *User   `json:"user,omitempty"`
	Course *Course `json:"course,omitempty"`
}
