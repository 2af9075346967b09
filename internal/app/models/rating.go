package models

import "time"

// Rating is one user's star rating of a course. The (course_id, user_id) pair
// is unique; a second submission overwrites the first.
type Rating struct {
	ID        int64     `json:"-" db:"id"`
	CourseID  int64     `json:"-" db:"course_id"`
	UserID    int64     `json:"-" db:"user_id"`
	Value     int       `json:"value" db:"value"`
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Related entities
	Author *User `json:"author,omitempty"`
}
