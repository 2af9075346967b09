package models

import "time"

// Comment belongs to a course and an author. ParentID links a reply to its
// top-level comment; the reply tree is rebuilt by lookup, one level deep.
type Comment struct {
	ID        int64     `json:"-" db:"id"`
	UUID      string    `json:"uuid" db:"uuid"`
	CourseID  int64     `json:"-" db:"course_id"`
	AuthorID  int64     `json:"-" db:"author_id"`
	ParentID  *int64    `json:"-" db:"parent_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Related entities
	Author  *User     `json:"author,omitempty"`
	Replies []Comment `json:"replies"`
}
