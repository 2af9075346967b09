package models

import "time"

// Lesson belongs to exactly one course. OrderIndex is assigned as max+1 on
// insert and never renumbered, so gaps can remain after deletes.
type Lesson struct {
	ID            int64     `json:"-" db:"id"`
	UUID          string    `json:"uuid" db:"uuid"`
	CourseID      int64     `json:"-" db:"course_id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	Content       string    `json:"content" db:"content"`
	VideoURL      *string   `json:"video_url,omitempty" db:"video_url"`
	VideoDuration int       `json:"video_duration" db:"video_duration"`
	OrderIndex    int       `json:"order_index" db:"order_index"`
	IsFree        bool      `json:"is_free" db:"is_free"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
