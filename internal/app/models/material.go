package models

import "time"

// Material is a downloadable file attached to a course or a lesson.
type Material struct {
	ID        int64     `json:"-" db:"id"`
	UUID      string    `json:"uuid" db:"uuid"`
	CourseID  *int64    `json:"-" db:"course_id"`
	LessonID  *int64    `json:"-" db:"lesson_id"`
	Title     string    `json:"title" db:"title"`
	FileName  string    `json:"file_name" db:"file_name"`
	FileURL   string    `json:"file_url" db:"file_url"`
	FileType  string    `json:"file_type" db:"file_type"`
	FileSize  int64     `json:"file_size" db:"file_size"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
