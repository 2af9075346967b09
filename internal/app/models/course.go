package models

import "time"

// Course represents a published or draft course owned by a creator.
type Course struct {
	ID            int64       `json:"-" db:"id"`
	UUID          string      `json:"uuid" db:"uuid"`
	Title         string      `json:"title" db:"title"`
	Description   string      `json:"description" db:"description"`
	ThumbnailURL  *string     `json:"thumbnail_url,omitempty" db:"thumbnail_url"`
	Category      *string     `json:"category,omitempty" db:"category"`
	Level         CourseLevel `json:"level" db:"level"`
	Price         float64     `json:"price" db:"price"`
	DurationHours int         `json:"duration_hours" db:"duration_hours"`
	CreatorID     int64       `json:"-" db:"creator_id"`
	IsPublished   bool        `json:"is_published" db:"is_published"`
	PublishedAt   *time.Time  `json:"published_at,omitempty" db:"published_at"`
	IsFeatured    bool        `json:"is_featured" db:"is_featured"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`

	// Related entities
	Creator *User        `json:"creator,omitempty"`
	Lessons []Lesson     `json:"lessons,omitempty"`
	Stats   *CourseStats `json:"stats,omitempty"`
}

// CourseStats holds aggregates recomputed from live rows on every read.
type CourseStats struct {
	TotalStudents int     `json:"total_students"`
	TotalLessons  int     `json:"total_lessons"`
	AvgRating     float64 `json:"avg_rating"`
	TotalRatings  int     `json:"total_ratings"`
}
