package dto

// DashboardSummary aggregates platform-wide counters for the
// teacher/admin dashboard.
type DashboardSummary struct {
	TotalCourses     int     `json:"total_courses"`
	TotalStudents    int     `json:"total_students"`
	TotalLessons     int     `json:"total_lessons"`
	TotalRatings     int     `json:"total_ratings"`
	AverageRating    float64 `json:"average_rating"`
	TotalEnrollments int     `json:"total_enrollments"`
}

// CourseActivity is a per-course row on the dashboard.
type CourseActivity struct {
	CourseUUID   string  `json:"course_uuid"`
	Title        string  `json:"title"`
	Enrollments  int     `json:"enrollments"`
	Completions  int     `json:"completions"`
	AvgRating    float64 `json:"avg_rating"`
	RecentEvents int     `json:"recent_events"`
}

type DashboardResponse struct {
	Summary DashboardSummary `json:"summary"`
	Courses []CourseActivity `json:"courses"`
}
