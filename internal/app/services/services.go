package services

// Services defined in this package:
// - AuthService: registration, login and token issuance
// - UserService: profile management and enrollment listing
// - CourseService: course lifecycle, catalog queries and enrollment
// - LessonService: lesson management with the content access gate
// - ProgressService: per-lesson completion and course percentages
// - EngagementService: comments and ratings
// - AnalyticsService: event aggregation for the dashboard
// - MaterialService: file uploads and course materials
