package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/coursehub/internal/app/controllers"
	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	lessonController *controllers.LessonController,
	progressController *controllers.ProgressController,
	engagementController *controllers.EngagementController,
	analyticsController *controllers.AnalyticsController,
	materialController *controllers.MaterialController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public catalog routes ---
	// Optional auth so owners see their drafts and enrolled users see
	// gated lesson content.
	catalog := v1.Group("")
	catalog.Use(authMiddleware.OptionalJWTAuth())
	{
		catalog.GET("/courses", courseController.GetAll)
		catalog.GET("/courses/:uuid", courseController.Get)
		catalog.GET("/courses/:uuid/lessons", lessonController.GetByCourse)
		catalog.GET("/courses/:uuid/comments", engagementController.GetComments)
		catalog.GET("/courses/:uuid/ratings", engagementController.GetRatings)
		catalog.GET("/courses/:uuid/materials", materialController.GetCourseMaterials)
		catalog.GET("/lessons/:uuid", lessonController.Get)
		catalog.GET("/users/:uuid", userController.GetUser)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		me := authenticated.Group("/users/me")
		{
			me.GET("", userController.GetProfile)
			me.PUT("", userController.UpdateProfile)
			me.GET("/courses", userController.GetEnrolledCourses)
			me.POST("/avatar", materialController.UploadAvatar)
		}

		courses := authenticated.Group("/courses")
		{
			courses.POST("/:uuid/enroll", courseController.Enroll)
			courses.GET("/:uuid/progress", progressController.GetCourseProgress)
			courses.POST("/:uuid/comments", engagementController.AddComment)
			courses.POST("/:uuid/ratings", engagementController.RateCourse)
		}

		lessons := authenticated.Group("/lessons")
		{
			lessons.POST("/:uuid/complete", progressController.CompleteLesson)
			lessons.POST("/:uuid/progress", progressController.RecordProgress)
		}

		authenticated.DELETE("/comments/:uuid", engagementController.DeleteComment)
		authenticated.POST("/upload", materialController.Upload)

		// Course authoring requires the teacher or admin role
		authoring := authenticated.Group("")
		authoring.Use(authMiddleware.RoleRequired(models.RoleTeacher, models.RoleAdmin))
		{
			authoring.POST("/courses", courseController.Create)
			authoring.PUT("/courses/:uuid", courseController.Update)
			authoring.DELETE("/courses/:uuid", courseController.Delete)
			authoring.POST("/courses/:uuid/publish", courseController.Publish)
			authoring.POST("/courses/:uuid/lessons", lessonController.Create)
			authoring.PUT("/lessons/:uuid", lessonController.Update)
			authoring.DELETE("/lessons/:uuid", lessonController.Delete)
			authoring.POST("/courses/:uuid/materials", materialController.UploadCourseMaterial)
			authoring.DELETE("/materials/:uuid", materialController.DeleteMaterial)
			authoring.GET("/analytics/dashboard", analyticsController.GetDashboard)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
