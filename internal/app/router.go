package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.POST("/user/avatar/upload", c.user.UploadAvatar)

	// Courses and lectures
	rg.GET("/courses", c.course.ListCourses)
	rg.GET("/courses/:id/lectures", c.course.ListLectures)
	rg.GET("/courses/:id/progress", c.progress.CourseProgress)
	rg.GET("/courses/:id/quizzes", c.quiz.ListCourseQuizzes)

	// Lecture actions
	rg.POST("/lectures/:id/complete", c.progress.CompleteLecture)
	rg.POST("/lectures/:id/attend", c.attendance.Attend)
	rg.GET("/lectures/:id/quiz", c.quiz.GetLectureQuiz)

	// Quizzes and submissions
	rg.GET("/quizzes/:id", c.quiz.GetQuiz)
	rg.POST("/quizzes/:id/submissions", c.submission.Submit)
	rg.GET("/quizzes/:id/submissions/mine", c.submission.Result)

	// Leaderboard
	rg.GET("/leaderboard", c.leaderboard.Leaderboard)

	// Announcements and notifications
	rg.GET("/announcements", c.announcement.List)
	rg.GET("/announcements/next-schedule", c.announcement.NextSchedule)
	rg.GET("/notifications", c.notification.Feed)
	rg.POST("/notifications/:id/read", c.notification.MarkRead)
	rg.POST("/notifications/read-all", c.notification.MarkAllRead)

	// Votes
	rg.POST("/votes", c.vote.Cast)
	rg.GET("/votes", c.vote.Summary)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/dashboard", c.dashboard.Stats)

		admin.GET("/users", c.user.ListUsers)
		admin.PUT("/users/:id/role", c.user.UpdateRole)

		admin.POST("/courses", c.course.CreateCourse)
		admin.PUT("/courses/:id", c.course.UpdateCourse)
		admin.DELETE("/courses/:id", c.course.DeleteCourse)
		admin.POST("/courses/:id/lectures", c.course.CreateLecture)
		admin.POST("/lectures/:id/media", c.course.UploadLectureMedia)

		admin.POST("/courses/:id/quizzes", c.quiz.CreateQuiz)
		admin.POST("/quizzes/:id/questions", c.quiz.AddQuestion)

		admin.POST("/announcements", c.announcement.Create)
		admin.POST("/announcements/:id/notify", c.announcement.Notify)
		admin.PUT("/announcements/:id", c.announcement.Update)
		admin.DELETE("/announcements/:id", c.announcement.Delete)
	}
}
