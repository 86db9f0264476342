package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/controller"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/service"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"
	"learnhub_backend/pkg/security"
	"learnhub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user         *repository.UserRepository
	course       *repository.CourseRepository
	lecture      *repository.LectureRepository
	completion   *repository.CompletionRepository
	attendance   *repository.AttendanceRepository
	quiz         *repository.QuizRepository
	submission   *repository.SubmissionRepository
	vote         *repository.VoteRepository
	announcement *repository.AnnouncementRepository
	notification *repository.NotificationRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	storage      *service.StorageService
	course       *service.CourseService
	progress     *service.ProgressService
	quiz         *service.QuizService
	submission   *service.SubmissionService
	attendance   *service.AttendanceService
	leaderboard  *service.LeaderboardService
	announcement *service.AnnouncementService
	notification *service.NotificationService
	vote         *service.VoteService
	dashboard    *service.DashboardService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	course       *controller.CourseController
	progress     *controller.ProgressController
	quiz         *controller.QuizController
	submission   *controller.SubmissionController
	attendance   *controller.AttendanceController
	leaderboard  *controller.LeaderboardController
	announcement *controller.AnnouncementController
	notification *controller.NotificationController
	vote         *controller.VoteController
	dashboard    *controller.DashboardController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		course:       repository.NewCourseRepository(db),
		lecture:      repository.NewLectureRepository(db),
		completion:   repository.NewCompletionRepository(db),
		attendance:   repository.NewAttendanceRepository(db),
		quiz:         repository.NewQuizRepository(db),
		submission:   repository.NewSubmissionRepository(db),
		vote:         repository.NewVoteRepository(db),
		announcement: repository.NewAnnouncementRepository(db),
		notification: repository.NewNotificationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.course = service.NewCourseService(repos.course, repos.lecture, db)
	s.progress = service.NewProgressService(repos.course, repos.lecture, repos.completion)
	s.quiz = service.NewQuizService(repos.quiz, repos.lecture, repos.completion)
	s.leaderboard = service.NewLeaderboardService(
		repos.user,
		repos.attendance,
		repos.submission,
		cfg.Leaderboard.CountDistinctLecturesOnly,
		rdb,
		cfg.Leaderboard.CacheTTL(),
	)
	s.submission = service.NewSubmissionService(repos.quiz, repos.submission, s.quiz, s.leaderboard)
	s.attendance = service.NewAttendanceService(repos.attendance, repos.lecture, s.leaderboard)
	s.announcement = service.NewAnnouncementService(repos.announcement, repos.notification, repos.user)
	s.notification = service.NewNotificationService(repos.notification)
	s.vote = service.NewVoteService(repos.vote)
	s.dashboard = service.NewDashboardService(repos.user, repos.course, repos.lecture, repos.attendance, repos.submission)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user, s.storage),
		course:       controller.NewCourseController(s.course, s.storage),
		progress:     controller.NewProgressController(s.progress),
		quiz:         controller.NewQuizController(s.quiz),
		submission:   controller.NewSubmissionController(s.submission),
		attendance:   controller.NewAttendanceController(s.attendance),
		leaderboard:  controller.NewLeaderboardController(s.leaderboard),
		announcement: controller.NewAnnouncementController(s.announcement),
		notification: controller.NewNotificationController(s.notification),
		vote:         controller.NewVoteController(s.vote),
		dashboard:    controller.NewDashboardController(s.dashboard),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks deactivates announcements whose scheduled time
// has passed, once a minute.
func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			if err := s.announcement.DeactivatePast(); err != nil {
				logger.Log.Error("announcement deactivation error", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learnhub", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
