package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/haritzismaildev/smart-learning-sub001/internal/config"
	"github.com/haritzismaildev/smart-learning-sub001/internal/controller"
	"github.com/haritzismaildev/smart-learning-sub001/internal/repository"
	"github.com/haritzismaildev/smart-learning-sub001/internal/service"
	"github.com/haritzismaildev/smart-learning-sub001/pkg/configwatcher"
	"github.com/haritzismaildev/smart-learning-sub001/pkg/database"
	"github.com/haritzismaildev/smart-learning-sub001/pkg/logger"
	"github.com/haritzismaildev/smart-learning-sub001/pkg/monitoring"
	"github.com/haritzismaildev/smart-learning-sub001/pkg/security"
	"github.com/haritzismaildev/smart-learning-sub001/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	session     *repository.SessionRepository
	attempt     *repository.AttemptRepository
	progress    *repository.ProgressRepository
	activityLog *repository.ActivityLogRepository
}

type services struct {
	authz      *service.AuthzService
	audit      *service.AuditService
	session    *service.SessionService
	attempt    *service.AttemptService
	statistics *service.StatisticsService
}

type controllers struct {
	session    *controller.SessionController
	attempt    *controller.AttemptController
	statistics *controller.StatisticsController
	admin      *controller.AdminController
	health     *controller.HealthController
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		session:     repository.NewSessionRepository(db),
		attempt:     repository.NewAttemptRepository(db),
		progress:    repository.NewProgressRepository(db),
		activityLog: repository.NewActivityLogRepository(db),
	}
}

func initServices(repos *repositories, rdb *redis.Client) *services {
	s := &services{}

	s.authz = service.NewAuthzService(repos.user)
	s.audit = service.NewAuditService(repos.activityLog)
	s.session = service.NewSessionService(repos.session, s.authz, s.audit)
	s.attempt = service.NewAttemptService(repos.attempt, repos.session, s.authz)
	s.statistics = service.NewStatisticsService(repos.progress, repos.session, repos.user, s.authz, s.audit, rdb)

	return s
}

func initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		session:    controller.NewSessionController(s.session, s.statistics),
		attempt:    controller.NewAttemptController(s.attempt),
		statistics: controller.NewStatisticsController(s.statistics),
		admin:      controller.NewAdminController(s.session),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The cache is an optimization; statistics fall back to the store.
		logger.Log.Warn("Failed to initialize redis, statistics cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := initRepositories(db)
	services := initServices(repos, rdb)
	controllers := initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("smart-learning", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	// The auth middleware reads the secret through app.Config on every
	// request, so a rotated JWT secret takes effect without a restart.
	// SetJWT publishes the new section safely to in-flight requests.
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		app.Config.SetJWT(newCfg.JWT)
		logger.Log.Info("Config reloaded")
	})

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
