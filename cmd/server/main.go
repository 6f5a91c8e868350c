package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-cms/adapters/http"
	"github.com/khoahotran/portfolio-cms/adapters/media_storage"
	"github.com/khoahotran/portfolio-cms/adapters/persistence"
	"github.com/khoahotran/portfolio-cms/internal/application/service"
	authUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/auth"
	backupUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/backup"
	experienceUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/experience"
	mediaUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/media"
	profileUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/project"
	sectionUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/section"
	skillUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-cms/internal/config"
	"github.com/khoahotran/portfolio-cms/pkg/auth"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
	"github.com/khoahotran/portfolio-cms/pkg/metrics"
	"github.com/khoahotran/portfolio-cms/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio CMS API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-cms-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracer provider", err)
	}
	defer tracing.Shutdown(context.Background(), tp)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(reg)

	// Store and repository
	store, closeStore, err := persistence.OpenStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot open content store", err, zap.String("driver", cfg.Store.Driver))
	}
	defer closeStore()
	repo := persistence.NewDocumentRepo(store, appLogger, recorder)

	// Services
	var publisher service.EventPublisher = service.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka producer", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	} else {
		appLogger.Info("No Kafka brokers configured, content events are not published")
	}
	notifier := service.NewNotifier(publisher, recorder, appLogger)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	if cfg.Auth.Enabled && (cfg.Auth.JWTSecret == "" || cfg.Auth.PasswordHash == "") {
		appLogger.Fatal("Auth is enabled but jwt_secret or password_hash is missing", nil)
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(authUC.Admin{
		Username:     cfg.Auth.AdminUser,
		PasswordHash: cfg.Auth.PasswordHash,
	}, jwtSvc, appLogger)
	sectionUseCase := sectionUC.NewSectionUseCase(repo, notifier)
	profileUseCase := profileUC.NewProfileUseCase(repo, notifier)
	skillUseCase := skillUC.NewSkillUseCase(repo, notifier, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(repo, notifier, appLogger)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(repo, notifier)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(repo)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(repo, notifier)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(repo, notifier)
	feedUseCase := projectUC.NewFeedUseCase(repo, cfg.App.BaseURL, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Section:    httpAdapter.NewSectionHandler(sectionUseCase, appLogger),
		Profile:    httpAdapter.NewProfileHandler(profileUseCase),
		Skill:      httpAdapter.NewSkillHandler(skillUseCase, appLogger),
		Experience: httpAdapter.NewExperienceHandler(experienceUseCase, appLogger),
		Project: httpAdapter.NewProjectHandler(
			createProjectUseCase,
			listProjectsUseCase,
			updateProjectUseCase,
			deleteProjectUseCase,
			feedUseCase,
			appLogger,
		),
		Auth: httpAdapter.NewAuthHandler(loginUseCase),
	}

	if cfg.Cloudinary.CloudName != "" {
		uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize uploader", err)
		}
		handlers.Media = httpAdapter.NewMediaHandler(
			mediaUC.NewUploadMediaUseCase(uploader, appLogger),
			mediaUC.NewDeleteMediaUseCase(uploader, appLogger),
			backupUC.NewBackupUseCase(repo, uploader, appLogger),
			appLogger,
		)
	} else {
		appLogger.Info("Cloudinary not configured, media routes disabled")
	}

	router := httpAdapter.NewRouter(handlers, httpAdapter.RouterOptions{
		Logger:       appLogger,
		Metrics:      recorder,
		Gatherer:     reg,
		JWTService:   jwtSvc,
		AuthEnabled:  cfg.Auth.Enabled,
		WriteLimiter: httpAdapter.NewWriteLimiter(cfg.RateLimit.WritesPerSecond, cfg.RateLimit.Burst),
		MaxBodyBytes: cfg.App.MaxBodyBytes,
		StaticDir:    cfg.App.StaticDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
