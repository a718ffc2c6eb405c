package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	redislib "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edusuite/escolar-api/api/swagger"
	"github.com/edusuite/escolar-api/internal/handler"
	"github.com/edusuite/escolar-api/internal/middleware"
	"github.com/edusuite/escolar-api/internal/models"
	"github.com/edusuite/escolar-api/internal/repository"
	"github.com/edusuite/escolar-api/internal/service"
	"github.com/edusuite/escolar-api/internal/store"
	"github.com/edusuite/escolar-api/internal/store/state"
	"github.com/edusuite/escolar-api/pkg/cache"
	"github.com/edusuite/escolar-api/pkg/config"
	"github.com/edusuite/escolar-api/pkg/genai"
	"github.com/edusuite/escolar-api/pkg/logger"
	corsmiddleware "github.com/edusuite/escolar-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edusuite/escolar-api/pkg/middleware/requestid"
	"github.com/edusuite/escolar-api/pkg/storage"
)

// @title Escolar API
// @version 0.1.0
// @description School administration backend: roster, attendance roll call, dashboard and assistant summaries
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	validate := validator.New()
	metrics := service.NewMetricsService()

	var redisClient *redislib.Client
	if client, err := cache.NewRedis(cfg.Redis); err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
	} else {
		redisClient = client
		defer redisClient.Close() //nolint:errcheck
	}

	var stateStore state.Store
	switch cfg.State.Backend {
	case config.StateBackendFile:
		fs, err := state.NewFileStore(cfg.State.Dir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init file state store", "dir", cfg.State.Dir, "error", err)
		}
		stateStore = fs
	case config.StateBackendRedis:
		if redisClient == nil {
			logr.Sugar().Fatalw("state backend is redis but redis is unreachable")
		}
		stateStore = state.NewRedisStore(redisClient)
	default:
		stateStore = state.Noop{}
	}

	st := store.New()
	st.Seed()

	schoolCfg := models.SchoolConfig{
		SchoolName:   cfg.School.Name,
		PrimaryColor: models.ThemeColor(cfg.School.PrimaryColor),
		WelcomeMsg:   cfg.School.WelcomeMsg,
		LogoURL:      cfg.School.LogoURL,
	}
	if snap, err := stateStore.Load(ctx); err == nil {
		st.ReplaceStudents(snap.Students)
		schoolCfg = snap.Config
		logr.Sugar().Infow("state restored", "backend", cfg.State.Backend, "students", len(snap.Students))
	} else if !errors.Is(err, state.ErrNoState) {
		logr.Sugar().Warnw("failed to load persisted state, using seed data", "error", err)
	}

	loc, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		logr.Sugar().Warnw("invalid attendance timezone, falling back to local", "timezone", cfg.Attendance.Timezone)
		loc = time.Local
	}

	var cacheRepo service.CacheRepository
	if redisClient != nil {
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, 5*time.Minute, logr, redisClient != nil)

	configSvc := service.NewConfigService(schoolCfg, st, stateStore, validate, logr)
	studentSvc := service.NewStudentService(st, configSvc, validate, logr)
	attendanceSvc := service.NewAttendanceService(st, validate, logr, metrics, loc)
	sectionSvc := service.NewSectionService(st, validate, logr)
	groupSvc := service.NewGroupService(st, logr)
	teacherSvc := service.NewTeacherService(st, logr)
	dashboardSvc := service.NewDashboardService(st, cacheSvc, logr, cfg.Dashboard.CacheTTL)

	var generator service.TextGenerator
	if cfg.Assistant.Enabled && cfg.Assistant.APIKey != "" {
		gemini, err := genai.NewGemini(ctx, cfg.Assistant.APIKey, cfg.Assistant.Model)
		if err != nil {
			logr.Sugar().Warnw("assistant generator unavailable, summaries will use the fallback", "error", err)
		} else {
			generator = gemini
			defer gemini.Close() //nolint:errcheck
		}
	}
	assistantSvc := service.NewAssistantService(st, generator, cacheSvc, metrics, logr, cfg.Assistant.Timeout, cfg.Assistant.CacheTTL)

	studentHandler := handler.NewStudentHandler(studentSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	sectionHandler := handler.NewSectionHandler(sectionSvc)
	groupHandler := handler.NewGroupHandler(groupSvc, studentSvc)
	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	assistantHandler := handler.NewAssistantHandler(assistantSvc)
	configHandler := handler.NewConfigHandler(configSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Actor())
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/students", studentHandler.List)
		api.POST("/students", studentHandler.Enroll)
		api.GET("/students/:id", studentHandler.Get)
		api.DELETE("/students/:id", studentHandler.Withdraw)

		api.GET("/groups", groupHandler.List)
		api.GET("/groups/:id", groupHandler.Get)
		api.GET("/groups/:id/students", groupHandler.Students)
		api.GET("/groups/:id/rollcall", attendanceHandler.RollCall)
		api.GET("/groups/:id/attendance/count", attendanceHandler.PresentCount)

		api.POST("/attendance/toggle", attendanceHandler.Toggle)

		api.GET("/sections", sectionHandler.List)
		api.POST("/sections", sectionHandler.Create)
		api.DELETE("/sections/:id", sectionHandler.Delete)
		api.GET("/sections/:id/groups", sectionHandler.Groups)

		api.GET("/teachers", teacherHandler.List)

		api.GET("/dashboard/overview", dashboardHandler.Overview)
		api.GET("/assistant/summary", assistantHandler.Summary)

		api.GET("/config", configHandler.Get)
		api.PUT("/config", configHandler.Update)
		api.GET("/config/theme", configHandler.Theme)
	}

	if cfg.Exports.Enabled {
		localStorage, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init exports storage", "dir", cfg.Exports.StorageDir, "error", err)
		}
		exportSvc := service.NewExportService(st, localStorage, logr)
		exportHandler := handler.NewExportHandler(exportSvc)
		api.GET("/groups/:id/export/roster", exportHandler.Roster)
		api.GET("/groups/:id/export/rollcall", exportHandler.RollCall)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "state_backend", cfg.State.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
