package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/brightup/admin-gateway/api/swagger"
	"github.com/brightup/admin-gateway/internal/handler"
	"github.com/brightup/admin-gateway/internal/middleware"
	"github.com/brightup/admin-gateway/internal/repository"
	"github.com/brightup/admin-gateway/internal/service"
	"github.com/brightup/admin-gateway/internal/session"
	"github.com/brightup/admin-gateway/internal/upstream"
	"github.com/brightup/admin-gateway/pkg/cache"
	"github.com/brightup/admin-gateway/pkg/config"
	"github.com/brightup/admin-gateway/pkg/logger"
	corsmiddleware "github.com/brightup/admin-gateway/pkg/middleware/cors"
	reqidmiddleware "github.com/brightup/admin-gateway/pkg/middleware/requestid"
)

// @title BrightUp Admin Gateway
// @version 0.1.0
// @description Session-holding gateway between the back-office admin UI and the core training-management API
// @BasePath /
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

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}
	defer redisClient.Close() //nolint:errcheck

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	sessionStore := session.NewStore(session.NewRedisKV(redisClient), cfg.Session.TTL, logr)

	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Overview.CacheTTL, logr, true)

	client := upstream.New(cfg.Upstream, logr, metricsSvc)

	authSvc := service.NewAuthService(client, sessionStore, validate, logr)
	overviewSvc := service.NewOverviewService(client, cacheSvc, validate, logr, cfg.Overview.CacheTTL)

	routes := handler.Routes{
		Auth:      handler.NewAuthHandler(authSvc),
		Users:     handler.NewUserHandler(client, validate),
		Students:  handler.NewStudentHandler(client, validate),
		Syllabi:   handler.NewSyllabusHandler(client, validate),
		Batches:   handler.NewBatchHandler(client, validate),
		Schedules: handler.NewScheduleHandler(client, validate),
		Mappings:  handler.NewMappingHandler(client, validate),
		Overview:  handler.NewOverviewHandler(overviewSvc),
		Guard:     middleware.SessionGuard(sessionStore),
	}
	if cfg.Dashboard.Enabled {
		routes.Dashboard = handler.NewDashboardHandler(service.NewDashboardService(client, logr))
	}
	if cfg.Exports.Enabled {
		routes.Exports = handler.NewExportHandler(service.NewExportService(client, logr))
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes.Register(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("gateway starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("gateway failed", "error", err)
	}
}
