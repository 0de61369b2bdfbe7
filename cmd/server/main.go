package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	auditapp "github.com/rescue-ops/backend/internal/application/audit"
	identityapp "github.com/rescue-ops/backend/internal/application/identity"
	incidentapp "github.com/rescue-ops/backend/internal/application/incident"
	messagingapp "github.com/rescue-ops/backend/internal/application/messaging"
	teamsapp "github.com/rescue-ops/backend/internal/application/teams"
	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/infrastructure/config"
	"github.com/rescue-ops/backend/internal/infrastructure/logger"
	"github.com/rescue-ops/backend/internal/infrastructure/persistence"
	"github.com/rescue-ops/backend/internal/infrastructure/remote"
	"github.com/rescue-ops/backend/internal/infrastructure/telemetry"
	"github.com/rescue-ops/backend/internal/interfaces/http/handler"
	"github.com/rescue-ops/backend/internal/interfaces/http/middleware"
	"github.com/rescue-ops/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting rescue backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	// Tracing
	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Log export: entries keep going to the configured output and are
	// also shipped to the collector.
	lp, err := telemetry.NewLoggerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := lp.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down logger provider", zap.Error(err))
		}
	}()
	log = telemetry.Bridge(log, lp, logger.ParseLevel(cfg.Log.Level))

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.NewMetrics(registry)
	httpMetrics := middleware.NewHTTPMetrics(registry)

	// Database with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:    cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL: cfg.Telemetry.DBLogFullSQL,
		DBName:     cfg.Database.DBName,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Remote owners
	clients, err := remote.NewClients(remote.Endpoints{
		Status:  cfg.Remote.StatusURL,
		Address: cfg.Remote.AddressURL,
		Photo:   cfg.Remote.PhotoURL,
		User:    cfg.Remote.UserURL,
		Team:    cfg.Remote.TeamURL,
		Citizen: cfg.Remote.CitizenURL,
	}, cfg.Remote.Timeout, log, metrics)
	if err != nil {
		log.Fatal("Failed to create remote clients", zap.Error(err))
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	userTypeRepo := persistence.NewGormUserTypeRepository(db.DB)
	teamRepo := persistence.NewGormTeamRepository(db.DB)
	teamTypeRepo := persistence.NewGormTeamTypeRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	incidentRepo := persistence.NewGormIncidentRepository(db.DB)
	messageRepo := persistence.NewGormMessageRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)

	// Reference validation: local kinds resolve against the stores, remote
	// kinds against their owners.
	validator := reference.NewValidator(map[reference.Kind]reference.Resolver{
		reference.KindStatus:     clients.Status,
		reference.KindAddress:    clients.Address,
		reference.KindPhoto:      clients.Photo,
		reference.KindCitizen:    clients.Citizen,
		reference.KindRemoteUser: clients.User,
		reference.KindRemoteTeam: clients.Team,
		reference.KindUserType:   reference.StoreResolver("user type", userTypeRepo.ExistsByID),
		reference.KindTeamType:   reference.StoreResolver("team type", teamTypeRepo.ExistsByID),
		reference.KindCompany:    reference.StoreResolver("company", companyRepo.ExistsByID),
		reference.KindTeam:       reference.StoreResolver("team", teamRepo.ExistsByID),
		reference.KindUser:       reference.StoreResolver("user", userRepo.ExistsByID),
		reference.KindMessage:    reference.StoreResolver("message", messageRepo.ExistsByID),
	})

	txScope := persistence.NewGormTransactionScope(db.DB)
	recorder := auditapp.NewRecorder(auditRepo, auditapp.WithObserver(metrics))

	// Application services
	userTypeService := identityapp.NewUserTypeService(userTypeRepo, log)
	userService := identityapp.NewUserService(userRepo, validator, metrics, txScope, recorder, log)
	teamTypeService := teamsapp.NewTeamTypeService(teamTypeRepo, log)
	companyService := teamsapp.NewCompanyService(companyRepo, validator, metrics, log)
	teamService := teamsapp.NewTeamService(teamRepo, validator, metrics, txScope, recorder, log)
	incidentService := incidentapp.NewService(incidentRepo, validator, metrics, txScope, recorder, log)
	messageService := messagingapp.NewMessageService(messageRepo, validator, metrics, txScope, recorder, log)
	notificationService := messagingapp.NewNotificationService(notificationRepo, validator, metrics, log)
	auditService := auditapp.NewService(auditRepo, map[audit.SubjectKind]auditapp.SubjectLookup{
		audit.SubjectUser:     userRepo.ExistsByID,
		audit.SubjectTeam:     teamRepo.ExistsByID,
		audit.SubjectMessage:  messageRepo.ExistsByID,
		audit.SubjectIncident: incidentRepo.ExistsByID,
	}, log)

	// Handlers
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, map[string]handler.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	})
	handlers := router.Handlers{
		System:        systemHandler,
		Users:         handler.NewUserHandler(userService),
		UserTypes:     handler.NewUserTypeHandler(userTypeService),
		Teams:         handler.NewTeamHandler(teamService),
		TeamTypes:     handler.NewTeamTypeHandler(teamTypeService),
		Companies:     handler.NewCompanyHandler(companyService),
		Incidents:     handler.NewIncidentHandler(incidentService),
		Messages:      handler.NewMessageHandler(messageService),
		Notifications: handler.NewNotificationHandler(notificationService),
		Audit:         handler.NewAuditHandler(auditService),
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	cors := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(
		middleware.RequestID(),
		middleware.Tracing(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     tp.IsEnabled(),
		}),
		middleware.SpanEnricher(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		httpMetrics.Middleware(),
		middleware.CORSWithConfig(cors),
		middleware.BodyLimit(cfg.HTTP.MaxBodyBytes),
	)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	for _, group := range router.APIGroups(handlers) {
		r.Register(group)
	}
	r.Setup()
	router.RegisterOperational(engine, systemHandler, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}
