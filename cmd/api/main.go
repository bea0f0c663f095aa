// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/kixi-backend/internal/account"
	"github.com/carterperez-dev/kixi-backend/internal/accountrole"
	"github.com/carterperez-dev/kixi-backend/internal/admin"
	"github.com/carterperez-dev/kixi-backend/internal/auth"
	"github.com/carterperez-dev/kixi-backend/internal/class"
	"github.com/carterperez-dev/kixi-backend/internal/config"
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/course"
	"github.com/carterperez-dev/kixi-backend/internal/health"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/metrics"
	"github.com/carterperez-dev/kixi-backend/internal/middleware"
	"github.com/carterperez-dev/kixi-backend/internal/migrations"
	"github.com/carterperez-dev/kixi-backend/internal/role"
	"github.com/carterperez-dev/kixi-backend/internal/schoolyear"
	"github.com/carterperez-dev/kixi-backend/internal/server"
	"github.com/carterperez-dev/kixi-backend/internal/session"
	"github.com/carterperez-dev/kixi-backend/internal/simulation"
	"github.com/carterperez-dev/kixi-backend/internal/term"
	"github.com/carterperez-dev/kixi-backend/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("failed to initialize telemetry", "error", err)
	} else if cfg.Otel.Enabled {
		logger.Info("OpenTelemetry tracer initialized",
			"endpoint", cfg.Otel.Endpoint,
		)
	}

	if cfg.Database.Migrate && cfg.Database.Driver != config.DriverMemory {
		version, migErr := migrations.Up(cfg.Database)
		if migErr != nil {
			return migErr
		}
		logger.Info("database migrated", "version", version)
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"driver", cfg.Database.Driver,
		"max_open_conns", cfg.Database.MaxOpenConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redis.Enabled() {
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	} else {
		logger.Info("redis disabled, rate limiting is per process")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(strings.ReplaceAll(cfg.App.Name, "-", "_"))
	}

	opts := lifecycle.Options{
		Logger: logger,
		Tracer: telemetry.Tracer("lifecycle"),
		Retry: lifecycle.RetryPolicy{
			Attempts:        cfg.Lifecycle.RetryAttempts,
			InitialInterval: cfg.Lifecycle.RetryInitialInterval,
		},
	}
	if m != nil {
		opts.Recorder = m
	}

	hasher, err := core.NewPasswordHasher(core.DefaultArgon2Params)
	if err != nil {
		return err
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	accountSvc := account.NewService(account.NewStore(db), hasher, opts)
	roleSvc := role.NewService(role.NewStore(db), opts)
	accountRoleSvc := accountrole.NewService(
		accountrole.NewStore(db), accountSvc, roleSvc, opts,
	)
	userSvc := user.NewService(user.NewStore(db), accountSvc, opts)
	courseSvc := course.NewService(course.NewStore(db), opts)
	yearSvc := schoolyear.NewService(schoolyear.NewStore(db), opts)
	termSvc := term.NewService(term.NewStore(db), opts)
	classSvc := class.NewService(class.NewStore(db), courseSvc, yearSvc, opts)
	sessionSvc := session.NewService(
		session.NewStore(db), accountSvc, cfg.Session.DefaultTTL, opts,
	)
	simulationSvc := simulation.NewService(
		simulation.NewStore(db), accountSvc, yearSvc, opts,
	)

	authSvc := auth.NewService(jwtManager, accountSvc, sessionSvc, accountRoleSvc)

	var redisChecker health.Checker
	if redis.Enabled() {
		redisChecker = redis
	}
	healthHandler := health.NewHandler(
		health.Dependency{Name: "database", Checker: db},
		health.Dependency{Name: "redis", Checker: redisChecker},
	)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
		Driver:     cfg.Database.Driver,
		Entities: []admin.Entity{
			{Name: "account", Counter: accountSvc},
			{Name: "user", Counter: userSvc},
			{Name: "role", Counter: roleSvc},
			{Name: "account_role", Counter: accountRoleSvc},
			{Name: "course", Counter: courseSvc},
			{Name: "class", Counter: classSvc},
			{Name: "school_year", Counter: yearSvc},
			{Name: "term", Counter: termSvc},
			{Name: "session", Counter: sessionSvc},
			{Name: "simulation", Counter: simulationSvc},
		},
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	if m != nil {
		router.Use(m.Middleware)
	}
	router.Use(
		middleware.NewRateLimiter(redis.RawClient(), middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			KeyFunc:  middleware.KeyByIP,
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())
	if m != nil {
		router.Handle(cfg.Metrics.Path, m.Handler())
	}

	authenticator := middleware.Authenticator(authSvc)
	adminOnly := middleware.RequireAdmin

	router.Route("/api/v1", func(r chi.Router) {
		auth.NewHandler(authSvc).RegisterRoutes(r, authenticator)

		account.NewHandler(accountSvc).RegisterRoutes(r,
			accountrole.NewHandler(accountRoleSvc).Mount,
		)
		user.NewHandler(userSvc).RegisterRoutes(r)
		role.NewHandler(roleSvc).RegisterRoutes(r)
		course.NewHandler(courseSvc).RegisterRoutes(r)
		class.NewHandler(classSvc).RegisterRoutes(r)
		schoolyear.NewHandler(yearSvc).RegisterRoutes(r)
		term.NewHandler(termSvc).RegisterRoutes(r)
		session.NewHandler(sessionSvc).RegisterRoutes(r)
		simulation.NewHandler(simulationSvc).RegisterRoutes(r)

		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
