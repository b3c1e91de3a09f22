package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
	httphandlers "github.com/rafabene/leadfunnel-backend/internal/handlers/http"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/auth"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/config"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/i18n"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/logging"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/metrics"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/persistence/memory"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/leadfunnel-backend/internal/services"
)

// @title           Lead Funnel API
// @version         1.0
// @description     API de leads, lead magnets e métricas do dashboard.
// @BasePath        /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	if cfg.Logging.File != "" {
		logger = logging.NewFileLogger(cfg.Logging.Level, cfg.Logging.File)
	}
	logger.Info("starting leadfunnel backend",
		"env", cfg.Env,
		"storage", cfg.Storage.Driver,
	)

	ctx := context.Background()

	// Storage: memória ou PostgreSQL, mesma interface
	storage, db, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewDefaultService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)
	for _, lang := range i18nService.GetSupportedLanguages() {
		if missing := i18nService.Missing(lang); len(missing) > 0 {
			logger.Warn("locale is missing keys", "language", lang, "keys", missing)
		}
	}

	// Métricas
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Autenticação
	sessionStore := newSessionStore(cfg, db)
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)

	// Inicializar services
	userService := services.NewUserService(storage, logger)
	leadService := services.NewLeadService(storage, logger)
	magnetService := services.NewLeadMagnetService(storage, logger)
	dashboardService := services.NewDashboardService(storage, storage)

	authHandler := httphandlers.NewAuthHandler(nil, userService, m, logger)
	if cfg.Auth.OIDCEnabled() {
		provider, err := auth.NewOIDCProvider(ctx, auth.OIDCConfig{
			IssuerURL:    cfg.Auth.OIDCIssuerURL,
			ClientID:     cfg.Auth.OIDCClientID,
			ClientSecret: cfg.Auth.OIDCClientSecret,
			RedirectURL:  cfg.Auth.OIDCRedirectURL,
		})
		if err != nil {
			logger.Error("failed to initialize oidc provider", "error", err)
			log.Fatal(err)
		}
		authHandler = httphandlers.NewAuthHandler(provider, userService, m, logger)
	} else {
		logger.Warn("OIDC not configured, only bearer tokens are accepted")
	}

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.Router{
		Env:          cfg.Env,
		BaseURL:      cfg.Server.BaseURL,
		CORSOrigins:  cfg.CORS.Origins(),
		Logger:       logger,
		I18n:         i18nService,
		Metrics:      m,
		SessionStore: sessionStore,
		Guard:        httphandlers.NewAuthGuard(tokens, m),
		Auth:         authHandler,
		Users:        httphandlers.NewUserHandler(userService, logger),
		Leads:        httphandlers.NewLeadHandler(leadService, m, logger),
		LeadMagnets:  httphandlers.NewLeadMagnetHandler(magnetService, m, logger),
		Dashboard:    httphandlers.NewDashboardHandler(dashboardService, logger),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	logger.Info("server exited")
}

// openStorage cria o backend configurado; db é nil para o backend em memória
func openStorage(ctx context.Context, cfg *config.Config, logger ports.Logger) (repositories.Storage, *gorm.DB, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		if !cfg.Storage.Seed {
			return memory.NewStorage(memory.WithoutSampleData()), nil, nil
		}
		return memory.NewStorage(), nil, nil
	}

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(db); err != nil {
			return nil, nil, err
		}
		logger.Info("database schema migrated")
	}

	storage := postgres.NewStorage(db)
	if cfg.Storage.Seed {
		if err := postgres.SeedIfEmpty(ctx, db, storage, postgres.NewUnitOfWork(db), logger); err != nil {
			return nil, nil, err
		}
	}

	return storage, db, nil
}

// newSessionStore grava sessões no PostgreSQL quando disponível, senão em cookie assinado
func newSessionStore(cfg *config.Config, db *gorm.DB) sessions.Store {
	secret := []byte(cfg.Auth.SessionSecret)

	var store sessions.Store
	if db != nil {
		store = gormsessions.NewStore(db, true, secret)
	} else {
		store = cookie.NewStore(secret)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Auth.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store
}
