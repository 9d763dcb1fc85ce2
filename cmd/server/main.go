package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"signet/internal/access"
	"signet/internal/auth"
	"signet/internal/config"
	"signet/internal/handler"
	"signet/internal/middleware"
	"signet/internal/repository/postgres"
	postgresSigning "signet/internal/repository/postgres/signing"
	"signet/internal/secrets"
	serviceSigning "signet/internal/service/signing"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logOut, closeLog, err := config.LogWriter(cfg, "server")
	if err != nil {
		log.Fatalf("Failed to set up log file: %v", err)
	}
	defer closeLog()

	logger := config.NewLogger(cfg.Environment, logOut)
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"billing_enabled", cfg.BillingEnabled,
	)

	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", pool.Config().MaxConns,
		"min_conns", pool.Config().MinConns,
	)

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	documentRepo := postgresSigning.NewDocumentRepository(repoConfig)
	templateRepo := postgresSigning.NewTemplateRepository(repoConfig)
	teamRepo := postgresSigning.NewTeamRepository(repoConfig)
	recipientRepo := postgresSigning.NewRecipientRepository(repoConfig)
	fieldRepo := postgresSigning.NewFieldRepository(repoConfig)

	// Passwords are optional; without a key only protected resources fail.
	var opener access.SecretOpener
	if cfg.EncryptionKey != "" {
		o, err := secrets.NewOpener(cfg.EncryptionKey)
		if err != nil {
			log.Fatalf("Failed to create secret opener: %v", err)
		}
		opener = o
	} else {
		logger.Warn("ENCRYPTION_KEY not set: password-protected documents will fail to load")
	}
	resolver := access.NewResolver(opener)

	teamActions, err := access.NewTeamActionRegistry()
	if err != nil {
		log.Fatalf("Failed to load team actions: %v", err)
	}

	docService := serviceSigning.NewDocumentService(documentRepo, recipientRepo, fieldRepo, teamRepo, resolver, logger)
	templateService := serviceSigning.NewTemplateService(templateRepo, recipientRepo, fieldRepo, teamRepo, resolver, cfg.BaseURL(), logger)
	directLinkService := serviceSigning.NewDirectLinkService(templateRepo, recipientRepo, fieldRepo, teamRepo, resolver, cfg.BillingEnabled, logger)
	teamService := serviceSigning.NewTeamService(teamRepo, teamActions, logger)

	healthHandler := handler.NewHealthHandler(pool, logger)
	docHandler := handler.NewDocumentHandler(docService, logger)
	templateHandler := handler.NewTemplateHandler(templateService, logger)
	directLinkHandler := handler.NewDirectLinkHandler(directLinkService, logger)
	teamHandler := handler.NewTeamHandler(teamService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.HealthCheck)

	// Document routes
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)
	mux.HandleFunc("GET /api/t/{teamUrl}/documents/{id}", docHandler.GetDocument)

	// Template routes
	mux.HandleFunc("GET /api/templates/{id}", templateHandler.GetTemplate)
	mux.HandleFunc("GET /api/t/{teamUrl}/templates/{id}", templateHandler.GetTemplate)

	// Direct link embed (anonymous allowed)
	mux.HandleFunc("GET /api/embed/direct/{token}", directLinkHandler.GetDirectTemplate)

	// Team routes
	mux.HandleFunc("GET /api/t/{teamUrl}/permissions", teamHandler.GetPermissions)

	// Debug routes (only in dev environment)
	if cfg.Environment == "dev" {
		debugHandler := handler.NewDebugHandler(docService, logger)
		mux.HandleFunc("GET /debug/api/documents/{id}/access", debugHandler.ExplainDocumentAccess)
		logger.Warn("Debug route registered: GET /debug/api/documents/{id}/access (exposes denial reasons)")
	}

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestID → Recovery → Auth → Routes
	var h http.Handler = mux
	h = middleware.AuthMiddleware(jwtVerifier, middleware.AuthOptions{
		PublicPaths:      []string{"/health"},
		OptionalPrefixes: []string{"/api/embed/"},
	}, logger)(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestID(h)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
