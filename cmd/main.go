// @title ResumeWise AI API
// @version 2.0.0
// @description AI-powered resume screening and analysis API

// @host localhost:8000
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "resumewise-backend/docs" // This is required for swagger
	"resumewise-backend/internal/ai"
	"resumewise-backend/internal/config"
	"resumewise-backend/internal/handlers"
	"resumewise-backend/internal/migrations"
	"resumewise-backend/internal/repository"
	"resumewise-backend/internal/routes"
	"resumewise-backend/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if err := runMigrations(cfg); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}

	pool, err := newPool(cfg)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	defer pool.Close()

	// --- HTTP handlers ---
	users := repository.NewPostgresUserRepository(pool)
	screenings := repository.NewPostgresScreeningRepository(pool)
	geminiClient := ai.NewClient(cfg.Gemini, logger)

	authHandler := handlers.NewAuthHandler(users, &cfg.JWT, cfg.IsProduction(), logger)
	screeningHandler := handlers.NewScreeningHandler(geminiClient, screenings, logger)
	healthHandler := handlers.NewHealthHandler(pool, cfg.Server.Environment)

	mux := routes.SetupRoutes(authHandler, screeningHandler, healthHandler, &cfg.JWT)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           c.Handler(mux),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Keep-alive pinger
	var keepAlive *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		keepAlive = scheduler.New(cfg, logger)
		if err := keepAlive.Start(); err != nil {
			logger.Fatal("start scheduler", zap.Error(err))
		}
	}

	go func() {
		logger.Info("HTTP server listening",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	// Wait for SIGINT/SIGTERM and shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	if keepAlive != nil {
		keepAlive.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// runMigrations applies the embedded goose migrations over a short-lived
// database/sql connection; runtime queries go through pgxpool.
func runMigrations(cfg *config.Config) error {
	db, err := sql.Open("pgx", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

func newPool(cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, err
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "resumewise-backend"
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnTimeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
