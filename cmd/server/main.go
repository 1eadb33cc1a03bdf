package main

import (
	"context"
	"errors"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/portfolio-iw/api/internal/adapters/handler/http"
	"github.com/portfolio-iw/api/internal/adapters/repository/airtable"
	"github.com/portfolio-iw/api/internal/config"
	"github.com/portfolio-iw/api/internal/core/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	client := airtable.NewClient(airtable.Config{
		APIKey:  cfg.AirtableKey,
		BaseID:  cfg.AirtableBaseID,
		Timeout: cfg.AirtableTimeout,
	})
	userRepo := airtable.NewUserRepository(client, cfg.UserTableID)
	projectRepo := airtable.NewProjectRepository(client, cfg.ProjectTableID)
	likeRepo := airtable.NewLikeRepository(client, cfg.LikeTableID)

	tokens := services.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	hasher := services.NewBcryptHasher()
	accounts := services.NewAccountService(userRepo, hasher, tokens)
	likes := services.NewLikeService(likeRepo)
	projects := services.NewProjectService(projectRepo, likes)

	handler := http.NewHandler(
		http.NewAuthHandler(accounts, logger),
		http.NewUserHandler(accounts, logger),
		http.NewProjectHandler(projects, likes, logger),
		http.NewAuthMiddleware(tokens, userRepo, logger),
		logger,
		cfg.CORSAllowedOrigins,
	)

	server := &stdhttp.Server{Addr: "0.0.0.0:" + cfg.HTTPPort, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr), zap.String("environment", cfg.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
