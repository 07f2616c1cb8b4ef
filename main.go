package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"influencer-api/cache"
	"influencer-api/config"
	"influencer-api/repositories"
	"influencer-api/router"
	"influencer-api/services"
	"influencer-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		slog.Error("database init failed", "error", err)
		os.Exit(1)
	}
	defer config.CloseDB(db)

	if len(os.Args) > 1 && os.Args[1] == "createsuperuser" {
		if err := createSuperuser(cfg, db, os.Args[2:]); err != nil {
			slog.Error("createsuperuser failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := serve(cfg, db); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func createSuperuser(cfg config.Config, db *gorm.DB, args []string) error {
	fs := flag.NewFlagSet("createsuperuser", flag.ContinueOnError)
	email := fs.String("email", "", "superuser email")
	password := fs.String("password", "", "superuser password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	authService := services.NewAuthService(repositories.NewUserRepository(db), cfg.JWTSecret, cfg.JWTExpiration)
	user, err := authService.CreateSuperuser(context.Background(), *email, *password)
	if err != nil {
		return err
	}

	slog.Info("superuser created", "id", user.ID, "email", user.Email)
	return nil
}

func serve(cfg config.Config, db *gorm.DB) error {
	ctx := context.Background()

	c, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		slog.Warn("redis unavailable, caching disabled", "error", err)
		c = cache.New(nil, 0)
	}
	defer c.Close()

	store, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.Setup(router.Deps{
			Config:  cfg,
			DB:      db,
			Cache:   c,
			Storage: store,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "storage", cfg.StorageBackend, "cache", c.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func openStorage(ctx context.Context, cfg config.Config) (storage.Storage, func() error, error) {
	if cfg.StorageBackend == "gcs" {
		gcs, err := storage.NewGCSStorage(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, nil, err
		}
		return gcs, gcs.Close, nil
	}

	local := storage.NewLocalStorage(cfg.MediaRoot, cfg.MediaURL)
	return local, func() error { return nil }, nil
}
