package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/artpieces/backend/internal/config"
	"github.com/artpieces/backend/internal/handler"
	"github.com/artpieces/backend/internal/repository/sqlite"
	"github.com/artpieces/backend/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	thumbs := service.NewThumbnails(cfg.CompressedBaseURL)
	images := service.NewImageClient(cfg.ImageServiceURL, cfg.AppCode)

	authService := service.NewAuthService(db.Users(), cfg.JWTSecret)
	viewService := service.NewViewService(db.Users(), db.Artworks(), db.Repos(), db.Lectures(), db.Stars(), thumbs)
	feedService := service.NewFeedService(db.Users(), db.Artworks(), db.Repos(), db.Lectures(), db.Stars(), thumbs, cfg.FeedPageSize)
	userService := service.NewUserService(authService, db.Users())
	artworkService := service.NewArtworkService(authService, db.Artworks(), images)
	repoService := service.NewRepoService(authService, db.Repos())
	lectureService := service.NewLectureService(authService, db.Lectures(), db.Stars())
	socialService := service.NewSocialService(authService, db.Stars(), db.Follows())

	api := handler.NewAPI(viewService, feedService, authService, userService,
		artworkService, repoService, lectureService, socialService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
