package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/krishkalaria12/blog-serve/config"
	"github.com/krishkalaria12/blog-serve/database"
	handler "github.com/krishkalaria12/blog-serve/handlers"
	"github.com/krishkalaria12/blog-serve/media"
	"github.com/krishkalaria12/blog-serve/models"
	"github.com/krishkalaria12/blog-serve/router"
	"github.com/krishkalaria12/blog-serve/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})))

	db, err := database.Connect(database.Options{
		Driver:   cfg.DBDriver,
		DSN:      cfg.DatabaseURL,
		LogLevel: cfg.DBLogLevel,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// close the database connection
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("closing the database connection", "error", err)
		}
	}()

	// Run migrations
	if err := database.MigrateModels(db, &models.User{}, &models.Post{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	store, mediaDir, err := newMediaStore(cfg)
	if err != nil {
		log.Fatalf("Failed to set up media storage: %v", err)
	}
	defer closeMediaStore(store)

	h := handler.New(services.NewUserService(db), services.NewPostService(db), store)
	app := router.New(h, router.Options{MediaDir: mediaDir})

	slog.Info("server is listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
	}
}

// newMediaStore returns the configured store and, for local storage, the
// directory to serve at /media.
func newMediaStore(cfg *config.AppConfig) (media.Store, string, error) {
	if cfg.MediaBackend == config.MediaGCS {
		store, err := media.NewGCSStore(context.Background(), cfg.GCSProjectID, cfg.GCSBucketName)
		return store, "", err
	}

	store, err := media.NewLocalStore(cfg.MediaDir)
	return store, cfg.MediaDir, err
}

// closeMediaStore releases the store's client, if it holds one.
func closeMediaStore(store media.Store) {
	c, ok := store.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		slog.Error("closing the media store", "error", err)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
