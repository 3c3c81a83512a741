package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"artify-server/config"
	"artify-server/database"
	artistsapi "artify-server/internal/api/artists"
	favoritesapi "artify-server/internal/api/favorites"
	worksapi "artify-server/internal/api/works"
	routes "artify-server/internal/app/http"
	"artify-server/internal/logging"
	"artify-server/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	gin.SetMode(cfg.GinMode)

	uri, err := cfg.DatabaseURI()
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("Invalid database configuration")
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	db, err := database.Connect(ctx, uri, cfg.DBName)
	if err != nil {
		cancel()
		logging.Logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		// the duplicate pre-check still guards favorites without the index
		logging.Logger.Warn().Err(err).Msg("Could not create favorites index")
	}
	cancel()

	artworkStore := store.NewArtworkStore(db.Artworks)
	r := routes.NewRouter(cfg, routes.Handlers{
		Works:     worksapi.NewHandler(artworkStore),
		Favorites: favoritesapi.NewHandler(store.NewFavoriteStore(db.Favorites)),
		Artists:   artistsapi.NewHandler(artworkStore),
		Store:     db,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logging.Logger.Info().Str("port", cfg.Port).Msg("Artify Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Error().Err(err).Msg("HTTP server shutdown")
	}
	if err := db.Close(shutdownCtx); err != nil {
		logging.Logger.Error().Err(err).Msg("MongoDB disconnect")
	}
}
