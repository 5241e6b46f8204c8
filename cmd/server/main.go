package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamecatalog/backend/internal/auth"
	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/database"
	"gamecatalog/backend/internal/handler"
	"gamecatalog/backend/internal/ingest"
	"gamecatalog/backend/internal/logger"
	"gamecatalog/backend/internal/search"
	"gamecatalog/backend/internal/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	// Swagger imports
	_ "gamecatalog/backend/docs" // This is important for swag to find the generated docs
)

// @title           Game Catalog API
// @version         1.0
// @description     Uploads game catalog datasets and serves multi-field search over them.
// @host            localhost:8000
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log := logger.New(logger.Options{})
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set; every search will be rejected")
	}

	db, err := database.Open(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := store.NewCatalog(db, cfg.InsertBatchSize)
	if err := catalog.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	log.Info().Msg("Database migrated successfully.")

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(
		log,
		handler.NewCatalogHandler(
			ingest.NewIngester(catalog, log),
			search.NewService(auth.NewJWTVerifier(cfg.JWTSecret), catalog),
			cfg.MaxUploadBytes,
		),
		handler.NewTokenHandler(cfg.ClientID, cfg.ClientSecretHash, cfg.JWTSecret, cfg.TokenTTL),
	)

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.ServerAddr).Msg("Server is running")
		log.Info().Msgf("Swagger UI is available at http://localhost%s/swagger/index.html", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		return
	}
	log.Info().Msg("Server stopped")
}
