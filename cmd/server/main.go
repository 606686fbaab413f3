// @title           Drive API
// @version         1.0
// @description     Hierarchical file manager: folders, files, breadcrumbs and single-owner locks.
// @host            localhost:8080
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/emanuelsistemas/drive/internal/api"
	"github.com/emanuelsistemas/drive/internal/config"
	"github.com/emanuelsistemas/drive/internal/database"
	"github.com/emanuelsistemas/drive/internal/drive"
	"github.com/emanuelsistemas/drive/internal/storage"

	_ "github.com/emanuelsistemas/drive/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := newLogger(cfg.Log.Level)

	dbpool, err := pgxpool.New(context.Background(), cfg.DB.Source)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbpool.Close()

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	log.Info().Msg("connected to database")

	localStorage, err := storage.NewLocalStorage(cfg.Storage.Path, cfg.Storage.PublicBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize local storage")
	}
	log.Info().Str("path", cfg.Storage.Path).Msg("blob storage ready")

	store := database.NewStore(dbpool)
	svc := drive.NewService(store.Queries, store.Queries, localStorage, log)
	server := api.NewServer(cfg, store, svc, localStorage, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(api.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	// Public blob URLs recorded on file nodes resolve here.
	r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.Storage.Path))))

	r.Post("/api/v1/auth/register", server.RegisterHandler)
	r.Post("/api/v1/auth/login", server.LoginHandler)
	r.Post("/api/v1/auth/refresh", server.RefreshTokenHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(server.AuthMiddleware)
		r.Get("/me", server.GetCurrentUserHandler)
		r.Get("/drive", server.BrowseHandler)
		r.Post("/folders", server.CreateFolderHandler)
		r.Post("/files", server.UploadFileHandler)
		r.Get("/files/{fileId}/download", server.DownloadFileHandler)
		r.Patch("/nodes/{kind}/{nodeId}", server.RenameNodeHandler)
		r.Delete("/nodes/{kind}/{nodeId}", server.DeleteNodeHandler)
		r.Post("/nodes/{kind}/{nodeId}/lock", server.ToggleLockHandler)
		r.Get("/sessions", server.ListSessionsHandler)
		r.Delete("/sessions/{sessionId}", server.DeleteSessionHandler)
		r.Post("/sessions/terminate_all", server.TerminateAllSessionsHandler)
	})

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
