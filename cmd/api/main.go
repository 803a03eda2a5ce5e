package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shorts-backend/internal/generate"
	"shorts-backend/internal/handler"
	"shorts-backend/internal/logx"
	"shorts-backend/internal/reconcile"
	"shorts-backend/internal/storage"
	"shorts-backend/internal/store"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	// Dev convenience only; production injects env vars through infra.
	if os.Getenv("APP_ENV") != "production" {
		godotenv.Load()
	}

	logger := logx.Setup(logx.FromEnv("shorts-backend"))

	// ── Database ──────────────────────────────────────────────────────────────
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal().Msg("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open DB")
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Fatal().Err(err).Msg("database ping failed")
	}

	// ── Redis (ephemeral draft store) ─────────────────────────────────────────
	rdb := redis.NewClient(&redis.Options{Addr: env("REDIS_ADDR", "localhost:6379")})
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("redis ping failed")
	}

	projects := store.NewPostgresStore(db)
	drafts := store.NewRedisDraftStore(rdb)

	// ── Asset storage (swappable: local today, S3 tomorrow) ───────────────────
	var assetStorage storage.Storage
	if os.Getenv("STORAGE_TYPE") == "s3" {
		assetStorage = storage.NewS3Storage(os.Getenv("AWS_BUCKET"), os.Getenv("AWS_REGION"))
		logger.Info().Msg("using S3 asset storage")
	} else {
		assetDir := env("ASSET_DIR", "./assets")
		assetStorage = storage.NewLocalStorage(assetDir, env("BASE_URL", "http://localhost:8083"))
		logger.Info().Str("dir", assetDir).Msg("using local asset storage")
	}

	// ── AI collaborators ──────────────────────────────────────────────────────
	openaiClient := generate.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))

	projectHandler := &handler.ProjectHandler{
		Projects:   projects,
		Drafts:     drafts,
		Reconciler: reconcile.New(projects, drafts, logger),
	}
	generateHandler := &handler.GenerateHandler{
		Scripts:     openaiClient,
		Speech:      generate.NewElevenLabsClient(os.Getenv("ELEVENLABS_API_KEY")),
		Images:      generate.NewFalClient(os.Getenv("FAL_API_KEY")),
		Music:       generate.NewSunoClient(os.Getenv("SUNO_API_KEY")),
		Transcriber: openaiClient,
		Storage:     assetStorage,
	}
	catalogHandler := &handler.CatalogHandler{}

	// ── Router ────────────────────────────────────────────────────────────────
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, `{"status":"unhealthy"}`, http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/projects", projectHandler.CreateProject).Methods("POST")
	api.HandleFunc("/projects/{id}", projectHandler.GetProject).Methods("GET")
	api.HandleFunc("/projects/{id}/reconcile", projectHandler.ReconcileProject).Methods("POST")

	api.HandleFunc("/script", generateHandler.GenerateScript).Methods("POST")
	api.HandleFunc("/script", generateHandler.ImproveScript).Methods("PUT")
	api.HandleFunc("/voices", generateHandler.ListVoices).Methods("GET")
	api.HandleFunc("/speech", generateHandler.SynthesizeSpeech).Methods("POST")
	api.HandleFunc("/image", generateHandler.GenerateImage).Methods("POST")
	api.HandleFunc("/music", generateHandler.GenerateMusic).Methods("POST")
	api.HandleFunc("/music/library", catalogHandler.MusicLibrary).Methods("GET")
	api.HandleFunc("/music/{id}", generateHandler.MusicStatus).Methods("GET")
	api.HandleFunc("/templates", catalogHandler.ListTemplates).Methods("GET")
	api.HandleFunc("/transcribe", generateHandler.Transcribe).Methods("POST")

	// Serve locally stored assets; unused when S3 serves files directly.
	r.PathPrefix("/assets/").Handler(
		http.StripPrefix("/assets/", http.FileServer(http.Dir(env("ASSET_DIR", "./assets")))),
	)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{env("ALLOWED_ORIGINS", "http://localhost:3000")}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := env("PORT", "8083")
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      cors(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info().Str("port", port).Msg("shorts backend running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-quit
	logger.Info().Msg("shutdown signal received, draining requests")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("forced shutdown")
	}
	logger.Info().Msg("server stopped cleanly")
}
