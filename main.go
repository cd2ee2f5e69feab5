package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jeomhps/rentacar-graph-api/internal/config"
	"github.com/Jeomhps/rentacar-graph-api/internal/db"
	"github.com/Jeomhps/rentacar-graph-api/internal/logging"
	"github.com/Jeomhps/rentacar-graph-api/internal/password"
	"github.com/Jeomhps/rentacar-graph-api/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type graph interface {
	server.Store
	Close(ctx context.Context) error
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel)

	mode, err := password.ParseMode(cfg.PasswordHashing)
	if err != nil {
		slog.Error("password mode", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, err := openGraph(ctx, cfg)
	if err != nil {
		slog.Error("graph", "backend", cfg.GraphBackend, "error", err)
		os.Exit(1)
	}
	defer func() { _ = g.Close(context.Background()) }()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.NewRouter(g, mode),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("listening", "addr", cfg.Addr, "backend", cfg.GraphBackend, "password_mode", string(mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}

func openGraph(ctx context.Context, cfg config.Config) (graph, error) {
	if cfg.GraphBackend == "memory" {
		return db.NewMemoryGraph(), nil
	}
	d, err := db.Open(ctx, cfg.Neo4jURI, cfg.Neo4jUsername, cfg.Neo4jPassword, cfg.Neo4jDatabase)
	if err != nil {
		return nil, err
	}
	return d, nil
}
