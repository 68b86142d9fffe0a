package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shreywv2007/StudyFlow/internal/auth"
	"github.com/shreywv2007/StudyFlow/internal/config"
	"github.com/shreywv2007/StudyFlow/internal/logger"
	"github.com/shreywv2007/StudyFlow/internal/server"
	"github.com/shreywv2007/StudyFlow/internal/store"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := config.Load(log)
	ctx := context.Background()

	// ── Store ────────────────────────────────────────────────
	st, err := store.Open(ctx, cfg.DBPath, log)
	if err != nil {
		log.Fatal("store load failed", "error", err)
	}
	defer st.Close()

	// ── Sessions (optional) ──────────────────────────────────
	var sessions auth.Sessions
	if cfg.SessionsEnabled() {
		rdb, err := auth.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatal("redis connect failed", "addr", cfg.RedisAddr, "error", err)
		}
		defer rdb.Close()
		sessions = auth.NewSessionStore(rdb)
	} else {
		log.Info("REDIS_ADDR not set, login sessions disabled")
	}

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: server.NewRouter(server.Deps{
			Store:       st,
			Sessions:    sessions,
			Log:         log,
			CORSOrigins: cfg.CORSOrigins,
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("API listening", "port", cfg.Port, "db_path", cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Warn("shutdown", "error", err)
	}
}
