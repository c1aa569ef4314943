// Package main runs the Krishi GPT HTTP API.
//
// Usage:
//
//	go run ./cmd/krishi-server -addr :8080 -db krishi.db
//
// Environment variables:
//
//	KRISHI_API_KEY or GEMINI_API_KEY - Gemini API key (required)
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/krishigpt/krishi-go/internal/server"
	"github.com/krishigpt/krishi-go/internal/store"
	krishi "github.com/krishigpt/krishi-go/sdk"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", "krishi.db", "sqlite database path")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := newLogger(*logLevel)
	slog.SetDefault(logger)

	client, err := krishi.NewClient(krishi.WithLogger(logger))
	if err != nil {
		logger.Error("client init failed", "error", err)
		os.Exit(1)
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		logger.Error("store open failed", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	srv := &http.Server{
		Addr:    *addr,
		Handler: server.New(client, st, logger).Handler(),
		// Advisory generation with thinking enabled can run well past a
		// minute; the write timeout must accommodate it.
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
