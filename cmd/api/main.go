package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/xivix/landing/backend/internal/config"
	"github.com/xivix/landing/backend/internal/gemini"
	"github.com/xivix/landing/backend/internal/handler"
	"github.com/xivix/landing/backend/internal/handler/pages"
	"github.com/xivix/landing/backend/internal/model/persona"
	"github.com/xivix/landing/backend/internal/service/ai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	client := gemini.NewClient(cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.Gemini.APIKey, cfg.Gemini.Timeout)

	aiService, err := ai.NewService(ctx, client, persona.Default(), persona.DefaultContact())
	if err != nil {
		log.Fatalf("failed to initialize AI service: %v", err)
	}
	log.Printf("AI service initialized, model=%s", cfg.Gemini.Model)

	pagesHandler, err := pages.New()
	if err != nil {
		log.Fatalf("failed to initialize page handler: %v", err)
	}

	router := handler.NewRouter(aiService, pagesHandler)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("XIVIX landing backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
