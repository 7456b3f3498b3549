package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"crafty/api"
	"crafty/clock"
	"crafty/internal"
	"crafty/logging"
	"crafty/usecases"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and manages the server lifecycle, so
// every defer executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logging.FromLevel(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Storage
	repos, closeStorage, err := internal.OpenStorage(ctx, config, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.Error("closing storage failed", "error", err)
		}
	}()

	// 4. Use cases & HTTP handler
	dateProvider := clock.NewSystemDateProvider()
	handler, err := api.NewHandler(log, api.UseCases{
		PostMessage:  usecases.NewPostMessageUseCase(repos.Messages, dateProvider),
		EditMessage:  usecases.NewEditMessageUseCase(repos.Messages),
		ViewTimeline: usecases.NewViewTimelineUseCase(repos.Messages, dateProvider),
		ViewWall:     usecases.NewViewWallUseCase(repos.Messages, repos.Followees, dateProvider),
		FollowUser:   usecases.NewFollowUserUseCase(repos.Followees),
		CreateUser:   usecases.NewCreateUserUseCase(repos.Users),
	})
	if err != nil {
		return err
	}

	// 5. HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler: handler,
	}
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", server.Addr, "storage", config.Storage)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}
