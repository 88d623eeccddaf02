package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ministry-jobs-parser/internal/observability"
)

// GracefulShutdown returns a context cancelled on SIGINT/SIGTERM. In-flight
// work is abandoned; nothing partial persists beyond what already committed.
func GracefulShutdown(logger *observability.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	}()

	return ctx, cancel
}
