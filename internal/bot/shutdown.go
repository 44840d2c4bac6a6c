package bot

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// Shutdowner stops all shards.
type Shutdowner interface {
	ShutdownAll() error
}

// WatchInterrupt waits for SIGINT or SIGTERM and then shuts m down. It returns
// without shutting down if ctx ends first.
func WatchInterrupt(ctx context.Context, m Shutdowner, log *zap.Logger) error {
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sc)

	return watchSignals(ctx, sc, m, log)
}

func watchSignals(ctx context.Context, sc <-chan os.Signal, m Shutdowner, log *zap.Logger) error {
	select {
	case <-ctx.Done():
		return nil
	case sig := <-sc:
		log.Info("Received shutdown signal, gracefully shutting down...", zap.Stringer("signal", sig))
	}

	if err := m.ShutdownAll(); err != nil {
		log.Error("Error shutting down shards", zap.Error(err))
	}
	return nil
}
