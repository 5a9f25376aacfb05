package utils

import (
	"context"
)

// GracefulShutdown blocks until ctx is cancelled (e.g. Ctrl-C via
// signal.NotifyContext), runs the cleanup callbacks, then confirms the
// cancellation so the main loop can exit.
func GracefulShutdown(ctx context.Context, cancel context.CancelFunc, onShutdown ...func()) {
	<-ctx.Done()

	for _, fn := range onShutdown {
		fn()
	}

	cancel()
}
