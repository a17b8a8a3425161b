//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// stopSignals end a build or a watch session. SIGHUP is included so a
// watcher left in a closed terminal exits.
var stopSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// notifyContext returns a context canceled on the first stop signal.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, stopSignals...)
}
