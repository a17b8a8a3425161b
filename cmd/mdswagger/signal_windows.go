//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// stopSignals end a build or a watch session. Windows only delivers
// os.Interrupt.
var stopSignals = []os.Signal{os.Interrupt}

// notifyContext returns a context canceled on the first stop signal.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, stopSignals...)
}
