package main

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidWorkerCount is returned for a negative --workers value.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// maxWorkers caps the auto-sized pool.
const maxWorkers = 8

// validateWorkers rejects negative worker counts. 0 means auto.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidWorkerCount, n)
	}
	return nil
}

// resolveWorkers determines the page worker count.
// Priority: explicit flag > MDSWAGGER_WORKERS > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return envWorkers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}
