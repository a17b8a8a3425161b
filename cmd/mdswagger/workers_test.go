package main

import (
	"errors"
	"runtime"
	"testing"
)

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 64} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) = %v, want nil", n, err)
		}
	}
	if err := validateWorkers(-1); !errors.Is(err, ErrInvalidWorkerCount) {
		t.Errorf("validateWorkers(-1) = %v, want ErrInvalidWorkerCount", err)
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	auto := runtime.GOMAXPROCS(0) / 2
	if auto < 1 {
		auto = 1
	}
	if auto > maxWorkers {
		auto = maxWorkers
	}

	tests := []struct {
		name       string
		flag, envW int
		want       int
	}{
		{"flag wins", 3, 5, 3},
		{"env when no flag", 0, 5, 5},
		{"flag above cap is honored", 20, 0, 20},
		{"auto", 0, 0, auto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := resolveWorkers(tt.flag, tt.envW); got != tt.want {
				t.Errorf("resolveWorkers(%d, %d) = %d, want %d", tt.flag, tt.envW, got, tt.want)
			}
		})
	}
}
