package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"imgtools/internal/runlock"
)

// Execute runs root under a context cancelled by SIGINT or SIGTERM and
// returns the process exit code. Errors go to stderr; an interrupted run
// prints "Interrupted by user." instead.
func Execute(root *cobra.Command, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(stdout, "\nInterrupted by user.")
		return 1
	}
	fmt.Fprintln(stderr, err)
	return 1
}

// AcquireLock takes the run lock for target, turning contention into a
// user-facing error naming the directory.
func AcquireLock(target string) (*runlock.Lock, error) {
	lock, err := runlock.Acquire(target)
	if errors.Is(err, runlock.ErrLocked) {
		return nil, fmt.Errorf("another run is already writing to %s", target)
	}
	if err != nil {
		return nil, err
	}
	return lock, nil
}
