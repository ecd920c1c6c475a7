package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// stderrTail bounds how much transcoder stderr is kept for error messages.
const stderrTail = 2048

// ErrTimeout is returned when an invocation exceeds Runner.Timeout.
var ErrTimeout = errors.New("transcoder timed out")

// ExitError reports a transcoder that ran and exited non-zero.
type ExitError struct {
	Binary string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Binary, e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Runner invokes one external executable. The zero Timeout means no limit.
type Runner struct {
	Binary  string
	Timeout time.Duration
}

// Run executes the binary with args and waits for it. Success means exit
// status zero.
func (r Runner) Run(ctx context.Context, args []string) error {
	binary := strings.TrimSpace(r.Binary)
	if binary == "" {
		return errors.New("transcode: binary not configured")
	}

	runCtx := ctx
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, binary, args...)
	stderr := &tailBuffer{limit: stderrTail}
	cmd.Stdout = nil
	cmd.Stderr = stderr
	cmd.WaitDelay = 5 * time.Second

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if r.Timeout > 0 && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return fmt.Errorf("%w after %s", ErrTimeout, r.Timeout)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Binary: binary, Code: exitErr.ExitCode(), Stderr: strings.TrimSpace(stderr.String())}
	}
	return fmt.Errorf("run %s: %w", binary, err)
}

// tailBuffer keeps only the last limit bytes written to it.
type tailBuffer struct {
	buf   bytes.Buffer
	limit int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if len(p) >= t.limit {
		t.buf.Reset()
		t.buf.Write(p[len(p)-t.limit:])
		return n, nil
	}
	t.buf.Write(p)
	if over := t.buf.Len() - t.limit; over > 0 {
		t.buf.Next(over)
	}
	return n, nil
}

func (t *tailBuffer) String() string {
	return t.buf.String()
}
