package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the lock for the target.
var ErrLocked = errors.New("another run is already writing to this directory")

// Lock is a held run lock. Release is safe to call more than once.
type Lock struct {
	target string
	lock   *flock.Flock
}

// Path returns the lock file location for target.
func Path(target string) (string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolve lock target: %w", err)
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return filepath.Join(os.TempDir(), "imgtools-"+hex.EncodeToString(sum[:8])+".lock"), nil
}

// Acquire takes a non-blocking exclusive lock for target.
func Acquire(target string) (*Lock, error) {
	path, err := Path(target)
	if err != nil {
		return nil, err
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", target, ErrLocked)
	}
	return &Lock{target: target, lock: fl}, nil
}

// Target returns the directory this lock guards.
func (l *Lock) Target() string {
	if l == nil {
		return ""
	}
	return l.target
}

// Release drops the lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
