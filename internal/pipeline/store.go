package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"editorbot/internal/plan"
	"editorbot/internal/serialize"
)

// ErrOutputLocked is returned when another process holds the output lock.
var ErrOutputLocked = errors.New("output directory is locked by another editorbot process")

// OutputLock is an exclusive advisory lock guarding a plan output directory.
type OutputLock struct {
	path string
	lock *flock.Flock
}

// AcquireOutputLock takes the lock at path without blocking.
func AcquireOutputLock(path string) (*OutputLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	l := &OutputLock{path: path, lock: flock.New(path)}
	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrOutputLocked, path)
	}
	return l, nil
}

// Path returns the lock file location.
func (l *OutputLock) Path() string { return l.path }

// Release unlocks. Calling it more than once is harmless.
func (l *OutputLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}

// PlanFileName returns the file name WritePlan uses for p.
func PlanFileName(p plan.Plan, enc serialize.Encoding) string {
	return p.ID() + "." + enc.Extension()
}

// WritePlan encodes p into dir and returns the written path. The file is
// written to a temporary name first and renamed into place.
func WritePlan(dir string, p plan.Plan, enc serialize.Encoding) (string, error) {
	data, err := serialize.Marshal(p, enc)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	target := filepath.Join(dir, PlanFileName(p, enc))
	tmp, err := os.CreateTemp(dir, ".plan-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp plan file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write plan file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close plan file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("rename plan file: %w", err)
	}
	return target, nil
}

// ReadPlan loads a JSON or YAML plan file.
func ReadPlan(path string) (plan.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("read plan file: %w", err)
	}
	p, err := serialize.Unmarshal(data)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
