package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// acquireRunLock serializes runs that target the same output file. The
// returned release func must be called once the run finishes.
func acquireRunLock(outputPath string) (func(), error) {
	lockPath := outputPath + ".lock"
	if dir := filepath.Dir(lockPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("prepare lock directory: %w", err)
		}
	}

	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another antenna run is already writing %s", outputPath)
	}
	return func() { _ = lock.Unlock() }, nil
}
