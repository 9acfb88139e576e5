package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// CleanupOldLogs removes files in dir matching pattern that are older than
// retentionDays. A retentionDays value of 0 disables pruning. The prune is
// guarded by a file lock so concurrent invocations don't race each other;
// when the lock is already held the prune is skipped, the next invocation
// picks it up.
func CleanupOldLogs(logger *slog.Logger, dir, pattern string, retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return
	}

	lock := flock.New(filepath.Join(dir, ".retention.lock"))
	locked, err := lock.TryLock()
	if err != nil || !locked {
		return
	}
	defer lock.Unlock()

	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if pattern != "" {
			matched, err := filepath.Match(pattern, name)
			if err != nil || !matched {
				continue
			}
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		fullPath := filepath.Join(dir, name)
		if err := os.Remove(fullPath); err != nil {
			if logger != nil {
				logger.Warn("log retention remove failed; file remains",
					String(FieldPath, fullPath),
					Error(err),
				)
			}
			continue
		}
		if logger != nil {
			logger.Debug("log pruned", String(FieldPath, fullPath))
		}
	}
}
