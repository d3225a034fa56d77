package utils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 250 * time.Millisecond

var unsafeLockNameChars = regexp.MustCompile(`[^\w\-.]`)

// ChannelLock is a cross-process lock scoped to a single Discord channel.
// Clone runs hold it while they look up or create the channel's webhook so
// that two processes never both create one.
type ChannelLock struct {
	lockFile *flock.Flock
	lockPath string
}

// sanitizeLockName converts a channel ID (or any key) to a safe filename
func sanitizeLockName(key string) string {
	sanitized := unsafeLockNameChars.ReplaceAllString(key, "-")
	sanitized = strings.Trim(sanitized, ".-")
	if sanitized == "" {
		sanitized = "default"
	}
	return sanitized
}

// NewChannelLock creates the lock for channelID inside lockDir.
// An empty lockDir uses a messagecloner directory under the system temp dir.
func NewChannelLock(lockDir, channelID string) (*ChannelLock, error) {
	if lockDir == "" {
		lockDir = filepath.Join(os.TempDir(), "messagecloner")
	}
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	lockPath := filepath.Join(lockDir, fmt.Sprintf("channel-%s.lock", sanitizeLockName(channelID)))
	return &ChannelLock{
		lockFile: flock.New(lockPath),
		lockPath: lockPath,
	}, nil
}

// Lock blocks until the lock is acquired or ctx is done
func (l *ChannelLock) Lock(ctx context.Context) error {
	locked, err := l.lockFile.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire channel lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire channel lock %s", l.lockPath)
	}
	return nil
}

// Unlock releases the lock. The lock file is kept so that every process
// locks the same file.
func (l *ChannelLock) Unlock() error {
	if err := l.lockFile.Unlock(); err != nil {
		return fmt.Errorf("failed to unlock: %w", err)
	}
	return nil
}
