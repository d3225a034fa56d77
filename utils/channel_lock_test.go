package utils

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLockName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123456789012345678", "123456789012345678"},
		{"../etc/passwd", "etc-passwd"},
		{"with space", "with-space"},
		{"", "default"},
		{"...", "default"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, sanitizeLockName(test.input), "input %q", test.input)
	}
}

func TestNewChannelLock(t *testing.T) {
	dir := t.TempDir()

	lock, err := NewChannelLock(dir, "123")
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(lock.lockPath))
	assert.True(t, strings.HasSuffix(lock.lockPath, "channel-123.lock"))
}

func TestNewChannelLock_DefaultDir(t *testing.T) {
	lock, err := NewChannelLock("", "123")
	require.NoError(t, err)

	assert.Contains(t, lock.lockPath, "messagecloner")
	_, err = os.Stat(filepath.Dir(lock.lockPath))
	assert.NoError(t, err)
}

func TestChannelLock_BlocksSameChannel(t *testing.T) {
	dir := t.TempDir()

	lock1, err := NewChannelLock(dir, "123")
	require.NoError(t, err)
	lock2, err := NewChannelLock(dir, "123")
	require.NoError(t, err)

	require.NoError(t, lock1.Lock(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 600*time.Millisecond)
	defer cancel()
	err = lock2.Lock(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, lock1.Unlock())

	_, err = os.Stat(lock1.lockPath)
	assert.NoError(t, err, "lock file should be kept after unlock")

	require.NoError(t, lock2.Lock(context.Background()))
	require.NoError(t, lock2.Unlock())
}

func TestChannelLock_DifferentChannelsDontConflict(t *testing.T) {
	dir := t.TempDir()

	lock1, err := NewChannelLock(dir, "123")
	require.NoError(t, err)
	lock2, err := NewChannelLock(dir, "456")
	require.NoError(t, err)

	require.NoError(t, lock1.Lock(context.Background()))
	require.NoError(t, lock2.Lock(context.Background()))

	require.NoError(t, lock1.Unlock())
	require.NoError(t, lock2.Unlock())
}

func TestAssertInvariant(t *testing.T) {
	assert.NotPanics(t, func() { AssertInvariant(true, "fine") })
	assert.PanicsWithValue(t, "invariant violated - broken", func() { AssertInvariant(false, "broken") })
}
