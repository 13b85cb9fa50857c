package check

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcher_StartStop(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()

	w, err := NewWatcher(NewChecker(cfg), zap.NewNop(), cfg.Extensions)
	require.NoError(t, err)

	require.NoError(t, w.Start([]string{dir}))
	assert.Error(t, w.Start([]string{dir}))

	// Give the loop an event to consume while it is still running.
	path := filepath.Join(dir, "keymap.c")
	require.NoError(t, os.WriteFile(path, []byte("KEYMAP(KC_A, KC_B)"), 0o644))
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, w.Stop())
}

func TestWatcher_HasWatchedExtension(t *testing.T) {
	cfg := DefaultConfig()
	w, err := NewWatcher(NewChecker(cfg), zap.NewNop(), cfg.Extensions)
	require.NoError(t, err)
	defer w.watcher.Close()

	assert.True(t, w.hasWatchedExtension("keymap.c"))
	assert.True(t, w.hasWatchedExtension("corne.keymap"))
	assert.False(t, w.hasWatchedExtension("notes.txt"))
}
