package cron

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSweep(t *testing.T) {
	dir := t.TempDir()
	logger := zap.NewNop()

	write := func(name string, age time.Duration) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
		stamp := time.Now().Add(-age)
		require.NoError(t, os.Chtimes(path, stamp, stamp))
		return path
	}

	stale := write("stale.json", 2*time.Hour)
	fresh := write("fresh.json", time.Minute)
	other := write("notes.txt", 2*time.Hour)

	sweep(dir, time.Hour, logger)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
	assert.FileExists(t, other, "only session files are swept")
}

func TestSweepMissingDir(t *testing.T) {
	// Must not panic when the directory is gone.
	sweep(filepath.Join(t.TempDir(), "missing"), time.Hour, zap.NewNop())
}
