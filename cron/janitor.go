package cron

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const sweepInterval = 10 * time.Minute

// InitSessionJanitor runs a background sweep over the sessions directory,
// deleting session files that have not been written for longer than ttl.
// Only the file-backed session store needs this; Redis expires keys itself.
func InitSessionJanitor(dir string, ttl time.Duration, logger *zap.Logger) {
	if ttl <= 0 {
		return
	}

	go func() {
		logger.Info("Session janitor started",
			zap.String("dir", dir),
			zap.Duration("ttl", ttl),
		)
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			sweep(dir, ttl, logger)
			<-ticker.C
		}
	}()
}

func sweep(dir string, ttl time.Duration, logger *zap.Logger) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("Session janitor could not read sessions dir", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-ttl)
	var removed int
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			logger.Warn("Session janitor failed to remove stale session",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		removed++
	}
	if removed > 0 {
		logger.Info("Session janitor removed stale sessions", zap.Int("removed", removed))
	}
}
