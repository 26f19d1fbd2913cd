package store

import (
	"context"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/logger"
)

// DefaultSaveInterval is how often the periodic sweep persists sessions.
const DefaultSaveInterval = 5 * time.Minute

// AutoSave persists the full session map on a timer until ctx is
// cancelled, then performs one final save. Save failures are logged and
// retried on the next tick.
func AutoSave(ctx context.Context, st Store, interval time.Duration, log *logger.Logger) {
	if interval <= 0 {
		interval = DefaultSaveInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := st.SaveAll(); err != nil {
				log.Error("final session save failed", "error", err)
			}
			return
		case <-ticker.C:
			if err := st.SaveAll(); err != nil {
				log.Error("periodic session save failed", "error", err)
			}
		}
	}
}
