package logging

import (
	"log/slog"
	"time"

	"github.com/sondregut/trackspeed-site/internal/models"
	"gorm.io/gorm"
)

// logRetention is how long persisted error rows are kept.
const logRetention = 30 * 24 * time.Hour

// StartCleanup sweeps expired system_logs rows twice a day until done is
// closed.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(12 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().Add(-logRetention)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				switch {
				case result.Error != nil:
					slog.Error("log cleanup failed", "error", result.Error)
				case result.RowsAffected > 0:
					slog.Info("log cleanup completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
