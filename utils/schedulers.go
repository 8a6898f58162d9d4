package utils

import (
	"egrow/database"
	"egrow/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeSchedulers sets up the recurring maintenance jobs
func InitializeSchedulers() {
	log.Println("[SCHEDULER] Initializing schedulers...")

	c := cron.New()

	// Purge expired sessions daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[SCHEDULER] Running expired session cleanup...")
		CleanupExpiredSessions()
	})

	// Roll weekly streak counters every Monday at midnight
	c.AddFunc("0 0 * * 1", func() {
		log.Println("[SCHEDULER] Rolling weekly streak counters...")
		RollStreakWeeks()
	})

	c.Start()
	log.Println("[SCHEDULER] Schedulers started")
}

// CleanupExpiredSessions hard-deletes session rows past their expiry
func CleanupExpiredSessions() {
	db := database.Database.Db

	result := db.Unscoped().Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	if result.Error != nil {
		log.Printf("[SCHEDULER] Error cleaning up sessions: %v", result.Error)
		return
	}
	log.Printf("[SCHEDULER] Removed %d expired sessions", result.RowsAffected)
}

// RollStreakWeeks resets the weekly lesson counters for streak rows whose
// recorded week is behind the current one
func RollStreakWeeks() {
	db := database.Database.Db
	ws := weekStart(time.Now())

	result := db.Model(&models.UserStreak{}).
		Where("week_start < ? AND is_deleted = ?", ws, false).
		Updates(map[string]interface{}{"week_start": ws, "lessons_this_week": 0})
	if result.Error != nil {
		log.Printf("[SCHEDULER] Error rolling streak weeks: %v", result.Error)
		return
	}
	log.Printf("[SCHEDULER] Rolled week counters for %d streaks", result.RowsAffected)
}
