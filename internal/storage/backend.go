// ABOUTME: Backend interface for fitness data storage.
// ABOUTME: Defines the contract for reading and writing both record tables.
package storage

import (
	"os"
	"path/filepath"

	"github.com/harperreed/fittrack/internal/models"
)

// Backend defines the storage contract for the two record tables.
// This interface allows swapping implementations (e.g., for testing).
// ReadDays and ReadActivities return ErrNotFound when the source is missing;
// writes overwrite the destination entirely.
type Backend interface {
	ReadDays() ([]*models.DayRecord, error)
	WriteDays([]*models.DayRecord) error
	ReadActivities() ([]*models.Activity, error)
	WriteActivities([]*models.Activity) error
	Close() error
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fittrack")
}
