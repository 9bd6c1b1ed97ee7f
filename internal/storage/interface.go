package storage

import "github.com/julianstephens/healthyme/internal/models"

// Provider is a durable location holding exactly one DailyRecord.
type Provider interface {
	// Read returns the stored record as-is, without applying the daily reset.
	// Errors wrap ErrNotFound, ErrCorruptData or ErrIO.
	Read() (models.DailyRecord, error)
	// Write atomically replaces the stored record. Errors wrap ErrIO.
	Write(models.DailyRecord) error
	Close() error

	// Utils
	Path() string
}
