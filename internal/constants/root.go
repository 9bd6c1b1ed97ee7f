package constants

import "time"

// SessionState represents the current view of the TUI application
type SessionState int

const (
	AppName           = "healthyme"
	DefaultDataPath   = "~/.config/healthyme/health_data.json"
	DefaultTimezone   = "Local"
	LockfileName      = "healthyme.lock"
	LogDirName        = "logs"
	LogFileName       = "healthyme.log"
	Version           = "v0.1.0"
	DataFileMode      = 0600
	DataDirMode       = 0700
	TempFileSeparator = ".tmp-"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Transient UI timings
	SavedFlashDuration   = 1500 * time.Millisecond
	NotificationDuration = 2 * time.Second
)

// Session States
const (
	StateToday SessionState = iota
	StateStats
	StateMood
	StateNotes
)
