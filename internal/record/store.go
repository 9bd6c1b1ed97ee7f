// Package record owns today's DailyRecord: loading it with the daily reset
// applied, saving it, and single-field updates that persist immediately.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/logger"
	"github.com/julianstephens/healthyme/internal/models"
	"github.com/julianstephens/healthyme/internal/storage"
)

var (
	// ErrInvalidField is returned by UpdateField for an unknown field name
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidValue is returned by UpdateField when the value doesn't fit the field
	ErrInvalidValue = errors.New("invalid value")
)

// LoadStatus reports how Load arrived at the record it returned
type LoadStatus int

const (
	// StatusOK means today's saved record was returned unchanged
	StatusOK LoadStatus = iota
	// StatusStale means a previous day's record was reset for today
	StatusStale
	// StatusNotFound means nothing was saved yet
	StatusNotFound
	// StatusCorrupt means the saved content could not be parsed
	StatusCorrupt
	// StatusUnreadable means the backing file could not be read
	StatusUnreadable
)

func (s LoadStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusStale:
		return "stale"
	case StatusNotFound:
		return "not found"
	case StatusCorrupt:
		return "corrupt"
	case StatusUnreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// Field names a DailyRecord field that UpdateField can change
type Field string

const (
	FieldWater    Field = Field(models.GoalWater)
	FieldExercise Field = Field(models.GoalExercise)
	FieldSleep    Field = Field(models.GoalSleep)
	FieldMood     Field = "mood"
	FieldNotes    Field = "notes"
)

// Store is the single authority for reading and writing the DailyRecord.
type Store struct {
	provider storage.Provider
	now      func() time.Time
	loc      *time.Location
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used to decide what "today" is
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLocation sets the timezone in which calendar days are compared
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func New(provider storage.Provider, opts ...Option) *Store {
	s := &Store{
		provider: provider,
		now:      time.Now,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current date (YYYY-MM-DD) in the store's timezone
func (s *Store) Today() string {
	return s.now().In(s.loc).Format(constants.DateFormat)
}

// Path returns the location of the backing store
func (s *Store) Path() string {
	return s.provider.Path()
}

func (s *Store) Close() error {
	return s.provider.Close()
}

// Load returns the working copy for today. It never fails: a missing,
// unreadable or corrupt store yields a fresh record, and a record saved on
// another day is reset, including its mood and notes.
func (s *Store) Load() (models.DailyRecord, LoadStatus) {
	today := s.Today()

	saved, err := s.provider.Read()
	if err != nil {
		status := statusFor(err)
		if status == StatusNotFound {
			logger.Debug("No saved record yet", "path", s.provider.Path())
		} else {
			logger.Warn("Falling back to a fresh record", "status", status, "error", err)
		}
		return models.NewDailyRecord(today), status
	}

	if saved.Date != today {
		logger.Info("Resetting stale record", "saved", saved.Date, "today", today)
		return models.NewDailyRecord(today), StatusStale
	}

	return saved, StatusOK
}

// Snapshot returns the saved record exactly as stored, for statistics.
// Errors wrap the storage taxonomy.
func (s *Store) Snapshot() (models.DailyRecord, error) {
	return s.provider.Read()
}

// Save stamps the record with today's date and replaces the stored record.
// On failure the error wraps storage.ErrIO and the caller keeps its copy.
func (s *Store) Save(record models.DailyRecord) (models.DailyRecord, error) {
	record = record.Clone()
	record.Date = s.Today()

	if err := s.provider.Write(record); err != nil {
		logger.Error("Failed to save record", "path", s.provider.Path(), "error", err)
		if !errors.Is(err, storage.ErrIO) {
			err = fmt.Errorf("%w: %v", storage.ErrIO, err)
		}
		return record, err
	}

	logger.Debug("Saved record", "date", record.Date, "water", record.Water, "exercise", record.Exercise, "sleep", record.Sleep)
	return record, nil
}

// UpdateField loads today's record, changes one field and saves it.
// Goal fields take a boolean string; notes are trimmed of surrounding whitespace.
func (s *Store) UpdateField(field Field, value string) (models.DailyRecord, error) {
	apply, err := fieldSetter(field, value)
	if err != nil {
		return models.DailyRecord{}, err
	}

	record, _ := s.Load()
	apply(&record)
	return s.Save(record)
}

// SetGoal marks a goal done or not done and persists it
func (s *Store) SetGoal(goal models.Goal, done bool) (models.DailyRecord, error) {
	return s.UpdateField(Field(goal), strconv.FormatBool(done))
}

// SetMood persists the mood label
func (s *Store) SetMood(mood string) (models.DailyRecord, error) {
	return s.UpdateField(FieldMood, mood)
}

// SetNotes persists the notes text
func (s *Store) SetNotes(notes string) (models.DailyRecord, error) {
	return s.UpdateField(FieldNotes, notes)
}

// ParseField parses a field name case-insensitively
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FieldWater, FieldExercise, FieldSleep, FieldMood, FieldNotes:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidField, name)
}

func fieldSetter(field Field, value string) (func(*models.DailyRecord), error) {
	switch field {
	case FieldWater, FieldExercise, FieldSleep:
		done, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %q is not a boolean", ErrInvalidValue, field, value)
		}
		goal := models.Goal(field)
		return func(r *models.DailyRecord) { r.SetDone(goal, done) }, nil
	case FieldMood:
		mood := strings.TrimSpace(value)
		if mood == "" {
			return nil, fmt.Errorf("%w for mood: label cannot be empty", ErrInvalidValue)
		}
		return func(r *models.DailyRecord) { r.Mood = &mood }, nil
	case FieldNotes:
		notes := strings.TrimSpace(value)
		return func(r *models.DailyRecord) { r.Notes = &notes }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidField, field)
}

func statusFor(err error) LoadStatus {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return StatusNotFound
	case errors.Is(err, storage.ErrCorruptData):
		return StatusCorrupt
	default:
		return StatusUnreadable
	}
}
