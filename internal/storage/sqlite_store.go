package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/healthyme/internal/models"
)

const recordSchema = `CREATE TABLE daily_record (
	id       INTEGER PRIMARY KEY CHECK (id = 1),
	date     TEXT    NOT NULL,
	water    INTEGER NOT NULL DEFAULT 0,
	exercise INTEGER NOT NULL DEFAULT 0,
	sleep    INTEGER NOT NULL DEFAULT 0,
	mood     TEXT,
	notes    TEXT
)`

// SQLiteStore keeps the record as the single row of a one-table database.
// Writes build a fresh database beside the target and rename it into place,
// so the connection is only held for the duration of each call.
type SQLiteStore struct {
	path string
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Read() (models.DailyRecord, error) {
	// sql.Open would create the file, so check for it first
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.DailyRecord{}, fmt.Errorf("%w at %s", ErrNotFound, s.path)
		}
		return models.DailyRecord{}, fmt.Errorf("%w: failed to stat %s: %v", ErrIO, s.path, err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("%w: failed to open database: %v", ErrIO, err)
	}
	defer db.Close()

	exists, err := tableExists(db, "daily_record")
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("%w: %s is not a valid database: %v", ErrCorruptData, s.path, err)
	}
	if !exists {
		return models.DailyRecord{}, fmt.Errorf("%w at %s", ErrNotFound, s.path)
	}

	var (
		record models.DailyRecord
		mood   sql.NullString
		notes  sql.NullString
	)
	row := db.QueryRow("SELECT date, water, exercise, sleep, mood, notes FROM daily_record WHERE id = 1")
	if err := row.Scan(&record.Date, &record.Water, &record.Exercise, &record.Sleep, &mood, &notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DailyRecord{}, fmt.Errorf("%w at %s", ErrNotFound, s.path)
		}
		return models.DailyRecord{}, fmt.Errorf("%w: failed to read record: %v", ErrCorruptData, err)
	}
	if mood.Valid {
		record.Mood = &mood.String
	}
	if notes.Valid {
		record.Notes = &notes.String
	}

	if err := validateDate(record.Date); err != nil {
		return models.DailyRecord{}, err
	}

	return record, nil
}

func (s *SQLiteStore) Write(record models.DailyRecord) error {
	if err := ensureDir(s.path); err != nil {
		return err
	}

	tmpPath := tempPathFor(s.path)
	if err := writeRecordDB(tmpPath, record); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return replaceFile(tmpPath, s.path)
}

func writeRecordDB(path string, record models.DailyRecord) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(recordSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	_, err = db.Exec(
		"INSERT INTO daily_record (id, date, water, exercise, sleep, mood, notes) VALUES (1, ?, ?, ?, ?, ?, ?)",
		record.Date, record.Water, record.Exercise, record.Sleep, nullString(record.Mood), nullString(record.Notes),
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return db.Close()
}

func (s *SQLiteStore) Close() error {
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// tableExists checks if a table exists in the SQLite database.
// The check is case-insensitive to match SQLite's behavior.
func tableExists(db *sql.DB, tableName string) (bool, error) {
	var count int
	row := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", tableName)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
