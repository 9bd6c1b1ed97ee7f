package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/models"
)

type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Read() (models.DailyRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.DailyRecord{}, fmt.Errorf("%w at %s", ErrNotFound, s.path)
		}
		return models.DailyRecord{}, fmt.Errorf("%w: failed to read %s: %v", ErrIO, s.path, err)
	}

	// Unknown keys are ignored so newer files stay readable
	var record models.DailyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.DailyRecord{}, fmt.Errorf("%w: failed to parse %s: %v", ErrCorruptData, s.path, err)
	}
	if err := validateDate(record.Date); err != nil {
		return models.DailyRecord{}, err
	}

	return record, nil
}

func (s *JSONStore) Write(record models.DailyRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to serialize record: %v", ErrIO, err)
	}
	data = append(data, '\n')

	if err := ensureDir(s.path); err != nil {
		return err
	}

	tmpPath := tempPathFor(s.path)
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constants.DataFileMode)
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", ErrIO, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to write record: %v", ErrIO, err)
	}
	// Sync to ensure data is on disk before the rename makes it visible
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to sync record: %v", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to close temp file: %v", ErrIO, err)
	}

	return replaceFile(tmpPath, s.path)
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}
