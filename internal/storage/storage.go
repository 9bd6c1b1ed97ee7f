package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/healthyme/internal/constants"
)

// Open returns the provider for path: SQLite for .db/.sqlite files, JSON otherwise.
func Open(path string) Provider {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStore(path)
	default:
		return NewJSONStore(path)
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func validateDate(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("%w: invalid date %q", ErrCorruptData, date)
	}
	return nil
}

// tempPathFor returns a unique sibling path used to stage a replacement file.
func tempPathFor(path string) string {
	return path + constants.TempFileSeparator + uuid.NewString()
}

// ensureDir creates the directory holding path if it doesn't exist
func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DataDirMode); err != nil {
		return fmt.Errorf("%w: failed to create data directory: %v", ErrIO, err)
	}
	return nil
}

// replaceFile renames a fully written temp file over path, removing it on failure.
func replaceFile(tmpPath, path string) error {
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to replace %s: %v", ErrIO, path, err)
	}
	return nil
}
