package storage

import "errors"

var (
	// ErrNotFound is returned when nothing has been saved yet
	ErrNotFound = errors.New("no saved record")
	// ErrCorruptData is returned when the stored content cannot be parsed
	ErrCorruptData = errors.New("corrupt record data")
	// ErrIO is returned when the backing file cannot be read or written
	ErrIO = errors.New("storage I/O failed")
)
