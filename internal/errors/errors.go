package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/healthyme/internal/logger"
	"github.com/julianstephens/healthyme/internal/storage"
)

// Format formats an error message with a consistent "Error: " prefix,
// followed by a hint line for storage failures the user can act on.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\n       " + hint
	}
	return msg
}

// Hint returns a short suggestion for storage errors, or "" when there is none
func Hint(err error) string {
	switch {
	case errors.Is(err, storage.ErrIO):
		return "Check that the data directory is writable and the disk is not full."
	case errors.Is(err, storage.ErrCorruptData):
		return "The data file could not be parsed; saving today's progress will replace it."
	default:
		return ""
	}
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
