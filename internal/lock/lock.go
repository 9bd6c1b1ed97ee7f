// Package lock keeps two interactive sessions from editing the same data file.
package lock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/logger"
)

var (
	// ErrLocked is returned when a live process already holds the lock
	ErrLocked = errors.New("data file is in use by another healthyme session")

	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

// Lock is a pid lockfile placed beside the data file
type Lock struct {
	path string
	pid  int
}

// PathFor returns the lockfile path guarding dataPath
func PathFor(dataPath string) string {
	return filepath.Join(filepath.Dir(dataPath), constants.LockfileName)
}

// Acquire takes the lock for dataPath. A lockfile left by a process that is
// no longer running, or one that can't be parsed, is replaced.
func Acquire(dataPath string) (*Lock, error) {
	path := PathFor(dataPath)
	if err := os.MkdirAll(filepath.Dir(path), constants.DataDirMode); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	pid := getpidFunc()
	for attempt := 0; attempt < 2; attempt++ {
		err := create(path, pid)
		if err == nil {
			logger.Debug("Acquired lock", "path", path, "pid", pid)
			return &Lock{path: path, pid: pid}, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("failed to create lockfile: %w", err)
		}

		holder, err := readHolder(path)
		if err == nil && holder != pid && isRunning(holder) {
			return nil, fmt.Errorf("%w (pid %d)", ErrLocked, holder)
		}

		logger.Info("Replacing stale lockfile", "path", path, "holder", holder)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
		}
	}

	return nil, fmt.Errorf("%w: could not claim %s", ErrLocked, path)
}

// Release removes the lockfile if it is still ours
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	holder, err := readHolder(l.path)
	if err != nil || holder != l.pid {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

// Path returns the lockfile location
func (l *Lock) Path() string {
	return l.path
}

func create(path string, pid int) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(strconv.Itoa(pid) + "\n"); err != nil {
		f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}

func readHolder(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, errors.New("invalid process ID in lockfile")
	}
	return pid, nil
}

// isRunning reports whether pid belongs to a live healthyme process.
// Matching the executable name keeps a recycled pid from holding the lock.
func isRunning(pid int) bool {
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return false
	}
	return strings.HasPrefix(process.Executable(), constants.AppName)
}
