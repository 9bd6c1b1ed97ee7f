package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/healthyme/internal/constants"
)

func TestInit(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")

	err := Init(Config{
		Debug:   false,
		DataDir: dataDir,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Join(dataDir, constants.LogDirName)
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message", "path", "health_data.json")
	Error("Test error message")
}

func TestWarnIsWrittenToFile(t *testing.T) {
	dataDir := t.TempDir()
	if err := Init(Config{DataDir: dataDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	Debug("debug lines are filtered at warn level")
	Warn("corrupt data file", "path", "health_data.json")

	data, err := os.ReadFile(filepath.Join(dataDir, constants.LogDirName, constants.LogFileName))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "corrupt data file") {
		t.Errorf("log file missing warning, got %q", content)
	}
	if strings.Contains(content, "debug lines are filtered") {
		t.Errorf("debug message written at warn level: %q", content)
	}
}

func TestInitDebugMode(t *testing.T) {
	err := Init(Config{
		Debug:   true,
		DataDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}

	if Logger == nil {
		t.Error("Logger is nil after initialization")
	}

	Debug("Test debug message in debug mode")
	Info("Test info message in debug mode")
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}
