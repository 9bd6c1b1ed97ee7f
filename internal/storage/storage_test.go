package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/healthyme/internal/models"
)

func strPtr(s string) *string { return &s }

// providers returns one provider of each kind rooted in a fresh temp dir
func providers(t *testing.T) map[string]Provider {
	dir := t.TempDir()
	return map[string]Provider{
		"json":   NewJSONStore(filepath.Join(dir, "health_data.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "health_data.db")),
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		path     string
		wantJSON bool
	}{
		{path: "health_data.json", wantJSON: true},
		{path: "health_data", wantJSON: true},
		{path: "health.db", wantJSON: false},
		{path: "health.SQLITE", wantJSON: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := Open(tt.path)
			_, isJSON := p.(*JSONStore)
			if isJSON != tt.wantJSON {
				t.Errorf("Open(%q) returned %T", tt.path, p)
			}
			if p.Path() != tt.path {
				t.Errorf("Path() = %q, want %q", p.Path(), tt.path)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	got, err := ExpandPath("~/.config/healthyme/health_data.json")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	want := filepath.Join(home, ".config/healthyme/health_data.json")
	if got != want {
		t.Errorf("ExpandPath = %q, want %q", got, want)
	}

	got, err = ExpandPath("/tmp/health.json")
	if err != nil || got != "/tmp/health.json" {
		t.Errorf("ExpandPath changed an absolute path: %q, %v", got, err)
	}
}

func TestReadMissing(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			_, err := p.Read()
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Read() on missing store error = %v, want ErrNotFound", err)
			}
			if _, statErr := os.Stat(p.Path()); !os.IsNotExist(statErr) {
				t.Errorf("Read() created %s", p.Path())
			}
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	records := []models.DailyRecord{
		{Date: "2026-10-19", Water: true, Exercise: false, Sleep: true},
		{Date: "2026-10-19", Water: true, Exercise: true, Sleep: true, Mood: strPtr("😊 Great"), Notes: strPtr("ran 5k")},
		{Date: "2026-10-19", Mood: strPtr(""), Notes: strPtr("")},
	}

	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			for _, want := range records {
				if err := p.Write(want); err != nil {
					t.Fatalf("Write() failed: %v", err)
				}
				got, err := p.Read()
				if err != nil {
					t.Fatalf("Read() failed: %v", err)
				}
				if got.Date != want.Date || got.Water != want.Water || got.Exercise != want.Exercise || got.Sleep != want.Sleep {
					t.Errorf("Read() = %+v, want %+v", got, want)
				}
				if (got.Mood == nil) != (want.Mood == nil) || got.MoodLabel() != want.MoodLabel() {
					t.Errorf("mood = %v, want %v", got.Mood, want.Mood)
				}
				if (got.Notes == nil) != (want.Notes == nil) || got.NotesText() != want.NotesText() {
					t.Errorf("notes = %v, want %v", got.Notes, want.Notes)
				}
			}
		})
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Write(models.NewDailyRecord("2026-10-19")); err != nil {
				t.Fatalf("Write() failed: %v", err)
			}
			entries, err := os.ReadDir(filepath.Dir(p.Path()))
			if err != nil {
				t.Fatal(err)
			}
			for _, e := range entries {
				if strings.Contains(e.Name(), ".tmp-") {
					t.Errorf("temp file left behind: %s", e.Name())
				}
			}
		})
	}
}

func TestWriteFailureIsIOError(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the data directory should be makes the write fail
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	for _, p := range []Provider{
		NewJSONStore(filepath.Join(blocker, "health_data.json")),
		NewSQLiteStore(filepath.Join(blocker, "health_data.db")),
	} {
		err := p.Write(models.NewDailyRecord("2026-10-19"))
		if !errors.Is(err, ErrIO) {
			t.Errorf("%T.Write() error = %v, want ErrIO", p, err)
		}
	}
}

func TestWriteOverDirectoryCleansUp(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "health_data.json")
	if err := os.Mkdir(target, 0700); err != nil {
		t.Fatal(err)
	}
	// Keep the directory non-empty so the rename cannot replace it
	if err := os.WriteFile(filepath.Join(target, "keep"), nil, 0600); err != nil {
		t.Fatal(err)
	}

	err := NewJSONStore(target).Write(models.NewDailyRecord("2026-10-19"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("Write() error = %v, want ErrIO", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the target directory to remain, found %d entries", len(entries))
	}
}

func TestJSONReadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "truncated", content: `{"date": "2026-10-19", "water": tr`},
		{name: "not json", content: "hello"},
		{name: "array", content: `[true, false]`},
		{name: "wrong type", content: `{"date": "2026-10-19", "water": "yes"}`},
		{name: "null", content: `null`},
		{name: "missing date", content: `{"water": true}`},
		{name: "bad date", content: `{"date": "19/10/2026", "water": true}`},
		{name: "empty", content: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "health_data.json")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := NewJSONStore(path).Read()
			if !errors.Is(err, ErrCorruptData) {
				t.Errorf("Read() error = %v, want ErrCorruptData", err)
			}
		})
	}
}

func TestJSONReadToleratesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health_data.json")
	content := `{"date": "2026-10-19", "water": true, "exercise": false, "sleep": true, "steps": 9000, "theme": {"dark": true}}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := NewJSONStore(path).Read()
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if !got.Water || got.Exercise || !got.Sleep {
		t.Errorf("Read() = %+v", got)
	}
	if got.Mood != nil || got.Notes != nil {
		t.Errorf("absent mood/notes should stay nil, got %v %v", got.Mood, got.Notes)
	}
}

func TestJSONWriteOmitsUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health_data.json")
	if err := NewJSONStore(path).Write(models.DailyRecord{Date: "2026-10-19", Water: true}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"date\": \"2026-10-19\",\n  \"water\": true,\n  \"exercise\": false,\n  \"sleep\": false\n}\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", string(data), want)
	}
}

func TestSQLiteReadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health_data.db")
	if err := os.WriteFile(path, []byte(strings.Repeat("this is not a database ", 64)), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := NewSQLiteStore(path).Read()
	if !errors.Is(err, ErrCorruptData) {
		t.Errorf("Read() error = %v, want ErrCorruptData", err)
	}

	// Saving replaces the corrupt file
	if err := NewSQLiteStore(path).Write(models.NewDailyRecord("2026-10-19")); err != nil {
		t.Fatalf("Write() over corrupt file failed: %v", err)
	}
	if _, err := NewSQLiteStore(path).Read(); err != nil {
		t.Errorf("Read() after rewrite failed: %v", err)
	}
}
