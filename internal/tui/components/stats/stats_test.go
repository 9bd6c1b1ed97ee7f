package stats

import (
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/models"
)

func TestSummary(t *testing.T) {
	mood := "🙂 Good"
	saved := models.DailyRecord{Date: "2026-10-19", Water: true, Exercise: true, Mood: &mood}

	got := Summary(saved, nil, "2026-10-19")

	for _, want := range []string{
		"Today's Health Summary:",
		"Tasks Completed: 2/3",
		"Success Rate: 66.7%",
		"Water: ✅",
		"Exercise: ✅",
		"Sleep: ❌",
		"Mood: 🙂 Good",
		"Every healthy choice counts!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() missing %q in:\n%s", want, got)
		}
	}
}

func TestSummaryWithoutData(t *testing.T) {
	got := Summary(models.DailyRecord{}, errors.New("no saved record"), "2026-10-19")
	if got != constants.StatsEmpty {
		t.Errorf("Summary() = %q, want %q", got, constants.StatsEmpty)
	}
}

func TestSummaryHeading(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{date: "2026-10-19", want: "Today's Health Summary:"},
		{date: "2026-10-18", want: "Last Saved Summary (2026-10-18, 1 day ago):"},
		{date: "2026-10-12", want: "Last Saved Summary (2026-10-12, 7 days ago):"},
		{date: "2026-10-20", want: "Health Summary for 2026-10-20:"},
	}

	for _, tt := range tests {
		got := Summary(models.DailyRecord{Date: tt.date}, nil, "2026-10-19")
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("Summary(%s) heading = %q, want %q", tt.date, strings.SplitN(got, "\n", 2)[0], tt.want)
		}
	}
}
