package stats

import (
	"fmt"
	"strings"

	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/models"
	"github.com/julianstephens/healthyme/internal/record"
	"github.com/julianstephens/healthyme/internal/utils"
)

// Summary renders the statistics panel for the saved record. A nil err with
// a record from another day is labelled with its date rather than "Today".
func Summary(saved models.DailyRecord, err error, today string) string {
	if err != nil {
		return constants.StatsEmpty
	}

	completion := record.ComputeCompletion(saved)

	var b strings.Builder
	b.WriteString(heading(saved.Date, today))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Tasks Completed: %d/%d\n", completion.Completed, completion.Total)
	fmt.Fprintf(&b, "Success Rate: %.1f%%\n\n", completion.Rate)
	b.WriteString("Daily Checklist:\n")
	for _, g := range models.Goals {
		mark := "❌"
		if saved.Done(g) {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%s: %s\n", g.Label(), mark)
	}
	if mood := saved.MoodLabel(); mood != "" {
		fmt.Fprintf(&b, "Mood: %s\n", mood)
	}
	b.WriteString("\n")
	b.WriteString(constants.StatsEncouragement)
	return b.String()
}

func heading(date, today string) string {
	if date == today {
		return "Today's Health Summary:"
	}
	days, err := utils.DaysBetween(date, today)
	if err != nil || days <= 0 {
		return fmt.Sprintf("Health Summary for %s:", date)
	}
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return fmt.Sprintf("Last Saved Summary (%s, %d %s ago):", date, days, unit)
}
