package record

import (
	"math"

	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/models"
)

// ComputeCompletion counts the goals marked done. Mood and notes never count.
func ComputeCompletion(r models.DailyRecord) models.Completion {
	completed := 0
	for _, g := range models.Goals {
		if r.Done(g) {
			completed++
		}
	}
	total := len(models.Goals)
	rate := float64(completed) / float64(total) * 100
	return models.Completion{
		Completed: completed,
		Total:     total,
		Rate:      math.Round(rate*10) / 10,
	}
}

// AllGoalsMet reports whether every goal is done
func AllGoalsMet(r models.DailyRecord) bool {
	return r.Water && r.Exercise && r.Sleep
}

// Message picks the motivational line for the three checkbox states
func Message(water, exercise, sleep bool) string {
	if water && exercise && sleep {
		return constants.MessageAllGoalsMet
	}
	return constants.MessageGoalsPending
}

// MessageFor is Message applied to a record
func MessageFor(r models.DailyRecord) string {
	return Message(r.Water, r.Exercise, r.Sleep)
}
