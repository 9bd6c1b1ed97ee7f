package models

import (
	"fmt"
	"strings"
)

// Goal identifies one of the three tracked daily health habits
type Goal string

const (
	GoalWater    Goal = "water"
	GoalExercise Goal = "exercise"
	GoalSleep    Goal = "sleep"
)

// Goals lists the tracked goals in display order
var Goals = []Goal{GoalWater, GoalExercise, GoalSleep}

// Moods are the labels offered by the mood picker
var Moods = []string{"😊 Great", "🙂 Good", "😐 Okay", "😔 Not Great", "😢 Bad"}

// ParseGoal parses a goal name case-insensitively
func ParseGoal(s string) (Goal, error) {
	switch Goal(strings.ToLower(strings.TrimSpace(s))) {
	case GoalWater:
		return GoalWater, nil
	case GoalExercise:
		return GoalExercise, nil
	case GoalSleep:
		return GoalSleep, nil
	}
	return "", fmt.Errorf("unknown goal %q (expected water, exercise or sleep)", s)
}

// Prompt returns the checklist question for the goal
func (g Goal) Prompt() string {
	switch g {
	case GoalWater:
		return "Did you drink enough water today? 💧"
	case GoalExercise:
		return "Did you exercise today? 🏃"
	case GoalSleep:
		return "Did you sleep well last night? 😴"
	default:
		return string(g)
	}
}

// Label returns the short name shown in statistics
func (g Goal) Label() string {
	switch g {
	case GoalWater:
		return "Water"
	case GoalExercise:
		return "Exercise"
	case GoalSleep:
		return "Sleep"
	default:
		return string(g)
	}
}

// DailyRecord is the single persisted record of one day's goals, mood and notes.
// Mood and Notes are nil when not yet set, which is distinct from an empty string.
type DailyRecord struct {
	Date     string  `json:"date"` // YYYY-MM-DD format
	Water    bool    `json:"water"`
	Exercise bool    `json:"exercise"`
	Sleep    bool    `json:"sleep"`
	Mood     *string `json:"mood,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// NewDailyRecord returns an empty record for the given day
func NewDailyRecord(date string) DailyRecord {
	return DailyRecord{Date: date}
}

func (r DailyRecord) Done(g Goal) bool {
	switch g {
	case GoalWater:
		return r.Water
	case GoalExercise:
		return r.Exercise
	case GoalSleep:
		return r.Sleep
	}
	return false
}

func (r *DailyRecord) SetDone(g Goal, done bool) {
	switch g {
	case GoalWater:
		r.Water = done
	case GoalExercise:
		r.Exercise = done
	case GoalSleep:
		r.Sleep = done
	}
}

func (r *DailyRecord) Toggle(g Goal) {
	r.SetDone(g, !r.Done(g))
}

// ResetGoals marks all three goals as not done
func (r *DailyRecord) ResetGoals() {
	r.Water = false
	r.Exercise = false
	r.Sleep = false
}

// Clone returns a deep copy so callers can mutate mood and notes independently
func (r DailyRecord) Clone() DailyRecord {
	c := r
	if r.Mood != nil {
		mood := *r.Mood
		c.Mood = &mood
	}
	if r.Notes != nil {
		notes := *r.Notes
		c.Notes = &notes
	}
	return c
}

// MoodLabel returns the mood or an empty string when unset
func (r DailyRecord) MoodLabel() string {
	if r.Mood == nil {
		return ""
	}
	return *r.Mood
}

// NotesText returns the notes or an empty string when unset
func (r DailyRecord) NotesText() string {
	if r.Notes == nil {
		return ""
	}
	return *r.Notes
}

// Completion summarizes how many goals were met
type Completion struct {
	Completed int
	Total     int
	Rate      float64 // percentage rounded to one decimal place
}

// String formats the rate the way the statistics panel shows it
func (c Completion) String() string {
	return fmt.Sprintf("%d/%d (%.1f%%)", c.Completed, c.Total, c.Rate)
}
