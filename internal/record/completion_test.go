package record

import (
	"testing"

	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/models"
)

func TestComputeCompletion(t *testing.T) {
	tests := []struct {
		name          string
		record        models.DailyRecord
		wantCompleted int
		wantRate      float64
	}{
		{name: "none", record: models.DailyRecord{}, wantCompleted: 0, wantRate: 0},
		{name: "one", record: models.DailyRecord{Sleep: true}, wantCompleted: 1, wantRate: 33.3},
		{name: "two", record: models.DailyRecord{Water: true, Exercise: true}, wantCompleted: 2, wantRate: 66.7},
		{name: "all", record: models.DailyRecord{Water: true, Exercise: true, Sleep: true}, wantCompleted: 3, wantRate: 100},
		{name: "mood and notes ignored", record: models.DailyRecord{Mood: strPtr("😊 Great"), Notes: strPtr("x")}, wantCompleted: 0, wantRate: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCompletion(tt.record)
			if got.Completed != tt.wantCompleted || got.Rate != tt.wantRate || got.Total != 3 {
				t.Errorf("ComputeCompletion() = %+v, want {%d 3 %v}", got, tt.wantCompleted, tt.wantRate)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	if got := Message(true, true, false); got != constants.MessageGoalsPending {
		t.Errorf("Message(true, true, false) = %q", got)
	}
	if got := Message(true, true, true); got != constants.MessageAllGoalsMet {
		t.Errorf("Message(true, true, true) = %q", got)
	}
}

func TestAllGoalsMet(t *testing.T) {
	if AllGoalsMet(models.DailyRecord{Water: true, Exercise: true}) {
		t.Error("AllGoalsMet with sleep unset should be false")
	}
	r := models.DailyRecord{Water: true, Exercise: true, Sleep: true}
	if !AllGoalsMet(r) {
		t.Error("AllGoalsMet with every goal done should be true")
	}
	if MessageFor(r) != constants.MessageAllGoalsMet {
		t.Errorf("MessageFor() = %q", MessageFor(r))
	}
}
