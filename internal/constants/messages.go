package constants

const (
	MessageAllGoalsMet  = "🎉 Great job staying healthy today!"
	MessageGoalsPending = "💡 Try to complete your health goals!"
	MessageSaved        = "✅ Progress saved!"
	MessageSaveFailed   = "Error saving progress"
	MessageMoodSaved    = "Mood saved: %s"
	MessageMoodFailed   = "Error saving mood"
	MessageNotesSaved   = "Notes saved successfully!"
	MessageNotesFailed  = "Error saving notes"

	StatsEmpty         = "Start your health journey today! 🌱"
	StatsEncouragement = "Keep up the good work!\nEvery healthy choice counts! 🌟"
)
