package task

import (
	"fmt"
	"math/rand"
)

var freshStartMessages = []string{
	"Hey there! Ready to make today count?",
	"Let's start with just one task. You've got this.",
	"Every journey starts with a single step. Pick one.",
	"Today's a fresh start. Which task feels easiest?",
}

// Encouragement picks the dashboard message from the day's progress and the
// current streak. Stateless; only the zero-completed case is randomized.
func Encouragement(completed, total, streakCount int) string {
	if completed == 0 && total > 0 {
		return freshStartMessages[rand.Intn(len(freshStartMessages))]
	}

	if completed == total && total > 0 {
		switch {
		case streakCount > 7:
			return fmt.Sprintf("%d days strong! You're building something real here.", streakCount)
		case streakCount == 1:
			return "All done! That's 1 day in a row. Keep it going!"
		case streakCount > 1:
			return fmt.Sprintf("All done! That's %d days in a row. Keep it going!", streakCount)
		default:
			return "All tasks done! That's how you build momentum."
		}
	}

	if completed > 0 && completed < total {
		return fmt.Sprintf("Nice! %d/%d done. Finish strong?", completed, total)
	}

	return "Ready when you are. One task at a time."
}
