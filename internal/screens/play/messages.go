package play

import "algebramon/internal/engine"

// questionReadyMsg delivers the next question after its pacing delay.
type questionReadyMsg struct {
	q engine.QuestionView
}
