package relay

import (
	"fmt"
	"strings"
)

const promptTemplate = `A Japanese language learner just finished a flashcard test.
- They completely forgot these kanji: %s.
- They found these kanji hard: %s.
- They were good with: %s.
- They found these easy: %s.

Based on this, provide a short (2-3 sentences), encouraging, and helpful analysis.
Focus on the most difficult kanji (%s).
Give one specific, actionable tip to help them improve.
Format the response as a single JSON object with one key: "feedback". The value should be a single string.`

// BuildPrompt renders the instruction sent to the model.
func BuildPrompt(b Buckets) string {
	return fmt.Sprintf(promptTemplate,
		joinOrNone(b.Forgot),
		joinOrNone(b.Hard),
		joinOrNone(b.Good),
		joinOrNone(b.Easy),
		joinOrNone(b.Focus()),
	)
}

func joinOrNone(xs []string) string {
	if len(xs) == 0 {
		return "None"
	}
	return strings.Join(xs, ", ")
}
