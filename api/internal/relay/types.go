package relay

import "encoding/json"

type Rating string

const (
	RatingForgot Rating = "forgot"
	RatingHard   Rating = "hard"
	RatingGood   Rating = "good"
	RatingEasy   Rating = "easy"
)

// TestResult is one flashcard rating from a learner's test.
type TestResult struct {
	KanjiChar string `json:"kanjiChar"`
	Rating    Rating `json:"rating"`
}

// Request is the POST body accepted by the relay.
type Request struct {
	TestResults json.RawMessage `json:"testResults"`
}

// Buckets holds the unique kanji per rating.
type Buckets struct {
	Forgot []string
	Hard   []string
	Good   []string
	Easy   []string
}

// Focus lists the kanji the learner struggled with: forgotten first, then hard.
func (b Buckets) Focus() []string {
	out := make([]string, 0, len(b.Forgot)+len(b.Hard))
	out = append(out, b.Forgot...)
	return append(out, b.Hard...)
}

// Result is the model's answer relayed to the caller.
type Result struct {
	// Raw is the decoded answer object, passed through untouched.
	Raw json.RawMessage
	// Feedback is Raw's "feedback" string; empty if the model omitted it.
	Feedback string
}
