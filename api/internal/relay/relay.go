package relay

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"kanji-feedback/api/internal/gemini"
)

// Generator sends one prompt to a generative-text model and returns the
// first candidate's text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	gen Generator
	log *zap.Logger
}

func NewService(gen Generator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{gen: gen, log: log}
}

// Analyze turns a batch of test results into model feedback. It makes
// exactly one upstream call and never retries.
func (s *Service) Analyze(ctx context.Context, results []TestResult) (Result, error) {
	b := Partition(results)
	prompt := BuildPrompt(b)

	s.log.Debug("relay: prompt built",
		zap.Int("results", len(results)),
		zap.Int("forgot", len(b.Forgot)),
		zap.Int("hard", len(b.Hard)),
		zap.Int("good", len(b.Good)),
		zap.Int("easy", len(b.Easy)),
		zap.Int("prompt_len", len(prompt)),
	)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return Result{}, classify(err)
	}
	return ParseAnswer(text)
}

func classify(err error) *Error {
	var se *gemini.StatusError
	switch {
	case errors.As(err, &se):
		return upstreamError(err, "Gemini API request failed: %s", se.Body)
	case errors.Is(err, gemini.ErrNoCandidates), errors.Is(err, gemini.ErrNoText), errors.Is(err, gemini.ErrBadResponse):
		return parseError(err, "Gemini response could not be read: %v", err)
	default:
		return upstreamError(err, "Gemini API request failed: %v", err)
	}
}
