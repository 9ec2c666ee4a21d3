package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kanji-feedback/api/internal/config"
	"kanji-feedback/api/internal/gemini"
	"kanji-feedback/api/internal/logging"
	"kanji-feedback/api/internal/relay"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "feedback-relay",
		Short: "Relay flashcard test results to Gemini and return study feedback",
		// No subcommand means serve, as on the hosting platform.
		RunE:          func(cmd *cobra.Command, args []string) error { return runServe(cmd.Context()) },
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newPromptCmd(), newAskCmd())
	return root
}

// generator is what the relay needs from a transport, plus cleanup.
type generator interface {
	relay.Generator
	Name() string
	GetModel() string
	Close() error
}

type restGenerator struct{ *gemini.Client }

func (restGenerator) Close() error { return nil }

func newGenerator(ctx context.Context, cfg *config.Config) (generator, error) {
	g := cfg.Gemini
	switch g.Transport {
	case config.TransportSDK:
		c, err := gemini.NewSDK(ctx, g.APIKey, g.Model)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return restGenerator{gemini.New(g.APIKey, g.Model, g.BaseURL, g.Timeout)}, nil
	}
}

func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// readResults decodes a request body from path, or stdin when path is "-".
func readResults(path string, limit int64) ([]relay.TestResult, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	return relay.DecodeRequest(r, limit)
}
