package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kanji-feedback/api/internal/relay"
)

func newPromptCmd() *cobra.Command {
	var (
		file  string
		limit int64
	)
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt built from a test-results body, without calling Gemini",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := readResults(file, limit)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), relay.BuildPrompt(relay.Partition(results)))
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", `request body JSON ({"testResults": [...]}); "-" reads stdin`)
	cmd.Flags().Int64Var(&limit, "max-bytes", 1<<20, "reject bodies larger than this")
	return cmd
}

func newAskCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Send one test-results body to Gemini and print the relayed answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			results, err := readResults(file, cfg.MaxBodyBytes)
			if err != nil {
				return err
			}

			gen, err := newGenerator(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer gen.Close()

			out, err := relay.NewService(gen, log).Analyze(cmd.Context(), results)
			if err != nil {
				return fmt.Errorf("%s error: %w", relay.KindOf(err), err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out.Raw))
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", `request body JSON ({"testResults": [...]}); "-" reads stdin`)
	return cmd
}
