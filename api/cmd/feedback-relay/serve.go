package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kanji-feedback/api/internal/handle"
	"kanji-feedback/api/internal/httpserver"
	"kanji-feedback/api/internal/relay"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	defer gen.Close()

	svc := relay.NewService(gen, log)
	h := handle.New(svc, handle.Options{
		AllowedOrigins: cfg.CORS.Origins(),
		AllowedHeaders: cfg.CORS.Headers(),
		MaxBodyBytes:   cfg.MaxBodyBytes,
	}, log)
	router := httpserver.NewRouter(h, log)

	log.Info("starting",
		zap.String("engine", gen.Name()),
		zap.String("model", gen.GetModel()),
	)
	return httpserver.New(cfg.Server.Addr(), router, cfg.Server.ShutdownTimeout, log).Run(ctx)
}
