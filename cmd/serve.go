package main

import (
	"context"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository/drafts"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/seed"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/transport/http/server/handlers-fiber"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/usecase"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var withSeed bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if err := cfg.Auth.Validate(); err != nil {
				log.Errorw("auth configuration error", "error", err)
				return err
			}
			ctx := cmd.Context()

			repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
			if err != nil {
				log.Errorw("repository initialization error", "error", err)
				return err
			}
			if err := repo.OnStart(ctx); err != nil {
				log.Errorw("repository start error", "error", err)
				return err
			}
			defer func() {
				if err := repo.OnStop(context.Background()); err != nil {
					log.Errorw("repository stop error", "error", err)
				}
			}()

			if withSeed || cfg.Seed.Enabled {
				if err := seed.Apply(ctx, repo, log, time.Now().UTC()); err != nil {
					log.Errorw("seed error", "error", err)
					return err
				}
			}

			store := drafts.New(log, cfg.Drafts.Capacity, cfg.Drafts.TTL)
			uc := usecase.New(log, ctx, repo, store, cfg.HTTP.RequestTimeout, cfg.Auth)
			serv := handlers_fiber.NewApp(log, uc, cfg.HTTP.RequestTimeout)

			go func() {
				if err := serv.Listen(cfg.ServerAddr()); err != nil {
					log.Errorw("failed to start server", "error", err)
				}
			}()
			log.Infow("server started", "addr", cfg.ServerAddr(), "storage", cfg.Storage.Backend)

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			done := make(chan struct{})
			go func() {
				_ = serv.Shutdown()
				close(done)
			}()

			select {
			case <-done:
			case <-shutdownCtx.Done():
				log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withSeed, "seed", false, "load the bundled sample data on start")
	return cmd
}
