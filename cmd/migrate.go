package main

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/config"
	"github.com/MaximallyHack/Maximally-Hack-sub000/db"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository/postgres"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository/sqlite"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply snapshot table migrations for the configured backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Postgres.MigrateTimeout)
			defer cancel()

			switch cfg.Storage.Backend {
			case config.BackendPostgres:
				if err := postgres.Migrate(ctx, cfg.Postgres); err != nil {
					return err
				}
			case config.BackendSQLite:
				conn, err := sqlite.Open(ctx, cfg.SQLite.Path, cfg.SQLite.BusyTimeout)
				if err != nil {
					return err
				}
				defer conn.Close()
				if err := db.Migrate(ctx, conn, db.DialectSQLite); err != nil {
					return err
				}
			default:
				return fmt.Errorf("storage backend %q has no migrations", cfg.Storage.Backend)
			}
			log.Infow("migrations applied", "backend", cfg.Storage.Backend)
			return nil
		},
	}
}
