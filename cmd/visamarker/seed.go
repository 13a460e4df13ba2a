package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/pkordes/visamarker/internal/repo"
	"github.com/pkordes/visamarker/migrations"
)

// newSeedCmd copies the YAML visa table into Postgres so the API server can
// serve it with DATABASE_URL set.
func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate DATABASE_URL and load the YAML visa table into it",
		Long: `Applies the database migrations, then upserts every record of the YAML
visa table (VISA_TABLE_PATH, or the built-in table) into visa_records.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.DatabaseURL == "" {
				return errors.New("seed: DATABASE_URL is not set")
			}
			n, err := seed(cmd.Context(), a.cfg.DatabaseURL, a.cfg.VisaTablePath)
			if err != nil {
				return err
			}
			a.log.Info("visa table seeded", "records", n)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d visa records\n", n)
			return err
		},
	}
}

func seed(ctx context.Context, databaseURL, tablePath string) (int, error) {
	source, err := repo.LoadYAMLVisaRepo(tablePath)
	if err != nil {
		return 0, err
	}
	records, err := source.List(ctx)
	if err != nil {
		return 0, err
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return 0, fmt.Errorf("seed: connect: %w", err)
	}
	defer pool.Close()

	if _, err := migrations.Up(ctx, stdlib.OpenDBFromPool(pool)); err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	dst := repo.NewPGVisaRepo(tx)
	for _, rec := range records {
		if err := dst.Upsert(ctx, rec); err != nil {
			return 0, fmt.Errorf("seed: %s: %w", rec.Destination, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("seed: commit: %w", err)
	}
	return len(records), nil
}
