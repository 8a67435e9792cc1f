package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pgstore "github.com/smartclinic/clinic-api/internal/infrastructure/db/postgres"
	"github.com/smartclinic/clinic-api/internal/pkg/config"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := pgstore.MigrateUp(cfg.Postgres.URL); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	})

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := pgstore.MigrateDown(cfg.Postgres.URL, steps); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s).\n", steps)
			return nil
		},
	}
	downCmd.Flags().Int("steps", 1, "Number of migrations to roll back")
	cmd.AddCommand(downCmd)

	return cmd
}
