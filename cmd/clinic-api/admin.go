package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartclinic/clinic-api/internal/core/service"
	pgstore "github.com/smartclinic/clinic-api/internal/infrastructure/db/postgres"
	"github.com/smartclinic/clinic-api/internal/pkg/config"
	"github.com/smartclinic/clinic-api/pkg/logger"
)

// createAdminCmd seeds an administrator. Admins cannot sign up over HTTP.
func createAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			if username == "" || password == "" {
				return errors.New("--username and --password are required")
			}

			ctx := cmd.Context()
			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment(), Service: "clinic-api"})

			pool, err := pgstore.Connect(ctx, pgstore.Config{URL: cfg.Postgres.URL})
			if err != nil {
				return err
			}
			defer pool.Close()

			codec, err := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
			if err != nil {
				return err
			}
			admin, err := service.NewAuthService(pgstore.NewAdminRepository(pool), codec, log).Create(ctx, username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %q (id %d).\n", admin.Username, admin.ID)
			return nil
		},
	}
	cmd.Flags().String("username", "", "Administrator username")
	cmd.Flags().String("password", "", "Administrator password")
	return cmd
}
