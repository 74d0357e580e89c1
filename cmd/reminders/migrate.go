package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.PostgresqlURL)
		if err != nil {
			return fmt.Errorf("could not connect to DB for applying migrations: %w", err)
		}
		defer m.Close()

		if migrateDown {
			err = m.Down()
		} else {
			err = m.Up()
		}
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Fprintln(cmd.OutOrStdout(), "No migrations to apply.")
			return nil
		}
		if err != nil {
			return err
		}

		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Migrated to version %d (dirty: %t).\n", version, dirty)
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "roll back every migration")
	rootCmd.AddCommand(migrateCmd)
}
