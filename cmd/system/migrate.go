package system

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/yalgashev/survey/pkg/database"
)

func NewMigrateCommand() *cobra.Command {
	var unsafe bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Apply the ent schema to the configured database.

Safe mode, the default, never drops columns or indexes. Pass --unsafe to allow it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			client, err := database.NewEntClient(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			safe := cfg.Database.Migrations.SafeMode && !unsafe
			slog.Info("running migrations", "database", cfg.Database.DBName, "safe_mode", safe)
			if err := database.MigrateEnt(ctx, client, safe); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			fmt.Println("Migrations executed successfully.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&unsafe, "unsafe", false, "Allow dropping columns and indexes")

	return cmd
}
