package system

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yalgashev/survey/pkg/database"
)

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configured database if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}

			fmt.Printf("Ensuring database %q exists...\n", cfg.Database.DBName)
			if err := database.EnsureDatabase(cmd.Context(), cfg.Database); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Println("Database initialized successfully.")
			return nil
		},
	}

	return cmd
}
