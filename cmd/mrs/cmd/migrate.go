package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/ctxkeys"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/db"
)

func MigrateCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:         "down",
		Short:       "Roll back the latest migration",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationDatabaseOnly: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctxkeys.Config(cmd.Context())
			database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close(database)

			err = db.MigrateDown(database.DB, cfg.DBDriver)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Rolled back the latest migration.")
			return nil
		},
	})
	return cmd
}
