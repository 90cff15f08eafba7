package cli

import (
	"arena-scheduler-service/internal/app/drivers/database"
	"arena-scheduler-service/internal/migration"
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:       "migrate <up|down>",
		Short:     "Apply or revert schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			driverConfig, _, log := newCLILogger()

			db := database.NewPostgresDB(driverConfig)
			defer db.Close()

			n, err := migration.Run(db, args[0], max, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migrations %s\n", n, args[0])
			return nil
		},
	}
	cmd.Flags().IntVar(&max, "max", 0, "apply at most this many migrations; 0 means all")
	return cmd
}
