package cli

import (
	"arena-scheduler-service/internal/app/config"
	"arena-scheduler-service/internal/app/drivers/logger"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	asJSON bool
}

// NewRootCommand builds the arenactl command tree. Offline commands (slots,
// slotid, week) never open a connection; copy-week and migrate do.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "arenactl",
		Short:         "arenactl operates the arena scheduler from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print results as JSON")

	rootCmd.AddCommand(newSlotsCommand(opts))
	rootCmd.AddCommand(newSlotIDCommand(opts))
	rootCmd.AddCommand(newWeekCommand(opts))
	rootCmd.AddCommand(newCopyWeekCommand(opts))
	rootCmd.AddCommand(newMigrateCommand())

	return rootCmd
}

func printJSON(cmd *cobra.Command, value interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func newCLILogger() (*config.DriverConfig, *config.InternalConfig, *logrus.Logger) {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	return driverConfig, internalConfig, logger.NewLogrusLogger(driverConfig, internalConfig)
}
