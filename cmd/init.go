package cmd

import (
	"log"

	"github.com/pipeshell/psh/core/config"
	"github.com/spf13/cobra"
)

// initCmd intializes the shell configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the config path.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		configuration, err := config.Initialize(cfgPath, logger)
		if err != nil {
			return err
		}
		logger.Printf("Configuration is in %s\n", configuration.Dir())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
