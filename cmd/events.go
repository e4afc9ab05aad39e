package cmd

import (
	"fmt"

	"github.com/pipeshell/psh/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var reportSession string

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the shell event log.",
}

var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Show a report of events.",
	Long:  `Aggregate the event log into per-command counts.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		fd, err := config.ReadEventLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		var report logger.Report
		err = logger.ReadJSONLinesLog(fd, func(le *logger.LogEntry) {
			if reportSession == "" || le.SessionID == reportSession {
				report.Update(le)
			}
		})
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)

	reportCommand.Flags().StringVar(&reportSession, "session", "", "only report events from this session ID")
}
