package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cwatch/internal/cli"
	"github.com/theirongolddev/cwatch/internal/usage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show weekly usage and current session stats",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPrefs(cmd)
	if err != nil {
		return err
	}

	tracker := usage.NewTracker(cfg.ClaudeDir)

	fmt.Println(cli.RenderCard("Weekly Usage", cli.WeeklyRows(tracker.WeeklyStats())))
	fmt.Println(cli.RenderCard("Current Session", cli.SessionRows(tracker.SessionStats())))
	return nil
}
