package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/cwatch/internal/cli"
	"github.com/theirongolddev/cwatch/internal/history"
)

var flagAlertsLimit int

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Show recent alert history",
	RunE:  runAlerts,
}

func init() {
	alertsCmd.Flags().IntVarP(&flagAlertsLimit, "limit", "n", 10, "Number of alerts to show")
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPrefs(cmd)
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return fmt.Errorf("open alert history: %w", err)
	}
	defer func() { _ = store.Close() }()

	alerts, err := store.Recent(flagAlertsLimit)
	if err != nil {
		return fmt.Errorf("read alert history: %w", err)
	}

	total, err := store.Count()
	if err != nil {
		return fmt.Errorf("count alerts: %w", err)
	}

	if total == 0 {
		fmt.Println(cli.RenderCard("Alerts", []cli.KV{
			{Label: "History", Value: "(no alerts yet)"},
		}))
		return nil
	}

	rows := make([]cli.KV, 0, len(alerts)+2)
	for _, a := range alerts {
		label := humanize.Time(a.FiredAt)
		value := a.Source
		if a.Muted {
			value += " (muted)"
		}
		rows = append(rows, cli.KV{Label: label, Value: value})
	}
	rows = append(rows, cli.KV{})
	rows = append(rows, cli.KV{Label: "Total", Value: cli.FormatCount(int64(total))})

	fmt.Println(cli.RenderCard("Alerts", rows))

	if last, ok, err := store.Last(); err == nil && ok {
		fmt.Printf("  Last alert at %s\n", last.FiredAt.Local().Format(time.RFC1123))
	}
	return nil
}
