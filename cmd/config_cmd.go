package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cwatch/internal/cli"
	"github.com/theirongolddev/cwatch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPrefs(cmd)
	if err != nil {
		return err
	}

	rows := []cli.KV{
		{Label: "Sound", Value: onOff(cfg.SoundEnabled)},
		{Label: "Notification", Value: onOff(cfg.FlashEnabled)},
		{Label: "Muted", Value: onOff(cfg.Muted)},
		{Label: "Volume", Value: cfg.Volume},
		{},
		{Label: "Claude Dir", Value: cfg.ClaudeDir},
		{Label: "Socket", Value: cfg.SocketPath},
		{Label: "API Addr", Value: cfg.Addr},
		{Label: "History", Value: cfg.HistoryPath},
		{Label: "Refresh", Value: strconv.Itoa(cfg.RefreshSecs) + "s"},
	}

	fmt.Println(cli.RenderCard("Configuration", rows))

	if config.Exists() {
		fmt.Printf("  Config file: %s\n", config.ConfigPath())
	} else {
		fmt.Printf("  Config file: %s (not created yet, run `cwatch setup`)\n", config.ConfigPath())
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
