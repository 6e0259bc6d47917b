package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cwatch/internal/config"
)

var (
	flagClaudeDir  string
	flagSocketPath string
)

var rootCmd = &cobra.Command{
	Use:   "cwatch",
	Short: "Claude Code usage watcher and alert relay",
	Long:  "Watch Claude Code usage telemetry and raise alerts when Claude needs attention.",
	RunE:  runStats,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaults := config.DefaultConfig()

	rootCmd.PersistentFlags().StringVarP(&flagClaudeDir, "claude-dir", "d", defaults.ClaudeDir, "Claude data directory")
	rootCmd.PersistentFlags().StringVar(&flagSocketPath, "socket", defaults.SocketPath, "Notification socket path")
}

// loadPrefs returns saved preferences with command-line overrides
// applied.
func loadPrefs(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("claude-dir") {
		cfg.ClaudeDir = flagClaudeDir
	}
	if cmd.Flags().Changed("socket") {
		cfg.SocketPath = flagSocketPath
	}
	return cfg, nil
}
