package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/cwatch/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive alert preferences setup",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play a sound when Claude needs attention?").
				Value(&cfg.SoundEnabled),

			huh.NewConfirm().
				Title("Show a desktop notification?").
				Value(&cfg.FlashEnabled),

			huh.NewSelect[string]().
				Title("Alert volume").
				Options(
					huh.NewOption("Loud", "loud"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("Low", "low"),
				).
				Value(&cfg.Volume),

			huh.NewConfirm().
				Title("Start muted?").
				Value(&cfg.Muted),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("  Preferences saved to %s\n", config.ConfigPath())
	return nil
}
