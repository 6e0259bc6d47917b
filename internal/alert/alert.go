// Package alert fires the multi-sensory attention alert: repeated
// beeps plus a desktop notification.
package alert

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"

	"github.com/theirongolddev/cwatch/internal/config"
)

const (
	beepCount = 3
	beepGap   = 250 * time.Millisecond

	notifyTitle   = "Claude Code"
	notifyMessage = "Claude needs your attention"
)

// Alerter dispatches alerts according to the user's preferences.
type Alerter struct {
	log *log.Logger
}

// New returns an alerter logging through the given logger.
func New(logger *log.Logger) *Alerter {
	beeep.AppName = notifyTitle
	return &Alerter{log: logger}
}

// Trigger fires the alert honoring mute and per-channel settings.
// Sound playback runs on its own short-lived goroutine so the caller
// is never delayed by it. Safe to call from any goroutine.
func (a *Alerter) Trigger(cfg config.Config) {
	if cfg.Muted {
		return
	}

	if cfg.SoundEnabled {
		go a.playBeeps(cfg.VolumeLevel())
	}

	if cfg.FlashEnabled {
		if err := beeep.Alert(notifyTitle, notifyMessage, ""); err != nil {
			a.log.Warn("desktop alert failed", "err", err)
		}
	}
}

// playBeeps plays the alert tone beepCount times. There is no portable
// volume control, so the configured level scales the tone duration
// instead.
func (a *Alerter) playBeeps(volume float64) {
	duration := int(120 + 280*volume)

	for i := 0; i < beepCount; i++ {
		if err := beeep.Beep(beeep.DefaultFreq, duration); err != nil {
			a.log.Warn("beep failed", "err", err)
			return
		}
		time.Sleep(beepGap)
	}
}
