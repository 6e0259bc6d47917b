// Package watcher provides the long-running cwatch service: periodic
// stats refresh, the hook notification relay, and alert dispatch.
package watcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theirongolddev/cwatch/internal/alert"
	"github.com/theirongolddev/cwatch/internal/config"
	"github.com/theirongolddev/cwatch/internal/history"
	"github.com/theirongolddev/cwatch/internal/metrics"
	"github.com/theirongolddev/cwatch/internal/model"
	"github.com/theirongolddev/cwatch/internal/relay"
	"github.com/theirongolddev/cwatch/internal/usage"
)

// Notifier fires a user-visible alert. Satisfied by alert.Alerter.
type Notifier interface {
	Trigger(cfg config.Config)
}

// Config controls the watcher runtime behavior.
type Config struct {
	ClaudeDir  string
	SocketPath string
	Interval   time.Duration
	Addr       string
}

// Status is served at /v1/status.
type Status struct {
	StartedAt     time.Time          `json:"started_at"`
	LastRefreshAt time.Time          `json:"last_refresh_at"`
	RefreshCount  int64              `json:"refresh_count"`
	IntervalSec   int                `json:"interval_sec"`
	ClaudeDir     string             `json:"claude_dir"`
	SocketPath    string             `json:"socket_path"`
	LastAlertAt   *time.Time         `json:"last_alert_at,omitempty"`
	AlertCount    int64              `json:"alert_count"`
	Muted         bool               `json:"muted"`
	Weekly        model.WeeklyStats  `json:"weekly"`
	Session       model.SessionStats `json:"session"`
}

// Service owns the watcher runtime. All cache reads and alert
// dispatches are funneled through its methods; the relay only ever
// hands over wake-up tokens.
type Service struct {
	cfg     Config
	prefs   config.Config
	tracker *usage.Tracker
	relay   *relay.Relay
	alerter Notifier
	hist    *history.Store
	log     *log.Logger

	mu            sync.RWMutex
	startedAt     time.Time
	lastRefreshAt time.Time
	refreshCount  int64
	lastAlertAt   time.Time
	alertCount    int64
	weekly        model.WeeklyStats
	session       model.SessionStats
}

// New returns a new watcher service. hist may be nil to disable alert
// history.
func New(cfg Config, prefs config.Config, hist *history.Store, logger *log.Logger) *Service {
	if cfg.Interval < time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8790"
	}

	return &Service{
		cfg:       cfg,
		prefs:     prefs,
		tracker:   usage.NewTracker(cfg.ClaudeDir),
		relay:     relay.New(cfg.SocketPath, logger),
		alerter:   alert.New(logger),
		hist:      hist,
		log:       logger,
		startedAt: time.Now(),
		weekly:    model.EmptyWeeklyStats(),
		session:   model.EmptySessionStats(),
	}
}

// Run starts the relay, the HTTP endpoints, and the consumer loop, and
// blocks until ctx is canceled. ErrSocketInUse from the relay is the
// one startup failure surfaced to the caller.
func (s *Service) Run(ctx context.Context) error {
	if err := s.relay.Start(); err != nil {
		return err
	}
	defer s.relay.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/weekly", s.handleWeekly)
	mux.HandleFunc("/v1/session", s.handleSession)
	mux.HandleFunc("/v1/refresh", s.handleRefresh)
	mux.HandleFunc("/v1/alert", s.handleAlert)
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed the snapshot so status is useful immediately.
	s.refresh()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.refresh()
		case <-s.relay.Notifications():
			s.fireAlert("hook")
		case err := <-errCh:
			return fmt.Errorf("watcher http server: %w", err)
		}
	}
}

// refresh pulls both aggregates through the staleness cache and
// publishes them into the status snapshot.
func (s *Service) refresh() {
	weekly := s.tracker.WeeklyStats()
	session := s.tracker.SessionStats()
	metrics.Refreshes.Inc()

	s.mu.Lock()
	s.weekly = weekly
	s.session = session
	s.lastRefreshAt = time.Now()
	s.refreshCount++
	s.mu.Unlock()
}

// fireAlert records the alert and dispatches it. The alerter itself
// honors mute and channel settings; the history row is written either
// way so a muted alert is still visible in `cwatch alerts`.
func (s *Service) fireAlert(sourceName string) {
	now := time.Now()
	metrics.AlertsFired.Inc()

	s.mu.Lock()
	s.lastAlertAt = now
	s.alertCount++
	s.mu.Unlock()

	if s.hist != nil {
		rec := history.Alert{
			ID:      uuid.NewString(),
			FiredAt: now,
			Source:  sourceName,
			Muted:   s.prefs.Muted,
		}
		if err := s.hist.Record(rec); err != nil {
			s.log.Warn("recording alert", "err", err)
		}
	}

	s.alerter.Trigger(s.prefs)
	s.log.Info("alert dispatched", "source", sourceName)
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Status{
		StartedAt:     s.startedAt,
		LastRefreshAt: s.lastRefreshAt,
		RefreshCount:  s.refreshCount,
		IntervalSec:   int(s.cfg.Interval.Seconds()),
		ClaudeDir:     s.cfg.ClaudeDir,
		SocketPath:    s.cfg.SocketPath,
		AlertCount:    s.alertCount,
		Muted:         s.prefs.Muted,
		Weekly:        s.weekly,
		Session:       s.session,
	}
	if !s.lastAlertAt.IsZero() {
		t := s.lastAlertAt
		st.LastAlertAt = &t
	}
	return st
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.snapshotStatus())
}

func (s *Service) handleWeekly(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.tracker.WeeklyStats())
}

func (s *Service) handleSession(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.tracker.SessionStats())
}

// handleRefresh force-expires the caches and reparses before
// answering, so the response is guaranteed fresh.
func (s *Service) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.tracker.Invalidate()
	s.refresh()
	writeJSON(w, s.snapshotStatus())
}

// handleAlert fires a test alert, mirroring the hook path.
func (s *Service) handleAlert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.fireAlert("manual")
	writeJSON(w, s.snapshotStatus())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
