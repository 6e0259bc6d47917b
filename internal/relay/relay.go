// Package relay listens on a Unix stream socket for one-shot
// notifications from Claude Code hook processes and converts each
// complete non-empty payload into one wake-up token for the watcher
// loop.
package relay

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/theirongolddev/cwatch/internal/metrics"
)

// ErrSocketInUse is returned by Start when another live listener
// already owns the socket path. A stale endpoint left behind by a
// crashed instance is unlinked and rebound silently instead.
var ErrSocketInUse = errors.New("notification socket already in use")

// probeTimeout bounds the liveness probe against an existing endpoint.
const probeTimeout = 250 * time.Millisecond

// Relay owns the socket listener and its accept loop. The loop blocks
// only on accept/read syscalls; handing a message to the consumer never
// blocks it.
type Relay struct {
	path string
	log  *log.Logger

	wake chan struct{}

	mu     sync.Mutex
	ln     net.Listener
	done   chan struct{}
	closed bool
}

// New returns an unstarted relay for the given socket path.
func New(path string, logger *log.Logger) *Relay {
	return &Relay{
		path: path,
		log:  logger,
		wake: make(chan struct{}, 16),
	}
}

// Notifications delivers one token per non-empty payload received. The
// watcher loop drains it; no payload content crosses this boundary.
func (r *Relay) Notifications() <-chan struct{} { return r.wake }

// Start binds the socket and launches the accept loop on a background
// goroutine. An endpoint that still answers connections belongs to a
// live instance and yields ErrSocketInUse; anything else at the path is
// a stale leftover and is removed before binding. The bound socket is
// opened up so hooks running under other permission contexts can
// connect.
func (r *Relay) Start() error {
	if conn, err := net.DialTimeout("unix", r.path, probeTimeout); err == nil {
		_ = conn.Close()
		return fmt.Errorf("%w: %s", ErrSocketInUse, r.path)
	}

	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing stale socket %s: %w", r.path, err)
	}

	ln, err := net.Listen("unix", r.path)
	if err != nil {
		return fmt.Errorf("binding %s: %w", r.path, err)
	}
	if err := os.Chmod(r.path, 0o777); err != nil { //nolint:gosec // hooks connect from other user contexts
		_ = ln.Close()
		return fmt.Errorf("chmod %s: %w", r.path, err)
	}

	r.mu.Lock()
	r.ln = ln
	r.done = make(chan struct{})
	r.closed = false
	r.mu.Unlock()

	go r.acceptLoop(ln)
	return nil
}

// Stop closes the listener and removes the socket file. The accept
// loop exits cleanly; tokens already enqueued remain readable.
func (r *Relay) Stop() {
	r.mu.Lock()
	wasClosed := r.closed
	r.closed = true
	ln := r.ln
	r.ln = nil
	done := r.done
	r.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}
	if done != nil && !wasClosed {
		close(done)
	}
	_ = os.Remove(r.path)
}

func (r *Relay) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if r.isClosed() {
				return
			}
			r.log.Warn("relay accept failed", "err", err)
			metrics.RelayErrors.Inc()
			continue
		}
		r.handle(conn)
	}
}

// handle reads one complete message: the peer writes its payload and
// half-closes, so read-to-EOF marks the message complete. A transport
// error on this one connection is swallowed and the loop keeps
// listening; no dispatch happens for a failed read.
func (r *Relay) handle(conn net.Conn) {
	defer func() { _ = conn.Close() }()

	data, err := io.ReadAll(conn)
	if err != nil {
		r.log.Warn("relay read failed", "err", err)
		metrics.RelayErrors.Inc()
		return
	}
	if len(data) == 0 {
		return
	}

	metrics.RelayMessages.Inc()
	r.dispatch()
}

// dispatch enqueues exactly one wake-up token without ever blocking the
// accept loop. The buffered send covers the normal case; overflow falls
// back to a goroutine so the token is still delivered while the relay
// runs, and abandoned once it stops.
func (r *Relay) dispatch() {
	select {
	case r.wake <- struct{}{}:
		return
	default:
	}

	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	go func() {
		select {
		case r.wake <- struct{}{}:
		case <-done:
		}
	}()
}

func (r *Relay) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
