package cmd

import (
	"encoding/json"
	"io"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const notifyDialTimeout = 3 * time.Second

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Forward a hook payload from stdin to the watcher socket",
	Long: `Reads a hook payload from stdin and forwards it to the watcher's
notification socket. Intended to be wired as a Claude Code Notification
hook. Always exits zero so a missing watcher never fails the hook.`,
	Run: runNotify,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
}

func runNotify(cmd *cobra.Command, _ []string) {
	payload, err := io.ReadAll(os.Stdin)
	if err != nil {
		return
	}

	cfg, err := loadPrefs(cmd)
	if err != nil {
		return
	}

	forwardPayload(cfg.SocketPath, payload)
}

// forwardPayload delivers one hook payload to the watcher socket. Hook
// payloads are JSON documents; anything else on stdin is dropped before
// dialing so stray pipe input never fires an alert. All failures are
// silent: the hook must never block or fail Claude Code.
func forwardPayload(socketPath string, payload []byte) {
	if !json.Valid(payload) {
		return
	}

	conn, err := net.DialTimeout("unix", socketPath, notifyDialTimeout)
	if err != nil {
		// No watcher running.
		return
	}
	defer func() { _ = conn.Close() }()

	_ = conn.SetWriteDeadline(time.Now().Add(notifyDialTimeout))
	_, _ = conn.Write(payload)
}
