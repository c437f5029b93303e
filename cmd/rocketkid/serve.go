package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-kid/internal/config"
	"github.com/vovakirdan/rocket-kid/internal/platform/tui"
	"github.com/vovakirdan/rocket-kid/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Rocket Kid SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with default settings and no
sound. Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.rocketkid/host_key

Examples:
  rocketkid serve                           # Listen on :23234
  rocketkid serve --ssh :2222               # Listen on port 2222
  rocketkid serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "rocketkid")

	tuning, err := config.LoadRocket(flagConfig)
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Seed = flagSeed
	cfg.Tuning = tuning
	if cmd.Flags().Changed("fps") {
		cfg.FPS = flagFPS
	}

	var scores tui.Scores
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
	} else {
		defer store.Close()
		scores = store
	}

	server, err := tui.NewSSHServer(cfg, scores, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}

func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
