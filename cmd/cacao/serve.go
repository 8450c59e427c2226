package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeWatch  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own engine and menu. Runs and profiles are
stored under the SSH user name; all users share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.cacao/host_key

With --watch the file given by --config is reloaded on every save and
handed to sessions that connect afterwards.

Examples:
  cacao serve                           # Listen on :23234 with auto-generated key
  cacao serve --ssh :2222               # Listen on port 2222
  cacao serve --host-key ./my_host_key  # Use specific host key
  cacao serve --config ./runner.yaml --watch

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagServeWatch, "watch", false, "Reload --config when it changes")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	runCfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, runCfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if flagServeWatch {
		w, werr := watchConfig(logger)
		if werr != nil {
			return werr
		}
		if w != nil {
			defer w.Close()
			go func() {
				for c := range w.Configs {
					server.SetConfig(c)
				}
			}()
		}
	}

	fmt.Printf("Starting Dark Cacao SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
