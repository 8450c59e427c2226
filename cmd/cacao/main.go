// cacao runs the Dark Cacao side-scrolling runner in the terminal.
//
// Usage:
//
//	cacao play               - Play a local session
//	cacao serve              - Start SSH server for remote play
//	cacao scores             - Show the leaderboard
//	cacao sim                - Run the simulation headless with an autopilot
//	cacao config             - Print the default tuning as YAML
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Set database path (default: ~/.cacao/scores.db)
//	--config <path>  - Load tuning from a YAML file
//	--debug          - Log phase changes and reloads
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/core"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cacao",
	Short: "Dark Cacao Run - a side-scrolling runner in your terminal",
	Long: `Dark Cacao Run is a terminal side-scroller. Jump over obstacles,
collect cacao coins, spend them in the shop and take down the Dark Cacao
boss waiting at the end of the track.

Available commands:
  play     - Play a local session
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  sim      - Headless simulation with an autopilot
  config   - Print the default tuning

Examples:
  cacao play
  cacao play --config ./runner.yaml --watch
  cacao serve --ssh :2222
  cacao scores
  cacao sim --duration 30s --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cacao/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to runner config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the stderr logger shared by all commands.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "cacao",
		Level:           level,
	})
}

// runtimeConfig builds the runtime settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

func loadConfig() (config.RunnerConfig, error) {
	return config.LoadRunner(flagConfig)
}

// watchConfig starts a watcher on --config. It returns nil when no file
// was given. Load errors are logged and the previous config stays active.
func watchConfig(logger *log.Logger) (*config.Watcher, error) {
	if flagConfig == "" {
		logger.Warn("--watch needs --config, not watching")
		return nil, nil
	}
	w, err := config.Watch(flagConfig)
	if err != nil {
		return nil, err
	}
	go func() {
		for err := range w.Errors {
			logger.Error("config reload failed", "path", flagConfig, "error", err)
		}
	}()
	return w, nil
}
