package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/games/runner"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/platform/tui"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/storage"
)

var (
	flagPlayer string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local session",
	Long: `Start a local session with the main menu, shop and leaderboard.

Controls:
  Space/W/Up - Jump
  X/F        - Attack the boss
  R/Enter    - Start a run
  B/Esc      - Back to the menu
  P          - Shop
  Tab/L      - Leaderboard
  Q/Ctrl+C   - Quit

With --watch the file given by --config is reloaded on every save.
New tuning takes effect when the next run starts.

Examples:
  cacao play
  cacao play --player alice
  cacao play --config ./runner.yaml --watch
  cacao play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "local", "Name the profile and runs are stored under")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when it changes")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := runtimeConfig(width, height)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage, the game still works
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var reloads <-chan config.RunnerConfig
	if flagWatch {
		w, werr := watchConfig(logger)
		if werr != nil {
			return werr
		}
		if w != nil {
			defer w.Close()
			reloads = w.Configs
		}
	}

	engine := runner.New(cfg, rt, runner.WithLogger(logger.WithPrefix("runner")))
	model := tui.NewModel(engine, tui.Options{
		Player:  flagPlayer,
		Config:  cfg,
		Runtime: rt,
		Store:   store,
		Logger:  logger,
	})

	if err := tui.Run(model, reloads); err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}
