package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/games/runner"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/storage"
)

var (
	flagSimDuration time.Duration
	flagSimRuns     int
	flagSimRecord   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless with an autopilot",
	Long: `Drive the engine at the configured tick rate without a terminal UI.
An autopilot jumps over obstacles, attacks the boss and restarts after
every run. Phase changes and a summary are logged to stderr.

With --record each finished run is stored under the player "autopilot".

Examples:
  cacao sim
  cacao sim --duration 2m --seed 42
  cacao sim --runs 5 --debug
  cacao sim --config ./runner.yaml --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 30*time.Second, "How long to simulate (0 = until interrupted)")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 0, "Stop after this many finished runs (0 = no limit)")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Store finished runs in the scores database")
}

// autopilotPlayer is the name recorded runs are stored under.
const autopilotPlayer = "autopilot"

// autopilot plays the engine from the loop's OnTick hook.
type autopilot struct {
	game  *runner.Game
	cfg   config.RunnerConfig
	lead  float64 // Ticks of warning the pilot wants before an obstacle
	every uint64  // Ticks between attacks in the boss fight
}

func newAutopilot(game *runner.Game, cfg config.RunnerConfig) *autopilot {
	return &autopilot{game: game, cfg: cfg, lead: 4, every: 15}
}

func (a *autopilot) step() {
	snap := a.game.Snapshot()
	switch snap.Phase {
	case runner.PhaseRunning:
		if a.shouldJump(snap) {
			a.game.Jump()
		}
	case runner.PhaseBossFight:
		if snap.Tick%a.every == 0 {
			a.game.AttackBoss()
		}
	}
}

// shouldJump reports whether the nearest obstacle ahead is within lead
// ticks of the player's front edge.
func (a *autopilot) shouldJump(snap runner.Snapshot) bool {
	if snap.Airborne {
		return false
	}
	front := a.cfg.Hitboxes.PlayerX + a.cfg.Hitboxes.RunPlayerSize
	for _, o := range snap.Obstacles {
		gap := o.X - front
		if gap >= 0 && gap <= snap.Speed*a.lead {
			return true
		}
	}
	return false
}

type simSummary struct {
	runs     int
	bossWins int
	best     int
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt := runtimeConfig(0, 0)

	var store *storage.Store
	if flagSimRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagSimDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagSimDuration)
		defer cancel()
	}

	engine := runner.New(cfg, rt, runner.WithLogger(logger.WithPrefix("runner")))
	changes, unsubscribe := engine.Subscribe()
	defer unsubscribe()

	loop := runner.NewLoop(engine, rt.TickRate)
	loop.OnTick = newAutopilot(engine, cfg).step

	loopErr := make(chan error, 1)
	go func() { loopErr <- loop.Run(ctx) }()

	logger.Info("simulation started", "seed", rt.Seed, "fps", rt.TickRate, "duration", flagSimDuration)
	engine.StartRun()

	var sum simSummary
	for done := false; !done; {
		select {
		case <-ctx.Done():
			done = true
		case change := <-changes:
			if change.To.Terminal() {
				recordSimRun(logger, store, engine.Snapshot(), &sum)
				if flagSimRuns > 0 && sum.runs >= flagSimRuns {
					done = true
					continue
				}
			}
			switch change.To {
			case runner.PhaseRunEnded, runner.PhaseBossLost:
				engine.StartRun()
			case runner.PhaseIdle:
				if change.From == runner.PhaseBossWon {
					engine.StartRun()
				}
			}
		}
	}

	stop()
	if err := <-loopErr; err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	profile := engine.Profile()
	logger.Info("simulation finished",
		"runs", sum.runs,
		"boss_wins", sum.bossWins,
		"best", sum.best,
		"currency", profile.Currency,
	)
	return nil
}

func recordSimRun(logger *log.Logger, store *storage.Store, snap runner.Snapshot, sum *simSummary) {
	sum.runs++
	if snap.Phase == runner.PhaseBossWon {
		sum.bossWins++
	}
	sum.best = max(sum.best, snap.Score)

	logger.Info("run finished",
		"outcome", snap.Phase,
		"score", snap.Score,
		"distance", snap.Distance,
		"ticks", snap.Tick,
	)

	if store == nil {
		return
	}
	if _, err := store.SaveRun(storage.ScoreEntry{
		Player:   autopilotPlayer,
		Outcome:  snap.Phase.String(),
		Score:    snap.Score,
		Distance: snap.Distance,
	}); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}
