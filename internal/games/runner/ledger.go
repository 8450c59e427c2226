package runner

import "github.com/pr-poehali-dev/dark-cacao-run/internal/config"

// Ledger tracks progression. Distance, score and currency never decrease
// during a run; best score only ever grows.
type Ledger struct {
	Distance  int
	Score     int
	Currency  int
	Speed     float64
	BestScore int
}

// resetRun clears the per-run counters. Currency and best score carry over.
func (l *Ledger) resetRun(startSpeed float64) {
	l.Distance = 0
	l.Score = 0
	l.Speed = startSpeed
}

// advance books one tick of running and reports whether the boss threshold
// has been reached.
func (l *Ledger) advance(ramp config.SpeedRamp, cfg config.ProgressionConfig) bool {
	l.Distance++
	l.Score++
	l.Speed = ramp.Next(l.Speed, l.Distance)

	if cfg.CurrencyEvery > 0 && l.Distance%cfg.CurrencyEvery == 0 {
		l.Currency++
	}

	return l.Distance >= cfg.BossDistance
}

// award adds a bonus to score and currency.
func (l *Ledger) award(score, currency int) {
	l.Score += score
	l.Currency += currency
}

// recordBest folds the current score into the best score.
func (l *Ledger) recordBest() {
	l.BestScore = max(l.BestScore, l.Score)
}
