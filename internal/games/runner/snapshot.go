package runner

// Snapshot is a read-only copy of the engine state for rendering, logging
// and determinism checks. Slices are copies and safe to keep.
type Snapshot struct {
	Tick  uint64
	Phase Phase

	PlayerOffset   float64
	PlayerVelocity float64
	Airborne       bool
	PlayerHealth   int

	Distance  int
	Score     int
	Currency  int
	Speed     float64
	BestScore int

	Obstacles []Obstacle

	// Boss fight state; BossActive is false outside the fight.
	BossActive bool
	BossHealth int
	BossX      float64
	Attacks    []Attack

	Shop []PowerUp
}

// Snapshot returns the current engine state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		Tick:           g.tick,
		Phase:          g.phase,
		PlayerOffset:   g.player.Offset,
		PlayerVelocity: g.player.Velocity,
		Airborne:       g.player.Airborne,
		PlayerHealth:   g.player.Health,
		Distance:       g.ledger.Distance,
		Score:          g.ledger.Score,
		Currency:       g.ledger.Currency,
		Speed:          g.ledger.Speed,
		BestScore:      g.ledger.BestScore,
		Obstacles:      append([]Obstacle(nil), g.obstacles...),
		Shop:           g.shop.Items(),
	}

	if g.boss != nil {
		snap.BossActive = true
		snap.BossHealth = g.boss.Health
		snap.BossX = g.boss.X
		snap.Attacks = append([]Attack(nil), g.boss.Attacks...)
	}
	return snap
}

// Profile is the persistent part of the ledger and shop.
type Profile struct {
	BestScore int
	Currency  int
	Levels    map[string]int
}
