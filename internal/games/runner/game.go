// Package runner implements the side-scrolling runner simulation: the
// player physics, hazard spawning, collision, the progression ledger, the
// boss encounter and the phase state machine tying them together.
//
// Game is safe for concurrent use. Signals (StartRun, Jump, AttackBoss,
// NavigateTo, Upgrade) and Tick serialize on one mutex, so a signal is
// always applied between two ticks.
package runner

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/core"
)

// subscriberBuffer is the channel capacity for phase subscribers. Changes
// to a full subscriber are dropped.
const subscriberBuffer = 16

// Game is the simulation aggregate.
type Game struct {
	mu sync.Mutex

	cfg      config.RunnerConfig
	pending  *config.RunnerConfig // Applied at the next StartRun
	ramp     config.SpeedRamp
	hitboxes Hitboxes
	runtime  core.RuntimeConfig

	phase     Phase
	tick      uint64
	player    Player
	obstacles []Obstacle
	boss      *Boss
	ledger    Ledger
	spawner   *Spawner
	shop      *Shop

	clock    Clock
	deferred deferredReturn
	logger   *log.Logger

	subs    map[int]chan PhaseChange
	nextSub int
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the clock used for the delayed return after a boss
// victory.
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithLogger sets the logger for phase transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates an engine in the Idle phase. The config must be valid.
func New(cfg config.RunnerConfig, runtime core.RuntimeConfig, opts ...Option) *Game {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}

	g := &Game{
		cfg:      cfg,
		ramp:     cfg.Ramp(),
		hitboxes: NewHitboxes(cfg.Hitboxes),
		runtime:  runtime,
		phase:    PhaseIdle,
		spawner:  NewSpawner(runtime.Seed, cfg.Spawner),
		shop:     NewShop(cfg.Shop),
		clock:    realClock{},
		logger:   log.New(io.Discard),
		subs:     make(map[int]chan PhaseChange),
	}
	g.ledger.Speed = cfg.Progression.StartSpeed
	g.player.Health = cfg.Boss.PlayerHealth

	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Active reports whether the current phase needs ticking.
func (g *Game) Active() bool {
	return g.Phase().Active()
}

// TickRate returns the simulation rate in ticks per second.
func (g *Game) TickRate() int {
	return g.runtime.TickRate
}

// Subscribe returns a channel receiving every phase change and a function
// that ends the subscription and closes the channel.
func (g *Game) Subscribe() (<-chan PhaseChange, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextSub
	g.nextSub++
	ch := make(chan PhaseChange, subscriberBuffer)
	g.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.subs, id)
			close(ch)
			g.mu.Unlock()
		})
	}
}

// SetConfig stages a new tuning. It takes effect at the next StartRun so a
// run never changes rules halfway. The shop catalog is left untouched.
func (g *Game) SetConfig(cfg config.RunnerConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = &cfg
	g.logger.Debug("config staged for next run")
}

// StartRun begins a fresh run from Idle, RunEnded or BossLost.
func (g *Game) StartRun() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.phase.canStart() {
		return false
	}

	if g.pending != nil {
		g.applyConfig(*g.pending)
		g.pending = nil
	}

	g.player = Player{Health: g.cfg.Boss.PlayerHealth}
	g.obstacles = g.obstacles[:0]
	g.boss = nil
	g.tick = 0
	g.ledger.resetRun(g.cfg.Progression.StartSpeed)
	g.setPhase(PhaseRunning)
	return true
}

// Jump starts a jump when the player is grounded during a run or the boss
// fight. It reports whether the jump started.
func (g *Game) Jump() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.phase.Active() {
		return false
	}
	return g.player.jump(g.cfg.Physics.JumpImpulse)
}

// AttackBoss deals one hit of damage to the boss. Defeating the boss awards
// the victory bonus and schedules the return to the menu.
func (g *Game) AttackBoss() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseBossFight || g.boss == nil {
		return false
	}

	if g.boss.hit(g.cfg.Boss.Damage) {
		g.ledger.award(g.cfg.Boss.WinScoreBonus, g.cfg.Boss.WinCurrencyBonus)
		g.ledger.recordBest()
		g.setPhase(PhaseBossWon)
		g.scheduleReturn()
	}
	return true
}

// NavigateTo performs a manual menu transition. Only Idle is a valid
// target, reachable from the boss fight and from every end state.
func (g *Game) NavigateTo(target Phase) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if target != PhaseIdle || !g.phase.canReturnToMenu() {
		return false
	}

	g.deferred.cancel()
	g.boss = nil
	g.setPhase(PhaseIdle)
	return true
}

// Upgrade buys one level of a power-up. Purchases happen from the menu only.
func (g *Game) Upgrade(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseIdle {
		return false
	}
	ok := g.shop.Upgrade(id, &g.ledger.Currency)
	if ok {
		g.logger.Debug("power-up upgraded", "id", id, "currency", g.ledger.Currency)
	}
	return ok
}

// Restore loads a saved profile into the ledger and shop.
func (g *Game) Restore(p Profile) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ledger.BestScore = max(g.ledger.BestScore, p.BestScore)
	g.ledger.Currency = max(0, p.Currency)
	g.shop = NewShop(g.cfg.Shop)
	for id, level := range p.Levels {
		g.shop.setLevel(id, level)
	}
}

// Profile returns the persistent part of the state.
func (g *Game) Profile() Profile {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Profile{
		BestScore: g.ledger.BestScore,
		Currency:  g.ledger.Currency,
		Levels:    g.shop.Levels(),
	}
}

// Tick advances the simulation by one step. Outside Running and BossFight
// it does nothing.
func (g *Game) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case PhaseRunning:
		g.tick++
		g.stepRun()
	case PhaseBossFight:
		g.tick++
		g.stepBoss()
	}
}

// stepRun runs one tick of the endless run: physics, hazards, collision,
// then progression.
func (g *Game) stepRun() {
	g.player.step(g.cfg.Physics)
	g.obstacles = g.spawner.AdvanceObstacles(g.obstacles, g.ledger.Speed)

	if g.hitboxes.HitsObstacle(g.player, g.obstacles) {
		g.ledger.recordBest()
		g.setPhase(PhaseRunEnded)
		return
	}

	if g.ledger.advance(g.ramp, g.cfg.Progression) {
		g.enterBossFight()
	}
}

func (g *Game) enterBossFight() {
	g.boss = newBoss(g.cfg.Boss)
	g.obstacles = g.obstacles[:0]
	g.player.Health = g.cfg.Boss.PlayerHealth
	g.setPhase(PhaseBossFight)
}

// stepBoss runs one tick of the boss fight: physics, attacks, hits, then
// the boss movement.
func (g *Game) stepBoss() {
	g.player.step(g.cfg.Physics)
	g.boss.Attacks = g.spawner.AdvanceAttacks(g.boss.Attacks, g.boss.X)

	var hits int
	g.boss.Attacks, hits = g.hitboxes.ResolveAttacks(g.player, g.boss.Attacks)
	g.player.damage(hits)

	g.boss.move(g.cfg.Boss, g.runtime.TickRate)

	if g.player.Health == 0 {
		g.ledger.recordBest()
		g.setPhase(PhaseBossLost)
	}
}

// scheduleReturn arms the delayed BossWon to Idle transition. The callback
// only fires if the engine is still in the same victory.
func (g *Game) scheduleReturn() {
	g.deferred.cancel()
	gen := g.deferred.gen
	g.deferred.timer = g.clock.AfterFunc(g.cfg.Boss.ReturnDelay, func() {
		g.mu.Lock()
		defer g.mu.Unlock()

		if g.deferred.gen != gen || g.phase != PhaseBossWon {
			return
		}
		g.deferred.timer = nil
		g.boss = nil
		g.setPhase(PhaseIdle)
	})
}

func (g *Game) applyConfig(cfg config.RunnerConfig) {
	g.cfg = cfg
	g.ramp = cfg.Ramp()
	g.hitboxes = NewHitboxes(cfg.Hitboxes)
	g.spawner.UpdateConfig(cfg.Spawner)
	g.logger.Info("config applied")
}

// setPhase switches phase and notifies subscribers. Callers hold g.mu.
func (g *Game) setPhase(to Phase) {
	from := g.phase
	if from == to {
		return
	}
	g.phase = to
	g.logger.Debug("phase change",
		"from", from,
		"to", to,
		"distance", g.ledger.Distance,
		"score", g.ledger.Score)

	change := PhaseChange{From: from, To: to}
	for _, ch := range g.subs {
		select {
		case ch <- change:
		default:
		}
	}
}
