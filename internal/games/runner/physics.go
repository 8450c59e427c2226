package runner

import "github.com/pr-poehali-dev/dark-cacao-run/internal/config"

// Player is the player-controlled entity. Only the vertical axis moves;
// the world scrolls toward the player instead.
type Player struct {
	Offset   float64 // Height above the ground, 0 = grounded
	Velocity float64 // Upward velocity in units per tick
	Airborne bool
	Health   int // Only meaningful during the boss fight
}

// jump starts a jump if the player is grounded. No double jump.
func (p *Player) jump(impulse float64) bool {
	if p.Airborne {
		return false
	}
	p.Velocity = impulse
	p.Airborne = true
	return true
}

// step integrates one tick: the offset advances by the velocity, then
// gravity removes a fixed amount of velocity. The ground clamp runs every
// tick regardless of the direction of travel.
func (p *Player) step(cfg config.PhysicsConfig) {
	if p.Airborne {
		p.Offset += p.Velocity
		p.Velocity -= cfg.Gravity
	}

	if p.Offset <= 0 {
		p.Offset = 0
		p.Velocity = 0
		p.Airborne = false
	}
}

// damage removes health, never going below zero.
func (p *Player) damage(n int) {
	p.Health = max(0, p.Health-n)
}
