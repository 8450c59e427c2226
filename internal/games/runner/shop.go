package runner

import (
	"math"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
)

// PowerUp is a purchasable upgrade with a level and a growing cost.
type PowerUp struct {
	ID          string
	Name        string
	Description string
	Cost        int
	Level       int
	MaxLevel    int
}

// Maxed reports whether the power-up cannot be upgraded further.
func (p PowerUp) Maxed() bool {
	return p.Level >= p.MaxLevel
}

// Shop holds the power-up catalog and the purchased levels.
type Shop struct {
	items  []PowerUp
	growth float64
}

// NewShop builds the catalog with every item at level zero.
func NewShop(cfg config.ShopConfig) *Shop {
	items := make([]PowerUp, 0, len(cfg.Items))
	for _, it := range cfg.Items {
		items = append(items, PowerUp{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Cost:        it.Cost,
			MaxLevel:    it.MaxLevel,
		})
	}
	return &Shop{items: items, growth: cfg.CostGrowth}
}

// Items returns a copy of the catalog in display order.
func (s *Shop) Items() []PowerUp {
	out := make([]PowerUp, len(s.items))
	copy(out, s.items)
	return out
}

// Upgrade buys one level of the item, debiting currency. It is a no-op
// when the item is unknown, maxed or unaffordable.
func (s *Shop) Upgrade(id string, currency *int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	it := &s.items[i]
	if it.Maxed() || *currency < it.Cost {
		return false
	}

	*currency -= it.Cost
	it.Level++
	it.Cost = int(math.Floor(float64(it.Cost) * s.growth))
	return true
}

// Levels returns the purchased level of every item with a level above zero.
func (s *Shop) Levels() map[string]int {
	levels := make(map[string]int)
	for _, it := range s.items {
		if it.Level > 0 {
			levels[it.ID] = it.Level
		}
	}
	return levels
}

// setLevel restores a saved level, replaying the cost growth so the price
// matches a shop that was bought up to that level.
func (s *Shop) setLevel(id string, level int) {
	i := s.index(id)
	if i < 0 {
		return
	}
	it := &s.items[i]
	level = min(max(level, 0), it.MaxLevel)
	for it.Level < level {
		it.Level++
		it.Cost = int(math.Floor(float64(it.Cost) * s.growth))
	}
}

func (s *Shop) index(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
