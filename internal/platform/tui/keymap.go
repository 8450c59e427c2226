package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/core"
)

// KeyMap defines the key bindings of every view.
type KeyMap struct {
	Jump       key.Binding
	Attack     key.Binding
	Restart    key.Binding
	Back       key.Binding
	Up         key.Binding
	Down       key.Binding
	Confirm    key.Binding
	Shop       key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/w", "jump"),
		),
		Attack: key.NewBinding(
			key.WithKeys("x", "f"),
			key.WithHelp("x/f", "attack"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "run again"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Shop: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "shop"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// GameAction translates a key pressed in the game view.
func (k KeyMap) GameAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Attack):
		return core.ActionAttack
	case key.Matches(msg, k.Restart):
		return core.ActionStart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MenuAction translates a key pressed in a list view (menu, shop, scores).
func (k KeyMap) MenuAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Shop):
		return core.ActionShop
	case key.Matches(msg, k.Scores):
		return core.ActionLeaderboard
	}
	return core.ActionNone
}

// gameHelp is the help shown under the game view.
type gameHelp KeyMap

func (k gameHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Attack, k.Restart, k.Back, k.Quit}
}

func (k gameHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Screenshot}}
}

// menuHelp is the help shown under list views.
type menuHelp KeyMap

func (k menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Shop, k.Scores, k.Back, k.Quit}
}

func (k menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
