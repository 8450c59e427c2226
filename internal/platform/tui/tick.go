// Package tui provides the Bubble Tea front end for the runner simulation.
// It maps keys to engine signals, draws snapshots and persists results.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/games/runner"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// PhaseMsg carries a phase change published by the engine.
type PhaseMsg runner.PhaseChange

// tickCmd returns a command that sends one tick message after the interval
// of the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForPhase blocks on the engine subscription and turns the next change
// into a message. It must be re-issued after every PhaseMsg.
func waitForPhase(ch <-chan runner.PhaseChange) tea.Cmd {
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return PhaseMsg(change)
	}
}
