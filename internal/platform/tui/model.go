package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/core"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/games/runner"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/storage"
)

// view is the screen the session shows.
type view int

const (
	viewMenu view = iota
	viewShop
	viewScores
	viewGame
)

// ConfigMsg delivers a reloaded config. It is staged in the engine and
// used for drawing from the next run on.
type ConfigMsg config.RunnerConfig

// Options configures a session.
type Options struct {
	Player  string // Name runs and the profile are stored under
	Config  config.RunnerConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional
	Logger  *log.Logger    // Optional
}

// Model is the Bubble Tea model of one player session: menu, shop,
// leaderboard and the game itself, all around a single engine.
type Model struct {
	engine  *runner.Game
	cfg     config.RunnerConfig
	pending *config.RunnerConfig
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger
	player  string

	phases      <-chan runner.PhaseChange
	unsubscribe func()

	screen *core.Screen
	keys   KeyMap
	help   help.Model
	table  table.Model
	scores []storage.ScoreEntry

	view       view
	menuCursor int
	shopCursor int
	ticking    bool
	status     string
	width      int
	height     int
	quitting   bool
}

// NewModel creates a session around engine. The stored profile of the
// player, if any, is restored into the engine.
func NewModel(engine *runner.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	if opts.Store != nil {
		profile, ok, err := opts.Store.LoadProfile(opts.Player)
		switch {
		case err != nil:
			logger.Warn("could not load profile", "player", opts.Player, "error", err)
		case ok:
			engine.Restore(profile)
		}
	}

	phases, unsubscribe := engine.Subscribe()

	return Model{
		engine:      engine,
		cfg:         opts.Config,
		runtime:     rt,
		store:       opts.Store,
		logger:      logger,
		player:      opts.Player,
		phases:      phases,
		unsubscribe: unsubscribe,
		screen:      core.NewScreen(rt.ScreenW, max(1, rt.ScreenH-1)),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		table:       newScoreTable(rt.ScreenH),
		width:       rt.ScreenW,
		height:      rt.ScreenH,
	}
}

// Init starts listening for phase changes.
func (m Model) Init() tea.Cmd {
	return waitForPhase(m.phases)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, msg.Height-8))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()

	case PhaseMsg:
		return m.handlePhase(runner.PhaseChange(msg))

	case ConfigMsg:
		cfg := config.RunnerConfig(msg)
		m.engine.SetConfig(cfg)
		m.pending = &cfg
		m.status = "Config reloaded, applies to the next run"
		return m, nil
	}

	return m, nil
}

// handleTick advances the engine while it is active. The tick chain stops
// on its own once the engine leaves Running and BossFight.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.engine.Active() {
		m.ticking = false
		return m, nil
	}
	m.engine.Tick()
	return m, tickCmd(m.runtime.TickRate)
}

// ensureTicking starts the tick chain if it is not already running.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.engine.Active() {
		return nil
	}
	m.ticking = true
	return tickCmd(m.runtime.TickRate)
}

func (m Model) handlePhase(change runner.PhaseChange) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{waitForPhase(m.phases)}

	switch {
	case change.To.Active():
		m.view = viewGame
		cmds = append(cmds, m.ensureTicking())
	case change.To.Terminal():
		m.recordResult(change.To)
	case change.To == runner.PhaseIdle:
		m.view = viewMenu
	}

	return m, tea.Batch(cmds...)
}

// recordResult stores a finished run and the updated profile.
func (m *Model) recordResult(outcome runner.Phase) {
	snap := m.engine.Snapshot()
	m.logger.Info("run finished",
		"player", m.player,
		"outcome", outcome,
		"score", snap.Score,
		"distance", snap.Distance)

	if m.store == nil || snap.Score <= 0 {
		return
	}
	entry := storage.ScoreEntry{
		Player:   m.player,
		Outcome:  outcome.String(),
		Score:    snap.Score,
		Distance: snap.Distance,
	}
	if _, err := m.store.SaveRun(entry); err != nil {
		m.logger.Error("could not save run", "error", err)
	}
	m.saveProfile()
}

func (m *Model) saveProfile() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveProfile(m.player, m.engine.Profile()); err != nil {
		m.logger.Error("could not save profile", "error", err)
	}
}

// startRun starts a run and switches to the game view.
func (m *Model) startRun() tea.Cmd {
	if !m.engine.StartRun() {
		return nil
	}
	if m.pending != nil {
		m.cfg = *m.pending
		m.pending = nil
	}
	m.view = viewGame
	m.status = ""
	return m.ensureTicking()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.saveProfile()
	m.unsubscribe()
	return m, tea.Quit
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.view {
	case viewGame:
		return m.handleGameKey(msg)
	case viewShop:
		return m.handleShopKey(msg)
	case viewScores:
		return m.handleScoresKey(msg)
	default:
		return m.handleMenuKey(msg)
	}
}

func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.GameAction(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionJump:
		m.engine.Jump()
	case core.ActionAttack:
		m.engine.AttackBoss()
	case core.ActionStart:
		return m, m.startRun()
	case core.ActionBack:
		if m.engine.NavigateTo(runner.PhaseIdle) {
			m.view = viewMenu
		}
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionUp:
		m.menuCursor = max(0, m.menuCursor-1)
	case core.ActionDown:
		m.menuCursor = min(len(menuItems)-1, m.menuCursor+1)
	case core.ActionShop:
		m.view = viewShop
	case core.ActionLeaderboard:
		m.openScores()
	case core.ActionConfirm:
		switch menuItems[m.menuCursor] {
		case "Run":
			return m, m.startRun()
		case "Shop":
			m.view = viewShop
		case "Leaderboard":
			m.openScores()
		case "Quit":
			return m.quit()
		}
	}
	return m, nil
}

func (m Model) handleShopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.engine.Snapshot().Shop

	switch m.keys.MenuAction(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionBack:
		m.view = viewMenu
		m.status = ""
	case core.ActionUp:
		m.shopCursor = max(0, m.shopCursor-1)
	case core.ActionDown:
		m.shopCursor = max(0, min(len(items)-1, m.shopCursor+1))
	case core.ActionConfirm:
		if m.shopCursor < 0 || m.shopCursor >= len(items) {
			return m, nil
		}
		item := items[m.shopCursor]
		if m.engine.Upgrade(item.ID) {
			m.status = fmt.Sprintf("%s upgraded to level %d", item.Name, item.Level+1)
			m.saveProfile()
		} else if item.Maxed() {
			m.status = fmt.Sprintf("%s is already at max level", item.Name)
		} else {
			m.status = fmt.Sprintf("Not enough cacao for %s", item.Name)
		}
	}
	return m, nil
}

func (m Model) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionBack:
		m.view = viewMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// openScores loads the leaderboard and switches to it.
func (m *Model) openScores() {
	m.view = viewScores
	m.scores = nil
	if m.store != nil {
		scores, err := m.store.TopScores(maxScores)
		if err != nil {
			m.logger.Error("could not load scores", "error", err)
		}
		m.scores = scores
	}
	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
}

// saveScreenshot writes the current world view as plain text.
func (m Model) saveScreenshot() {
	DrawWorld(m.screen, m.engine.Snapshot(), m.cfg)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".cacao", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("run_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current view.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		DrawWorld(m.screen, m.engine.Snapshot(), m.cfg)
		return RenderScreen(m.screen) + "\n" + dimStyle.Render(m.help.View(gameHelp(m.keys)))
	case viewShop:
		return m.shopView()
	case viewScores:
		return m.scoresView()
	default:
		return m.menuView()
	}
}

// Run runs a local session until the user quits. Configs received from
// reloads are staged for the next run.
func Run(m Model, reloads <-chan config.RunnerConfig) error {
	p := tea.NewProgram(m, tea.WithAltScreen())

	if reloads != nil {
		go func() {
			for cfg := range reloads {
				p.Send(ConfigMsg(cfg))
			}
		}()
	}

	_, err := p.Run()
	return err
}
