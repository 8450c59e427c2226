package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/storage"
)

// maxScores is the number of runs the leaderboard loads.
const maxScores = 50

// newScoreTable creates the leaderboard table.
func newScoreTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 8},
		{Title: "Outcome", Width: 10},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("94")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("55")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// scoreRows converts stored runs into table rows.
func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			s.Outcome,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m Model) scoresView() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("LEADERBOARD"), m.width))
	b.WriteString("\n\n")

	content := m.table.View()
	if len(m.scores) == 0 {
		content = dimStyle.
			Italic(true).
			Padding(1, 4).
			Render("No runs recorded yet.\nFinish a run to set a score!")
	}
	b.WriteString(centerText(panelStyle.Render(content), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(menuHelp(m.keys))), m.width))

	return b.String()
}
