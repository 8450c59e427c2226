package tui

import (
	"fmt"
	"strings"
)

// menuItems are the entries of the main menu, top to bottom.
var menuItems = []string{"Run", "Shop", "Leaderboard", "Quit"}

func (m Model) menuView() string {
	snap := m.engine.Snapshot()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("D A R K   C A C A O   R U N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Best %d   Cacao %d", snap.BestScore, snap.Currency)), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item + "  "
		if i == m.menuCursor {
			line = selectedStyle.Render("> " + item + "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(m.status), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(menuHelp(m.keys))), m.width))
	return b.String()
}

func (m Model) shopView() string {
	snap := m.engine.Snapshot()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SHOP"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Cacao: %d", snap.Currency)), m.width))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, it := range snap.Shop {
		price := fmt.Sprintf("%d cacao", it.Cost)
		if it.Maxed() {
			price = "MAX"
		}
		line := fmt.Sprintf("%-12s Lv %d/%d  %-10s %s", it.Name, it.Level, it.MaxLevel, price, it.Description)

		switch {
		case i == m.shopCursor:
			line = selectedStyle.Render(line)
		case it.Maxed() || it.Cost > snap.Currency:
			line = dimStyle.Render(line)
		}
		list.WriteString(line)
		if i < len(snap.Shop)-1 {
			list.WriteString("\n")
		}
	}
	b.WriteString(centerText(panelStyle.Render(list.String()), m.width))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(menuHelp(m.keys))), m.width))
	return b.String()
}
