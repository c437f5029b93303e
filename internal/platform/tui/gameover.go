package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rocket-kid/internal/i18n"
	"github.com/vovakirdan/rocket-kid/internal/session"
)

type gameOverChoice int

const (
	gameOverNone gameOverChoice = iota
	gameOverRestart
	gameOverMenu
)

// GameOverModel shows the result of a flight.
type GameOverModel struct {
	keys    MenuKeyMap
	help    help.Model
	outcome session.Outcome
	cursor  int
	chosen  gameOverChoice
}

// NewGameOverModel shows out with the cursor on Restart.
func NewGameOverModel(out session.Outcome) GameOverModel {
	return GameOverModel{
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		outcome: out,
	}
}

// Update handles a key press.
func (m GameOverModel) Update(msg tea.KeyMsg) GameOverModel {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.chosen = gameOverMenu
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.cursor = 1 - m.cursor
	case key.Matches(msg, m.keys.Select):
		m.chosen = gameOverRestart
		if m.cursor == 1 {
			m.chosen = gameOverMenu
		}
	}
	return m
}

// Chosen returns the player's pick, or gameOverNone.
func (m GameOverModel) Chosen() gameOverChoice {
	return m.chosen
}

// View renders the result box.
func (m GameOverModel) View(st styles, tr i18n.Strings, width, height int) string {
	lines := []string{
		st.title.Render(tr.GameOver),
		fmt.Sprintf("%s: %s", tr.Score, st.value.Render(fmt.Sprint(m.outcome.Score))),
		fmt.Sprintf("%s: %s", tr.HighScore, st.record.Render(fmt.Sprint(m.outcome.HighScore))),
	}
	if m.outcome.NewRecord {
		lines = append(lines, st.record.Render("★ "+tr.HighScore+"! ★"))
	}
	lines = append(lines, "")
	for i, label := range []string{tr.Restart, tr.MainMenu} {
		style := st.item
		if i == m.cursor {
			style = st.selected
		}
		lines = append(lines, style.Render(label))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		st.box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...)),
		st.dim.Render(m.help.View(m.keys)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
