package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rocket-kid/internal/i18n"
)

// menuChoice is an entry of the main menu.
type menuChoice int

const (
	menuNone menuChoice = iota
	menuPlay
	menuSettings
	menuScores
	menuQuit
)

var menuItems = []menuChoice{menuPlay, menuSettings, menuScores, menuQuit}

func (c menuChoice) label(tr i18n.Strings) string {
	switch c {
	case menuPlay:
		return tr.Play
	case menuSettings:
		return tr.Settings
	case menuScores:
		return tr.Scores
	case menuQuit:
		return tr.Quit
	default:
		return ""
	}
}

// MenuModel is the main menu.
type MenuModel struct {
	keys   MenuKeyMap
	help   help.Model
	cursor int
	chosen menuChoice
}

// NewMenuModel creates a main menu with the cursor on Play.
func NewMenuModel() MenuModel {
	return MenuModel{
		keys: DefaultMenuKeyMap(),
		help: help.New(),
	}
}

// Update handles a key press.
func (m MenuModel) Update(msg tea.KeyMsg) MenuModel {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.chosen = menuQuit
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + len(menuItems) - 1) % len(menuItems)
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(menuItems)
	case key.Matches(msg, m.keys.Select):
		m.chosen = menuItems[m.cursor]
	}
	return m
}

// Chosen returns the selected entry, or menuNone.
func (m MenuModel) Chosen() menuChoice {
	return m.chosen
}

// View renders the menu centered in width x height.
func (m MenuModel) View(st styles, tr i18n.Strings, highScore, width, height int) string {
	lines := []string{
		st.title.Render("🚀 " + tr.Title),
		st.record.Render(fmt.Sprintf("%s: %d", tr.HighScore, highScore)),
		"",
	}
	for i, item := range menuItems {
		style := st.item
		if i == m.cursor {
			style = st.selected
		}
		lines = append(lines, style.Render(item.label(tr)))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		st.box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...)),
		st.dim.Render(m.help.View(m.keys)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
