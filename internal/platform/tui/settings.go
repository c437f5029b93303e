package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rocket-kid/internal/config"
	"github.com/vovakirdan/rocket-kid/internal/i18n"
)

type settingsRow int

const (
	rowLanguage settingsRow = iota
	rowVolume
	rowCountdown
	rowTurbine
	rowJet
	rowAutoRestart
	rowCollision
	rowShooting
	rowSave
	rowBack
	settingsRowCount
)

// SettingsModel edits a draft of the settings. Nothing is applied until the
// player picks Save.
type SettingsModel struct {
	keys      MenuKeyMap
	help      help.Model
	draft     config.Settings
	cursor    settingsRow
	saved     bool
	cancelled bool
}

// NewSettingsModel starts editing a copy of current.
func NewSettingsModel(current config.Settings) SettingsModel {
	return SettingsModel{
		keys:  DefaultMenuKeyMap(),
		help:  help.New(),
		draft: current,
	}
}

// Update handles a key press.
func (m SettingsModel) Update(msg tea.KeyMsg) SettingsModel {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.cancelled = true
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + settingsRowCount - 1) % settingsRowCount
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % settingsRowCount
	case key.Matches(msg, m.keys.Left):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Right):
		m.adjust(1)
	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case rowSave:
			m.saved = true
		case rowBack:
			m.cancelled = true
		default:
			m.adjust(1)
		}
	}
	return m
}

// adjust changes the value under the cursor. Booleans flip either way.
func (m *SettingsModel) adjust(delta int) {
	d := &m.draft
	switch m.cursor {
	case rowLanguage:
		d.Language = cycleLanguage(d.Language, delta)
	case rowVolume:
		d.Volume = max(0, min(config.MaxVolume, d.Volume+delta))
	case rowCountdown:
		d.Sounds.Countdown = !d.Sounds.Countdown
	case rowTurbine:
		d.Sounds.Turbine = !d.Sounds.Turbine
	case rowJet:
		d.Sounds.Jet = !d.Sounds.Jet
	case rowAutoRestart:
		d.AutoRestart = !d.AutoRestart
	case rowCollision:
		d.ObstacleCollision = !d.ObstacleCollision
	case rowShooting:
		d.Shooting = !d.Shooting
	}
}

func cycleLanguage(cur config.Language, delta int) config.Language {
	n := len(config.Languages)
	for i, l := range config.Languages {
		if l == cur {
			return config.Languages[((i+delta)%n+n)%n]
		}
	}
	return config.Languages[0]
}

// Draft returns the edited settings.
func (m SettingsModel) Draft() config.Settings {
	return m.draft
}

// Saved reports whether the player picked Save.
func (m SettingsModel) Saved() bool {
	return m.saved
}

// Cancelled reports whether the player left without saving.
func (m SettingsModel) Cancelled() bool {
	return m.cancelled
}

func (m SettingsModel) row(r settingsRow, tr i18n.Strings) (label, value string) {
	d := m.draft
	switch r {
	case rowLanguage:
		return tr.Language, i18n.LanguageName(d.Language)
	case rowVolume:
		return tr.Volume, strings.Repeat("■", d.Volume) + strings.Repeat("□", config.MaxVolume-d.Volume)
	case rowCountdown:
		return tr.CountdownSound, tr.Toggle(d.Sounds.Countdown)
	case rowTurbine:
		return tr.TurbineSound, tr.Toggle(d.Sounds.Turbine)
	case rowJet:
		return tr.JetSound, tr.Toggle(d.Sounds.Jet)
	case rowAutoRestart:
		return tr.AutoRestart, tr.Toggle(d.AutoRestart)
	case rowCollision:
		return tr.ObstacleCollision, tr.Toggle(d.ObstacleCollision)
	case rowShooting:
		return tr.Shooting, tr.Toggle(d.Shooting)
	case rowSave:
		return tr.Save, ""
	case rowBack:
		return tr.Back, ""
	}
	return "", ""
}

// View renders the screen in the draft's language so the choice previews itself.
func (m SettingsModel) View(st styles, width, height int) string {
	tr := i18n.For(m.draft.Language)

	labelWidth := 0
	for r := range settingsRowCount {
		label, _ := m.row(r, tr)
		labelWidth = max(labelWidth, lipgloss.Width(label))
	}

	lines := []string{st.title.Render(tr.Settings)}
	for r := range settingsRowCount {
		label, value := m.row(r, tr)
		text := label
		if value != "" {
			text = label + strings.Repeat(" ", labelWidth-lipgloss.Width(label)+2) + st.value.Render(value)
		}
		if r == rowSave {
			lines = append(lines, "")
		}
		style := st.item
		if r == m.cursor {
			style = st.selected
		}
		lines = append(lines, style.Render(text))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		st.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)),
		st.dim.Render(m.help.View(m.keys)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
