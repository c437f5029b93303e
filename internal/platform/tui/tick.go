// Package tui is the terminal front-end: the Bubble Tea app with its menu,
// settings and scoreboard screens, the in-game view, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the flight with the given driver ID to run one frame.
type FrameMsg struct {
	Driver uint64
	At     time.Time
}

// frameCmd schedules the next frame for driver id at fps frames per second.
func frameCmd(id uint64, fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Driver: id, At: t}
	})
}
