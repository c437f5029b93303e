package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rocket-kid/internal/core"
)

type cellColors struct {
	fg, bg core.RGB
}

// ScreenRenderer turns a Screen buffer into styled text. It caches one
// lipgloss style per color pair; SSH sessions pass their own renderer so the
// color profile matches the remote terminal.
type ScreenRenderer struct {
	lg     *lipgloss.Renderer
	styles map[cellColors]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil lg uses the default renderer.
func NewScreenRenderer(lg *lipgloss.Renderer) *ScreenRenderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{lg: lg, styles: make(map[cellColors]lipgloss.Style)}
}

func (r *ScreenRenderer) style(k cellColors) lipgloss.Style {
	st, ok := r.styles[k]
	if !ok {
		st = r.lg.NewStyle().
			Foreground(lipgloss.Color(k.fg.Hex())).
			Background(lipgloss.Color(k.bg.Hex()))
		r.styles[k] = st
	}
	return st
}

// Render converts the screen to a styled string. Adjacent cells with the
// same colors share one escape sequence.
func (r *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.CellAt(x, y)
			k := cellColors{cell.FG, cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.CellAt(x, y)
				if (cellColors{cell.FG, cell.BG}) != k {
					break
				}
				run.WriteRune(cell.Ch)
				x++
			}
			sb.WriteString(r.style(k).Render(run.String()))
		}
	}
	return sb.String()
}
