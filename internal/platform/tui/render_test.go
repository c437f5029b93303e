package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rocket-kid/internal/core"
)

func asciiRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(io.Discard)
}

func TestScreenRendererPlainText(t *testing.T) {
	scr := core.NewScreen(10, 3)
	scr.DrawTextColored(0, 0, "hello", core.RGB{R: 255})
	scr.SetBG(5, 1, core.RGB{B: 255})
	scr.DrawText(2, 2, "ok")

	r := NewScreenRenderer(asciiRenderer())
	if got, want := r.Render(scr), scr.String(); got != want {
		t.Errorf("Render() = %q, expected %q", got, want)
	}
}

func TestScreenRendererCachesStyles(t *testing.T) {
	scr := core.NewScreen(4, 2)
	scr.SetBG(0, 0, core.RGB{R: 1})
	scr.SetBG(1, 0, core.RGB{R: 1})

	r := NewScreenRenderer(asciiRenderer())
	r.Render(scr)
	r.Render(scr)
	if len(r.styles) != 2 {
		t.Errorf("cached %d styles, expected 2 color pairs", len(r.styles))
	}
}
