package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "up",
	ebiten.KeyArrowDown:  "down",
	ebiten.KeyArrowLeft:  "left",
	ebiten.KeyArrowRight: "right",
	ebiten.KeySpace:      "space",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyEscape:     "esc",
}

// keyName maps an ebiten key to the names used by core.Bindings.
func keyName(k ebiten.Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return strings.ToLower(k.String())
}
