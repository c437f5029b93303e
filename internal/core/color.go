package core

import "fmt"

// RGB is an opaque 24-bit cell color.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as #rrggbb, the form lipgloss accepts.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Default cell colors.
var (
	ColorBlack = RGB{0, 0, 0}
	ColorWhite = RGB{255, 255, 255}
)
