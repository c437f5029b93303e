package core

import (
	"strings"
	"testing"
)

func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y, row := range rows(s) {
		if row != "      " {
			t.Errorf("row %d = %q, expected blanks", y, row)
		}
	}
	if c := s.CellAt(2, 1); c != blankCell {
		t.Errorf("cell = %+v, expected white on black blank", c)
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want []string
	}{
		{
			name: "set ignores out of bounds",
			draw: func(s *Screen) {
				s.Set(1, 1, 'x')
				s.Set(-1, 0, 'x')
				s.Set(0, 9, 'x')
			},
			want: []string{"     ", " x   ", "     "},
		},
		{
			name: "text clips at the right edge",
			draw: func(s *Screen) {
				s.DrawText(1, 0, "go")
				s.DrawText(3, 2, "rocket")
			},
			want: []string{" go  ", "     ", "   ro"},
		},
		{
			name: "centered text",
			draw: func(s *Screen) { s.DrawTextCentered(1, "ok") },
			want: []string{"     ", " ok  ", "     "},
		},
		{
			name: "filled rect",
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 0, 2, 2), '#') },
			want: []string{" ##  ", " ##  ", "     "},
		},
		{
			name: "box outline",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 5, 3)) },
			want: []string{"┌───┐", "│   │", "└───┘"},
		},
		{
			name: "clear wipes everything",
			draw: func(s *Screen) {
				s.DrawRect(NewRect(0, 0, 5, 3), 'z')
				s.Clear()
			},
			want: []string{"     ", "     ", "     "},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(5, 3)
			tc.draw(s)
			got := rows(s)
			for y := range tc.want {
				if got[y] != tc.want[y] {
					t.Errorf("row %d = %q, expected %q", y, got[y], tc.want[y])
				}
			}
		})
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "ab")
	if got := s.Row(1); got != "ab  " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(5); got != "    " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(0, 0, "launch")
	s.DrawText(0, 3, "pad")

	s.Resize(3, 2)
	if got := s.String(); got != "lau\n   " {
		t.Errorf("after shrink = %q", got)
	}

	s.Resize(5, 3)
	if got := s.String(); got != "lau  \n     \n     " {
		t.Errorf("after grow = %q", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 2)
	sky := RGB{30, 144, 255}
	s.ClearTo(sky)

	if c := s.CellAt(3, 1); c.BG != sky || c.Ch != ' ' {
		t.Errorf("ClearTo: got %+v, expected blank on %v", c, sky)
	}

	red := RGB{255, 0, 0}
	s.SetGlyph(1, 0, '*', red)
	c := s.CellAt(1, 0)
	if c.Ch != '*' || c.FG != red || c.BG != sky {
		t.Errorf("SetGlyph should keep background, got %+v", c)
	}

	s.SetBG(1, 0, ColorBlack)
	if c := s.CellAt(1, 0); c.Ch != '*' || c.BG != ColorBlack {
		t.Errorf("SetBG should keep the rune, got %+v", c)
	}

	s.DrawTextColored(0, 1, "hi", red)
	if c := s.CellAt(1, 1); c.Ch != 'i' || c.FG != red || c.BG != sky {
		t.Errorf("DrawTextColored = %+v", c)
	}

	if c := s.CellAt(-1, 0); c != blankCell {
		t.Errorf("out of bounds CellAt = %+v, expected blank", c)
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB{0, 0, 0}, "#000000"},
		{RGB{255, 69, 0}, "#ff4500"},
		{RGB{30, 144, 255}, "#1e90ff"},
	}
	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.want {
			t.Errorf("%v.Hex() = %q, expected %q", tc.c, got, tc.want)
		}
	}
}
