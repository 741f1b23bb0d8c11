package render

import "github.com/gdamore/tcell/v2"

// DrawText writes s starting at (x, y), clipped to the surface width
// Returns the column after the last written rune
func DrawText(s Surface, x, y int, text string, style tcell.Style) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range text {
		if x >= w {
			break
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

// FillRect paints r with ch in style
func FillRect(s Surface, r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

// DrawBox draws a single-line border around r
func DrawBox(s Surface, r Rect, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		s.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetContent(r.X, y, tcell.RuneVLine, nil, style)
		s.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, style)
	s.SetContent(right, r.Y, tcell.RuneURCorner, nil, style)
	s.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}
