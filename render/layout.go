package render

import (
	"github.com/lixenwraith/reel-spin/constants"
)

// Rect is a screen-space rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) falls inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout positions the machine centered on the screen
type Layout struct {
	Title     Rect
	Reels     []Rect // Frame rectangles including borders
	Payline   int    // Screen row of the payline
	TargetRow int    // Row under the frames showing each reel's winning digit
	Button    Rect
	Help      Rect
	Status    Rect
	Machine   Rect // Bounding box of the reel frames
	Fits      bool // False when the screen is too small for the machine
}

// NewLayout computes the layout for reelCount reels with the given visible rows
func NewLayout(width, height, reelCount, above, below int) Layout {
	frameW := constants.ReelCellWidth + 2
	frameH := above + 1 + below + 2
	machineW := reelCount*frameW + (reelCount-1)*constants.ReelGap

	// title, gap, frames, gap, button, help
	contentH := 1 + 1 + frameH + constants.ButtonGap + 1 + 1

	x0 := (width - machineW) / 2
	y0 := (height - 1 - contentH) / 2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}

	l := Layout{
		Title:   Rect{X: 0, Y: y0, W: width, H: 1},
		Machine: Rect{X: x0, Y: y0 + 2, W: machineW, H: frameH},
		Status:  Rect{X: 0, Y: height - 1, W: width, H: 1},
		Fits:    width >= machineW+2 && height >= contentH+1,
	}
	l.Payline = l.Machine.Y + 1 + above
	l.TargetRow = l.Machine.Y + frameH

	l.Reels = make([]Rect, reelCount)
	for i := range l.Reels {
		l.Reels[i] = Rect{X: x0 + i*(frameW+constants.ReelGap), Y: l.Machine.Y, W: frameW, H: frameH}
	}

	buttonW := len(constants.ButtonText)
	l.Button = Rect{X: (width - buttonW) / 2, Y: l.Machine.Y + frameH + constants.ButtonGap, W: buttonW, H: 1}
	l.Help = Rect{X: 0, Y: l.Button.Y + 1, W: width, H: 1}

	return l
}
