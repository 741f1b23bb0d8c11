package render

import (
	"testing"

	"github.com/lixenwraith/reel-spin/constants"
)

func TestLayoutCentersMachine(t *testing.T) {
	l := NewLayout(80, 24, 5, 1, 1)

	if !l.Fits {
		t.Fatal("80x24 should fit five reels")
	}
	if len(l.Reels) != 5 {
		t.Fatalf("Expected 5 reel rects, got %d", len(l.Reels))
	}

	frameW := constants.ReelCellWidth + 2
	wantW := 5*frameW + 4*constants.ReelGap
	if l.Machine.W != wantW {
		t.Errorf("Machine width = %d, want %d", l.Machine.W, wantW)
	}
	left := l.Machine.X
	right := 80 - (l.Machine.X + l.Machine.W)
	if d := left - right; d < -1 || d > 1 {
		t.Errorf("Machine not centered: left margin %d, right margin %d", left, right)
	}

	for i := 1; i < len(l.Reels); i++ {
		gap := l.Reels[i].X - (l.Reels[i-1].X + l.Reels[i-1].W)
		if gap != constants.ReelGap {
			t.Errorf("Gap between reel %d and %d = %d, want %d", i-1, i, gap, constants.ReelGap)
		}
	}
}

func TestLayoutRows(t *testing.T) {
	l := NewLayout(80, 24, 5, 2, 1)

	if l.Reels[0].H != 6 {
		t.Errorf("Frame height = %d, want 6", l.Reels[0].H)
	}
	if l.Payline != l.Machine.Y+1+2 {
		t.Errorf("Payline = %d, want %d", l.Payline, l.Machine.Y+3)
	}
	if l.TargetRow != l.Machine.Y+l.Machine.H {
		t.Errorf("Target row = %d, want %d", l.TargetRow, l.Machine.Y+l.Machine.H)
	}
	if l.TargetRow >= l.Button.Y {
		t.Errorf("Target row %d collides with button row %d", l.TargetRow, l.Button.Y)
	}
}

func TestLayoutVerticalOrder(t *testing.T) {
	l := NewLayout(80, 24, 5, 1, 1)

	if l.Title.Y >= l.Machine.Y {
		t.Errorf("Title row %d should be above machine row %d", l.Title.Y, l.Machine.Y)
	}
	if l.Button.Y != l.Machine.Y+l.Machine.H+constants.ButtonGap {
		t.Errorf("Button row = %d, want %d", l.Button.Y, l.Machine.Y+l.Machine.H+constants.ButtonGap)
	}
	if l.Help.Y != l.Button.Y+1 {
		t.Errorf("Help row = %d, want %d", l.Help.Y, l.Button.Y+1)
	}
	if l.Status.Y != 23 {
		t.Errorf("Status row = %d, want 23", l.Status.Y)
	}
	if l.Help.Y >= l.Status.Y {
		t.Errorf("Help row %d overlaps status row %d", l.Help.Y, l.Status.Y)
	}
}

func TestLayoutTooSmall(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		expect bool
	}{
		{"narrow", 20, 24, false},
		{"short", 80, 6, false},
		{"exact", 5*(constants.ReelCellWidth+2) + 4*constants.ReelGap + 2, 11, true},
		{"roomy", 120, 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.w, tt.h, 5, 1, 1)
			if l.Fits != tt.expect {
				t.Errorf("Fits = %v, want %v", l.Fits, tt.expect)
			}
			if l.Machine.X < 0 || l.Title.Y < 0 {
				t.Errorf("Negative origin: machine x=%d title y=%d", l.Machine.X, l.Title.Y)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 1}

	if !r.Contains(2, 3) || !r.Contains(5, 3) {
		t.Error("Edges inside the rect should be contained")
	}
	if r.Contains(6, 3) || r.Contains(2, 4) || r.Contains(1, 3) {
		t.Error("Points outside the rect should not be contained")
	}
}
