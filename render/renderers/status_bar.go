package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reel-spin/constants"
	"github.com/lixenwraith/reel-spin/render"
	"github.com/lixenwraith/reel-spin/spin"
)

// StatusBarRenderer draws the session status and spin counters on the last row
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (r *StatusBarRenderer) Render(ctx render.RenderContext, s render.Surface) {
	bar := ctx.Layout.Status
	render.FillRect(s, bar, ' ', render.StyleStatus)

	label, color := constants.StatusTextIdle, render.RgbIdle
	switch ctx.Status {
	case spin.StatusSpinning:
		label, color = constants.StatusTextSpin, render.RgbSpinning
	case spin.StatusComplete:
		label, color = constants.StatusTextDone, render.RgbComplete
	}
	x := render.DrawText(s, bar.X, bar.Y, label, tcell.StyleDefault.Background(color).Foreground(render.RgbStatusBar).Bold(true))

	m := ctx.Metrics
	info := fmt.Sprintf(" spins:%d rejected:%d landed:%d rotations:%d", m.Started, m.Rejected, m.Landed, m.Rotations)
	if m.Completed > 0 {
		info += fmt.Sprintf(" last:%dms", m.LastDuration.Milliseconds())
	}
	if m.Dropped > 0 {
		info += fmt.Sprintf(" dropped:%d", m.Dropped)
	}
	if id := m.SessionID; id != "" {
		if len(id) > constants.SessionIDPrefix {
			id = id[:constants.SessionIDPrefix]
		}
		info += " session:" + id
	}
	render.DrawText(s, x, bar.Y, info, render.StyleStatus)
}
