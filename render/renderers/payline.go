package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reel-spin/render"
)

// PaylineRenderer draws the arrow markers on both sides of the machine
type PaylineRenderer struct{}

// NewPaylineRenderer creates a payline marker renderer
func NewPaylineRenderer() *PaylineRenderer {
	return &PaylineRenderer{}
}

// Render implements SystemRenderer
func (p *PaylineRenderer) Render(ctx render.RenderContext, s render.Surface) {
	if !ctx.Layout.Fits {
		return
	}
	m := ctx.Layout.Machine
	style := render.StyleCabinet.Foreground(render.RgbPayline).Bold(true)
	s.SetContent(m.X-1, ctx.Layout.Payline, tcell.RuneRArrow, nil, style)
	s.SetContent(m.X+m.W, ctx.Layout.Payline, tcell.RuneLArrow, nil, style)
}
