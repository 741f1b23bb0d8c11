package renderers

import (
	"github.com/lixenwraith/reel-spin/constants"
	"github.com/lixenwraith/reel-spin/render"
)

// BackgroundRenderer paints the cabinet and the title
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates a background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements SystemRenderer
func (b *BackgroundRenderer) Render(ctx render.RenderContext, s render.Surface) {
	render.FillRect(s, render.Rect{W: ctx.Width, H: ctx.Height}, ' ', render.StyleCabinet)

	if !ctx.Layout.Fits {
		msg := constants.TooSmallText
		render.DrawText(s, (ctx.Width-len(msg))/2, ctx.Height/2, msg, render.StyleCabinet.Bold(true))
		return
	}

	title := ctx.Layout.Title
	x := title.X + (title.W-len(constants.TitleText))/2
	render.DrawText(s, x, title.Y, constants.TitleText, render.StyleCabinet.Bold(true))
}
