package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reel-spin/constants"
	"github.com/lixenwraith/reel-spin/render"
	"github.com/lixenwraith/reel-spin/spin"
)

// ButtonRenderer draws the spin trigger, disabled while a spin is in flight
type ButtonRenderer struct{}

// NewButtonRenderer creates a button renderer
func NewButtonRenderer() *ButtonRenderer {
	return &ButtonRenderer{}
}

// Render implements SystemRenderer
func (b *ButtonRenderer) Render(ctx render.RenderContext, s render.Surface) {
	if !ctx.Layout.Fits {
		return
	}
	text := constants.ButtonText
	style := tcell.StyleDefault.Background(render.RgbButton).Foreground(render.RgbButtonText).Bold(true)
	if ctx.Status != spin.StatusIdle {
		text = busyText(ctx.FrameNumber)
		style = tcell.StyleDefault.Background(render.RgbDisabled).Foreground(render.RgbReelFrame).Dim(true)
	}
	render.DrawText(s, ctx.Layout.Button.X, ctx.Layout.Button.Y, text, style)

	help := ctx.Layout.Help
	render.DrawText(s, help.X+(help.W-len(constants.HelpText))/2, help.Y, constants.HelpText, render.StyleCabinet)
}

// busyText sweeps a marker across the dots of the busy label, one cell per stride
func busyText(frame int64) string {
	text := []rune(constants.ButtonTextBusy)
	first, last := -1, -1
	for i, ch := range text {
		if ch == '.' {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return constants.ButtonTextBusy
	}
	if frame < 0 {
		frame = 0
	}
	span := int64(last - first + 1)
	text[first+int((frame/constants.ButtonBusyStride)%span)] = constants.ButtonBusyMark
	return string(text)
}
