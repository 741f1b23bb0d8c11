package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reel-spin/render"
)

// ReelsRenderer draws every reel frame with its digit window
type ReelsRenderer struct{}

// NewReelsRenderer creates a reels renderer
func NewReelsRenderer() *ReelsRenderer {
	return &ReelsRenderer{}
}

// Render implements SystemRenderer
func (r *ReelsRenderer) Render(ctx render.RenderContext, s render.Surface) {
	if !ctx.Layout.Fits {
		return
	}
	frameStyle := tcell.StyleDefault.Background(render.RgbReelBg).Foreground(render.RgbReelFrame)

	for i, rect := range ctx.Layout.Reels {
		if i >= len(ctx.Windows) {
			break
		}
		render.FillRect(s, rect, ' ', frameStyle)
		render.DrawBox(s, rect, frameStyle)

		center := rect.X + rect.W/2
		for row, digit := range ctx.Windows[i] {
			y := rect.Y + 1 + row
			style := tcell.StyleDefault.Background(render.RgbReelBg).Foreground(render.RgbDigitDim)
			if row == ctx.Above {
				style = r.paylineStyle(ctx, i)
				// Payline spans the full inner width
				for x := rect.X + 1; x < rect.X+rect.W-1; x++ {
					s.SetContent(x, y, ' ', nil, style)
				}
			}
			s.SetContent(center, y, digitGlyph(digit), nil, style)
		}

		if i < len(ctx.Targets) {
			s.SetContent(center, ctx.Layout.TargetRow, digitGlyph(ctx.Targets[i]), nil, r.targetStyle(ctx, i))
		}
	}
}

// digitGlyph maps a strip digit to its cell rune, '?' when out of range
func digitGlyph(d int) rune {
	if d < 0 || d > 9 {
		return '?'
	}
	return rune('0' + d)
}

func (r *ReelsRenderer) targetStyle(ctx render.RenderContext, reel int) tcell.Style {
	style := render.StyleCabinet
	if reel < len(ctx.Landed) && ctx.Landed[reel] {
		return style.Foreground(render.RgbLanded).Bold(true)
	}
	return style.Dim(true)
}

func (r *ReelsRenderer) paylineStyle(ctx render.RenderContext, reel int) tcell.Style {
	bg := render.RgbPayline
	if reel < len(ctx.Landed) && ctx.Landed[reel] {
		bg = render.RgbLanded
	}
	return tcell.StyleDefault.Background(bg).Foreground(render.RgbDigit).Bold(true)
}
