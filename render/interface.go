package render

import "github.com/gdamore/tcell/v2"

// Surface is the drawable subset of tcell.Screen used by renderers
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// SystemRenderer is implemented by every visual layer
type SystemRenderer interface {
	Render(ctx RenderContext, surface Surface)
}
