package renderers

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reel-spin/constants"
	"github.com/lixenwraith/reel-spin/render"
	"github.com/lixenwraith/reel-spin/spin"
	"github.com/lixenwraith/reel-spin/status"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func testContext(w, h int) render.RenderContext {
	windows := make([][]int, 5)
	for i := range windows {
		windows[i] = []int{i + 1, i, 9 - i}
	}
	return render.RenderContext{
		Width:   w,
		Height:  h,
		Layout:  render.NewLayout(w, h, 5, 1, 1),
		Status:  spin.StatusIdle,
		Windows: windows,
		Above:   1,
		Landed:  make([]bool, 5),
		Targets: []int{8, 5, 2, 4, 1},
	}
}

func renderAll(screen tcell.SimulationScreen, ctx render.RenderContext) {
	o := render.NewRenderOrchestrator(screen)
	o.Register(NewBackgroundRenderer(), render.PriorityBackground)
	o.Register(NewReelsRenderer(), render.PriorityReels)
	o.Register(NewPaylineRenderer(), render.PriorityPayline)
	o.Register(NewButtonRenderer(), render.PriorityButton)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
	o.RenderFrame(ctx)
}

func rowText(screen tcell.SimulationScreen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(c)
	}
	return sb.String()
}

func TestReelsRendererPaylineDigits(t *testing.T) {
	screen := newScreen(t, 80, 24)
	ctx := testContext(80, 24)
	renderAll(screen, ctx)

	for i, rect := range ctx.Layout.Reels {
		center := rect.X + rect.W/2
		c, _, _, _ := screen.GetContent(center, ctx.Layout.Payline)
		want := rune('0' + ctx.Windows[i][ctx.Above])
		if c != want {
			t.Errorf("Reel %d payline digit = %q, want %q", i, c, want)
		}

		above, _, _, _ := screen.GetContent(center, ctx.Layout.Payline-1)
		if above != rune('0'+ctx.Windows[i][0]) {
			t.Errorf("Reel %d digit above payline = %q, want %q", i, above, rune('0'+ctx.Windows[i][0]))
		}

		corner, _, _, _ := screen.GetContent(rect.X, rect.Y)
		if corner != tcell.RuneULCorner {
			t.Errorf("Reel %d frame corner = %q", i, corner)
		}
	}
}

func TestReelsRendererOutOfRangeDigit(t *testing.T) {
	screen := newScreen(t, 80, 24)
	ctx := testContext(80, 24)
	ctx.Windows[0] = []int{12, -1, 10}
	ctx.Targets[1] = 42
	renderAll(screen, ctx)

	rect := ctx.Layout.Reels[0]
	for row := 0; row < 3; row++ {
		c, _, _, _ := screen.GetContent(rect.X+rect.W/2, rect.Y+1+row)
		if c != '?' {
			t.Errorf("Row %d of reel 0 = %q, want '?'", row, c)
		}
	}
	rect = ctx.Layout.Reels[1]
	if c, _, _, _ := screen.GetContent(rect.X+rect.W/2, ctx.Layout.TargetRow); c != '?' {
		t.Errorf("Target of reel 1 = %q, want '?'", c)
	}
}

func TestDigitGlyph(t *testing.T) {
	tests := []struct {
		digit int
		want  rune
	}{
		{0, '0'},
		{9, '9'},
		{10, '?'},
		{19, '?'},
		{-1, '?'},
	}
	for _, tt := range tests {
		if got := digitGlyph(tt.digit); got != tt.want {
			t.Errorf("digitGlyph(%d) = %q, want %q", tt.digit, got, tt.want)
		}
	}
}

func TestReelsRendererTargetRow(t *testing.T) {
	screen := newScreen(t, 80, 24)
	ctx := testContext(80, 24)
	ctx.Landed[3] = true
	renderAll(screen, ctx)

	for i, rect := range ctx.Layout.Reels {
		c, _, style, _ := screen.GetContent(rect.X+rect.W/2, ctx.Layout.TargetRow)
		if c != rune('0'+ctx.Targets[i]) {
			t.Errorf("Reel %d target = %q, want %d", i, c, ctx.Targets[i])
		}
		fg, _, _ := style.Decompose()
		if landed := fg == render.RgbLanded; landed != ctx.Landed[i] {
			t.Errorf("Reel %d target landed color = %v, want %v", i, landed, ctx.Landed[i])
		}
	}
}

func TestReelsRendererLandedHighlight(t *testing.T) {
	screen := newScreen(t, 80, 24)
	ctx := testContext(80, 24)
	ctx.Landed[2] = true
	renderAll(screen, ctx)

	check := func(reel int, want tcell.Color) {
		rect := ctx.Layout.Reels[reel]
		_, _, style, _ := screen.GetContent(rect.X+rect.W/2, ctx.Layout.Payline)
		_, bg, _ := style.Decompose()
		if bg != want {
			t.Errorf("Reel %d payline background = %v, want %v", reel, bg, want)
		}
	}
	check(2, render.RgbLanded)
	check(0, render.RgbPayline)
}

func TestButtonRendererReflectsStatus(t *testing.T) {
	tests := []struct {
		status spin.Status
		text   string
	}{
		{spin.StatusIdle, constants.ButtonText},
		{spin.StatusSpinning, "[ o..... ]"},
		{spin.StatusComplete, "[ o..... ]"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			screen := newScreen(t, 80, 24)
			ctx := testContext(80, 24)
			ctx.Status = tt.status
			renderAll(screen, ctx)

			row := rowText(screen, ctx.Layout.Button.Y, 80)
			if !strings.Contains(row, tt.text) {
				t.Errorf("Button row %q does not contain %q", row, tt.text)
			}
		})
	}
}

func TestBusyTextSweeps(t *testing.T) {
	tests := []struct {
		frame int64
		want  string
	}{
		{0, "[ o..... ]"},
		{constants.ButtonBusyStride - 1, "[ o..... ]"},
		{constants.ButtonBusyStride, "[ .o.... ]"},
		{5 * constants.ButtonBusyStride, "[ .....o ]"},
		{6 * constants.ButtonBusyStride, "[ o..... ]"},
		{-3, "[ o..... ]"},
	}
	for _, tt := range tests {
		if got := busyText(tt.frame); got != tt.want {
			t.Errorf("busyText(%d) = %q, want %q", tt.frame, got, tt.want)
		}
		if len(busyText(tt.frame)) != len(constants.ButtonText) {
			t.Errorf("busyText(%d) width differs from idle label", tt.frame)
		}
	}
}

func TestButtonAnimatesWithFrame(t *testing.T) {
	screen := newScreen(t, 80, 24)
	ctx := testContext(80, 24)
	ctx.Status = spin.StatusSpinning
	ctx.FrameNumber = 2 * constants.ButtonBusyStride
	renderAll(screen, ctx)

	if row := rowText(screen, ctx.Layout.Button.Y, 80); !strings.Contains(row, "[ ..o... ]") {
		t.Errorf("Button row %q not advanced by frame number", row)
	}
}

func TestStatusBarRenderer(t *testing.T) {
	screen := newScreen(t, 100, 24)
	ctx := testContext(100, 24)
	ctx.Status = spin.StatusSpinning
	ctx.Metrics = status.Snapshot{
		Started:      3,
		Rejected:     1,
		Completed:    2,
		Landed:       12,
		Rotations:    250,
		Dropped:      4,
		SessionID:    "0123456789abcdef",
		LastDuration: 1450 * time.Millisecond,
	}
	renderAll(screen, ctx)

	row := rowText(screen, 23, 100)
	for _, want := range []string{
		constants.StatusTextSpin,
		"spins:3",
		"rejected:1",
		"landed:12",
		"rotations:250",
		"last:1450ms",
		"dropped:4",
		"session:01234567 ",
	} {
		if !strings.Contains(row, want) {
			t.Errorf("Status bar %q missing %q", row, want)
		}
	}
}

func TestStatusBarOmitsEmptySession(t *testing.T) {
	screen := newScreen(t, 80, 24)
	ctx := testContext(80, 24)
	renderAll(screen, ctx)

	row := rowText(screen, 23, 80)
	if strings.Contains(row, "session:") || strings.Contains(row, "last:") || strings.Contains(row, "dropped:") {
		t.Errorf("Fresh status bar should not show session or duration: %q", row)
	}
	if !strings.Contains(row, constants.StatusTextIdle) {
		t.Errorf("Status bar %q missing idle label", row)
	}
}

func TestTooSmallScreen(t *testing.T) {
	screen := newScreen(t, 30, 8)
	ctx := testContext(30, 8)
	renderAll(screen, ctx)

	if ctx.Layout.Fits {
		t.Fatal("30x8 should not fit the machine")
	}
	row := rowText(screen, 4, 30)
	if !strings.Contains(row, constants.TooSmallText) {
		t.Errorf("Row %q missing too-small message", row)
	}
	if strings.Contains(rowText(screen, ctx.Layout.Button.Y, 30), constants.ButtonText) {
		t.Error("Button should not render on a too-small screen")
	}
}
