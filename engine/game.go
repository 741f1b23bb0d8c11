// Package engine runs the frame loop: terminal input, event dispatch and rendering.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/reel-spin/config"
	"github.com/lixenwraith/reel-spin/constants"
	"github.com/lixenwraith/reel-spin/core"
	"github.com/lixenwraith/reel-spin/events"
	"github.com/lixenwraith/reel-spin/reel"
	"github.com/lixenwraith/reel-spin/render"
	"github.com/lixenwraith/reel-spin/render/renderers"
	"github.com/lixenwraith/reel-spin/spin"
	"github.com/lixenwraith/reel-spin/status"
)

// Option configures a Game
type Option func(*Game)

// WithLogger sets the structured logger shared with the choreographer
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithHandler registers an additional event handler, e.g. the audio handler
func WithHandler(h events.Handler) Option {
	return func(g *Game) {
		if h != nil {
			g.handlers = append(g.handlers, h)
		}
	}
}

// Game wires the reels, the choreographer and the render pipeline to a screen
type Game struct {
	screen tcell.Screen
	log    *zap.Logger

	reels   []*reel.Reel
	spinner *spin.Choreographer

	queue    *events.EventQueue
	router   *events.Router
	handlers []events.Handler
	landed   *landedTracker

	registry *status.Registry
	metrics  *status.SpinMetrics

	orchestrator *render.RenderOrchestrator
	layout       render.Layout
	width        int
	height       int
	frame        int64

	lastButtons tcell.ButtonMask
}

// NewGame builds the machine described by cfg on screen
func NewGame(screen tcell.Screen, cfg *config.Config, opts ...Option) (*Game, error) {
	if screen == nil {
		return nil, errors.New("engine: nil screen")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:   screen,
		log:      zap.NewNop(),
		registry: status.NewRegistry(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.metrics = status.NewSpinMetrics(g.registry)
	g.queue = events.NewEventQueue(g.metrics.Dropped)
	g.router = events.NewRouter(g.queue)

	reels, err := reel.NewSet(cfg.Reels.Count, cfg.Reels.Digits)
	if err != nil {
		return nil, err
	}
	g.reels = reels

	g.spinner, err = spin.New(reels,
		spin.Request{Targets: cfg.Reels.Targets, Stagger: cfg.Spin.Stagger},
		spin.Timing{BlindRotations: cfg.Spin.BlindRotations, RotationInterval: cfg.Spin.RotationInterval},
		spin.WithPublisher(g.queue),
		spin.WithLogger(g.log),
		spin.WithMetrics(g.metrics),
	)
	if err != nil {
		return nil, err
	}

	g.landed = newLandedTracker(len(reels))
	g.router.Register(g.landed)
	for _, h := range g.handlers {
		g.router.Register(h)
	}

	g.orchestrator = render.NewRenderOrchestrator(screen)
	g.orchestrator.Register(renderers.NewBackgroundRenderer(), render.PriorityBackground)
	g.orchestrator.Register(renderers.NewReelsRenderer(), render.PriorityReels)
	g.orchestrator.Register(renderers.NewPaylineRenderer(), render.PriorityPayline)
	g.orchestrator.Register(renderers.NewButtonRenderer(), render.PriorityButton)
	g.orchestrator.Register(renderers.NewStatusBarRenderer(), render.PriorityUI)

	g.resize()

	return g, nil
}

// Choreographer returns the spin driver
func (g *Game) Choreographer() *spin.Choreographer {
	return g.spinner
}

// Layout returns the current screen layout
func (g *Game) Layout() render.Layout {
	return g.layout
}

// RequestSpin is the single start trigger
// Returns false when a spin is already in flight; the request is then a no-op
func (g *Game) RequestSpin() bool {
	s, err := g.spinner.Spin(context.Background())
	if err != nil {
		if !errors.Is(err, spin.ErrSpinInProgress) {
			g.log.Error("spin request failed", zap.Error(err))
		}
		return false
	}
	g.log.Debug("spin requested", zap.String("session", s.ID))
	return true
}

// HandleEvent processes one terminal event. Returns false when the program should exit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventMouse:
		x, y := ev.Position()
		g.handleMouse(x, y, ev.Buttons())

	case *tcell.EventResize:
		g.resize()
		g.orchestrator.Resize()
	}
	return true
}

func (g *Game) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		g.RequestSpin()
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return false
		case ' ', 's', 'S':
			g.RequestSpin()
		}
	}
	return true
}

// handleMouse triggers on the press edge of the primary button over the spin button
func (g *Game) handleMouse(x, y int, buttons tcell.ButtonMask) {
	pressed := buttons&tcell.Button1 != 0 && g.lastButtons&tcell.Button1 == 0
	g.lastButtons = buttons
	if pressed && g.layout.Fits && g.layout.Button.Contains(x, y) {
		g.RequestSpin()
	}
}

func (g *Game) resize() {
	g.width, g.height = g.screen.Size()
	g.layout = render.NewLayout(g.width, g.height, len(g.reels), constants.ReelVisibleAbove, constants.ReelVisibleBelow)
}

// Frame dispatches pending spin events and draws one frame
func (g *Game) Frame() {
	g.router.DispatchAll()
	g.frame++
	g.orchestrator.RenderFrame(g.renderContext())
}

func (g *Game) renderContext() render.RenderContext {
	windows := make([][]int, len(g.reels))
	for i, r := range g.reels {
		windows[i] = r.Window(constants.ReelVisibleAbove, constants.ReelVisibleBelow)
	}

	targets := g.spinner.Request().Targets
	if s := g.spinner.Current(); s != nil {
		targets = s.Request.Targets
	}

	return render.RenderContext{
		Width:       g.width,
		Height:      g.height,
		Layout:      g.layout,
		Status:      g.spinner.Status(),
		Windows:     windows,
		Above:       constants.ReelVisibleAbove,
		Landed:      g.landed.Snapshot(),
		Targets:     targets,
		Metrics:     g.metrics.Snapshot(),
		FrameNumber: g.frame,
	}
}

// Run drives input and frames until quit or ctx is done
func (g *Game) Run(ctx context.Context) {
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	g.Frame()
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			if !g.HandleEvent(ev) {
				g.log.Info("quit requested")
				return
			}

		case <-frameTicker.C:
			g.Frame()
		}
	}
}
