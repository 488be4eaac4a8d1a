//go:build !js

package nodegraph

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title string
	// Scale multiplies the window size; the canvas keeps its pixel size.
	// Zero means 1.
	Scale float64
	// ExitWhenScriptDone ends Run once an attached test script has finished
	// and its screenshots are written.
	ExitWhenScriptDone bool
	// ShowFPS draws an FPS/TPS counter over each rendered frame.
	ShowFPS bool
}

// Game is the ebiten.Game that hosts a Diagram. Update turns mouse state
// into pointer events; Draw runs the render loop's pending frame.
//
// Most callers use Run. Embed or wrap Game to integrate a Diagram into an
// existing ebiten program.
type Game struct {
	d       *Diagram
	cfg     RunConfig
	screen  *ScreenCanvas
	pending func()
	fps     *fpsOverlay

	lastX, lastY int
	seen         bool
}

// NewGame attaches a render loop scheduled on ebiten's Draw calls and
// starts it.
func NewGame(d *Diagram, cfg RunConfig) *Game {
	g := &Game{d: d, cfg: cfg, screen: &ScreenCanvas{AntiAlias: true}}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	d.AttachLoop(g, func() Canvas { return g.screen })
	d.Start()
	return g
}

// RequestFrame implements FrameScheduler. The callback runs in the next Draw.
func (g *Game) RequestFrame(fn func()) {
	g.pending = fn
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.cfg.ExitWhenScriptDone && g.d.testRunner != nil && g.d.testRunner.Done() &&
		len(g.d.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	if g.d.Step() {
		return nil
	}
	g.pollMouse()
	return nil
}

// pollMouse emits at most one press, one release, and one move per frame.
// Ebiten reports cursor positions in canvas pixels already, so the
// diagram's viewport is expected to be zero.
func (g *Game) pollMouse() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	moved := !g.seen || x != g.lastX || y != g.lastY
	g.lastX, g.lastY, g.seen = x, y, true

	if moved {
		g.d.HandleEvent(PointerEvent{Signal: SignalMove, PageX: fx, PageY: fy})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.d.HandleEvent(PointerEvent{Signal: SignalPressDown, PageX: fx, PageY: fy})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.d.HandleEvent(PointerEvent{Signal: SignalPressUp, PageX: fx, PageY: fy})
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Image = screen
	if fn := g.pending; fn != nil {
		g.pending = nil
		fn()
		if g.fps != nil {
			g.fps.draw(screen)
		}
	}
}

// Layout implements ebiten.Game. The logical screen is always the canvas size.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.d.Size()
	return int(w), int(h)
}

// Run opens a window sized to the diagram and blocks until it is closed.
func Run(d *Diagram, cfg RunConfig) error {
	if d == nil {
		return errors.New("nodegraph: Run with nil diagram")
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := d.Size()
	ebiten.SetWindowSize(int(w*scale), int(h*scale))
	// A stopped render loop leaves the last frame on screen.
	ebiten.SetScreenClearedEveryFrame(false)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	return ebiten.RunGame(NewGame(d, cfg))
}
