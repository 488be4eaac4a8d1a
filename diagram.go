package nodegraph

import (
	"log/slog"
	"os"

	"github.com/yohamta/donburi"
)

// Options configures a Diagram.
type Options struct {
	// Width and Height are the canvas size in pixels.
	Width, Height float64
	Palette       Palette
	Layout        LayoutConfig
	// Viewport translates host page coordinates into canvas coordinates.
	Viewport Viewport
	// Logger receives load and debug records. Nil uses a text handler on
	// stderr.
	Logger *slog.Logger
	// Debug logs render stats every frame.
	Debug bool
	// ScreenshotDir is where Screenshot writes PNGs.
	ScreenshotDir string
}

// DefaultOptions returns the 450x300 canvas with the default palette and grid.
func DefaultOptions() Options {
	return Options{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Palette:       DefaultPalette(),
		Layout:        DefaultLayoutConfig(),
		ScreenshotDir: "screenshots",
	}
}

// Diagram is the top-level object: it owns the entity store, the pointer
// state, and the renderer, and runs one tick per pointer event.
//
// A Diagram is not safe for concurrent use. Hosts deliver pointer events and
// frame callbacks from a single goroutine.
type Diagram struct {
	store    *Store
	pointer  PointerState
	viewport Viewport
	renderer *Renderer
	logger   *slog.Logger
	debug    bool
	width    float64
	height   float64
	layoutCf LayoutConfig
	layout   LayoutResult
	loop     *RenderLoop

	lastStats RenderStats

	injectQueue     []PointerEvent
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir string
}

// New creates an empty diagram.
func New(opts Options) *Diagram {
	logger := opts.Logger
	if logger == nil {
		level := slog.LevelInfo
		if opts.Debug {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	if opts.Layout.CanvasWidth == 0 {
		opts.Layout.CanvasWidth = opts.Width
	}
	return &Diagram{
		store:         NewStore(),
		viewport:      opts.Viewport,
		renderer:      NewRenderer(opts.Palette),
		logger:        logger.With("component", "nodegraph"),
		debug:         opts.Debug,
		width:         opts.Width,
		height:        opts.Height,
		layoutCf:      opts.Layout,
		ScreenshotDir: opts.ScreenshotDir,
	}
}

// Store returns the diagram's entity store.
func (d *Diagram) Store() *Store {
	return d.store
}

// Pointer returns the last broadcast pointer position.
func (d *Diagram) Pointer() PointerState {
	return d.pointer
}

// Size returns the canvas size in pixels.
func (d *Diagram) Size() (w, h float64) {
	return d.width, d.height
}

// SetViewport updates the page-to-canvas translation, e.g. after the page
// scrolls or the canvas moves.
func (d *Diagram) SetViewport(v Viewport) {
	d.viewport = v
}

// Renderer returns the diagram's renderer. Its palette may be changed
// between frames.
func (d *Diagram) Renderer() *Renderer {
	return d.renderer
}

// Logger returns the diagram's logger.
func (d *Diagram) Logger() *slog.Logger {
	return d.logger
}

// Load lays out g, replacing any previous layout. When g is rejected the
// error is returned and the previous layout stays in place.
func (d *Diagram) Load(g Graph) error {
	if _, err := g.Validate(); err != nil {
		d.logger.Warn("graph rejected", "err", err)
		return err
	}
	d.store.Clear()
	res, err := Layout(d.store, g, d.layoutCf)
	if err != nil {
		d.logger.Warn("layout failed", "err", err)
		return err
	}
	d.layout = res
	d.logger.Info("graph laid out",
		"nodes", len(res.Order), "edges", len(res.Edges), "omitted", len(res.Omitted))
	if len(res.Omitted) > 0 {
		d.logger.Debug("unreachable nodes omitted", "ids", res.Omitted)
	}
	return nil
}

// LayoutResult returns what the last successful Load created.
func (d *Diagram) LayoutResult() LayoutResult {
	return d.layout
}

// EntityFor returns the node entity laid out for a graph node id.
func (d *Diagram) EntityFor(id int64) (Entity, bool) {
	e, ok := d.layout.Nodes[id]
	return e, ok
}

// HandleEvent runs one tick for a pointer event: broadcast the pointer
// position, update interaction state, resolve drags, then deliver the
// tick's transitions to OnTransition subscribers.
func (d *Diagram) HandleEvent(ev PointerEvent) []Transition {
	BroadcastPointer(&d.pointer, ev, d.viewport)
	ts := UpdateInteraction(d.store, d.pointer, ev.Signal)
	ResolveDrag(d.store, d.pointer)
	TransitionEvent.ProcessEvents(d.store.World())
	return ts
}

// OnTransition registers fn to be called for every interaction transition.
// Calls happen synchronously at the end of each HandleEvent.
func (d *Diagram) OnTransition(fn func(Transition)) {
	TransitionEvent.Subscribe(d.store.World(), func(_ donburi.World, t Transition) {
		fn(t)
	})
}

// Step advances scripted input by one frame: the test runner, if any,
// steps first, then one queued synthetic event is consumed. It reports
// whether a synthetic event ran, in which case hosts skip real input for
// the frame.
func (d *Diagram) Step() bool {
	if d.testRunner != nil {
		d.testRunner.step(d)
	}
	return d.processInjectedInput()
}

// Draw renders the diagram onto c and flushes queued screenshots when c is
// an ebiten screen.
func (d *Diagram) Draw(c Canvas) RenderStats {
	stats := d.renderer.Render(c, d.store)
	d.lastStats = stats
	if d.debug {
		d.debugLog(stats)
	}
	d.afterDraw(c)
	return stats
}

// AttachLoop binds a render loop to the diagram. Each frame draws onto the
// canvas returned by target. The loop starts stopped.
func (d *Diagram) AttachLoop(sched FrameScheduler, target func() Canvas) *RenderLoop {
	if d.loop != nil {
		d.loop.Stop()
	}
	d.loop = NewRenderLoop(sched, func() {
		d.Draw(target())
	})
	return d.loop
}

// Start starts the attached render loop. Panics if none is attached.
func (d *Diagram) Start() {
	d.mustLoop().Start()
}

// Stop stops the attached render loop after the pending frame.
func (d *Diagram) Stop() {
	d.mustLoop().Stop()
}

// Running reports whether the attached render loop is running.
func (d *Diagram) Running() bool {
	return d.loop != nil && d.loop.Running()
}

func (d *Diagram) mustLoop() *RenderLoop {
	if d.loop == nil {
		panic("nodegraph: no render loop attached")
	}
	return d.loop
}
