package nodegraph

// FrameScheduler schedules fn to run once on the next animation frame.
// The browser host backs it with requestAnimationFrame; the ebiten host runs
// the pending callback from Game.Draw.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// RenderLoop runs a frame function once per animation frame by re-arming
// itself from inside each callback. Stop is the escape hatch: the next
// callback neither runs the frame nor re-arms, so the loop ends instead of
// recursing forever.
type RenderLoop struct {
	sched   FrameScheduler
	frame   func()
	running bool
	armed   bool
	frames  uint64
}

// NewRenderLoop creates a stopped loop.
func NewRenderLoop(sched FrameScheduler, frame func()) *RenderLoop {
	return &RenderLoop{sched: sched, frame: frame}
}

// Start begins the loop. Starting a running loop is a no-op. Restarting a
// stopped loop whose last callback is still pending does not arm a second
// callback.
func (l *RenderLoop) Start() {
	if l.running {
		return
	}
	l.running = true
	if !l.armed {
		l.arm()
	}
}

// Stop ends the loop after the currently pending callback, which is skipped.
func (l *RenderLoop) Stop() {
	l.running = false
}

// Running reports whether the loop is started.
func (l *RenderLoop) Running() bool {
	return l.running
}

// Frames returns how many frames have run.
func (l *RenderLoop) Frames() uint64 {
	return l.frames
}

func (l *RenderLoop) arm() {
	l.armed = true
	l.sched.RequestFrame(l.tick)
}

func (l *RenderLoop) tick() {
	l.armed = false
	if !l.running {
		return
	}
	l.frames++
	l.frame()
	if l.running {
		l.arm()
	}
}
