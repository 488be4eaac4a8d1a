package nodegraph

// InjectPress queues a press-down at the given canvas coordinates. Queued
// events are consumed one per Step call, so a press and the following
// moves land on separate frames just like real input.
func (d *Diagram) InjectPress(x, y float64) {
	d.inject(SignalPressDown, x, y)
}

// InjectMove queues a pointer move to the given canvas coordinates.
func (d *Diagram) InjectMove(x, y float64) {
	d.inject(SignalMove, x, y)
}

// InjectRelease queues a press-up at the given canvas coordinates.
func (d *Diagram) InjectRelease(x, y float64) {
	d.inject(SignalPressUp, x, y)
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (d *Diagram) InjectClick(x, y float64) {
	d.InjectPress(x, y)
	d.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a move plus release at (toX, toY). The release is
// preceded by the final move so that the dragged node ends exactly under
// (toX, toY) minus its grab offset. Minimum frames is 2.
func (d *Diagram) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	d.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		d.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	d.InjectMove(toX, toY)
	d.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (d *Diagram) Pending() int {
	return len(d.injectQueue)
}

// inject queues an event whose page coordinates map back onto (x, y) under
// the current viewport, so synthetic input goes through the same
// translation as real input.
func (d *Diagram) inject(sig InputSignal, x, y float64) {
	v := d.viewport
	d.injectQueue = append(d.injectQueue, PointerEvent{
		Signal: sig,
		PageX:  x + v.CanvasLeft + v.ScrollX,
		PageY:  y + v.CanvasTop + v.ScrollY,
	})
}

// processInjectedInput pops one queued event and runs its tick. Returns true
// if an event was consumed.
func (d *Diagram) processInjectedInput() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	ev := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]
	d.HandleEvent(ev)
	return true
}
