//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/phanxgames/nodegraph"
)

// domCanvas draws through a CanvasRenderingContext2D.
type domCanvas struct {
	ctx  js.Value
	w, h float64
}

func newDOMCanvas(el js.Value, w, h float64) *domCanvas {
	return &domCanvas{ctx: el.Call("getContext", "2d"), w: w, h: h}
}

func (c *domCanvas) Clear(col nodegraph.Color) {
	c.ctx.Call("clearRect", 0, 0, c.w, c.h)
	c.ctx.Set("fillStyle", col.Hex())
	c.ctx.Call("fillRect", 0, 0, c.w, c.h)
}

func (c *domCanvas) FillRect(x, y, w, h float64, col nodegraph.Color) {
	c.ctx.Set("fillStyle", col.Hex())
	c.ctx.Call("fillRect", x, y, w, h)
}

func (c *domCanvas) StrokeLine(x0, y0, x1, y1, width float64, col nodegraph.Color) {
	c.ctx.Set("strokeStyle", col.Hex())
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x0, y0)
	c.ctx.Call("lineTo", x1, y1)
	c.ctx.Call("stroke")
}

// frameScheduler implements nodegraph.FrameScheduler on
// requestAnimationFrame. Work posted from other goroutines runs at the
// start of the next frame, before the frame callback.
type frameScheduler struct {
	window js.Value
	cb     js.Func
	next   func()
	posted chan func()
}

func newFrameScheduler(window js.Value) *frameScheduler {
	s := &frameScheduler{window: window, posted: make(chan func(), 16)}
	s.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		s.drain()
		fn := s.next
		s.next = nil
		if fn != nil {
			fn()
		}
		return nil
	})
	return s
}

func (s *frameScheduler) RequestFrame(fn func()) {
	s.next = fn
	s.window.Call("requestAnimationFrame", s.cb)
}

// Post hands fn to the frame goroutine.
func (s *frameScheduler) Post(fn func()) {
	s.posted <- fn
}

func (s *frameScheduler) drain() {
	for {
		select {
		case fn := <-s.posted:
			fn()
		default:
			return
		}
	}
}
