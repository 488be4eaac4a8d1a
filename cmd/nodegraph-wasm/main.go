//go:build js && wasm

// Command nodegraph-wasm hosts a diagram on a DOM canvas. It expects a
// <canvas id="nodegraph"> element on the page; data-url on that element
// names the graph endpoint.
package main

import (
	"context"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/phanxgames/nodegraph"
	"github.com/phanxgames/nodegraph/internal/ctxlog"
	"github.com/phanxgames/nodegraph/source"
)

const defaultURL = "api/graph/cg_graph"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	window := js.Global().Get("window")
	document := js.Global().Get("document")

	el := document.Call("getElementById", "nodegraph")
	if el.IsNull() {
		el = document.Call("createElement", "canvas")
		el.Set("id", "nodegraph")
		document.Get("body").Call("appendChild", el)
	}

	opts := nodegraph.DefaultOptions()
	opts.Logger = logger
	el.Set("width", opts.Width)
	el.Set("height", opts.Height)
	if el.Get("dataset").Get("debug").Truthy() {
		opts.Debug = true
	}
	d := nodegraph.New(opts)

	canvas := newDOMCanvas(el, opts.Width, opts.Height)
	sched := newFrameScheduler(window)
	d.AttachLoop(sched, func() nodegraph.Canvas { return canvas })
	d.Start()

	listen(d, window, el)

	url := el.Get("dataset").Get("url")
	target := defaultURL
	if url.Truthy() {
		target = url.String()
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)
	go func() {
		g, err := source.NewFetcher(target).Fetch(ctx)
		sched.Post(func() {
			if err != nil {
				logger.Error("graph not loaded", "url", target, "err", err)
				return
			}
			if err := d.Load(g); err != nil {
				logger.Error("graph not laid out", "url", target, "err", err)
			}
		})
	}()

	select {}
}

// listen registers the pointer handlers. Moves and releases are taken from
// the window so a drag keeps tracking once the pointer leaves the canvas.
func listen(d *nodegraph.Diagram, window, el js.Value) {
	on := func(target js.Value, event string, sig nodegraph.InputSignal) {
		target.Call("addEventListener", event, js.FuncOf(func(this js.Value, args []js.Value) any {
			ev := args[0]
			rect := el.Call("getBoundingClientRect")
			d.SetViewport(nodegraph.Viewport{
				CanvasLeft: rect.Get("left").Float(),
				CanvasTop:  rect.Get("top").Float(),
				ScrollX:    window.Get("scrollX").Float(),
				ScrollY:    window.Get("scrollY").Float(),
			})
			d.HandleEvent(nodegraph.PointerEvent{
				Signal: sig,
				PageX:  ev.Get("pageX").Float(),
				PageY:  ev.Get("pageY").Float(),
			})
			return nil
		}))
	}
	on(el, "mousedown", nodegraph.SignalPressDown)
	on(el, "click", nodegraph.SignalClick)
	on(el, "dblclick", nodegraph.SignalDoubleClick)
	on(window, "mousemove", nodegraph.SignalMove)
	on(window, "mouseup", nodegraph.SignalPressUp)
}
