package nodegraph

import "log/slog"

// debugLog records one frame's render stats together with the pointer
// position and the number of pressed nodes.
func (d *Diagram) debugLog(stats RenderStats) {
	if !d.debug {
		return
	}
	d.logger.Debug("frame",
		slog.Int("nodes", stats.Nodes),
		slog.Int("edges", stats.Edges),
		slog.Int("pressed", d.countPressed()),
		slog.Float64("pointer_x", d.pointer.X),
		slog.Float64("pointer_y", d.pointer.Y),
	)
}

func (d *Diagram) countPressed() int {
	n := 0
	d.store.EachNode(func(v NodeView) {
		if v.Interactable.Pressed() {
			n++
		}
	})
	return n
}

// SetDebugMode enables or disables per-frame debug records.
func (d *Diagram) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// LastStats returns the stats of the most recent Draw.
func (d *Diagram) LastStats() RenderStats {
	return d.lastStats
}
