package nodegraph

// Screenshot queues a labeled screenshot. Browser builds draw through the
// DOM canvas, which cannot be read back, so queued labels are logged and
// dropped.
func (d *Diagram) Screenshot(label string) {
	d.screenshotQueue = append(d.screenshotQueue, label)
}

func (d *Diagram) afterDraw(Canvas) {
	for _, label := range d.screenshotQueue {
		d.logger.Warn("screenshot not supported in the browser", "label", label)
	}
	d.screenshotQueue = d.screenshotQueue[:0]
}
