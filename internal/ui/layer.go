package ui

// Layer represents an overlay/toast that can render itself into a canvas
// positioned within the current terminal dimensions.
type Layer interface {
	Render() *Canvas
}

// LayerFunc is an adapter to allow ordinary functions to act as layers.
type LayerFunc func() *Canvas

// Render implements Layer for LayerFunc.
func (f LayerFunc) Render() *Canvas {
	return f()
}

// composeLayers draws base and then every non-nil layer in order.
func composeLayers(base string, width, height int, layers ...Layer) string {
	canvas := NewCanvas(width, height)
	canvas.DrawStringAt(0, 0, base)
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		canvas.Compose(layer.Render())
	}
	return canvas.Render()
}
