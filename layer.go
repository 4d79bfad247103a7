package layerstore

// Layer is a named color effect applied to a single cell.
//
// Name is the layer's identity: stores compare, deduplicate, and order
// layers by name alone, so two layers with the same name are the same layer
// as far as any store is concerned. Names must be non-empty and must not
// change after construction.
//
// Apply transforms a base color given the render time t and the cell
// coordinates (x, y). It must be pure: no side effects, and identical
// inputs produce identical output.
type Layer interface {
	Name() string
	Apply(base Color, t float64, x, y int) Color
}

// ApplyFunc is a function that transforms a cell color at a given time and
// position. Used by LayerFunc to define layers from ordinary functions.
type ApplyFunc func(base Color, t float64, x, y int) Color

// LayerFunc adapts an ordinary function to the Layer interface.
// It allows arbitrary color transforms without declaring a new type.
//
// Example:
//
//	darken := layerstore.NewLayerFunc("darken", func(c layerstore.Color, t float64, x, y int) layerstore.Color {
//		return c.Lerp(layerstore.Black, 0.3)
//	})
type LayerFunc struct {
	name string
	fn   ApplyFunc
}

// NewLayerFunc creates a LayerFunc with the given name and transform.
func NewLayerFunc(name string, fn ApplyFunc) LayerFunc {
	return LayerFunc{name: name, fn: fn}
}

// Name implements Layer.
func (l LayerFunc) Name() string { return l.name }

// Apply implements Layer. A nil transform returns the base color unchanged.
func (l LayerFunc) Apply(base Color, t float64, x, y int) Color {
	if l.fn == nil {
		return base
	}
	return l.fn(base, t, x, y)
}
