package layerstore

// invertLayer is the transform applied by SingleSlot when its invert flag is
// set. Expressed as a LayerFunc so the inversion goes through the same
// Apply path as any other effect.
var invertLayer = NewLayerFunc("invert", func(base Color, _ float64, _, _ int) Color {
	return base.Invert()
})

// SingleSlot is a layer store that holds at most one layer.
//
//   - Add replaces the held layer, unless the same layer is already held.
//   - Erase clears the slot regardless of which layer is passed.
//   - Special toggles inversion of the composited output.
//
// SingleSlot is not safe for concurrent use.
type SingleSlot struct {
	current  Layer
	inverted bool
}

// compile-time check
var _ Store = (*SingleSlot)(nil)

// NewSingleSlot creates an empty single-slot store.
func NewSingleSlot() *SingleSlot {
	return &SingleSlot{}
}

// Add sets layer as the held layer. Returns false if a layer with the same
// name is already held.
func (s *SingleSlot) Add(layer Layer) (bool, error) {
	if err := validateLayer(layer); err != nil {
		Logger().Debug("add rejected", "store", "singleslot", "err", err)
		return false, err
	}
	if s.current != nil && s.current.Name() == layer.Name() {
		return false, nil
	}
	s.current = layer
	return true, nil
}

// Erase clears the held layer. The argument is ignored: any erase empties
// the slot. Returns false if the slot was already empty.
func (s *SingleSlot) Erase(Layer) (bool, error) {
	if s.current == nil {
		return false, nil
	}
	s.current = nil
	return true, nil
}

// GetColor applies the held layer to base, if any, then applies the
// inversion toggle. The inversion is a presentation step: it acts on the
// composited output and never consumes or replaces the held layer.
func (s *SingleSlot) GetColor(base Color, t float64, x, y int) Color {
	c := base
	if s.current != nil {
		c = s.current.Apply(base, t, x, y)
	}
	if s.inverted {
		c = invertLayer.Apply(c, t, x, y)
	}
	return c
}

// Special toggles the invert flag. Calling it twice restores the original
// output exactly.
func (s *SingleSlot) Special() {
	s.inverted = !s.inverted
}

// Layer returns the held layer, or nil if the slot is empty.
func (s *SingleSlot) Layer() Layer { return s.current }

// Inverted reports whether the invert toggle is currently set.
func (s *SingleSlot) Inverted() bool { return s.inverted }
