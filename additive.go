package layerstore

import (
	"github.com/pkg/errors"

	"github.com/gogpu/layerstore/internal/ring"
)

// Additive is a layer store that keeps an ordered, capacity-bounded history
// of layers and composites them oldest-first.
//
//   - Add appends at the back; a full store rejects the add.
//   - Erase removes the oldest layer regardless of which layer is passed.
//   - Special reverses the order in place.
//
// Duplicates are permitted: the store models a change history, not a set.
// Additive is not safe for concurrent use.
type Additive struct {
	layers *ring.Buffer[Layer]
}

// compile-time check
var _ Store = (*Additive)(nil)

// NewAdditive creates an empty additive store holding at most capacity
// layers. Returns ErrInvalidCapacity if capacity is not positive.
func NewAdditive(capacity int) (*Additive, error) {
	buf, err := ring.New[Layer](capacity)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &Additive{layers: buf}, nil
}

// Add appends layer at the back of the history. Returns false without
// changing state if the store is full; a full store is a normal rejection,
// not an error.
func (a *Additive) Add(layer Layer) (bool, error) {
	if err := validateLayer(layer); err != nil {
		Logger().Debug("add rejected", "store", "additive", "err", err)
		return false, err
	}
	if err := a.layers.Append(layer); err != nil {
		return false, nil
	}
	return true, nil
}

// Erase removes the oldest layer. The argument is ignored: erase always
// discards the front of the history. Returns false if the store was empty.
func (a *Additive) Erase(Layer) (bool, error) {
	if _, err := a.layers.PopFront(); err != nil {
		return false, nil
	}
	return true, nil
}

// GetColor threads base through every held layer in order, oldest first.
// Each layer transforms the color produced by the previous one. An empty
// store returns base unchanged.
func (a *Additive) GetColor(base Color, t float64, x, y int) Color {
	c := base
	for _, layer := range a.layers.Items() {
		c = layer.Apply(c, t, x, y)
	}
	return c
}

// Special reverses the layer order in place: the oldest layer becomes the
// newest and vice versa, so a subsequent Erase removes what was previously
// the newest. The multiset of layers is unchanged, and applying Special
// twice restores the original order exactly.
func (a *Additive) Special() {
	n := a.layers.Len()
	if n < 2 {
		return
	}
	drained := make([]Layer, 0, n)
	for {
		layer, err := a.layers.PopFront()
		if err != nil {
			break
		}
		drained = append(drained, layer)
	}
	for i := len(drained) - 1; i >= 0; i-- {
		// cannot fail: the buffer was just drained
		_ = a.layers.Append(drained[i])
	}
}

// Len returns the number of layers currently held.
func (a *Additive) Len() int { return a.layers.Len() }

// Cap returns the fixed capacity.
func (a *Additive) Cap() int { return a.layers.Cap() }
