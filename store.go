package layerstore

import (
	"github.com/pkg/errors"
)

// Sentinel errors returned for caller contract violations.
// Rejected-but-valid operations (full store, duplicate name) are not
// errors; they are reported through the boolean return of Add and Erase.
var (
	// ErrNilLayer is returned when a nil Layer is passed to Add or Erase.
	ErrNilLayer = errors.New("layerstore: nil layer")

	// ErrUnnamedLayer is returned when a layer's name is empty.
	ErrUnnamedLayer = errors.New("layerstore: layer has empty name")

	// ErrInvalidCapacity is returned by NewAdditive for a non-positive capacity.
	ErrInvalidCapacity = errors.New("layerstore: capacity must be positive")
)

// Store is the contract shared by all layer store variants.
//
// A Store accumulates layers for one canvas cell and composites them into a
// single color on demand. Implementations differ in how many layers they
// hold, in what order effects apply, and in what Special does.
//
// Stores are not safe for concurrent use. External synchronization is
// required if multiple goroutines access the same store; GetColor never
// mutates, so read operations may share a read lock.
type Store interface {
	// Add integrates layer into the store if doing so changes observable
	// state, and reports whether a change occurred. The error is non-nil
	// only for contract violations (nil or unnamed layers); a rejected add
	// (full store, duplicate) is (false, nil).
	Add(layer Layer) (bool, error)

	// Erase removes a layer according to the variant's removal policy and
	// reports whether a change occurred. SingleSlot and Additive ignore the
	// argument entirely; ToggleSet removes by name.
	Erase(layer Layer) (bool, error)

	// GetColor composites the held layers over base for render time t at
	// cell (x, y). It is a pure function of the current state and its
	// arguments.
	GetColor(base Color, t float64, x, y int) Color

	// Special applies the variant's structural transformation: SingleSlot
	// toggles output inversion, Additive reverses layer order, ToggleSet
	// removes the median-named layer.
	Special()
}

// validateLayer rejects layers that violate the caller contract.
func validateLayer(layer Layer) error {
	if layer == nil {
		return ErrNilLayer
	}
	if layer.Name() == "" {
		return errors.Wrapf(ErrUnnamedLayer, "layer type %T", layer)
	}
	return nil
}
