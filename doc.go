// Package layerstore provides per-cell layer stores for grid-based painting.
//
// # Overview
//
// layerstore is a pure Go library that models the state of a single canvas
// cell as an accumulation of drawing operations ("layers"). A layer is an
// opaque named color effect; a store collects layers and composites them
// into one color on demand. Three store variants implement the same
// four-operation contract with different composition policies:
//
//   - SingleSlot: holds at most one layer, with a toggleable output inversion
//   - Additive: a capacity-bounded FIFO of layers, composited oldest-first
//   - ToggleSet: a set of layer names, composited in lexicographic order
//
// # Quick Start
//
//	import "github.com/gogpu/layerstore"
//
//	// A layer that pushes every channel toward red.
//	redden := layerstore.NewLayerFunc("redden", func(c layerstore.Color, t float64, x, y int) layerstore.Color {
//		return c.Lerp(layerstore.Red, 0.5)
//	})
//
//	store, _ := layerstore.NewAdditive(16)
//	store.Add(redden)
//	store.Add(redden)
//
//	// Composite the cell color for render time t at cell (x, y).
//	c := store.GetColor(layerstore.White, 0, 3, 7)
//
// # Contract
//
// Every store implements [Store]. Add and Erase report whether the call
// changed observable state; rejected operations (a full Additive store, a
// duplicate ToggleSet name) return false rather than an error. Errors are
// reserved for contract violations such as nil or unnamed layers. GetColor
// is pure and may be called any number of times. Special applies a
// store-specific structural transformation; see each variant for details.
//
// # Concurrency
//
// Stores perform no internal synchronization. Each instance is intended to
// be owned by exactly one canvas cell; callers that share a store across
// goroutines must synchronize externally. GetColor never mutates, so a
// read/write lock is sufficient. SetLogger and Logger are safe for
// concurrent use.
package layerstore

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
