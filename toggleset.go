package layerstore

import "sort"

// ToggleSet is a layer store in which each layer is either applied or not.
//
//   - Add marks the layer's name as applied.
//   - Erase marks it as not applied.
//   - Special removes the layer whose name is the median of the applied
//     names in sorted order.
//
// Identity is the layer name: a name appears at most once, and composition
// visits applied layers in ascending lexicographic order of name so the
// output never depends on insertion order.
//
// ToggleSet is not safe for concurrent use.
type ToggleSet struct {
	applied map[string]Layer
}

// compile-time check
var _ Store = (*ToggleSet)(nil)

// NewToggleSet creates an empty toggle-set store.
func NewToggleSet() *ToggleSet {
	return &ToggleSet{applied: make(map[string]Layer)}
}

// Add marks layer as applied. Returns false if a layer with the same name
// is already applied.
func (s *ToggleSet) Add(layer Layer) (bool, error) {
	if err := validateLayer(layer); err != nil {
		Logger().Debug("add rejected", "store", "toggleset", "err", err)
		return false, err
	}
	if _, ok := s.applied[layer.Name()]; ok {
		return false, nil
	}
	s.applied[layer.Name()] = layer
	return true, nil
}

// Erase marks layer as not applied, matching by name. Returns false if the
// name was not applied.
func (s *ToggleSet) Erase(layer Layer) (bool, error) {
	if err := validateLayer(layer); err != nil {
		Logger().Debug("erase rejected", "store", "toggleset", "err", err)
		return false, err
	}
	if _, ok := s.applied[layer.Name()]; !ok {
		return false, nil
	}
	delete(s.applied, layer.Name())
	return true, nil
}

// GetColor threads base through every applied layer in ascending
// lexicographic order of name. The sorted traversal is a correctness
// requirement: map iteration order must never reach the output.
func (s *ToggleSet) GetColor(base Color, t float64, x, y int) Color {
	c := base
	for _, name := range s.sortedNames() {
		c = s.applied[name].Apply(c, t, x, y)
	}
	return c
}

// Special removes the median applied layer: the name at 0-based index
// count/2 of the sorted names. For four applied names {"a","b","c","d"}
// that is index 2, "c"; for three it is index 1, "b". Calling Special on an
// empty store is a no-op.
func (s *ToggleSet) Special() {
	names := s.sortedNames()
	if len(names) == 0 {
		return
	}
	delete(s.applied, names[len(names)/2])
}

// Len returns the number of applied layers.
func (s *ToggleSet) Len() int { return len(s.applied) }

// Names returns the applied layer names in ascending lexicographic order.
func (s *ToggleSet) Names() []string { return s.sortedNames() }

func (s *ToggleSet) sortedNames() []string {
	names := make([]string, 0, len(s.applied))
	for name := range s.applied {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
