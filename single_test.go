package layerstore

import "testing"

func TestSingleSlot_AddReplaces(t *testing.T) {
	s := NewSingleSlot()

	changed, err := s.Add(solidLayer("red", Red))
	if err != nil || !changed {
		t.Fatalf("first Add = (%v, %v), want (true, nil)", changed, err)
	}

	// Same name again is a no-op.
	changed, err = s.Add(solidLayer("red", Red))
	if err != nil || changed {
		t.Fatalf("duplicate Add = (%v, %v), want (false, nil)", changed, err)
	}

	// A different layer replaces the held one.
	changed, err = s.Add(solidLayer("blue", Blue))
	if err != nil || !changed {
		t.Fatalf("replacing Add = (%v, %v), want (true, nil)", changed, err)
	}
	if got := s.GetColor(White, 0, 0, 0); got != Blue {
		t.Errorf("GetColor after replacement = %v, want %v", got, Blue)
	}
}

func TestSingleSlot_EraseIgnoresArgument(t *testing.T) {
	s := NewSingleSlot()
	s.Add(solidLayer("red", Red))

	// Erasing with an unrelated layer still clears the slot.
	changed, err := s.Erase(solidLayer("unrelated", Green))
	if err != nil || !changed {
		t.Fatalf("Erase = (%v, %v), want (true, nil)", changed, err)
	}
	if s.Layer() != nil {
		t.Error("slot should be empty after Erase")
	}

	// Erasing again reports no change.
	changed, err = s.Erase(nil)
	if err != nil || changed {
		t.Fatalf("Erase on empty = (%v, %v), want (false, nil)", changed, err)
	}
}

func TestSingleSlot_GetColorEmpty(t *testing.T) {
	s := NewSingleSlot()
	if got := s.GetColor(Yellow, 0, 0, 0); got != Yellow {
		t.Errorf("empty GetColor = %v, want base %v", got, Yellow)
	}
}

func TestSingleSlot_SpecialInvertsOutput(t *testing.T) {
	s := NewSingleSlot()
	s.Add(solidLayer("red", Red))

	s.Special()
	if !s.Inverted() {
		t.Fatal("Special should set the invert flag")
	}
	// Inversion applies after the layer, not instead of it.
	if got := s.GetColor(White, 0, 0, 0); got != Cyan {
		t.Errorf("inverted GetColor = %v, want %v", got, Cyan)
	}
	if s.Layer() == nil {
		t.Error("Special must not consume the held layer")
	}

	// A second Special restores the original output exactly.
	s.Special()
	if got := s.GetColor(White, 0, 0, 0); got != Red {
		t.Errorf("double-Special GetColor = %v, want %v", got, Red)
	}
}

func TestSingleSlot_SpecialOnEmpty(t *testing.T) {
	s := NewSingleSlot()
	s.Special()
	// No layer held: the inversion applies directly to the base color.
	if got := s.GetColor(White, 0, 0, 0); got != Black {
		t.Errorf("inverted empty GetColor = %v, want %v", got, Black)
	}
}

func TestSingleSlot_EraseThenGetColor(t *testing.T) {
	s := NewSingleSlot()
	s.Add(solidLayer("red", Red))
	s.Erase(nil)
	if got := s.GetColor(Green, 0, 0, 0); got != Green {
		t.Errorf("GetColor after erase = %v, want base %v", got, Green)
	}
}
