package menubuilder

import (
	"errors"
	"reflect"
	"testing"
)

func TestBlockingSectionsRequiredSingle(t *testing.T) {
	steps := testSteps()
	state := NewSelectionState()

	blocking := BlockingSections(steps[0], state)
	want := []string{"Base", "Size"}
	if !reflect.DeepEqual(blocking, want) {
		t.Errorf("BlockingSections = %v, want %v", blocking, want)
	}

	state.Selections["sec-base"] = "base-ramen"
	blocking = BlockingSections(steps[0], state)
	want = []string{"Size"}
	if !reflect.DeepEqual(blocking, want) {
		t.Errorf("BlockingSections = %v, want %v", blocking, want)
	}

	state.Selections["sec-size"] = "size-regular"
	if !CanAdvance(steps[0], state) {
		t.Errorf("expected step complete once both SINGLE sections chosen")
	}
}

func TestRequiredMultipleAndSliderNeverBlock(t *testing.T) {
	steps := testSteps()
	state := NewSelectionState()

	// Step two has a required MULTIPLE section and two sliders, all untouched.
	if blocking := BlockingSections(steps[1], state); len(blocking) != 0 {
		t.Errorf("expected no blocking sections, got %v", blocking)
	}
	if !CanAdvance(steps[1], state) {
		t.Errorf("expected advancement past untouched MULTIPLE and SLIDER sections")
	}
}

func TestCanCheckoutRequiresBaseDish(t *testing.T) {
	catalog := NewCatalog(testSteps())
	state := NewSelectionState()

	if err := CanCheckout(catalog, state); !errors.Is(err, ErrNoBaseDish) {
		t.Fatalf("expected ErrNoBaseDish, got %v", err)
	}

	// A non-base selection does not satisfy the gate.
	state.Selections["sec-size"] = "size-large"
	if err := CanCheckout(catalog, state); !errors.Is(err, ErrNoBaseDish) {
		t.Fatalf("expected ErrNoBaseDish with only a size chosen, got %v", err)
	}

	state.Selections["sec-base"] = "base-ramen"
	if err := CanCheckout(catalog, state); err != nil {
		t.Errorf("expected checkout allowed, got %v", err)
	}
}

func TestCanCheckoutAcceptsBaseDishInCart(t *testing.T) {
	catalog := NewCatalog(testSteps())

	state := NewSelectionState()
	state.setCartKey("base-udon", 1)
	if err := CanCheckout(catalog, state); err != nil {
		t.Errorf("expected cart base dish to satisfy the gate, got %v", err)
	}
}

func TestCanCheckoutIgnoresZeroQuantityBase(t *testing.T) {
	catalog := NewCatalog(testSteps())

	state := NewSelectionState()
	state.setCartKey("base-udon", 0)
	if err := CanCheckout(catalog, state); !errors.Is(err, ErrNoBaseDish) {
		t.Errorf("expected ErrNoBaseDish for zero-quantity base, got %v", err)
	}
}
