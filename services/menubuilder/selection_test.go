package menubuilder

import (
	"reflect"
	"testing"

	"tably/models"
)

func TestSelectSingleEvictsSiblingAtQuantityOne(t *testing.T) {
	catalog := NewCatalog(testSteps())
	section, _ := catalog.Section("sec-base")

	state := NewSelectionState()
	state.setCartKey("base-udon", 1)

	state.SelectSingle(section, "base-ramen")

	if state.Selections["sec-base"] != "base-ramen" {
		t.Errorf("expected base-ramen selected, got %q", state.Selections["sec-base"])
	}
	if _, ok := state.Cart["base-udon"]; ok {
		t.Errorf("expected sibling base-udon evicted from cart")
	}
}

func TestSelectSingleKeepsSiblingAtHigherQuantity(t *testing.T) {
	catalog := NewCatalog(testSteps())
	section, _ := catalog.Section("sec-base")

	state := NewSelectionState()
	state.setCartKey("base-udon", 2)

	state.SelectSingle(section, "base-ramen")

	if state.Cart["base-udon"] != 2 {
		t.Errorf("expected base-udon to survive at quantity 2, got %d", state.Cart["base-udon"])
	}
}

func TestSelectSingleReplacesPriorChoice(t *testing.T) {
	catalog := NewCatalog(testSteps())
	section, _ := catalog.Section("sec-base")

	state := NewSelectionState()
	state.SelectSingle(section, "base-ramen")
	state.SelectSingle(section, "base-udon")

	if state.Selections["sec-base"] != "base-udon" {
		t.Errorf("expected base-udon after reselect, got %q", state.Selections["sec-base"])
	}
}

func TestAdjustQuantityFloorsAtZero(t *testing.T) {
	state := NewSelectionState()
	state.AdjustQuantity("extra-egg", -3)

	if _, ok := state.Cart["extra-egg"]; ok {
		t.Errorf("expected no cart entry after negative adjust from empty")
	}

	state.AdjustQuantity("extra-egg", 2)
	state.AdjustQuantity("extra-egg", -5)
	if _, ok := state.Cart["extra-egg"]; ok {
		t.Errorf("expected entry deleted when adjusted below zero")
	}
	if len(state.CartOrder) != 0 {
		t.Errorf("expected CartOrder cleared, got %v", state.CartOrder)
	}
}

func TestSetQuantityDirectSparseForMultiple(t *testing.T) {
	state := NewSelectionState()
	state.SetQuantityDirect("extra-egg", 2, models.SelectionMultiple)
	state.SetQuantityDirect("extra-egg", 0, models.SelectionMultiple)

	if _, ok := state.Cart["extra-egg"]; ok {
		t.Errorf("expected MULTIPLE zero to delete the entry")
	}
}

func TestSetQuantityDirectRetainsZeroForSlider(t *testing.T) {
	state := NewSelectionState()
	state.SetQuantityDirect("slider-spice", 0, models.SelectionSlider)

	quantity, ok := state.Cart["slider-spice"]
	if !ok {
		t.Fatalf("expected SLIDER zero to stay as an explicit entry")
	}
	if quantity != 0 {
		t.Errorf("expected quantity 0, got %d", quantity)
	}
}

func TestSetSliderValueClampsToRange(t *testing.T) {
	cfg := &models.SliderConfig{Min: 0, Max: 10, Default: 2, Step: 1}

	state := NewSelectionState()
	state.SetSliderValue("slider-spice", 99, cfg)
	if state.Cart["slider-spice"] != 10 {
		t.Errorf("expected clamp to max 10, got %d", state.Cart["slider-spice"])
	}

	state.SetSliderValue("slider-spice", -4, cfg)
	if state.Cart["slider-spice"] != 0 {
		t.Errorf("expected clamp to min 0, got %d", state.Cart["slider-spice"])
	}
}

func TestSetSliderValueRoundsToStep(t *testing.T) {
	cfg := &models.SliderConfig{Min: 1, Max: 9, Default: 3, Step: 2}

	cases := []struct {
		value int
		want  int
	}{
		{1, 1},
		{2, 3},
		{4, 5},
		{8, 9},
		{9, 9},
	}
	state := NewSelectionState()
	for _, tc := range cases {
		state.SetSliderValue("slider-richness", tc.value, cfg)
		if got := state.Cart["slider-richness"]; got != tc.want {
			t.Errorf("SetSliderValue(%d) stored %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestSetSliderValueIdempotent(t *testing.T) {
	cfg := &models.SliderConfig{Min: 0, Max: 10, Default: 2, Step: 1}

	state := NewSelectionState()
	state.SetSliderValue("slider-spice", 4, cfg)
	state.SetSliderValue("slider-spice", 4, cfg)

	if state.Cart["slider-spice"] != 4 {
		t.Errorf("expected 4, got %d", state.Cart["slider-spice"])
	}
	if len(state.CartOrder) != 1 {
		t.Errorf("expected one CartOrder entry, got %v", state.CartOrder)
	}
}

func TestQuantitiesNotCappedBySectionMaxQuantity(t *testing.T) {
	catalog := NewCatalog(testSteps())
	section, _ := catalog.Section("sec-extras")
	if section.MaxQuantity != 5 {
		t.Fatalf("expected test section MaxQuantity 5, got %d", section.MaxQuantity)
	}

	// MaxQuantity is a stepper display hint; the store accepts quantities
	// past it and they price normally.
	state := NewSelectionState()
	state.AdjustQuantity("extra-egg", section.MaxQuantity+3)
	if state.Cart["extra-egg"] != 8 {
		t.Errorf("expected quantity 8 stored, got %d", state.Cart["extra-egg"])
	}
	if got := ComputeTotal(state, catalog); got != 8*150 {
		t.Errorf("ComputeTotal = %d, want %d", got, 8*150)
	}
}

func TestCartOrderTracksFirstInsertion(t *testing.T) {
	state := NewSelectionState()
	state.setCartKey("extra-nori", 1)
	state.setCartKey("extra-egg", 1)
	state.setCartKey("extra-nori", 3)

	want := []string{"extra-nori", "extra-egg"}
	if !reflect.DeepEqual(state.CartOrder, want) {
		t.Errorf("CartOrder = %v, want %v", state.CartOrder, want)
	}

	state.removeCartKey("extra-nori")
	state.setCartKey("extra-nori", 1)
	want = []string{"extra-egg", "extra-nori"}
	if !reflect.DeepEqual(state.CartOrder, want) {
		t.Errorf("CartOrder after re-add = %v, want %v", state.CartOrder, want)
	}
}
