package menubuilder

import (
	"reflect"
	"testing"

	"tably/models"
)

func TestSerializeDeterministicOrder(t *testing.T) {
	catalog := NewCatalog(testSteps())

	state := NewSelectionState()
	state.Selections["sec-size"] = "size-large"
	state.Selections["sec-base"] = "base-ramen"
	state.setCartKey("extra-nori", 1)
	state.setCartKey("slider-spice", 3)
	state.setCartKey("extra-egg", 2)

	got := Serialize(state, catalog)
	want := []models.OrderItemInput{
		// Selections in catalog section order regardless of pick order.
		{MenuItemID: "base-ramen", Quantity: 1},
		{MenuItemID: "size-large", Quantity: 1},
		// All sliders next, untouched ones backfilled with their default.
		{MenuItemID: "slider-spice", Quantity: 3},
		{MenuItemID: "slider-richness", Quantity: 2},
		// Remaining positive cart entries in insertion order.
		{MenuItemID: "extra-nori", Quantity: 1},
		{MenuItemID: "extra-egg", Quantity: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Serialize = %v, want %v", got, want)
	}
}

func TestSerializeKeepsExplicitSliderZero(t *testing.T) {
	catalog := NewCatalog(testSteps())

	state := NewSelectionState()
	state.SetQuantityDirect("slider-spice", 0, models.SelectionSlider)

	got := Serialize(state, catalog)
	want := []models.OrderItemInput{
		{MenuItemID: "slider-spice", Quantity: 0},
		{MenuItemID: "slider-richness", Quantity: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Serialize = %v, want %v", got, want)
	}
}

func TestSerializeDropsUnknownAndZeroEntries(t *testing.T) {
	catalog := NewCatalog(testSteps())

	state := NewSelectionState()
	state.setCartKey("gone-item", 4)
	state.setCartKey("extra-egg", 0)
	state.setCartKey("extra-nori", 1)

	got := Serialize(state, catalog)
	want := []models.OrderItemInput{
		{MenuItemID: "slider-spice", Quantity: 2},
		{MenuItemID: "slider-richness", Quantity: 2},
		{MenuItemID: "extra-nori", Quantity: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Serialize = %v, want %v", got, want)
	}
}

func TestSerializeUntouchedSlidersProduceExactEntryCount(t *testing.T) {
	catalog := NewCatalog(testSteps())

	// One single selection plus two untouched sliders must come out as
	// exactly three entries, none omitted.
	state := NewSelectionState()
	state.Selections["sec-base"] = "base-ramen"

	got := Serialize(state, catalog)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d: %v", len(got), got)
	}
	if got[1].Quantity != 2 || got[2].Quantity != 2 {
		t.Errorf("expected slider defaults backfilled, got %v", got)
	}
}

func TestSerializeReorderRoundTrip(t *testing.T) {
	catalog := NewCatalog(testSteps())

	state := NewSelectionState()
	state.Selections["sec-base"] = "base-ramen"
	state.setCartKey("extra-egg", 3)
	state.setCartKey("slider-spice", 5)

	serialized := Serialize(state, catalog)

	// Reorder hydration copies line-item quantities verbatim into a fresh
	// cart; every non-default quantity must survive the trip.
	rehydrated := NewSelectionState()
	for _, entry := range serialized {
		rehydrated.setCartKey(entry.MenuItemID, entry.Quantity)
	}

	want := map[string]int{"base-ramen": 1, "extra-egg": 3, "slider-spice": 5}
	for id, quantity := range want {
		if rehydrated.Cart[id] != quantity {
			t.Errorf("quantity for %s not preserved: got %d, want %d", id, rehydrated.Cart[id], quantity)
		}
	}
}

func TestSerializeRoundTripPricesLikeComputeTotal(t *testing.T) {
	catalog := NewCatalog(testSteps())

	state := NewSelectionState()
	state.Selections["sec-base"] = "base-ramen"
	state.setCartKey("extra-egg", 3)
	state.setCartKey("slider-spice", 2)
	state.setCartKey("slider-richness", 2)

	serialized := Serialize(state, catalog)
	if got, want := PriceOrderItems(serialized, catalog), ComputeTotal(state, catalog); got != want {
		t.Errorf("serialized total %d differs from state total %d", got, want)
	}
}
