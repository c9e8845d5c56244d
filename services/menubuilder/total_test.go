package menubuilder

import (
	"testing"

	"tably/models"
)

func TestComputeTotalCombinesSelectionsAndCart(t *testing.T) {
	catalog := NewCatalog(testSteps())

	state := NewSelectionState()
	state.Selections["sec-base"] = "base-ramen" // 1200 at qty 1
	state.Selections["sec-size"] = "size-large" // 200 at qty 1
	state.setCartKey("extra-egg", 2)            // 150 * 2
	state.setCartKey("slider-spice", 3)         // 75 * (3 - 1)

	want := int64(1200 + 200 + 300 + 150)
	if got := ComputeTotal(state, catalog); got != want {
		t.Errorf("ComputeTotal = %d, want %d", got, want)
	}
}

func TestComputeTotalUnknownItemsContributeZero(t *testing.T) {
	catalog := NewCatalog(testSteps())

	state := NewSelectionState()
	state.Selections["sec-base"] = "base-discontinued"
	state.setCartKey("gone-item", 5)
	state.setCartKey("extra-nori", 1)

	if got := ComputeTotal(state, catalog); got != 100 {
		t.Errorf("ComputeTotal = %d, want 100", got)
	}
}

func TestComputeTotalEmptyState(t *testing.T) {
	catalog := NewCatalog(testSteps())
	if got := ComputeTotal(NewSelectionState(), catalog); got != 0 {
		t.Errorf("ComputeTotal = %d, want 0", got)
	}
}

func TestPriceOrderItems(t *testing.T) {
	catalog := NewCatalog(testSteps())

	items := []models.OrderItemInput{
		{MenuItemID: "base-ramen", Quantity: 1},
		{MenuItemID: "slider-richness", Quantity: 4}, // 50 * (4 - 2)
		{MenuItemID: "not-in-catalog", Quantity: 9},
	}
	want := int64(1200 + 100)
	if got := PriceOrderItems(items, catalog); got != want {
		t.Errorf("PriceOrderItems = %d, want %d", got, want)
	}
}
