package menubuilder

import "tably/models"

// Serialize converts the selection state into the order-creation wire shape.
//
// Emission order is deterministic: section selections first in catalog
// order, then every slider-backed item (untouched sliders are backfilled
// with their configured default, never omitted — the kitchen expects a
// complete ingredient list), then the remaining positive non-slider cart
// entries in insertion order. Cart entries referencing items missing from
// the live catalog are dropped.
func Serialize(state *SelectionState, catalog *Catalog) []models.OrderItemInput {
	items := make([]models.OrderItemInput, 0, len(state.Selections)+len(state.Cart))

	for _, step := range catalog.Steps {
		for _, sec := range step.Sections {
			if itemID, ok := state.Selections[sec.ID]; ok {
				items = append(items, models.OrderItemInput{MenuItemID: itemID, Quantity: 1})
			}
		}
	}

	for _, item := range catalog.SliderItems() {
		quantity, ok := state.Cart[item.ID]
		if !ok && item.SliderConfig != nil {
			quantity = item.SliderConfig.Default
		}
		items = append(items, models.OrderItemInput{MenuItemID: item.ID, Quantity: quantity})
	}

	for _, itemID := range state.CartOrder {
		quantity := state.Cart[itemID]
		if quantity <= 0 {
			continue
		}
		item, ok := catalog.Item(itemID)
		if !ok || item.SelectionMode == models.SelectionSlider {
			continue
		}
		items = append(items, models.OrderItemInput{MenuItemID: itemID, Quantity: quantity})
	}

	return items
}
