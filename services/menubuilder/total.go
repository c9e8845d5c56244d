package menubuilder

import (
	"tably/models"
	"tably/utils"

	"go.uber.org/zap"
)

// ComputeTotal folds the whole selection state through PriceFor. Single
// selections always count as quantity 1. Cart entries referencing items no
// longer in the catalog contribute zero and are flagged rather than failing,
// so a reorder of a discontinued item cannot break the running total.
func ComputeTotal(state *SelectionState, catalog *Catalog) int64 {
	logger := utils.GetLogger()
	var total int64

	for sectionID, itemID := range state.Selections {
		item, ok := catalog.Item(itemID)
		if !ok {
			logger.Warn("selection references unknown menu item",
				zap.String("sectionId", sectionID), zap.String("itemId", itemID))
			continue
		}
		total += PriceFor(item, 1)
	}
	for itemID, quantity := range state.Cart {
		item, ok := catalog.Item(itemID)
		if !ok {
			logger.Warn("cart references unknown menu item", zap.String("itemId", itemID))
			continue
		}
		total += PriceFor(item, quantity)
	}
	return total
}

// PriceOrderItems prices an already-serialized item list. Used at order
// creation to compute the authoritative total from the submitted payload.
func PriceOrderItems(items []models.OrderItemInput, catalog *Catalog) int64 {
	logger := utils.GetLogger()
	var total int64
	for _, entry := range items {
		item, ok := catalog.Item(entry.MenuItemID)
		if !ok {
			logger.Warn("order item not in live catalog, priced as zero",
				zap.String("itemId", entry.MenuItemID))
			continue
		}
		total += PriceFor(item, entry.Quantity)
	}
	return total
}
