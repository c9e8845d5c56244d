package menubuilder

import "tably/models"

// PriceFor computes the owed cents for quantity units of an item.
//
// Standard (SINGLE/MULTIPLE) items: the bundle absorbs IncludedQuantity
// units for free, the first unit past the bundle is charged at the base
// price, and every unit after that at the additional price. Items with no
// included quantity are plain per-unit add-ons with no first-unit premium.
//
// Slider items price every unit past the included quantity at the flat
// additional rate; the base price never applies. The asymmetry between the
// two modes is deliberate.
//
// Callers must clamp negative quantities before calling.
func PriceFor(item *models.MenuItem, quantity int) int64 {
	included := item.IncludedQuantity
	if quantity <= included {
		return 0
	}
	if item.SelectionMode == models.SelectionSlider {
		return item.AdditionalPriceCents * int64(quantity-included)
	}
	if included > 0 {
		return item.BasePriceCents + item.AdditionalPriceCents*int64(quantity-included-1)
	}
	return item.BasePriceCents * int64(quantity)
}
