package menubuilder

import (
	"errors"

	"tably/models"
)

// ErrNoBaseDish blocks checkout while no base-category item has a positive
// selection.
var ErrNoBaseDish = errors.New("select at least one base dish")

// BlockingSections returns the names of sections that keep the step from
// advancing. Only required SINGLE sections can block; required MULTIPLE and
// SLIDER sections never do, matching the shipped rule set.
func BlockingSections(step models.MenuStep, state *SelectionState) []string {
	var blocking []string
	for _, sec := range step.Sections {
		if !sec.Required || sec.SelectionMode != models.SelectionSingle {
			continue
		}
		if _, ok := state.Selections[sec.ID]; !ok {
			blocking = append(blocking, sec.Name)
		}
	}
	return blocking
}

// CanAdvance reports whether the given step is complete.
func CanAdvance(step models.MenuStep, state *SelectionState) bool {
	return len(BlockingSections(step, state)) == 0
}

// CanCheckout applies the final gate before the time-selection phase: at
// least one base-category item must be positively selected, either as a
// section choice or as a cart entry.
func CanCheckout(catalog *Catalog, state *SelectionState) error {
	for _, itemID := range state.Selections {
		if item, ok := catalog.Item(itemID); ok && item.CategoryType == models.CategoryTypeBase {
			return nil
		}
	}
	for itemID, quantity := range state.Cart {
		if quantity <= 0 {
			continue
		}
		if item, ok := catalog.Item(itemID); ok && item.CategoryType == models.CategoryTypeBase {
			return nil
		}
	}
	return ErrNoBaseDish
}
