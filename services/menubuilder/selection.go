package menubuilder

import "tably/models"

// SelectSingle records itemID as the one active choice for a SINGLE section,
// evicting whatever was selected there before. A sibling candidate sitting in
// the cart at quantity 1 is removed too, preserving the legacy exclusive
// base-dish behavior that predates per-section selections.
func (s *SelectionState) SelectSingle(section *models.MenuSection, itemID string) {
	s.Selections[section.ID] = itemID
	for i := range section.Items {
		candidate := section.Items[i].ID
		if candidate == itemID {
			continue
		}
		if s.Cart[candidate] == 1 {
			s.removeCartKey(candidate)
		}
	}
}

// AdjustQuantity applies a signed delta to an item's cart quantity, flooring
// at zero. A resulting zero deletes the entry (sparse MULTIPLE semantics).
func (s *SelectionState) AdjustQuantity(itemID string, delta int) {
	quantity := s.Cart[itemID] + delta
	if quantity < 0 {
		quantity = 0
	}
	if quantity > 0 {
		s.setCartKey(itemID, quantity)
	} else {
		s.removeCartKey(itemID)
	}
}

// SetQuantityDirect stores an absolute quantity. Zero deletes the entry for
// MULTIPLE items but is retained as an explicit entry for SLIDER items,
// where zero means "None" rather than "untouched".
func (s *SelectionState) SetQuantityDirect(itemID string, quantity int, mode models.SelectionMode) {
	if mode == models.SelectionSlider {
		s.setCartKey(itemID, quantity)
		return
	}
	if quantity > 0 {
		s.setCartKey(itemID, quantity)
	} else {
		s.removeCartKey(itemID)
	}
}

// SetSliderValue clamps value into the slider's range, rounds it to the
// nearest step from min, and always writes it — sliders never go sparse.
func (s *SelectionState) SetSliderValue(itemID string, value int, cfg *models.SliderConfig) {
	if cfg != nil {
		value = clampToStep(value, cfg)
	}
	s.setCartKey(itemID, value)
}

func clampToStep(value int, cfg *models.SliderConfig) int {
	if value < cfg.Min {
		return cfg.Min
	}
	if value > cfg.Max {
		return cfg.Max
	}
	if cfg.Step > 1 {
		offset := value - cfg.Min
		offset = (offset + cfg.Step/2) / cfg.Step * cfg.Step
		value = cfg.Min + offset
		if value > cfg.Max {
			value = cfg.Max
		}
	}
	return value
}

func (s *SelectionState) setCartKey(itemID string, quantity int) {
	if _, ok := s.Cart[itemID]; !ok {
		s.CartOrder = append(s.CartOrder, itemID)
	}
	s.Cart[itemID] = quantity
}

func (s *SelectionState) removeCartKey(itemID string) {
	if _, ok := s.Cart[itemID]; !ok {
		return
	}
	delete(s.Cart, itemID)
	for i, id := range s.CartOrder {
		if id == itemID {
			s.CartOrder = append(s.CartOrder[:i], s.CartOrder[i+1:]...)
			break
		}
	}
}
