package menubuilder

import "time"

// SelectionState holds everything a customer has picked so far.
//
// Selections maps a SINGLE section to its one chosen item. Cart maps an item
// to a quantity: for MULTIPLE items the map is sparse (absence means zero),
// while SLIDER items keep an explicit zero so "None" stays distinguishable
// from "untouched". CartOrder records first-insertion order so serialized
// payloads come out deterministic.
type SelectionState struct {
	Selections map[string]string `json:"selections"`
	Cart       map[string]int    `json:"cart"`
	CartOrder  []string          `json:"cartOrder"`
}

// NewSelectionState returns an empty state.
func NewSelectionState() *SelectionState {
	return &SelectionState{
		Selections: make(map[string]string),
		Cart:       make(map[string]int),
	}
}

// BuilderSession is a customer's in-progress order, stored as a JSON blob in
// Redis under its SessionID. TotalCents is the advisory running total; the
// authoritative figure is computed again at order creation.
type BuilderSession struct {
	SessionID     string          `json:"sessionId"`
	TenantID      string          `json:"tenantId"`
	LocationID    string          `json:"locationId"`
	UserID        string          `json:"userId,omitempty"`
	State         *SelectionState `json:"state"`
	StepIndex     int             `json:"stepIndex"`
	CheckoutReady bool            `json:"checkoutReady"`
	ReorderFrom   string          `json:"reorderFrom,omitempty"`
	TotalCents    int64           `json:"totalCents"`
	CreatedAt     time.Time       `json:"createdAt"`
}
