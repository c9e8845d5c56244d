package models

import "time"

// SelectionMode controls how items inside a section may be chosen.
type SelectionMode string

const (
	SelectionSingle   SelectionMode = "SINGLE"   // exclusive radio choice
	SelectionMultiple SelectionMode = "MULTIPLE" // checkboxes with per-item quantity
	SelectionSlider   SelectionMode = "SLIDER"   // one item, integer intensity value
)

// SliderConfig describes the value range of a slider-mode item.
// Labels carries one entry per integer value from Min to Max.
type SliderConfig struct {
	Min            int      `bson:"min" json:"min"`
	Max            int      `bson:"max" json:"max"`
	Default        int      `bson:"default" json:"default"`
	Step           int      `bson:"step" json:"step"`
	Labels         []string `bson:"labels" json:"labels"`
	LabelPositions []int    `bson:"label_positions,omitempty" json:"labelPositions,omitempty"`
	Description    string   `bson:"description,omitempty" json:"description,omitempty"`
}

// MenuItem is a single orderable item. Prices are integer cents; the
// included quantity is the number of units bundled at zero marginal cost.
type MenuItem struct {
	ID                   string        `bson:"id" json:"id"`
	Name                 string        `bson:"name" json:"name"`
	BasePriceCents       int64         `bson:"base_price_cents" json:"basePriceCents"`
	AdditionalPriceCents int64         `bson:"additional_price_cents" json:"additionalPriceCents"`
	IncludedQuantity     int           `bson:"included_quantity" json:"includedQuantity"`
	Category             string        `bson:"category,omitempty" json:"category,omitempty"`
	CategoryType         string        `bson:"category_type,omitempty" json:"categoryType,omitempty"`
	SelectionMode        SelectionMode `bson:"selection_mode,omitempty" json:"selectionMode,omitempty"` // inherited from the owning section
	IsAvailable          bool          `bson:"is_available" json:"isAvailable"`
	SliderConfig         *SliderConfig `bson:"slider_config,omitempty" json:"sliderConfig,omitempty"`
}

// CategoryTypeBase marks items that satisfy the "at least one base dish"
// checkout gate.
const CategoryTypeBase = "base"

// MenuSection groups items under one selection mode. SINGLE/MULTIPLE
// sections carry Items; SLIDER sections carry one Item plus SliderConfig.
type MenuSection struct {
	ID            string        `bson:"id" json:"id"`
	Name          string        `bson:"name" json:"name"`
	SelectionMode SelectionMode `bson:"selection_mode" json:"selectionMode"`
	Required      bool          `bson:"required" json:"required"`
	Items         []MenuItem    `bson:"items,omitempty" json:"items,omitempty"`
	Item          *MenuItem     `bson:"item,omitempty" json:"item,omitempty"`
	SliderConfig  *SliderConfig `bson:"slider_config,omitempty" json:"sliderConfig,omitempty"`
	// MaxQuantity is a display hint for MULTIPLE-section steppers. The
	// selection store does not cap quantities against it; exceeding it
	// only costs more, it never blocks.
	MaxQuantity int `bson:"max_quantity,omitempty" json:"maxQuantity,omitempty"`
}

// MenuStep is one page of the order-building wizard. Steps are traversed
// in order; past the final step the builder moves to checkout.
type MenuStep struct {
	ID         string        `bson:"id" json:"id"`
	Title      string        `bson:"title" json:"title"`
	TenantID   string        `bson:"tenant_id" json:"tenantId"`
	LocationID string        `bson:"location_id,omitempty" json:"locationId,omitempty"`
	Position   int           `bson:"position" json:"position"`
	Sections   []MenuSection `bson:"sections" json:"sections"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updatedAt"`
}
