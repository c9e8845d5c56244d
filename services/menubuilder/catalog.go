package menubuilder

import "tably/models"

// Catalog is an indexed view over a tenant's menu steps. Items inherit their
// selection mode (and, for sliders, the slider config) from the owning
// section when the catalog is built.
type Catalog struct {
	Steps []models.MenuStep

	items       map[string]*models.MenuItem
	sections    map[string]*models.MenuSection
	sliderOrder []string
}

// NewCatalog builds the item/section indexes from the given steps. The step
// slice is retained; callers should not mutate it afterwards.
func NewCatalog(steps []models.MenuStep) *Catalog {
	c := &Catalog{
		Steps:    steps,
		items:    make(map[string]*models.MenuItem),
		sections: make(map[string]*models.MenuSection),
	}
	for si := range c.Steps {
		step := &c.Steps[si]
		for gi := range step.Sections {
			sec := &step.Sections[gi]
			c.sections[sec.ID] = sec
			if sec.SelectionMode == models.SelectionSlider {
				if sec.Item == nil {
					continue
				}
				item := sec.Item
				item.SelectionMode = models.SelectionSlider
				if item.SliderConfig == nil {
					item.SliderConfig = sec.SliderConfig
				}
				if _, seen := c.items[item.ID]; !seen {
					c.sliderOrder = append(c.sliderOrder, item.ID)
				}
				c.items[item.ID] = item
				continue
			}
			for ii := range sec.Items {
				item := &sec.Items[ii]
				item.SelectionMode = sec.SelectionMode
				c.items[item.ID] = item
			}
		}
	}
	return c
}

// Item looks up an item by ID.
func (c *Catalog) Item(id string) (*models.MenuItem, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Section looks up a section by ID.
func (c *Catalog) Section(id string) (*models.MenuSection, bool) {
	sec, ok := c.sections[id]
	return sec, ok
}

// SliderItems returns every slider-backed item in catalog order.
func (c *Catalog) SliderItems() []*models.MenuItem {
	items := make([]*models.MenuItem, 0, len(c.sliderOrder))
	for _, id := range c.sliderOrder {
		items = append(items, c.items[id])
	}
	return items
}
