package menubuilder

import (
	"testing"

	"tably/models"
)

// testSteps builds a two-step catalog covering all three selection modes.
func testSteps() []models.MenuStep {
	return []models.MenuStep{
		{
			ID:       "step-base",
			Title:    "Build your bowl",
			Position: 0,
			Sections: []models.MenuSection{
				{
					ID:            "sec-base",
					Name:          "Base",
					SelectionMode: models.SelectionSingle,
					Required:      true,
					Items: []models.MenuItem{
						{ID: "base-ramen", Name: "Ramen", BasePriceCents: 1200, CategoryType: models.CategoryTypeBase},
						{ID: "base-udon", Name: "Udon", BasePriceCents: 1100, CategoryType: models.CategoryTypeBase},
					},
				},
				{
					ID:            "sec-size",
					Name:          "Size",
					SelectionMode: models.SelectionSingle,
					Required:      true,
					Items: []models.MenuItem{
						{ID: "size-regular", Name: "Regular"},
						{ID: "size-large", Name: "Large", BasePriceCents: 200},
					},
				},
			},
		},
		{
			ID:       "step-extras",
			Title:    "Extras",
			Position: 1,
			Sections: []models.MenuSection{
				{
					ID:            "sec-extras",
					Name:          "Extras",
					SelectionMode: models.SelectionMultiple,
					Required:      true,
					MaxQuantity:   5,
					Items: []models.MenuItem{
						{ID: "extra-egg", Name: "Egg", BasePriceCents: 150},
						{ID: "extra-nori", Name: "Nori", BasePriceCents: 100},
					},
				},
				{
					ID:            "sec-spice",
					Name:          "Spice",
					SelectionMode: models.SelectionSlider,
					Item: &models.MenuItem{
						ID: "slider-spice", Name: "Chili oil", AdditionalPriceCents: 75, IncludedQuantity: 1,
					},
					SliderConfig: &models.SliderConfig{Min: 0, Max: 10, Default: 2, Step: 1},
				},
				{
					ID:            "sec-richness",
					Name:          "Broth richness",
					SelectionMode: models.SelectionSlider,
					Item: &models.MenuItem{
						ID: "slider-richness", Name: "Broth fat", AdditionalPriceCents: 50, IncludedQuantity: 2,
					},
					SliderConfig: &models.SliderConfig{Min: 0, Max: 8, Default: 2, Step: 2},
				},
			},
		},
	}
}

func TestNewCatalogIndexesItems(t *testing.T) {
	catalog := NewCatalog(testSteps())

	item, ok := catalog.Item("base-ramen")
	if !ok {
		t.Fatalf("expected base-ramen in catalog")
	}
	if item.SelectionMode != models.SelectionSingle {
		t.Errorf("expected item to inherit SINGLE mode, got %q", item.SelectionMode)
	}

	if _, ok := catalog.Section("sec-extras"); !ok {
		t.Errorf("expected sec-extras in catalog")
	}
}

func TestNewCatalogSliderInheritsSectionConfig(t *testing.T) {
	catalog := NewCatalog(testSteps())

	item, ok := catalog.Item("slider-spice")
	if !ok {
		t.Fatalf("expected slider-spice in catalog")
	}
	if item.SelectionMode != models.SelectionSlider {
		t.Errorf("expected slider mode, got %q", item.SelectionMode)
	}
	if item.SliderConfig == nil || item.SliderConfig.Default != 2 {
		t.Errorf("expected slider config inherited from section, got %+v", item.SliderConfig)
	}
}

func TestSliderItemsInCatalogOrder(t *testing.T) {
	catalog := NewCatalog(testSteps())

	sliders := catalog.SliderItems()
	if len(sliders) != 2 {
		t.Fatalf("expected 2 slider items, got %d", len(sliders))
	}
	if sliders[0].ID != "slider-spice" || sliders[1].ID != "slider-richness" {
		t.Errorf("unexpected slider order: %s, %s", sliders[0].ID, sliders[1].ID)
	}
}
