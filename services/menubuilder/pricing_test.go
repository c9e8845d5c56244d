package menubuilder

import (
	"testing"

	"tably/models"
)

func TestPriceForStandardWithIncludedQuantity(t *testing.T) {
	item := &models.MenuItem{
		BasePriceCents:       200,
		AdditionalPriceCents: 50,
		IncludedQuantity:     2,
		SelectionMode:        models.SelectionMultiple,
	}

	cases := []struct {
		quantity int
		want     int64
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 200},
		{4, 250},
		{5, 300},
	}
	for _, tc := range cases {
		if got := PriceFor(item, tc.quantity); got != tc.want {
			t.Errorf("PriceFor(qty=%d) = %d, want %d", tc.quantity, got, tc.want)
		}
	}
}

func TestPriceForStandardNoIncludedQuantity(t *testing.T) {
	item := &models.MenuItem{
		BasePriceCents: 150,
		SelectionMode:  models.SelectionMultiple,
	}

	cases := []struct {
		quantity int
		want     int64
	}{
		{0, 0},
		{1, 150},
		{3, 450},
	}
	for _, tc := range cases {
		if got := PriceFor(item, tc.quantity); got != tc.want {
			t.Errorf("PriceFor(qty=%d) = %d, want %d", tc.quantity, got, tc.want)
		}
	}
}

func TestPriceForSlider(t *testing.T) {
	item := &models.MenuItem{
		BasePriceCents:       999,
		AdditionalPriceCents: 75,
		IncludedQuantity:     1,
		SelectionMode:        models.SelectionSlider,
	}

	cases := []struct {
		quantity int
		want     int64
	}{
		{0, 0},
		{1, 0},
		{2, 75},
		{3, 150},
	}
	for _, tc := range cases {
		if got := PriceFor(item, tc.quantity); got != tc.want {
			t.Errorf("PriceFor(qty=%d) = %d, want %d", tc.quantity, got, tc.want)
		}
	}
}

func TestPriceForSliderIgnoresBasePrice(t *testing.T) {
	item := &models.MenuItem{
		BasePriceCents:       500,
		AdditionalPriceCents: 25,
		SelectionMode:        models.SelectionSlider,
	}
	if got := PriceFor(item, 4); got != 100 {
		t.Errorf("PriceFor(qty=4) = %d, want 100", got)
	}
}

func TestPriceForNegativeQuantity(t *testing.T) {
	item := &models.MenuItem{BasePriceCents: 300}
	if got := PriceFor(item, -1); got != 0 {
		t.Errorf("PriceFor(qty=-1) = %d, want 0", got)
	}
}
