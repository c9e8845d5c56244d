package order

import (
	"testing"
	"time"
)

func TestParseArrivalAsap(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got, err := ParseArrival("asap", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(now) {
		t.Fatalf("expected %v, got %v", now, got)
	}
}

func TestParseArrivalEmptyDefaultsToNow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got, err := ParseArrival("", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(now) {
		t.Fatalf("expected %v, got %v", now, got)
	}
}

func TestParseArrivalMinutes(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got, err := ParseArrival("45", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := now.Add(45 * time.Minute); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseArrivalRejectsGarbage(t *testing.T) {
	now := time.Now()
	for _, bad := range []string{"soon", "12.5", "-10"} {
		if _, err := ParseArrival(bad, now); err == nil {
			t.Fatalf("expected error for lead time %q", bad)
		}
	}
}
