package date

import (
	"testing"
	"time"
)

func d(day int) Date { return New(2025, time.June, day) }

func TestHistory_AppendKeepsOrder(t *testing.T) {
	var h History[float64]
	h.Append(d(10), 1.0).Append(d(5), 2.0).Append(d(20), 3.0)

	var days []Date
	for on := range h.Values() {
		days = append(days, on)
	}
	want := []Date{d(5), d(10), d(20)}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("days[%d] = %v, want %v", i, days[i], want[i])
		}
	}
}

func TestHistory_AppendOverwrites(t *testing.T) {
	var h History[string]
	h.Append(d(1), "old").Append(d(1), "new")
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(d(1)); !ok || v != "new" {
		t.Errorf("Get() = %q, %v; want %q, true", v, ok, "new")
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(d(10), 1.10)
	h.Append(d(20), 1.20)

	tests := []struct {
		on   Date
		want float64
		ok   bool
	}{
		{d(9), 0, false},    // before first point
		{d(10), 1.10, true}, // exact
		{d(15), 1.10, true}, // falls back to the 10th
		{d(20), 1.20, true},
		{d(25), 1.20, true},
	}
	for _, tc := range tests {
		got, ok := h.ValueAsOf(tc.on)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ValueAsOf(%v) = %v, %v; want %v, %v", tc.on, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHistory_Latest(t *testing.T) {
	var h History[string]
	if day, v := h.Latest(); !day.IsZero() || v != "" {
		t.Errorf("Latest() on empty history = %v, %q", day, v)
	}
	h.Append(d(2), "b").Append(d(1), "a")
	if day, v := h.Latest(); day != d(2) || v != "b" {
		t.Errorf("Latest() = %v, %q; want %v, %q", day, v, d(2), "b")
	}
}
