package date

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestAppend(t *testing.T) {
	h := new(History[int])
	d1, v1 := New(2025, 07, 01), 25
	d2, v2 := New(2024, 07, 01), 24

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}

	h.Append(d1, 99)
	if got, _ := h.Get(d1); got != 99 || h.Len() != 2 {
		t.Errorf("Append() on an existing day: Get() = %d, Len() = %d", got, h.Len())
	}
}

func TestAppendAdd_Unordered(t *testing.T) {
	h := new(History[int])
	for _, day := range []int{9, 3, 27, 3, 14, 1, 27, 9, 20} {
		h.AppendAdd(New(2025, time.February, day), 1)
	}
	var days []int
	var values []int
	for d, v := range h.Values() {
		days = append(days, d.Day())
		values = append(values, v)
	}
	if diff := cmp.Diff([]int{1, 3, 9, 14, 20, 27}, days); diff != "" {
		t.Errorf("days mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 2, 1, 1, 2}, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendAdd(t *testing.T) {
	h := new(History[int])
	jan20, jan22 := New(2025, time.January, 20), New(2025, time.January, 22)
	h.AppendAdd(jan22, 4).AppendAdd(jan20, 1).AppendAdd(jan22, 3)

	var days []Date
	var values []int
	for d, v := range h.Values() {
		days = append(days, d)
		values = append(values, v)
	}
	if len(days) != 2 || days[0] != jan20 || values[0] != 1 || values[1] != 7 {
		t.Errorf("Values() = %v %v, want [%v %v] [1 7]", days, values, jan20, jan22)
	}
	if day, v := h.Latest(); day != jan22 || v != 7 {
		t.Errorf("Latest() = %v, %d", day, v)
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[int])
	h.Append(New(2025, time.January, 10), 5)
	h.Append(New(2025, time.January, 20), 8)

	testCases := []struct {
		name   string
		day    Date
		want   int
		wantOK bool
	}{
		{"before", New(2025, time.January, 1), 0, false},
		{"exact", New(2025, time.January, 10), 5, true},
		{"between", New(2025, time.January, 15), 5, true},
		{"after", New(2025, time.February, 1), 8, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(tc.day)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("ValueAsOf(%v) = %d, %v, want %d, %v", tc.day, got, ok, tc.want, tc.wantOK)
			}
		})
	}

	if _, ok := h.Get(New(2025, time.January, 15)); ok {
		t.Error("Get() on a missing day should not be found")
	}
}
