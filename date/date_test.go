package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2025-01-31", New(2025, time.January, 31)},
		{"2025-1-3", New(2025, time.January, 3)},
		{"2025-02-14T13:45:00", New(2025, time.February, 14)},
		{"02/14/2025", New(2025, time.February, 14)},
		{"2/4/2025 10:31:00 AM", New(2025, time.February, 4)},
		{"Mar 8, 2025", New(2025, time.March, 8)},
		{"", Date{}},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse("yesterday"); err == nil {
		t.Error("Parse(\"yesterday\") expected an error")
	}
}

func TestDate_JSON(t *testing.T) {
	d := New(2025, time.March, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), `"2025-03-01"`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("Unmarshal() = %v, want %v", back, d)
	}
}

func TestRange_Extend(t *testing.T) {
	var r Range
	r = r.Extend(Date{})
	if !r.IsZero() {
		t.Fatalf("Extend(zero) = %v, want empty range", r)
	}
	r = r.Extend(MustParse("2025-02-10")).Extend(MustParse("2025-01-20")).Extend(MustParse("2025-03-01"))
	if got, want := r.String(), "2025-01-20..2025-03-01"; got != want {
		t.Errorf("Range = %q, want %q", got, want)
	}
}
