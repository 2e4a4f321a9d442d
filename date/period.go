package date

import (
	"fmt"
	"strings"
)

// Period is the bucket size of a sales timeline.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod accepts "daily", "weekly", "monthly" or their singular forms.
func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", p)
	}
}

// Start returns the first day of the period containing d. Weeks start on
// Monday. The zero date has no period and is returned as is.
func (p Period) Start(d Date) Date {
	if d.IsZero() {
		return d
	}
	switch p {
	case Weekly:
		// days since Monday
		back := (int(d.time().Weekday()) + 6) % 7
		t := d.time().AddDate(0, 0, -back)
		return New(t.Year(), t.Month(), t.Day())
	case Monthly:
		return New(d.y, d.m, 1)
	default:
		return d
	}
}

// Next returns the start of the period following the one containing d.
func (p Period) Next(d Date) Date {
	t := p.Start(d).time()
	switch p {
	case Weekly:
		t = t.AddDate(0, 0, 7)
	case Monthly:
		t = t.AddDate(0, 1, 0)
	default:
		t = t.AddDate(0, 0, 1)
	}
	return New(t.Year(), t.Month(), t.Day())
}

// Label names the period containing d: "2025-01-20", "2025-W04" or "2025-01".
func (p Period) Label(d Date) string {
	switch p {
	case Weekly:
		y, w := d.time().ISOWeek()
		return fmt.Sprintf("%d-W%02d", y, w)
	case Monthly:
		return fmt.Sprintf("%d-%02d", d.y, int(d.m))
	default:
		return d.String()
	}
}
