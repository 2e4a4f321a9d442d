package troop

import "github.com/etnz/troop/date"

// SalesPoint is the sales of one period of the season.
type SalesPoint struct {
	Start      date.Date `json:"start"`
	Label      string    `json:"label"`
	Orders     int       `json:"orders"`
	Packages   int       `json:"packages"`
	Donations  int       `json:"donations"`
	Cumulative int       `json:"cumulative"` // packages sold up to the end of the period
}

// Timeline buckets the dated orders of every scout, site included, by period.
// Periods without sales between the first and the last sale are kept, so the
// points are contiguous. Undated orders are left out.
func Timeline(d *Dataset, p date.Period) []SalesPoint {
	var orders, packages, donations date.History[int]
	for _, s := range d.Scouts {
		for _, o := range s.Orders {
			if o.Date.IsZero() {
				continue
			}
			start := p.Start(o.Date)
			orders.AppendAdd(start, 1)
			packages.AppendAdd(start, o.Packages)
			donations.AppendAdd(start, o.Donations)
		}
	}
	if orders.Len() == 0 {
		return nil
	}

	// running total at each period with sales
	var cumulative date.History[int]
	total := 0
	for day, n := range packages.Values() {
		total += n
		cumulative.Append(day, total)
	}

	var first date.Date
	for day := range orders.Values() {
		first = day
		break
	}
	last, _ := orders.Latest()

	var points []SalesPoint
	for day := first; !day.After(last); day = p.Next(day) {
		pt := SalesPoint{Start: day, Label: p.Label(day)}
		pt.Orders, _ = orders.Get(day)
		pt.Packages, _ = packages.Get(day)
		pt.Donations, _ = donations.Get(day)
		pt.Cumulative, _ = cumulative.ValueAsOf(day)
		points = append(points, pt)
	}
	return points
}
