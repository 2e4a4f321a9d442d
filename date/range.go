package date

// Range represents an inclusive range of dates. The zero Range is empty.
type Range struct{ From, To Date }

// IsZero reports whether no date was ever added to the range.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Extend returns the smallest range containing r and d. Zero dates are ignored.
func (r Range) Extend(d Date) Range {
	if d.IsZero() {
		return r
	}
	if r.IsZero() {
		return Range{From: d, To: d}
	}
	if d.Before(r.From) {
		r.From = d
	}
	if d.After(r.To) {
		r.To = d
	}
	return r
}

// String returns "from..to" or "" for an empty range.
func (r Range) String() string {
	if r.IsZero() {
		return ""
	}
	return r.From.String() + ".." + r.To.String()
}
