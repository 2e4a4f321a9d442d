package troop

import (
	"maps"
	"slices"
	"strings"
)

// CookieShareScout compares manual Cookie Share entries of one scout.
type CookieShareScout struct {
	Scout      string `json:"scout"`
	DCManual   int    `json:"dcManual"`
	SCManual   int    `json:"scManual"`
	Difference int    `json:"difference"` // DCManual - SCManual
}

// CookieShareReconciliation compares the donations known to both platforms.
//
// Donations of shipped orders and of donation-only orders paid by card are
// synchronized to the ledger automatically. Every other retail donation has
// to be entered by hand on the ledger, and both manual totals must agree.
type CookieShareReconciliation struct {
	DCTotal  int `json:"dcTotal"`
	DCAuto   int `json:"dcAuto"`
	DCManual int `json:"dcManual"`

	SCManual int `json:"scManual"` // Cookie Share records entered on the ledger
	SCSynced int `json:"scSynced"` // Cookie Share records synchronized from retail orders
	SCBooth  int `json:"scBooth"`  // Cookie Share generated by booth dividers

	Difference int                `json:"difference"` // DCManual - SCManual
	Reconciled bool               `json:"reconciled"`
	Scouts     []CookieShareScout `json:"scouts"` // scouts with a manual entry on either side
}

// isAutoSynced reports whether the donations of a retail order reach the
// ledger without a manual entry.
func isAutoSynced(o Order) bool {
	return o.Type == DirectShip || (o.Type == Donation && o.Payment == CreditCard)
}

// ReconcileCookieShare compares retail donations of real scouts with the
// Cookie Share records of the ledger. Site rows are credited through divider
// allocations and are left out. A mismatch is not an error.
func ReconcileCookieShare(scouts []*Scout, transfers []Transfer, cfg Config) CookieShareReconciliation {
	r := CookieShareReconciliation{Scouts: []CookieShareScout{}}
	lines := make(map[string]*CookieShareScout)
	line := func(name string) *CookieShareScout {
		l, ok := lines[name]
		if !ok {
			l = &CookieShareScout{Scout: name}
			lines[name] = l
		}
		return l
	}

	byID := make(map[int]string)
	for _, s := range scouts {
		if s.GirlID != 0 {
			byID[s.GirlID] = s.Name
		}
		if s.IsSite {
			continue
		}
		for _, o := range s.Orders {
			if o.Donations == 0 {
				continue
			}
			r.DCTotal += o.Donations
			if isAutoSynced(o) {
				r.DCAuto += o.Donations
				continue
			}
			r.DCManual += o.Donations
			line(s.Name).DCManual += o.Donations
		}
	}

	for _, t := range transfers {
		switch t.Category {
		case BoothCookieShare:
			r.SCBooth += t.Packages
		case CookieShareRecord:
			if cfg.DCOrderPrefix != "" && strings.HasPrefix(t.OrderNumber, cfg.DCOrderPrefix) {
				r.SCSynced += t.Packages
				continue
			}
			r.SCManual += t.Packages
			name, ok := byID[t.GirlID]
			if !ok {
				name = scoutName(t.To, "")
			}
			line(name).SCManual += t.Packages
		}
	}

	r.Difference = r.DCManual - r.SCManual
	r.Reconciled = r.Difference == 0
	names := slices.Sorted(maps.Keys(lines))
	// ledger entries naming no scout go last
	if len(names) > 0 && names[0] == "" {
		names = append(names[1:], "")
	}
	for _, name := range names {
		l := lines[name]
		l.Difference = l.DCManual - l.SCManual
		r.Scouts = append(r.Scouts, *l)
	}
	return r
}
