package troop

import "strings"

// Inventory is a scout's running physical stock.
type Inventory struct {
	Total     int       `json:"total"`
	Varieties Varieties `json:"varieties"`
}

func (inv *Inventory) add(vs Varieties) {
	inv.Varieties.Add(vs.Physical())
	inv.Total = inv.Varieties.Total(false)
}

func (inv *Inventory) sub(vs Varieties) {
	inv.Varieties.Sub(vs.Physical())
	inv.Varieties = inv.Varieties.Clone()
	inv.Total = inv.Varieties.Total(false)
}

// Scout is the aggregate root of the ledger: a scout, or the troop's site
// pseudo-scout, with the orders, allocations and stock attributed to her.
type Scout struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	GirlID    int    `json:"girlId,omitempty"` // known only to the ledger platform
	// IsSite marks the pseudo-scout holding the troop's booth and walk-in
	// sales not yet attributed to a scout.
	IsSite bool `json:"isSite,omitempty"`

	Orders      []Order      `json:"orders"`
	Allocations []Allocation `json:"allocations"`
	Inventory   Inventory    `json:"inventory"`
	Totals      ScoutTotals  `json:"totals"`
}

func newScout(first, last string, site bool) *Scout {
	return &Scout{
		Name:        scoutName(first, last),
		FirstName:   strings.TrimSpace(first),
		LastName:    strings.TrimSpace(last),
		IsSite:      site,
		Orders:      []Order{},
		Allocations: []Allocation{},
		Inventory:   Inventory{Varieties: make(Varieties)},
	}
}

// scoutName is the identity key shared by both platforms: "First Last" with
// whitespace collapsed.
func scoutName(first, last string) string {
	return strings.Join(strings.Fields(first+" "+last), " ")
}
