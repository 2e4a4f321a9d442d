package renderer

import (
	"github.com/etnz/troop"
)

// ScoutCard is a struct to represent one scout's reconciliation for rendering.
// Amounts keep the engine's Money type so they already render as dollars.
type ScoutCard struct {
	Name string
	// Site is set for the troop pseudo-scout.
	Site bool

	Orders     int
	Delivered  int
	Shipped    int
	Donations  int
	Credited   int
	TotalSold  int
	OnHand     int
	Shortfalls int

	CashCollected      troop.Money
	ElectronicPayments troop.Money
	InventoryValue     troop.Money
	SoldValue          troop.Money
	CashOwed           troop.Money
	UnknownPayments    int

	Stock       []ScoutStock
	Allocations []ScoutAllocation
	OrderLines  []ScoutOrder
}

// ScoutStock is one variety of the scout's stock.
type ScoutStock struct {
	Variety   troop.Variety
	PickedUp  int // net of returns
	Sold      int
	OnHand    int
	Shortfall int
}

// ScoutAllocation is one credited allocation.
type ScoutAllocation struct {
	Channel   troop.AllocationChannel
	Date      string
	Reference string // reservation, store or order number
	Packages  int
	Donations int
}

// ScoutOrder is one retail order of the scout.
type ScoutOrder struct {
	Number    string
	Date      string
	Type      string
	Payment   string
	Packages  int
	Donations int
	Amount    troop.Money
	Status    string
}

// unset renders the zero value of a classification.
const unset = "?"

func orUnset(s string) string {
	if s == "" {
		return unset
	}
	return s
}

// NewScoutCard creates a new ScoutCard from a reconciled scout.
func NewScoutCard(s *troop.Scout) *ScoutCard {
	t := s.Totals
	c := &ScoutCard{
		Name:               s.Name,
		Site:               s.IsSite,
		Orders:             t.Orders,
		Delivered:          t.Delivered,
		Shipped:            t.Shipped,
		Donations:          t.Donations,
		Credited:           t.Credited,
		TotalSold:          t.TotalSold,
		OnHand:             t.Inventory,
		Shortfalls:         len(t.Shortfalls),
		CashCollected:      t.Finances.CashCollected,
		ElectronicPayments: t.Finances.ElectronicPayments,
		InventoryValue:     t.Finances.InventoryValue,
		SoldValue:          t.Finances.SoldValue,
		CashOwed:           t.Finances.CashOwed,
		UnknownPayments:    t.Finances.UnknownPayments,
	}

	short := make(map[troop.Variety]int, len(t.Shortfalls))
	for _, sf := range t.Shortfalls {
		short[sf.Variety] = sf.Shortfall
	}
	seen := make(troop.Varieties)
	seen.Add(s.Inventory.Varieties)
	seen.Add(t.SalesFromInventory)
	for _, v := range seen.Sorted() {
		line := ScoutStock{
			Variety:   v,
			PickedUp:  s.Inventory.Varieties[v],
			Sold:      t.SalesFromInventory[v],
			OnHand:    t.OnHand[v],
			Shortfall: short[v],
		}
		if line == (ScoutStock{Variety: v}) {
			continue
		}
		c.Stock = append(c.Stock, line)
	}

	for _, a := range s.Allocations {
		ref := a.ReservationID
		if a.StoreName != "" {
			ref = a.StoreName
		}
		if a.OrderNumber != "" {
			ref = a.OrderNumber
		}
		c.Allocations = append(c.Allocations, ScoutAllocation{
			Channel:   a.Channel,
			Date:      a.Date.String(),
			Reference: ref,
			Packages:  a.Packages,
			Donations: a.Donations,
		})
	}

	for _, o := range s.Orders {
		c.OrderLines = append(c.OrderLines, ScoutOrder{
			Number:    o.Number,
			Date:      o.Date.String(),
			Type:      orUnset(string(o.Type)),
			Payment:   orUnset(string(o.Payment)),
			Packages:  o.Packages,
			Donations: o.Donations,
			Amount:    o.Amount,
			Status:    o.Status,
		})
	}
	return c
}
