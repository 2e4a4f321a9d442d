package troop

import (
	"cmp"
	"slices"
)

// TransferBreakdown lists the transfers of one category, by date.
type TransferBreakdown struct {
	Category         TransferCategory `json:"category"`
	Count            int              `json:"count"`
	Packages         int              `json:"packages"`
	PhysicalPackages int              `json:"physicalPackages"`
	Transfers        []Transfer       `json:"transfers"`
}

// buildTransferBreakdowns groups transfers by category, in category order,
// skipping empty categories.
func buildTransferBreakdowns(transfers []Transfer) []TransferBreakdown {
	byCategory := make(map[TransferCategory][]Transfer)
	for _, t := range transfers {
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}
	var out []TransferBreakdown
	for _, c := range Categories() {
		list := byCategory[c]
		if len(list) == 0 {
			continue
		}
		slices.SortStableFunc(list, func(a, b Transfer) int {
			return cmp.Or(a.Date.Compare(b.Date), cmp.Compare(a.OrderNumber, b.OrderNumber))
		})
		b := TransferBreakdown{Category: c, Count: len(list), Transfers: list}
		for _, t := range list {
			b.Packages += t.Packages
			b.PhysicalPackages += t.PhysicalPackages
		}
		out = append(out, b)
	}
	return out
}

// VarietyRow is one line of the variety roll-up.
type VarietyRow struct {
	Variety        Variety `json:"variety"`
	Sold           int     `json:"sold"`           // sold by scouts, orders and allocations
	TroopInventory int     `json:"troopInventory"` // troop stock, net of all movements
}

// VarietyReport rolls sales and troop stock up by variety.
type VarietyReport struct {
	Rows           []VarietyRow `json:"rows"`
	PhysicalSold   int          `json:"physicalSold"`
	CookieShare    int          `json:"cookieShare"`
	TroopInventory int          `json:"troopInventory"`
}

// buildVarietyReport sums the physical sales credited to real scouts (their
// orders and allocations) against the troop inventory by variety. Site
// orders are left out: their sales reach scouts through allocations.
func buildVarietyReport(scouts []*Scout, troopInventory Varieties) VarietyReport {
	sold := make(Varieties)
	var r VarietyReport
	for _, s := range scouts {
		if s.IsSite {
			continue
		}
		for _, o := range s.Orders {
			sold.Add(o.Varieties.Physical())
			r.CookieShare += o.Donations
		}
		for _, a := range s.Allocations {
			sold.Add(a.Varieties.Physical())
			r.CookieShare += a.Donations
		}
	}
	for _, v := range sortVarieties(map[Variety]int(sold), map[Variety]int(troopInventory)) {
		if sold[v] == 0 && troopInventory[v] == 0 {
			continue
		}
		r.Rows = append(r.Rows, VarietyRow{Variety: v, Sold: sold[v], TroopInventory: troopInventory[v]})
		r.PhysicalSold += sold[v]
		r.TroopInventory += troopInventory[v]
	}
	return r
}

// BoothSummary is a booth reservation with the allocations of its divider.
type BoothSummary struct {
	Reservation BoothReservation `json:"reservation"`
	Allocations int              `json:"allocations"`
	Packages    int              `json:"packages"`
	Donations   int              `json:"donations"`
}

// buildBoothSummaries passes reservations through, adding the totals of the
// booth allocations that carry their reservation identifier. Dividers with
// no matching reservation get a summary of their own.
func buildBoothSummaries(reservations []BoothReservation, scouts []*Scout) []BoothSummary {
	out := make([]BoothSummary, 0, len(reservations))
	index := make(map[string]int)
	for _, r := range reservations {
		if _, dup := index[r.ReservationID]; dup && r.ReservationID != "" {
			continue
		}
		index[r.ReservationID] = len(out)
		out = append(out, BoothSummary{Reservation: r})
	}
	for _, s := range scouts {
		for _, a := range s.Allocations {
			if a.Channel != ChannelBooth {
				continue
			}
			i, ok := index[a.ReservationID]
			if !ok {
				i = len(out)
				index[a.ReservationID] = i
				out = append(out, BoothSummary{Reservation: BoothReservation{
					ReservationID: a.ReservationID,
					StoreName:     a.StoreName,
					Date:          a.Date.String(),
					TimeSlot:      a.TimeSlot,
				}})
			}
			out[i].Allocations++
			out[i].Packages += a.Packages
			out[i].Donations += a.Donations
		}
	}
	slices.SortStableFunc(out, func(a, b BoothSummary) int {
		return cmp.Or(
			cmp.Compare(a.Reservation.Date, b.Reservation.Date),
			cmp.Compare(a.Reservation.TimeSlot, b.Reservation.TimeSlot),
			cmp.Compare(a.Reservation.ReservationID, b.Reservation.ReservationID),
		)
	})
	return out
}
