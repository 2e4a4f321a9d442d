package troop

import (
	"fmt"

	"github.com/etnz/troop/date"
	"github.com/google/uuid"
)

// AllocationChannel is the kind of troop-level sale credited to a scout.
type AllocationChannel string

const (
	ChannelBooth        AllocationChannel = "BOOTH"
	ChannelDirectShip   AllocationChannel = "DIRECT_SHIP"
	ChannelVirtualBooth AllocationChannel = "VIRTUAL_BOOTH"
)

// Allocation sources.
const (
	SourceBoothDivider      = "booth-divider"
	SourceDirectShipDivider = "direct-ship-divider"
	SourceVirtualBooth      = "virtual-booth-transfer"
)

// Allocation credits a share of a troop-level sale to one scout. It is
// immutable once attached.
type Allocation struct {
	ID        string            `json:"id"`
	Channel   AllocationChannel `json:"channel"`
	GirlID    int               `json:"girlId,omitempty"`
	Scout     string            `json:"scout,omitempty"`
	Packages  int               `json:"packages"`  // physical packages
	Donations int               `json:"donations"` // Cookie Share
	Varieties Varieties         `json:"varieties"`
	Source    string            `json:"source"`
	Date      date.Date         `json:"date"`

	// Provenance of booth allocations.
	ReservationID string `json:"reservationId,omitempty"`
	StoreName     string `json:"storeName,omitempty"`
	TimeSlot      string `json:"timeSlot,omitempty"`
	// Ledger record of virtual-booth allocations.
	OrderNumber string `json:"orderNumber,omitempty"`
}

// Credited returns the packages credited to the scout, donations included.
func (a Allocation) Credited() int { return a.Packages + a.Donations }

// allocationNamespace is the UUID namespace of allocation identifiers.
var allocationNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/etnz/troop/allocation"))

// key identifies an allocation within its payload: two entries with the same
// key describe the same credit.
func (a Allocation) key() string {
	return fmt.Sprintf("%s|%s|%s|%s|%d|%s|%d", a.Source, a.ReservationID, a.OrderNumber, a.Channel, a.GirlID, a.Scout, a.Donations) + "|" + a.Varieties.key()
}

func newAllocation(a Allocation) Allocation {
	a.Packages = a.Varieties.Total(false)
	a.Donations = a.Varieties[CookieShare]
	a.ID = uuid.NewSHA1(allocationNamespace, []byte(a.key())).String()
	return a
}

// NewBoothAllocations builds one allocation per scout entry of each booth divider.
func NewBoothAllocations(dividers []SCBoothDivider, cfg Config, w *Warnings) []Allocation {
	var out []Allocation
	for _, d := range dividers {
		on, err := date.Parse(d.Date)
		if err != nil {
			w.Add(InvalidDate, d.ReservationID, d.Date, "")
		}
		for _, g := range d.Girls {
			vs := cookieVarieties(g.Cookies, cfg.CookieIDs, d.ReservationID, "", w)
			if len(vs) == 0 {
				continue
			}
			out = append(out, newAllocation(Allocation{
				Channel:       ChannelBooth,
				GirlID:        g.GirlID,
				Varieties:     vs,
				Source:        SourceBoothDivider,
				Date:          on,
				ReservationID: d.ReservationID,
				StoreName:     d.StoreName,
				TimeSlot:      d.TimeSlot,
			}))
		}
	}
	return out
}

// NewDirectShipAllocations builds one allocation per scout entry of the
// direct-ship divider. A nil divider yields none.
func NewDirectShipAllocations(divider *SCDirectShipDivider, cfg Config, w *Warnings) []Allocation {
	if divider == nil {
		return nil
	}
	var out []Allocation
	for _, g := range divider.Girls {
		vs := cookieVarieties(g.Cookies, cfg.CookieIDs, SourceDirectShipDivider, "", w)
		if len(vs) == 0 {
			continue
		}
		out = append(out, newAllocation(Allocation{
			Channel:   ChannelDirectShip,
			GirlID:    g.GirlID,
			Varieties: vs,
			Source:    SourceDirectShipDivider,
		}))
	}
	return out
}

// virtualBoothAllocations synthesizes one allocation per virtual-booth transfer.
func virtualBoothAllocations(transfers []Transfer) []Allocation {
	var out []Allocation
	for _, t := range transfers {
		if t.Category != VirtualBoothAllocation {
			continue
		}
		out = append(out, newAllocation(Allocation{
			Channel:     ChannelVirtualBooth,
			GirlID:      t.GirlID,
			Scout:       scoutName(t.To, ""),
			Varieties:   t.Varieties.Clone(),
			Source:      SourceVirtualBooth,
			Date:        t.Date,
			OrderNumber: t.OrderNumber,
		}))
	}
	return out
}

// dedupeAllocations collapses allocations with the same scout, channel and
// variety breakdown from the same payload, keeping the first one.
func dedupeAllocations(allocs []Allocation) []Allocation {
	seen := make(map[string]struct{}, len(allocs))
	out := make([]Allocation, 0, len(allocs))
	for _, a := range allocs {
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	return out
}

// attachAllocations attaches each allocation to its scout through the ledger
// identifier lookup, falling back to the recorded name. It returns the
// number of allocations naming no known scout.
func attachAllocations(s *scoutSet, allocs []Allocation) (unmatched int) {
	for _, a := range allocs {
		scout := s.lookup(a.Scout, a.GirlID)
		if scout == nil {
			unmatched++
			continue
		}
		a.Scout = scout.Name
		scout.Allocations = append(scout.Allocations, a)
	}
	return unmatched
}
