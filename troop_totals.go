package troop

import "math"

// ChannelTotals rolls up the allocations of one channel.
type ChannelTotals struct {
	Allocations int `json:"allocations"`
	Packages    int `json:"packages"`
	Donations   int `json:"donations"`
}

func (c *ChannelTotals) add(a Allocation) {
	c.Allocations++
	c.Packages += a.Packages
	c.Donations += a.Donations
}

// SiteTotals rolls up the orders of the site pseudo-scouts.
type SiteTotals struct {
	Orders     int `json:"orders"`
	Packages   int `json:"packages"`
	Donations  int `json:"donations"`
	Booth      int `json:"booth"`      // physical packages sold in hand at booths
	DirectShip int `json:"directShip"` // physical packages of troop direct-ship orders
}

// Proceeds is the troop proceeds computation.
type Proceeds struct {
	PackagesCredited int   `json:"packagesCredited"`
	ActiveScouts     int   `json:"activeScouts"`
	PGA              int   `json:"pga"`
	Rate             Money `json:"rate"`
	Gross            Money `json:"gross"`
	Exemption        Money `json:"exemption"`
	Net              Money `json:"net"`
}

// TroopTotals holds the troop-wide totals of a reconciliation pass.
type TroopTotals struct {
	Scouts       int `json:"scouts"` // real scouts only
	ActiveScouts int `json:"activeScouts"`
	Orders       int `json:"orders"`

	Inbound            int       `json:"inbound"` // physical packages received from council and other troops
	Returns            int       `json:"returns"` // physical packages returned by scouts
	Outbound           int       `json:"outbound"`
	NetInventory       int       `json:"netInventory"`
	InventoryByVariety Varieties `json:"inventoryByVariety"`

	Donations  int `json:"donations"`  // Cookie Share records of the ledger platform
	DirectShip int `json:"directShip"` // direct-ship records of the ledger platform

	Proceeds Proceeds `json:"proceeds"`

	Booth                 ChannelTotals `json:"booth"`
	DirectShipAllocations ChannelTotals `json:"directShipAllocations"`
	VirtualBooth          ChannelTotals `json:"virtualBooth"`
	Site                  SiteTotals    `json:"site"`

	Sold               int   `json:"sold"` // sum of scouts' TotalSold
	CashCollected      Money `json:"cashCollected"`
	ElectronicPayments Money `json:"electronicPayments"`
	CashOwed           Money `json:"cashOwed"`
	Shortfalls         int   `json:"shortfalls"` // scouts with at least one shortfall
}

// ProceedsRate returns the per-package rate of the highest tier reached by pga.
func ProceedsRate(pga int, tiers []ProceedsTier) Money {
	var rate Money
	for _, t := range tiers {
		if pga >= t.MinPGA {
			rate = t.Rate
		}
	}
	return rate
}

// ComputeProceeds derives the troop proceeds from the packages credited and
// the number of active scouts. Each active scout exempts a fixed number of
// packages at the same rate; net proceeds are never negative.
func ComputeProceeds(packagesCredited, activeScouts int, cfg Config) Proceeds {
	p := Proceeds{PackagesCredited: packagesCredited, ActiveScouts: activeScouts}
	if activeScouts > 0 {
		p.PGA = int(math.Round(float64(packagesCredited) / float64(activeScouts)))
	}
	p.Rate = ProceedsRate(p.PGA, cfg.Tiers)
	p.Gross = p.Rate.Mul(packagesCredited)
	p.Exemption = p.Rate.Mul(activeScouts * cfg.ExemptPackages)
	p.Net = p.Gross.Sub(p.Exemption).NonNegative()
	return p
}

// computeTroopTotals derives the troop totals. Scout totals must be computed.
func computeTroopTotals(scouts []*Scout, transfers []Transfer, cfg Config) TroopTotals {
	t := TroopTotals{InventoryByVariety: make(Varieties)}

	for _, tr := range transfers {
		switch {
		case tr.Category == CouncilToTroop:
			t.Inbound += tr.PhysicalPackages
			t.InventoryByVariety.Add(tr.PhysicalVarieties)
		case tr.Category == GirlReturn:
			t.Returns += tr.PhysicalPackages
			t.InventoryByVariety.Add(tr.PhysicalVarieties)
		case tr.Category.IsOutbound():
			t.Outbound += tr.PhysicalPackages
			t.InventoryByVariety.Sub(tr.PhysicalVarieties)
		case tr.Category == CookieShareRecord, tr.Category == BoothCookieShare:
			t.Donations += tr.Packages
		case tr.Category == DirectShipRecord:
			t.DirectShip += tr.Packages
		}
	}
	t.NetInventory = t.Inbound + t.Returns - t.Outbound
	t.InventoryByVariety = t.InventoryByVariety.Clone()

	for _, s := range scouts {
		for _, a := range s.Allocations {
			switch a.Channel {
			case ChannelBooth:
				t.Booth.add(a)
			case ChannelDirectShip:
				t.DirectShipAllocations.add(a)
			case ChannelVirtualBooth:
				t.VirtualBooth.add(a)
			}
		}
		if s.IsSite {
			for _, o := range s.Orders {
				t.Site.Orders++
				t.Site.Packages += o.Packages
				t.Site.Donations += o.Donations
				switch o.Type {
				case Booth:
					t.Site.Booth += o.PhysicalPackages
				case DirectShip:
					t.Site.DirectShip += o.PhysicalPackages
				}
			}
			continue
		}
		t.Scouts++
		t.Orders += len(s.Orders)
		if s.Totals.IsActive() {
			t.ActiveScouts++
		}
		if len(s.Totals.Shortfalls) > 0 {
			t.Shortfalls++
		}
		t.Sold += s.Totals.TotalSold
		t.CashCollected = t.CashCollected.Add(s.Totals.Finances.CashCollected)
		t.ElectronicPayments = t.ElectronicPayments.Add(s.Totals.Finances.ElectronicPayments)
		t.CashOwed = t.CashOwed.Add(s.Totals.Finances.CashOwed)
	}

	t.Proceeds = ComputeProceeds(t.Inbound+t.Donations+t.DirectShip, t.ActiveScouts, cfg)
	return t
}
