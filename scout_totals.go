package troop

// Shortfall is a variety a scout sold more of than she picked up.
type Shortfall struct {
	Variety   Variety `json:"variety"`
	Inventory int     `json:"inventory"`
	Sales     int     `json:"sales"`
	Shortfall int     `json:"shortfall"`
}

// Credit splits a scout's credited packages by allocation channel.
type Credit struct {
	Booth        int `json:"booth"`
	DirectShip   int `json:"directShip"`
	VirtualBooth int `json:"virtualBooth"`
}

// Finances tracks the money a scout handled.
//
// All cash must be turned in, whatever the order type. Electronic payments
// were collected by the platform and only matter for orders filled from the
// scout's stock: they pay for inventory she no longer holds.
type Finances struct {
	CashCollected      Money `json:"cashCollected"`
	ElectronicPayments Money `json:"electronicPayments"` // on inventory orders only
	InventoryValue     Money `json:"inventoryValue"`     // value of packages picked up, net of returns
	SoldValue          Money `json:"soldValue"`          // value of inventory orders paid through either channel
	UnsoldValue        Money `json:"unsoldValue"`        // InventoryValue - SoldValue, never negative
	CashOwed           Money `json:"cashOwed"`           // CashCollected + UnsoldValue
	// UnknownPayments counts inventory orders whose payment method is unknown;
	// their packages stay in UnsoldValue.
	UnknownPayments int `json:"unknownPayments"`
}

// StatusCounts counts a scout's orders by follow-up status.
type StatusCounts struct {
	NeedsApproval int `json:"needsApproval"`
	Pending       int `json:"pending"`
	Completed     int `json:"completed"`
}

// ScoutTotals is derived from a scout's orders, allocations and inventory.
// It is recomputed on every build.
type ScoutTotals struct {
	Orders    int `json:"orders"`
	Delivered int `json:"delivered"` // physical packages of inventory orders
	Shipped   int `json:"shipped"`   // physical packages of scout direct-ship orders
	Donations int `json:"donations"` // Cookie Share of orders
	Credited  int `json:"credited"`  // allocations, packages and donations
	TotalSold int `json:"totalSold"`

	// SalesFromInventory is, per variety, what inventory orders drew from stock.
	SalesFromInventory Varieties `json:"salesFromInventory"`
	// OnHand is, per variety, inventory minus sales, clamped at zero.
	OnHand     Varieties   `json:"onHand"`
	Inventory  int         `json:"inventory"` // sum of OnHand
	Shortfalls []Shortfall `json:"shortfalls"`

	Credit   Credit       `json:"credit"`
	Finances Finances     `json:"finances"`
	Status   StatusCounts `json:"status"`
}

// IsActive reports whether the scout sold anything.
func (t ScoutTotals) IsActive() bool { return t.TotalSold > 0 }

// computeScoutTotals derives the totals of one scout.
func computeScoutTotals(scout *Scout, cfg Config) ScoutTotals {
	t := ScoutTotals{
		Orders:             len(scout.Orders),
		SalesFromInventory: make(Varieties),
		OnHand:             make(Varieties),
		Shortfalls:         []Shortfall{},
	}
	var f Finances

	for _, o := range scout.Orders {
		switch o.StatusGroup() {
		case StatusNeedsApproval:
			t.Status.NeedsApproval++
		case StatusCompleted:
			t.Status.Completed++
		default:
			t.Status.Pending++
		}

		t.Donations += o.Donations
		switch {
		case o.NeedsInventory():
			t.Delivered += o.PhysicalPackages
			t.SalesFromInventory.Add(o.Varieties.Physical())
		case o.Owner == OwnerGirl && o.Type == DirectShip:
			t.Shipped += o.PhysicalPackages
		}

		if o.Payment == Cash {
			f.CashCollected = f.CashCollected.Add(o.Amount)
		}
		if !o.NeedsInventory() {
			continue
		}
		switch {
		case o.Payment == "":
			f.UnknownPayments++
		case o.Payment.IsElectronic():
			f.ElectronicPayments = f.ElectronicPayments.Add(o.Amount)
			f.SoldValue = f.SoldValue.Add(cfg.Value(o.Varieties))
		default:
			f.SoldValue = f.SoldValue.Add(cfg.Value(o.Varieties))
		}
	}

	for _, a := range scout.Allocations {
		t.Credited += a.Credited()
		switch a.Channel {
		case ChannelBooth:
			t.Credit.Booth += a.Credited()
		case ChannelDirectShip:
			t.Credit.DirectShip += a.Credited()
		case ChannelVirtualBooth:
			t.Credit.VirtualBooth += a.Credited()
		}
	}
	t.TotalSold = t.Delivered + t.Shipped + t.Donations + t.Credited

	// net per variety, clamped before summing so that one oversold variety
	// does not hide the stock of another.
	inventory := scout.Inventory.Varieties
	for _, v := range sortVarieties(map[Variety]int(inventory), map[Variety]int(t.SalesFromInventory)) {
		net := inventory[v] - t.SalesFromInventory[v]
		if net < 0 {
			t.Shortfalls = append(t.Shortfalls, Shortfall{
				Variety:   v,
				Inventory: inventory[v],
				Sales:     t.SalesFromInventory[v],
				Shortfall: -net,
			})
			continue
		}
		if net > 0 {
			t.OnHand[v] = net
		}
	}
	t.Inventory = t.OnHand.Total(true)

	f.InventoryValue = cfg.Value(inventory)
	// oversold packages are reported as shortfalls, they never offset cash
	f.UnsoldValue = f.InventoryValue.Sub(f.SoldValue).NonNegative()
	f.CashOwed = f.CashCollected.Add(f.UnsoldValue)
	t.Finances = f
	return t
}
