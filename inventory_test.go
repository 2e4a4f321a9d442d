package troop

import "testing"

func TestApplyInventory(t *testing.T) {
	cfg := testConfig()
	scouts := initializeScouts(nil, []SCScout{{GirlID: 7, FirstName: "Alice", LastName: "Smith"}}, cfg)
	transfers := []Transfer{
		NewTransfer(SCTransfer{Type: "T2G", From: "1234", To: "Alice Smith", Cookies: cookies(1, 6, 4, 4)}, cfg, nil),
		NewTransfer(SCTransfer{Type: "G2T", From: "Alice Smith", To: "1234", Cookies: cookies(1, 3)}, cfg, nil),
	}

	if unmatched := applyInventory(scouts, transfers); unmatched != 0 {
		t.Errorf("unmatched = %d, want 0", unmatched)
	}
	alice := scouts.lookup("Alice Smith", 0)
	if alice.Inventory.Total != 7 {
		t.Errorf("Total = %d, want 7", alice.Inventory.Total)
	}
	if got := alice.Inventory.Varieties[ThinMints]; got != 3 {
		t.Errorf("Thin Mints = %d, want 3", got)
	}
	if got := alice.Inventory.Varieties[Trefoils]; got != 4 {
		t.Errorf("Trefoils = %d, want 4", got)
	}
}

func TestApplyInventory_OnlyPickupsAndReturns(t *testing.T) {
	cfg := testConfig()
	scouts := initializeScouts(nil, []SCScout{{GirlID: 7, FirstName: "Alice", LastName: "Smith"}}, cfg)
	var transfers []Transfer
	for _, typ := range []SCTransfer{
		{Type: "T2G", To: "Alice Smith", GirlID: 7, VirtualBooth: true, Cookies: cookies(1, 2)},
		{Type: "T2G", To: "Alice Smith", GirlID: 7, BoothDivider: true, Cookies: cookies(1, 2)},
		{Type: "T2G", To: "Alice Smith", GirlID: 7, DirectShipDivider: true, Cookies: cookies(1, 2)},
		{Type: "C2T", To: "Alice Smith", Cookies: cookies(1, 2)},
		{Type: "T2G", To: "Alice Smith", GirlID: 7, Cookies: cookies(37, 2)},
	} {
		transfers = append(transfers, NewTransfer(typ, cfg, nil))
	}
	applyInventory(scouts, transfers)

	if got := scouts.lookup("", 7).Inventory.Total; got != 0 {
		t.Errorf("Total = %d, want 0", got)
	}
}

func TestComputeScoutTotals_Shortfall(t *testing.T) {
	scout := newScout("Alice", "Smith", false)
	scout.Inventory.add(Varieties{ThinMints: 2, Trefoils: 5})
	scout.Orders = []Order{{
		Owner:            OwnerGirl,
		Type:             Delivery,
		Payment:          Cash,
		Packages:         5,
		PhysicalPackages: 5,
		Amount:           USD(30),
		Varieties:        Varieties{ThinMints: 5},
	}}

	got := computeScoutTotals(scout, DefaultConfig())
	// the Thin Mints shortfall does not eat into the Trefoils on hand
	if got.Inventory != 5 {
		t.Errorf("Inventory = %d, want 5", got.Inventory)
	}
	if len(got.Shortfalls) != 1 {
		t.Fatalf("Shortfalls = %v, want one", got.Shortfalls)
	}
	want := Shortfall{Variety: ThinMints, Inventory: 2, Sales: 5, Shortfall: 3}
	if got.Shortfalls[0] != want {
		t.Errorf("Shortfall = %+v, want %+v", got.Shortfalls[0], want)
	}
	// $30 cash + $42 picked up - $30 sold
	if want := USD(42); !got.Finances.CashOwed.Equal(want) {
		t.Errorf("CashOwed = %v, want %v", got.Finances.CashOwed, want)
	}
}

func TestComputeScoutTotals_Oversold(t *testing.T) {
	scout := newScout("Alice", "Smith", false)
	scout.Inventory.add(Varieties{ThinMints: 5})
	scout.Orders = []Order{{
		Owner:            OwnerGirl,
		Type:             Delivery,
		Payment:          Cash,
		Packages:         10,
		PhysicalPackages: 10,
		Amount:           USD(60),
		Varieties:        Varieties{ThinMints: 10},
	}}

	got := computeScoutTotals(scout, DefaultConfig())
	f := got.Finances
	if len(got.Shortfalls) != 1 || got.Shortfalls[0].Shortfall != 5 {
		t.Errorf("Shortfalls = %+v, want 5 Thin Mints", got.Shortfalls)
	}
	if !f.UnsoldValue.IsZero() {
		t.Errorf("UnsoldValue = %v, want $0.00", f.UnsoldValue)
	}
	// every dollar collected is turned in
	if want := USD(60); !f.CashOwed.Equal(want) {
		t.Errorf("CashOwed = %v, want %v", f.CashOwed, want)
	}
}

func TestComputeScoutTotals_UnknownPayment(t *testing.T) {
	scout := newScout("Alice", "Smith", false)
	scout.Inventory.add(Varieties{ThinMints: 4})
	scout.Orders = []Order{{
		Owner:            OwnerGirl,
		Type:             Delivery,
		Packages:         4,
		PhysicalPackages: 4,
		Amount:           USD(24),
		Varieties:        Varieties{ThinMints: 4},
	}}

	got := computeScoutTotals(scout, DefaultConfig())
	f := got.Finances
	if f.UnknownPayments != 1 {
		t.Errorf("UnknownPayments = %d, want 1", f.UnknownPayments)
	}
	if !f.CashCollected.IsZero() || !f.ElectronicPayments.IsZero() || !f.SoldValue.IsZero() {
		t.Errorf("Finances = %+v, an unknown payment counts nowhere", f)
	}
	if want := USD(24); !f.CashOwed.Equal(want) {
		t.Errorf("CashOwed = %v, want %v", f.CashOwed, want)
	}
}
