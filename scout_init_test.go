package troop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInitializeScouts(t *testing.T) {
	cfg := testConfig()
	rows := []DCOrderRow{
		{FirstName: "Bea", LastName: "Jones"},
		{FirstName: "Alice ", LastName: " Smith"},
		{FirstName: "Troop 1234", LastName: "SITE"},
		{FirstName: "", LastName: ""},
	}
	records := []SCScout{
		{GirlID: 101, FirstName: "Alice", LastName: "Smith"},
		{GirlID: 103, FirstName: "Cleo", LastName: "Park"},
	}
	s := initializeScouts(rows, records, cfg)

	var got []string
	for _, scout := range s.sorted() {
		got = append(got, scout.Name)
	}
	want := []string{"Alice Smith", "Bea Jones", "Cleo Park", "Troop 1234 SITE"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scouts mismatch (-want +got):\n%s", diff)
	}

	if alice := s.lookup("", 101); alice == nil || alice.Name != "Alice Smith" {
		t.Errorf("lookup by identifier = %v", alice)
	}
	if s.byName["Alice Smith"].GirlID != 101 {
		t.Error("the ledger identifier was not backfilled")
	}
	if s.byName["Bea Jones"].GirlID != 0 {
		t.Error("Bea Jones is unknown to the ledger")
	}
	if !s.byName["Troop 1234 SITE"].IsSite {
		t.Error("the site row did not create the site pseudo-scout")
	}
	if site := s.site(cfg); site.Name != "Troop 1234 SITE" {
		t.Errorf("site() = %q, want the existing site", site.Name)
	}
}

func TestImportOrders(t *testing.T) {
	cfg := testConfig()
	rows := []DCOrderRow{
		{OrderNumber: "1", FirstName: "Alice", LastName: "Smith", OrderType: "Shipped", PaymentStatus: "CAPTURED"},
		{OrderNumber: "1", FirstName: "Alice", LastName: "Smith", OrderType: "Shipped", PaymentStatus: "CAPTURED"},
		{OrderNumber: "2", FirstName: "Troop 1234", LastName: "Site", OrderType: "Cookies in Hand", PaymentStatus: "CASH"},
		{OrderNumber: "2", FirstName: "Troop 1234", LastName: "Site", OrderType: "Cookies in Hand", PaymentStatus: "CASH"},
	}
	s := initializeScouts(rows, nil, cfg)
	unmatched, duplicates := importOrders(s, append(rows, DCOrderRow{OrderNumber: "3", FirstName: "Nobody"}), nil)

	if unmatched != 1 || duplicates != 1 {
		t.Errorf("unmatched %d, duplicates %d, want 1, 1", unmatched, duplicates)
	}
	if got := len(s.byName["Alice Smith"].Orders); got != 1 {
		t.Errorf("Alice has %d orders, want 1", got)
	}
	// order numbers are only unique for real scouts
	if got := len(s.byName["Troop 1234 Site"].Orders); got != 2 {
		t.Errorf("site has %d orders, want 2", got)
	}
}
