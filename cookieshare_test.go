package troop

import "testing"

func TestReconcileCookieShare(t *testing.T) {
	cfg := testConfig()

	// scoutWithDonations returns a scout whose manual-entry donations total n.
	scoutWithDonations := func(n int) *Scout {
		s := newScout("Alice", "Smith", false)
		s.GirlID = 101
		s.Orders = []Order{
			{Number: "1", Type: Delivery, Payment: Cash, Donations: n - 1},
			{Number: "2", Type: Donation, Payment: Cash, Donations: 1},
			{Number: "3", Type: DirectShip, Payment: CreditCard, Donations: 2},
			{Number: "4", Type: Donation, Payment: CreditCard, Donations: 3},
		}
		return s
	}
	site := newScout("Troop 1234", "Site", true)
	site.Orders = []Order{{Number: "9", Type: Booth, Payment: Cash, Donations: 10}}

	ledger := func(manual int) []Transfer {
		return []Transfer{
			NewTransfer(SCTransfer{Type: "COOKIE_SHARE", OrderNumber: "CS-1", GirlID: 101, Cookies: cookies(37, manual)}, cfg, nil),
			NewTransfer(SCTransfer{Type: "COOKIE_SHARE", OrderNumber: "D2", Cookies: cookies(37, 2)}, cfg, nil),
			NewTransfer(SCTransfer{Type: "COOKIE_SHARE", OrderNumber: "B-1", BoothDivider: true, Cookies: cookies(37, 4)}, cfg, nil),
		}
	}

	t.Run("reconciled", func(t *testing.T) {
		r := ReconcileCookieShare([]*Scout{scoutWithDonations(5), site}, ledger(5), cfg)
		if r.DCTotal != 10 || r.DCAuto != 5 || r.DCManual != 5 {
			t.Errorf("DC = total %d, auto %d, manual %d, want 10, 5, 5", r.DCTotal, r.DCAuto, r.DCManual)
		}
		if r.SCManual != 5 || r.SCSynced != 2 || r.SCBooth != 4 {
			t.Errorf("SC = manual %d, synced %d, booth %d, want 5, 2, 4", r.SCManual, r.SCSynced, r.SCBooth)
		}
		if !r.Reconciled || r.Difference != 0 {
			t.Errorf("Reconciled = %v, Difference = %d", r.Reconciled, r.Difference)
		}
		want := CookieShareScout{Scout: "Alice Smith", DCManual: 5, SCManual: 5}
		if len(r.Scouts) != 1 || r.Scouts[0] != want {
			t.Errorf("Scouts = %+v, want %+v", r.Scouts, want)
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		r := ReconcileCookieShare([]*Scout{scoutWithDonations(5), site}, ledger(3), cfg)
		if r.DCManual != 5 || r.SCManual != 3 {
			t.Errorf("manual = %d vs %d, want 5 vs 3", r.DCManual, r.SCManual)
		}
		if r.Reconciled {
			t.Error("Reconciled = true, want false")
		}
		if r.Difference != 2 || r.Scouts[0].Difference != 2 {
			t.Errorf("Difference = %d, scout difference = %d, want 2", r.Difference, r.Scouts[0].Difference)
		}
	})

	t.Run("unmatched ledger entry", func(t *testing.T) {
		transfers := append(ledger(5), NewTransfer(SCTransfer{Type: "COOKIE_SHARE", Cookies: cookies(37, 1)}, cfg, nil))
		r := ReconcileCookieShare([]*Scout{scoutWithDonations(5)}, transfers, cfg)
		if len(r.Scouts) != 2 || r.Scouts[1].Scout != "" || r.Scouts[1].SCManual != 1 {
			t.Errorf("Scouts = %+v", r.Scouts)
		}
	})
}
