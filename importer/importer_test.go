package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/troop"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []any{
	"Order Number", "Girl First Name", "Girl Last Name", "Order Date (Central Time)", "Order Type",
	"Total Packages (Includes Donate & Gift)", "Refunded Packages", "Current Sale Amount",
	"Order Status", "Payment Status", "Ship Status", "Donation", "Thin Mints", "Do-Si-Dos", "Caramel deLites",
}

// workbook builds an order export with the given rows under exportHeader.
func workbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range append([][]any{exportHeader}, rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow() error = %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() error = %v", err)
	}
	return buf.Bytes()
}

func TestReadDigitalCookie(t *testing.T) {
	data := workbook(t,
		[]any{"1001", "Alice", "Smith", "01/20/2025 10:00 AM", "In-Person Delivery", 5, 0, "$30.00", "Completed", "CASH", "", 1, 3, 1, 0},
		[]any{},
		[]any{"1002", "Bea", "Jones", "01/22/2025", "Shipped", "2", "", "$12.00", "Shipped", "CAPTURED", "Shipped", "", "", "", "2"},
	)

	dc, err := ReadDigitalCookie(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadDigitalCookie() error = %v", err)
	}
	want := []troop.DCOrderRow{
		{
			OrderNumber: "1001", FirstName: "Alice", LastName: "Smith", OrderDate: "01/20/2025 10:00 AM",
			OrderType: "In-Person Delivery", TotalPackages: 5, CurrentSaleAmount: "$30.00",
			OrderStatus: "Completed", PaymentStatus: "CASH", Donations: 1,
			Varieties: troop.Varieties{troop.ThinMints: 3, troop.DoSiDos: 1},
		},
		{
			OrderNumber: "1002", FirstName: "Bea", LastName: "Jones", OrderDate: "01/22/2025",
			OrderType: "Shipped", TotalPackages: 2, CurrentSaleAmount: "$12.00",
			OrderStatus: "Shipped", PaymentStatus: "CAPTURED", ShipStatus: "Shipped",
			Varieties: troop.Varieties{troop.Samoas: 2},
		},
	}
	if diff := cmp.Diff(want, dc.Orders); diff != "" {
		t.Errorf("ReadDigitalCookie() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDigitalCookieRows_Errors(t *testing.T) {
	t.Run("missing columns", func(t *testing.T) {
		_, err := ParseDigitalCookieRows([][]string{{"Order Number", "Girl First Name"}})
		if err == nil {
			t.Fatal("expected an error")
		}
		for _, want := range []string{"Girl Last Name", "Order Type", "Payment Status"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q does not mention %q", err, want)
			}
		}
	})

	t.Run("bad count", func(t *testing.T) {
		rows := [][]string{
			{"Order Number", "Girl First Name", "Girl Last Name", "Order Type", "Total Packages", "Payment Status"},
			{"1", "Alice", "Smith", "Shipped", "many", "CAPTURED"},
		}
		_, err := ParseDigitalCookieRows(rows)
		if err == nil || !strings.Contains(err.Error(), "row 2") {
			t.Errorf("error = %v, want a row 2 error", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := ParseDigitalCookieRows(nil); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestParseDigitalCookieRows_CookieShareColumn(t *testing.T) {
	rows := [][]string{
		{"Order Number", "Girl First Name", "Girl Last Name", "Order Type", "Total Packages", "Payment Status", "Cookie Share"},
		{"1", "Alice", "Smith", "Donation", "2", "CAPTURED", "2"},
	}
	got, err := ParseDigitalCookieRows(rows)
	if err != nil {
		t.Fatalf("ParseDigitalCookieRows() error = %v", err)
	}
	if got[0].Donations != 2 || len(got[0].Varieties) != 0 {
		t.Errorf("got %+v, want 2 donations", got[0])
	}
}

const dump = `{
	"exportedAt": "2025-03-01T08:00:00Z",
	"transfers": [
		{"type": "C2T", "orderNumber": "C-1", "date": "2025-01-10", "from": "Council", "to": "1234",
		 "cookies": [{"id": 1, "quantity": 50}]},
		{"type": "T2G", "orderNumber": "P-1", "date": "2025-01-12", "from": "1234", "to": "Alice Smith",
		 "girlId": 101, "cookies": [{"id": 1, "quantity": 6}]}
	],
	"scouts": [{"girlId": 101, "firstName": "Alice", "lastName": "Smith"}],
	"boothDividers": [{"reservationId": "R-1", "storeName": "Grocery", "date": "2025-02-15",
		"girls": [{"girlId": 101, "cookies": [{"id": 1, "quantity": 4}]}]}],
	"directShipDivider": {"girls": [{"girlId": 101, "cookies": [{"id": 2, "quantity": 1}]}]}
}`

func TestDecodeSmartCookies(t *testing.T) {
	sc, err := DecodeSmartCookies(strings.NewReader(dump), DefaultPaths())
	if err != nil {
		t.Fatalf("DecodeSmartCookies() error = %v", err)
	}
	if len(sc.Transfers) != 2 || sc.Transfers[1].GirlID != 101 || sc.Transfers[1].Cookies[0].Quantity != 6 {
		t.Errorf("Transfers = %+v", sc.Transfers)
	}
	if len(sc.Scouts) != 1 || sc.Scouts[0].Name() != "Alice Smith" {
		t.Errorf("Scouts = %+v", sc.Scouts)
	}
	if len(sc.BoothDividers) != 1 || sc.BoothDividers[0].ReservationID != "R-1" {
		t.Errorf("BoothDividers = %+v", sc.BoothDividers)
	}
	if sc.DirectShipDivider == nil || len(sc.DirectShipDivider.Girls) != 1 {
		t.Errorf("DirectShipDivider = %+v", sc.DirectShipDivider)
	}
	if sc.Reservations != nil {
		t.Errorf("Reservations = %+v, want none", sc.Reservations)
	}
	if sc.ExportedAt != "2025-03-01T08:00:00Z" {
		t.Errorf("ExportedAt = %q", sc.ExportedAt)
	}
}

func TestDecodeSmartCookies_Paths(t *testing.T) {
	const nested = `{"data": {"troop": {"movements": [{"type": "G2T", "cookies": [{"id": 1, "quantity": 1}]}]}}}`
	paths := Paths{Transfers: "$.data.troop.movements"}
	sc, err := DecodeSmartCookies(strings.NewReader(nested), paths)
	if err != nil {
		t.Fatalf("DecodeSmartCookies() error = %v", err)
	}
	if len(sc.Transfers) != 1 || sc.Transfers[0].Type != "G2T" {
		t.Errorf("Transfers = %+v", sc.Transfers)
	}

	if _, err := DecodeSmartCookies(strings.NewReader(nested), DefaultPaths()); err == nil {
		t.Error("expected an error without transfers")
	}
	if _, err := DecodeSmartCookies(strings.NewReader(`{"transfers": 12}`), DefaultPaths()); err == nil {
		t.Error("expected an error on malformed transfers")
	}

	bad := DefaultPaths()
	bad.Transfers = "$.transfers["
	_, err = DecodeSmartCookies(strings.NewReader(dump), bad)
	if err == nil || !strings.Contains(err.Error(), "invalid path") {
		t.Errorf("DecodeSmartCookies() with a malformed path error = %v, want an invalid path error", err)
	}
}

func TestLoadState(t *testing.T) {
	dir := t.TempDir()
	dcPath := filepath.Join(dir, "orders.xlsx")
	scPath := filepath.Join(dir, "smartcookies.json")
	if err := os.WriteFile(dcPath, workbook(t,
		[]any{"1001", "Alice", "Smith", "01/20/2025", "In-Person Delivery", 3, 0, "$18.00", "Completed", "CASH", "", 0, 3, 0, 0},
	), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(scPath, []byte(dump), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := LoadState(dcPath, scPath, DefaultPaths())
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if len(state.Orders) != 1 || len(state.Transfers) != 2 || len(state.Scouts) != 1 {
		t.Errorf("state = %d orders, %d transfers, %d scouts", len(state.Orders), len(state.Transfers), len(state.Scouts))
	}
	if state.Metadata.DCSource != "orders.xlsx" || state.Metadata.SCSource != "smartcookies.json" {
		t.Errorf("Metadata = %+v", state.Metadata)
	}
	if state.Metadata.SCImportedAt != "2025-03-01T08:00:00Z" {
		t.Errorf("SCImportedAt = %q", state.Metadata.SCImportedAt)
	}

	d := troop.Build(state, troop.DefaultConfig())
	if alice := d.Scout("Alice Smith"); alice == nil || alice.Inventory.Total != 6 || alice.Totals.Delivered != 3 {
		t.Errorf("Alice = %+v", alice)
	}

	if _, err := LoadState("", "", DefaultPaths()); err == nil {
		t.Error("LoadState() without exports expected an error")
	}
	if _, err := LoadState(filepath.Join(dir, "missing.xlsx"), "", DefaultPaths()); err == nil {
		t.Error("LoadState() of a missing file expected an error")
	}
}
