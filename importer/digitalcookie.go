// Package importer reads the exports of both cookie platforms into the raw
// records reconciled by package troop.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/troop"
	"github.com/xuri/excelize/v2"
)

// column is a field of the retail order export, known by one of its headers.
type column struct {
	name     string
	headers  []string
	required bool
}

var (
	colOrderNumber   = column{"order number", []string{"Order Number", "Order #"}, true}
	colFirstName     = column{"first name", []string{"Girl First Name", "First Name"}, true}
	colLastName      = column{"last name", []string{"Girl Last Name", "Last Name"}, true}
	colOrderDate     = column{"order date", []string{"Order Date (Central Time)", "Order Date"}, false}
	colOrderType     = column{"order type", []string{"Order Type"}, true}
	colTotalPackages = column{"total packages", []string{"Total Packages (Includes Donate & Gift)", "Total Packages"}, true}
	colRefunded      = column{"refunded packages", []string{"Refunded Packages"}, false}
	colAmount        = column{"sale amount", []string{"Current Sale Amount", "Current Subtotal"}, false}
	colOrderStatus   = column{"order status", []string{"Order Status"}, false}
	colPaymentStatus = column{"payment status", []string{"Payment Status"}, true}
	colShipStatus    = column{"ship status", []string{"Ship Status"}, false}
	colDonation      = column{"donation", []string{"Donation", "Donations"}, false}

	columns = []column{
		colOrderNumber, colFirstName, colLastName, colOrderDate, colOrderType, colTotalPackages,
		colRefunded, colAmount, colOrderStatus, colPaymentStatus, colShipStatus, colDonation,
	}
)

// header maps the columns of the export to their position.
type header struct {
	fields    map[string]int
	varieties map[troop.Variety]int
}

func newHeader(cells []string) (header, error) {
	h := header{fields: make(map[string]int), varieties: make(map[troop.Variety]int)}
	index := make(map[string]int, len(cells))
	for i, c := range cells {
		c = strings.TrimSpace(c)
		if _, dup := index[strings.ToLower(c)]; !dup {
			index[strings.ToLower(c)] = i
		}
	}

	var errs error
	for _, col := range columns {
		found := false
		for _, name := range col.headers {
			if i, ok := index[strings.ToLower(name)]; ok {
				h.fields[col.name] = i
				found = true
				break
			}
		}
		if !found && col.required {
			errs = errors.Join(errs, fmt.Errorf("missing column %q", col.headers[0]))
		}
	}

	known := make(map[int]bool, len(h.fields))
	for _, i := range h.fields {
		known[i] = true
	}
	for i, c := range cells {
		if known[i] {
			continue
		}
		v, err := troop.ParseVariety(c)
		if err != nil {
			continue
		}
		if _, dup := h.varieties[v]; !dup {
			h.varieties[v] = i
		}
	}
	return h, errs
}

func (h header) text(row []string, col column) string {
	i, ok := h.fields[col.name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellInt(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	// spreadsheets sometimes store counts as floats
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid package count %q", s)
	}
	return int(f), nil
}

func (h header) count(row []string, col column) (int, error) {
	n, err := cellInt(h.text(row, col))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", col.name, err)
	}
	return n, nil
}

// parseRow maps one data row. Counts that are not numbers make the whole
// export unreadable.
func (h header) parseRow(row []string) (troop.DCOrderRow, error) {
	r := troop.DCOrderRow{
		OrderNumber:       h.text(row, colOrderNumber),
		FirstName:         h.text(row, colFirstName),
		LastName:          h.text(row, colLastName),
		OrderDate:         h.text(row, colOrderDate),
		OrderType:         h.text(row, colOrderType),
		CurrentSaleAmount: h.text(row, colAmount),
		OrderStatus:       h.text(row, colOrderStatus),
		PaymentStatus:     h.text(row, colPaymentStatus),
		ShipStatus:        h.text(row, colShipStatus),
		Varieties:         make(troop.Varieties),
	}
	var errs, err error
	if r.TotalPackages, err = h.count(row, colTotalPackages); err != nil {
		errs = errors.Join(errs, err)
	}
	if r.RefundedPackages, err = h.count(row, colRefunded); err != nil {
		errs = errors.Join(errs, err)
	}
	if r.Donations, err = h.count(row, colDonation); err != nil {
		errs = errors.Join(errs, err)
	}
	_, hasDonation := h.fields[colDonation.name]
	for v, i := range h.varieties {
		if i >= len(row) {
			continue
		}
		n, err := cellInt(row[i])
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", v, err))
			continue
		}
		switch {
		case n == 0:
		case v == troop.CookieShare:
			// a "Cookie Share" column stands in for a missing donation column
			if !hasDonation {
				r.Donations += n
			}
		default:
			r.Varieties[v] = n
		}
	}
	return r, errs
}

func isRowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ParseDigitalCookieRows maps the rows of the order export, header first.
// Empty rows are skipped.
func ParseDigitalCookieRows(rows [][]string) ([]troop.DCOrderRow, error) {
	if len(rows) == 0 {
		return nil, errors.New("order export is empty")
	}
	h, err := newHeader(rows[0])
	if err != nil {
		return nil, fmt.Errorf("invalid order export header: %w", err)
	}
	out := make([]troop.DCOrderRow, 0, len(rows)-1)
	var errs error
	for i, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		r, err := h.parseRow(row)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("row %d: %w", i+2, err))
			continue
		}
		out = append(out, r)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// DigitalCookie is the content of a retail order export.
type DigitalCookie struct {
	Orders     []troop.DCOrderRow
	ExportedAt string // workbook modification time, when recorded
}

// ReadDigitalCookie reads the XLSX order export of the retail platform. Orders
// are on the first sheet, one row per order, with one column per variety.
func ReadDigitalCookie(r io.Reader) (DigitalCookie, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return DigitalCookie{}, fmt.Errorf("failed to open order export: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return DigitalCookie{}, errors.New("order export has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return DigitalCookie{}, fmt.Errorf("failed to read rows: %w", err)
	}
	orders, err := ParseDigitalCookieRows(rows)
	if err != nil {
		return DigitalCookie{}, err
	}

	dc := DigitalCookie{Orders: orders}
	if props, err := f.GetDocProps(); err == nil && props != nil {
		dc.ExportedAt = props.Modified
	}
	return dc, nil
}
