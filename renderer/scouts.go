package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/troop"
	md "github.com/nao1215/markdown"
)

// ScoutsMarkdown renders one line per scout: what she sold, what she holds
// and the cash she owes. Scouts that did nothing are left out.
func ScoutsMarkdown(d *troop.Dataset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Scouts")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Scout", "Orders", "Delivered", "Shipped", "Cookie Share", "Credited", "Sold", "On Hand", "Cash Owed"},
		Rows:   [][]string{},
	}
	for _, s := range d.Scouts {
		t := s.Totals
		if t.Orders == 0 && len(s.Allocations) == 0 && s.Inventory.Total == 0 {
			continue
		}
		name := s.Name
		if len(t.Shortfalls) > 0 {
			name += " (short)"
		}
		table.Rows = append(table.Rows, []string{
			name,
			strconv.Itoa(t.Orders),
			count(t.Delivered),
			count(t.Shipped),
			count(t.Donations),
			count(t.Credited),
			strconv.Itoa(t.TotalSold),
			count(t.Inventory),
			t.Finances.CashOwed.String(),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Troop"),
		md.Bold(strconv.Itoa(d.Troop.Orders)),
		"", "", "", "",
		md.Bold(strconv.Itoa(d.Troop.Sold)),
		"",
		md.Bold(d.Troop.CashOwed.String()),
	})
	doc.Table(table)

	return doc.String()
}

// ShortfallsMarkdown lists the varieties scouts sold without having picked
// them up. It is empty when every sale is covered by stock.
func ShortfallsMarkdown(d *troop.Dataset) string {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Scout", "Variety", "Picked Up", "Sold", "Shortfall"},
		Rows:      [][]string{},
	}
	for _, s := range d.Scouts {
		for _, sf := range s.Totals.Shortfalls {
			table.Rows = append(table.Rows, []string{
				s.Name,
				string(sf.Variety),
				strconv.Itoa(sf.Inventory),
				strconv.Itoa(sf.Sales),
				md.Bold(strconv.Itoa(sf.Shortfall)),
			})
		}
	}
	if len(table.Rows) == 0 {
		return ""
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Shortfalls")
	doc.PlainText("These scouts need a pickup recorded, or a sale corrected.")
	doc.LF()
	doc.Table(table)
	return doc.String()
}
