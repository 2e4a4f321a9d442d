package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/troop"
	md "github.com/nao1215/markdown"
)

var categoryTitles = map[troop.TransferCategory]string{
	troop.CouncilToTroop:         "Council to troop",
	troop.TroopOutgoing:          "Troop to troop",
	troop.GirlPickup:             "Scout pickups",
	troop.GirlReturn:             "Scout returns",
	troop.VirtualBoothAllocation: "Virtual booth allocations",
	troop.BoothSalesAllocation:   "Booth sales allocations",
	troop.DirectShipAllocation:   "Direct-ship allocations",
	troop.DCOrderRecord:          "Retail order records",
	troop.CookieShareRecord:      "Cookie Share records",
	troop.BoothCookieShare:       "Booth Cookie Share",
	troop.DirectShipRecord:       "Direct-ship records",
	troop.Planned:                "Planned",
}

func categoryTitle(c troop.TransferCategory) string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return string(c)
}

// TransfersMarkdown renders the ledger records by category. With details, each
// category lists its transfers.
func TransfersMarkdown(d *troop.Dataset, details bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transfers")
	overview := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Category", "Transfers", "Packages", "Physical"},
		Rows:      [][]string{},
	}
	for _, b := range d.Transfers {
		overview.Rows = append(overview.Rows, []string{
			categoryTitle(b.Category),
			strconv.Itoa(b.Count),
			strconv.Itoa(b.Packages),
			strconv.Itoa(b.PhysicalPackages),
		})
	}
	doc.Table(overview)

	if !details {
		return doc.String()
	}
	for _, b := range d.Transfers {
		doc.H2(categoryTitle(b.Category))
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Date", "Order", "From", "To", "Packages", "Varieties"},
			Rows:      [][]string{},
		}
		for _, t := range b.Transfers {
			table.Rows = append(table.Rows, []string{
				t.Date.String(),
				t.OrderNumber,
				t.From,
				t.To,
				strconv.Itoa(t.Packages),
				varieties(t.Varieties),
			})
		}
		doc.Table(table)
	}
	return doc.String()
}
