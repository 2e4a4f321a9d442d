package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/troop"
	md "github.com/nao1215/markdown"
)

// VarietiesMarkdown renders sales and troop stock by variety.
func VarietiesMarkdown(d *troop.Dataset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	r := d.Varieties

	doc.H1("Varieties")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Variety", "Sold", "Troop Stock"},
		Rows:      [][]string{},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{string(row.Variety), strconv.Itoa(row.Sold), strconv.Itoa(row.TroopInventory)})
	}
	table.Rows = append(table.Rows,
		[]string{string(troop.CookieShare), strconv.Itoa(r.CookieShare), ""},
		[]string{md.Bold("Total"), md.Bold(strconv.Itoa(r.PhysicalSold + r.CookieShare)), md.Bold(strconv.Itoa(r.TroopInventory))},
	)
	doc.Table(table)

	return doc.String()
}
