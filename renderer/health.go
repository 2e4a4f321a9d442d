package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/troop"
	md "github.com/nao1215/markdown"
)

// HealthMarkdown renders the data-quality check of a reconciliation pass and
// lists every warning.
func HealthMarkdown(d *troop.Dataset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	h := d.Health

	doc.H1("Health Check")
	if h.OK() {
		doc.PlainText("All records were classified and matched.")
	} else {
		doc.PlainTextf("%s need attention.", md.Bold(strconv.Itoa(h.Warnings)+" warning(s)"))
	}
	doc.LF()

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Check", "Count"},
		Rows: [][]string{
			{"Retail orders imported", strconv.Itoa(h.Orders)},
			{"Ledger transfers classified", strconv.Itoa(h.Transfers)},
			{"Scouts", strconv.Itoa(h.Scouts)},
			{"Orders without a scout", strconv.Itoa(h.UnmatchedOrders)},
			{"Duplicate orders", strconv.Itoa(h.DuplicateOrders)},
			{"Transfers without a scout", strconv.Itoa(h.UnmatchedTransfers)},
			{"Allocations without a scout", strconv.Itoa(h.UnmatchedAllocations)},
			{"Duplicate allocations", strconv.Itoa(h.DuplicateAllocations)},
		},
	})

	if len(h.WarningKinds) > 0 {
		doc.H2("Warnings")
		kinds := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Kind", "Count"},
			Rows:      [][]string{},
		}
		for _, k := range d.Warnings.Kinds() {
			kinds.Rows = append(kinds.Rows, []string{string(k), strconv.Itoa(h.WarningKinds[k])})
		}
		doc.Table(kinds)

		list := make([]string, 0, len(d.Warnings))
		for _, w := range d.Warnings {
			list = append(list, w.String())
		}
		doc.BulletList(list...)
	}

	if d.Metadata != (troop.Metadata{}) {
		doc.LF()
		doc.H2("Sources")
		m := d.Metadata
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
			Header:    []string{"Platform", "File", "Exported"},
			Rows: [][]string{
				{"Digital Cookie", m.DCSource, m.DCImportedAt},
				{"Smart Cookies", m.SCSource, m.SCImportedAt},
			},
		})
	}
	return doc.String()
}
