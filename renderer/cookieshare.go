package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/troop"
	md "github.com/nao1215/markdown"
)

// CookieShareMarkdown compares the donations sold on the retail platform
// with the Cookie Share records of the ledger.
func CookieShareMarkdown(d *troop.Dataset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	c := d.CookieShare

	doc.H1("Cookie Share")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight},
		Header:    []string{"Retail", "Packages", "Ledger", "Packages"},
		Rows: [][]string{
			{"Synced automatically", strconv.Itoa(c.DCAuto), "Synced from retail", strconv.Itoa(c.SCSynced)},
			{"To enter by hand", strconv.Itoa(c.DCManual), "Entered by hand", strconv.Itoa(c.SCManual)},
			{md.Bold("Total"), md.Bold(strconv.Itoa(c.DCTotal)), "Booth dividers", strconv.Itoa(c.SCBooth)},
		},
	})
	doc.LF()

	if c.Reconciled {
		doc.PlainText("Manual Cookie Share entries are reconciled.")
	} else {
		doc.PlainTextf("Manual Cookie Share entries differ by %s packages.", md.Bold(signed(c.Difference)))
	}

	if len(c.Scouts) > 0 {
		doc.LF()
		doc.H2("By scout")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Scout", "Retail", "Ledger", "Difference"},
			Rows:      [][]string{},
		}
		for _, s := range c.Scouts {
			name := s.Scout
			if name == "" {
				name = "(unattributed)"
			}
			diff := ""
			if s.Difference != 0 {
				diff = md.Bold(signed(s.Difference))
			}
			table.Rows = append(table.Rows, []string{name, strconv.Itoa(s.DCManual), strconv.Itoa(s.SCManual), diff})
		}
		doc.Table(table)
	}

	return doc.String()
}
