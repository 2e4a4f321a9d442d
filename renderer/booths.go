package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/troop"
	md "github.com/nao1215/markdown"
)

// BoothsMarkdown renders booth reservations with the packages their dividers
// credited to scouts. It is empty when the troop held no booth.
func BoothsMarkdown(d *troop.Dataset) string {
	if len(d.Booths) == 0 {
		return ""
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Booths")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Time", "Store", "Scouts", "Packages", "Cookie Share"},
		Rows:   [][]string{},
	}
	var packages, donations int
	for _, b := range d.Booths {
		r := b.Reservation
		store := r.StoreName
		if store == "" {
			store = r.ReservationID
		}
		table.Rows = append(table.Rows, []string{
			r.Date,
			r.TimeSlot,
			store,
			count(b.Allocations),
			count(b.Packages),
			count(b.Donations),
		})
		packages += b.Packages
		donations += b.Donations
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", "", "",
		md.Bold(strconv.Itoa(packages)),
		md.Bold(strconv.Itoa(donations)),
	})
	doc.Table(table)
	return doc.String()
}
