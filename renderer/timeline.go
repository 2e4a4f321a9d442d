package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/troop"
	"github.com/etnz/troop/date"
	md "github.com/nao1215/markdown"
)

// TimelineMarkdown renders the sales of the season by period.
func TimelineMarkdown(d *troop.Dataset, p date.Period) string {
	points := troop.Timeline(d, p)
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1f("Sales, %s", p)
	if len(points) == 0 {
		doc.PlainText("No dated order.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Period", "Orders", "Packages", "Cookie Share", "Cumulative"},
		Rows:   [][]string{},
	}
	for _, pt := range points {
		table.Rows = append(table.Rows, []string{
			pt.Label,
			count(pt.Orders),
			count(pt.Packages),
			count(pt.Donations),
			strconv.Itoa(pt.Cumulative),
		})
	}
	doc.Table(table)
	return doc.String()
}
