package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/troop"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the troop totals: stock, sales channels and proceeds.
func SummaryMarkdown(d *troop.Dataset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	t := d.Troop

	doc.H1("Troop Summary")
	if !d.Season.IsZero() {
		doc.PlainTextf("Season %s, %d scouts (%d active), %d orders.", d.Season, t.Scouts, t.ActiveScouts, t.Orders)
	} else {
		doc.PlainTextf("%d scouts (%d active), %d orders.", t.Scouts, t.ActiveScouts, t.Orders)
	}
	doc.LF()

	doc.H2("Inventory")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Movement", "Packages"},
		Rows: [][]string{
			{"Received", strconv.Itoa(t.Inbound)},
			{"Returned by scouts", strconv.Itoa(t.Returns)},
			{"Out to scouts and allocations", strconv.Itoa(t.Outbound)},
			{md.Bold("Troop stock"), md.Bold(strconv.Itoa(t.NetInventory))},
		},
	})
	doc.LF()

	doc.H2("Sales")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Channel", "Allocations", "Packages", "Cookie Share"},
		Rows: [][]string{
			channelRow("Booth", t.Booth),
			channelRow("Direct ship", t.DirectShipAllocations),
			channelRow("Virtual booth", t.VirtualBooth),
			{"Site orders", strconv.Itoa(t.Site.Orders), strconv.Itoa(t.Site.Packages), strconv.Itoa(t.Site.Donations)},
		},
	})
	doc.PlainTextf("Scouts sold %d packages in total; the ledger records %d Cookie Share and %d direct-ship packages.",
		t.Sold, t.Donations, t.DirectShip)
	doc.LF()

	p := t.Proceeds
	doc.H2("Proceeds")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Value"},
		Rows: [][]string{
			{"Packages credited", strconv.Itoa(p.PackagesCredited)},
			{"Per-girl average", strconv.Itoa(p.PGA)},
			{"Rate", p.Rate.String()},
			{"Gross", p.Gross.String()},
			{fmt.Sprintf("Exemption (%d active scouts)", p.ActiveScouts), p.Exemption.Neg().String()},
			{md.Bold("Net"), md.Bold(p.Net.String())},
		},
	})
	doc.LF()

	doc.H2("Money")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Amount"},
		Rows: [][]string{
			{"Cash collected", t.CashCollected.String()},
			{"Electronic payments", t.ElectronicPayments.String()},
			{md.Bold("Cash owed by scouts"), md.Bold(t.CashOwed.String())},
		},
	})
	if t.Shortfalls > 0 {
		doc.LF()
		doc.PlainTextf("%d scout(s) sold more than they picked up.", t.Shortfalls)
	}

	return doc.String()
}

func channelRow(name string, c troop.ChannelTotals) []string {
	return []string{name, strconv.Itoa(c.Allocations), strconv.Itoa(c.Packages), strconv.Itoa(c.Donations)}
}
