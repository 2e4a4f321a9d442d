package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/troop"
	"github.com/etnz/troop/renderer"
	"github.com/google/subcommands"
)

// markdownCmd is a report command without flags of its own: it reconciles the
// exports and prints one markdown report.
type markdownCmd struct {
	name, synopsis, usage string
	render                func(*troop.Dataset) string
}

func (c *markdownCmd) Name() string     { return c.name }
func (c *markdownCmd) Synopsis() string { return c.synopsis }
func (c *markdownCmd) Usage() string    { return c.usage }

func (c *markdownCmd) SetFlags(f *flag.FlagSet) {}

func (c *markdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	md := c.render(d)
	if md == "" {
		fmt.Fprintf(os.Stderr, "Nothing to report.\n")
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

func summaryCmd() *markdownCmd {
	return &markdownCmd{
		name:     "summary",
		synopsis: "display the troop inventory, sales and proceeds",
		usage: `cookies summary

  Displays the troop totals: stock received and handed out, sales by channel,
  troop proceeds and the cash scouts owe.
`,
		render: renderer.SummaryMarkdown,
	}
}

func varietiesCmd() *markdownCmd {
	return &markdownCmd{
		name:     "varieties",
		synopsis: "display sales and troop stock by variety",
		usage: `cookies varieties

  Displays, for each variety, the packages sold by scouts and the packages
  still held by the troop.
`,
		render: renderer.VarietiesMarkdown,
	}
}

func cookieShareCmd() *markdownCmd {
	return &markdownCmd{
		name:     "cookieshare",
		synopsis: "compare Cookie Share donations across both platforms",
		usage: `cookies cookieshare

  Compares the donations that must be entered by hand in Smart Cookies with
  the Cookie Share records actually entered, in total and by scout.
`,
		render: renderer.CookieShareMarkdown,
	}
}

func boothsCmd() *markdownCmd {
	return &markdownCmd{
		name:     "booths",
		synopsis: "display booth reservations and their sales",
		usage: `cookies booths

  Displays booth reservations with the packages credited to scouts by their
  booth divider.
`,
		render: renderer.BoothsMarkdown,
	}
}

func healthCmd() *markdownCmd {
	return &markdownCmd{
		name:     "health",
		synopsis: "display the data-quality check of the exports",
		usage: `cookies health

  Lists the records that could not be matched to a scout, the duplicates that
  were dropped, and every value that could not be classified.
`,
		render: renderer.HealthMarkdown,
	}
}

func reportCmd() *markdownCmd {
	return &markdownCmd{
		name:     "report",
		synopsis: "display every report",
		usage: `cookies report

  Displays the summary, scouts, shortfalls, varieties, Cookie Share, booths,
  transfers and health reports one after the other.
`,
		render: renderer.ReportMarkdown,
	}
}
