package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/troop/renderer"
	"github.com/google/subcommands"
)

type scoutsCmd struct {
	scout      string
	skipOrders bool
}

func (*scoutsCmd) Name() string     { return "scouts" }
func (*scoutsCmd) Synopsis() string { return "display what each scout sold, holds and owes" }
func (*scoutsCmd) Usage() string {
	return `cookies scouts [-s <scout name>] [-skip-orders]

  Without -s, displays one line per scout and the shortfalls of the troop.
  With -s, displays the detailed report of one scout: stock by variety,
  allocations, orders and the cash she owes.

Usage Examples:
$ cookies scouts -s "Alice Smith"

`
}

func (c *scoutsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scout, "s", "", "Scout to report on, as \"First Last\".")
	f.BoolVar(&c.skipOrders, "skip-orders", false, "Do not list the scout's orders.")
}

func (c *scoutsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.scout == "" {
		md := renderer.ScoutsMarkdown(d)
		if shortfalls := renderer.ShortfallsMarkdown(d); shortfalls != "" {
			md += "\n\n" + shortfalls
		}
		printMarkdown(md)
		return subcommands.ExitSuccess
	}

	md := renderer.ScoutMarkdown(d, c.scout, renderer.ScoutRenderOptions{SkipOrders: c.skipOrders})
	if md == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown scout %q\n", c.scout)
		return subcommands.ExitUsageError
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
