package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/troop/date"
	"github.com/etnz/troop/renderer"
	"github.com/google/subcommands"
)

type timelineCmd struct {
	period string
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "display the packages sold by day, week or month" }
func (*timelineCmd) Usage() string {
	return `cookies timeline [-p <period>]

  Displays the orders, packages and Cookie Share donations of each period of
  the season, with the running total of packages sold.
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "weekly", "Period: daily, weekly or monthly.")
}

func (c *timelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	d, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TimelineMarkdown(d, p))
	return subcommands.ExitSuccess
}
