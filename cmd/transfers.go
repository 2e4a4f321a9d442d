package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/troop/renderer"
	"github.com/google/subcommands"
)

type transfersCmd struct {
	details bool
}

func (*transfersCmd) Name() string     { return "transfers" }
func (*transfersCmd) Synopsis() string { return "display the ledger transfers by category" }
func (*transfersCmd) Usage() string {
	return `cookies transfers [-details]

  Displays the number of transfers and packages of each ledger category.
  With -details, lists every transfer.
`
}

func (c *transfersCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.details, "details", false, "List the transfers of each category.")
}

func (c *transfersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransfersMarkdown(d, c.details))
	return subcommands.ExitSuccess
}
