package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/troop"
	"github.com/google/subcommands"
)

type reconcileCmd struct {
	output string
	strict bool
}

func (*reconcileCmd) Name() string { return "reconcile" }
func (*reconcileCmd) Synopsis() string {
	return "fuses both platform exports into a reconciled dataset"
}
func (*reconcileCmd) Usage() string {
	return `cookies [-dc <orders.xlsx>] [-sc <smartcookies.json>] [-config <troop.yaml>] reconcile [-o <dataset.json>] [-strict]

  Imports the Digital Cookie order export and the Smart Cookies dump, and
  writes the reconciled dataset as JSON. The dataset fingerprint and the
  health check are printed on stderr.

Usage Examples:
# Writes the dataset to stdout.
$ cookies -dc orders.xlsx -sc smartcookies.json reconcile

# Fails when a record could not be classified or matched.
$ cookies reconcile -strict -o dataset.json

`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file for the dataset. Defaults to stdout.")
	f.BoolVar(&c.strict, "strict", false, "Exit with a failure when the health check is not clean.")
}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := writeOutput(c.output, func(w io.Writer) error { return encodeDataset(w, d) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing dataset: %v\n", err)
		return subcommands.ExitFailure
	}

	fingerprint, err := d.Fingerprint()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing fingerprint: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Dataset %s: %d scouts, %d orders, %d transfers, %d warnings.\n",
		fingerprint, d.Health.Scouts, d.Health.Orders, d.Health.Transfers, d.Health.Warnings)
	for _, w := range d.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if c.strict && !d.Health.OK() {
		fmt.Fprintf(os.Stderr, "Error: health check failed, run 'cookies health' for details.\n")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// encodeDataset writes the dataset as indented JSON.
func encodeDataset(w io.Writer, d *troop.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// writeOutput calls write on the named file, or on stdout for an empty name.
func writeOutput(name string, write func(io.Writer) error) error {
	if name == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
