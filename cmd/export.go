package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/troop/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
	html   bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write every report to a file" }
func (*exportCmd) Usage() string {
	return `cookies export -o <report.md> [-html]

  Writes every report, and the detailed report of each scout, to a markdown
  file. With -html, the file is an HTML page instead.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
	f.BoolVar(&c.html, "html", false, "Write HTML instead of markdown.")
}

const htmlPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
%s</body>
</html>
`

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString(renderer.ReportMarkdown(d))
	for _, s := range d.Scouts {
		if s.Totals.Orders == 0 && len(s.Allocations) == 0 && s.Inventory.Total == 0 {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(renderer.ScoutMarkdown(d, s.Name, renderer.ScoutRenderOptions{}))
	}
	content := b.String()

	if c.html {
		body, err := renderer.HTML(content)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		content = fmt.Sprintf(htmlPage, "Cookie sale report", body)
	}

	if err := writeOutput(c.output, func(w io.Writer) error {
		_, err := io.WriteString(w, content)
		return err
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
