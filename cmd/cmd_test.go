package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/xuri/excelize/v2"
)

const smartCookiesDump = `{
	"transfers": [
		{"type": "C2T", "orderNumber": "C-1", "date": "2025-01-10", "from": "Council", "to": "1234",
		 "cookies": [{"id": 1, "quantity": 24}]},
		{"type": "T2G", "orderNumber": "P-1", "date": "2025-01-12", "from": "1234", "to": "Alice Smith",
		 "girlId": 101, "cookies": [{"id": 1, "quantity": 6}]}
	],
	"scouts": [{"girlId": 101, "firstName": "Alice", "lastName": "Smith"}]
}`

// withExports writes a pair of exports and points the global flags at them.
func withExports(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Order Number", "Girl First Name", "Girl Last Name", "Order Date (Central Time)", "Order Type",
			"Total Packages (Includes Donate & Gift)", "Current Sale Amount", "Payment Status", "Thin Mints"},
		{"1001", "Alice", "Smith", "01/20/2025", "In-Person Delivery", 4, "$24.00", "CASH", 4},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	dc := filepath.Join(dir, "orders.xlsx")
	if err := f.SaveAs(dc); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	sc := filepath.Join(dir, "smartcookies.json")
	if err := os.WriteFile(sc, []byte(smartCookiesDump), 0o644); err != nil {
		t.Fatal(err)
	}

	*dcFile, *scFile = dc, sc
	t.Cleanup(func() { *dcFile, *scFile = "", "" })
	return dir
}

func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%q) error = %v", args, err)
	}
	return c.Execute(context.Background(), fs)
}

func TestReconcileCmd(t *testing.T) {
	dir := withExports(t)
	out := filepath.Join(dir, "dataset.json")

	if status := execute(t, &reconcileCmd{}, "-o", out, "-strict"); status != subcommands.ExitSuccess {
		t.Fatalf("reconcile exited with %v", status)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Scouts []struct {
			Name   string `json:"name"`
			Totals struct {
				Delivered int `json:"delivered"`
				Inventory int `json:"inventory"`
			} `json:"totals"`
		} `json:"scouts"`
		Metadata struct {
			DCSource string `json:"dcSource"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("dataset is not JSON: %v", err)
	}
	if len(got.Scouts) != 1 || got.Scouts[0].Name != "Alice Smith" {
		t.Fatalf("scouts = %+v", got.Scouts)
	}
	if s := got.Scouts[0]; s.Totals.Delivered != 4 || s.Totals.Inventory != 2 {
		t.Errorf("Alice totals = %+v, want 4 delivered, 2 on hand", s.Totals)
	}
	if got.Metadata.DCSource != "orders.xlsx" {
		t.Errorf("DCSource = %q", got.Metadata.DCSource)
	}

	// the same exports always give the same dataset.
	again := filepath.Join(dir, "again.json")
	if status := execute(t, &reconcileCmd{}, "-o", again); status != subcommands.ExitSuccess {
		t.Fatalf("reconcile exited with %v", status)
	}
	if data2, _ := os.ReadFile(again); string(data2) != string(data) {
		t.Error("two passes over the same exports differ")
	}
}

func TestReconcileCmd_MissingExports(t *testing.T) {
	*dcFile, *scFile = "", ""
	t.Setenv(EnvDCFile, "")
	t.Setenv(EnvSCFile, "")
	if status := execute(t, &reconcileCmd{}); status != subcommands.ExitFailure {
		t.Errorf("reconcile without exports exited with %v", status)
	}
}

func TestEnvDefaults(t *testing.T) {
	*dcFile = ""
	t.Setenv(EnvDCFile, "from-env.xlsx")
	if got := DCFile(); got != "from-env.xlsx" {
		t.Errorf("DCFile() = %q, want the environment value", got)
	}
	*dcFile = "from-flag.xlsx"
	t.Cleanup(func() { *dcFile = "" })
	if got := DCFile(); got != "from-flag.xlsx" {
		t.Errorf("DCFile() = %q, want the flag value", got)
	}
}

func TestExportCmd(t *testing.T) {
	dir := withExports(t)

	md := filepath.Join(dir, "report.md")
	if status := execute(t, &exportCmd{}, "-o", md); status != subcommands.ExitSuccess {
		t.Fatalf("export exited with %v", status)
	}
	data, err := os.ReadFile(md)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Troop Summary", "# Scouts", "# Alice Smith", "# Health Check"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("report does not contain %q", want)
		}
	}

	html := filepath.Join(dir, "report.html")
	if status := execute(t, &exportCmd{}, "-o", html, "-html"); status != subcommands.ExitSuccess {
		t.Fatalf("export -html exited with %v", status)
	}
	data, err = os.ReadFile(html)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") || !strings.Contains(string(data), "<h1>Troop Summary</h1>") {
		t.Errorf("unexpected HTML report:\n%s", data)
	}
}

func TestReportCmds(t *testing.T) {
	withExports(t)
	for _, c := range []subcommands.Command{
		summaryCmd(), varietiesCmd(), cookieShareCmd(), boothsCmd(), healthCmd(), reportCmd(),
		&scoutsCmd{}, &transfersCmd{}, &timelineCmd{period: "weekly"},
	} {
		t.Run(c.Name(), func(t *testing.T) {
			out := captureStdout(t, func() {
				if status := execute(t, c); status != subcommands.ExitSuccess {
					t.Errorf("%s exited with %v", c.Name(), status)
				}
			})
			if c.Name() != "booths" && out == "" {
				t.Errorf("%s printed nothing", c.Name())
			}
		})
	}

	if status := execute(t, &scoutsCmd{}, "-s", "Nobody"); status != subcommands.ExitUsageError {
		t.Errorf("scouts -s Nobody exited with %v", status)
	}
	if status := execute(t, &timelineCmd{}, "-p", "yearly"); status != subcommands.ExitUsageError {
		t.Errorf("timeline -p yearly exited with %v", status)
	}
}
