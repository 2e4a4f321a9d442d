// Package cmd implements the CLI application to reconcile a troop cookie sale.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/troop"
	"github.com/etnz/troop/importer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reconcileCmd{}, "reconcile")
	c.Register(&exportCmd{}, "reconcile")

	c.Register(summaryCmd(), "reports")
	c.Register(&scoutsCmd{}, "reports")
	c.Register(varietiesCmd(), "reports")
	c.Register(cookieShareCmd(), "reports")
	c.Register(boothsCmd(), "reports")
	c.Register(&transfersCmd{}, "reports")
	c.Register(&timelineCmd{}, "reports")
	c.Register(healthCmd(), "reports")
	c.Register(reportCmd(), "reports")

	c.Register(&topicCmd{}, "help")
}

// Environment variables holding the defaults of the global flags. They can be
// set in a .env file.
const (
	EnvDCFile  = "COOKIES_DC_FILE"
	EnvSCFile  = "COOKIES_SC_FILE"
	EnvConfig  = "COOKIES_CONFIG"
	EnvVerbose = "COOKIES_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dcFile = flag.String("dc", "", "Path to the Digital Cookie order export (XLSX). Defaults to $"+EnvDCFile+".")
var scFile = flag.String("sc", "", "Path to the Smart Cookies dump (JSON). Defaults to $"+EnvSCFile+".")
var configFile = flag.String("config", "", "Path to the troop configuration (YAML). Defaults to $"+EnvConfig+".")

// Verbose logs the progress of each pass on stderr.
var Verbose = flag.Bool("v", false, "Log progress on stderr.")

// orEnv returns the flag value, or the environment variable when the flag is unset.
func orEnv(flagValue, env string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(env)
}

// DCFile returns the path to the order export.
func DCFile() string { return orEnv(*dcFile, EnvDCFile) }

// SCFile returns the path to the ledger dump.
func SCFile() string { return orEnv(*scFile, EnvSCFile) }

// ConfigFile returns the path to the troop configuration.
func ConfigFile() string { return orEnv(*configFile, EnvConfig) }

func verbose() bool { return *Verbose || os.Getenv(EnvVerbose) == "true" }

// LoadDataset is the central function to run a reconciliation pass on the
// exports named by the global flags.
func LoadDataset() (*troop.Dataset, error) {
	cfg, err := troop.LoadConfig(ConfigFile())
	if err != nil {
		return nil, err
	}
	state, err := importer.LoadState(DCFile(), SCFile(), importer.DefaultPaths())
	if err != nil {
		return nil, fmt.Errorf("could not import exports: %w", err)
	}
	if verbose() {
		log.Printf("imported %d orders from %q and %d transfers from %q",
			len(state.Orders), state.Metadata.DCSource, len(state.Transfers), state.Metadata.SCSource)
	}
	d := troop.Build(state, cfg)
	if verbose() {
		log.Printf("reconciled %d scouts, %d warnings", d.Health.Scouts, d.Health.Warnings)
	}
	return d, nil
}
