// Command cookies reconciles the Digital Cookie and Smart Cookies exports of
// a Girl Scout troop.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/troop/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	global := map[string]complete.Predictor{
		"dc":     predict.Files("*.xlsx"),
		"sc":     predict.Files("*.json"),
		"config": predict.Files("*.yaml"),
		"v":      predict.Nothing,
	}
	reports := []string{"summary", "varieties", "cookieshare", "booths", "health", "report"}
	sub := map[string]*complete.Command{
		"reconcile": {Flags: map[string]complete.Predictor{"o": predict.Files("*.json"), "strict": predict.Nothing}},
		"export":    {Flags: map[string]complete.Predictor{"o": predict.Files("*"), "html": predict.Nothing}},
		"scouts":    {Flags: map[string]complete.Predictor{"s": predict.Something, "skip-orders": predict.Nothing}},
		"transfers": {Flags: map[string]complete.Predictor{"details": predict.Nothing}},
		"timeline":  {Flags: map[string]complete.Predictor{"p": predict.Set{"daily", "weekly", "monthly"}}},
		"topic":     {Args: predict.Set{"readme", "reconcile", "inventory", "money", "cookieshare", "config"}},
	}
	for _, r := range reports {
		sub[r] = &complete.Command{}
	}
	return &complete.Command{Sub: sub, Flags: global}
}

func main() {
	completion().Complete(path.Base(os.Args[0]))

	// defaults for the global flags, when a .env file is present.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !isRegistered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func isRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
