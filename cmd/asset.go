package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finsuite/finsuite"
	"github.com/finsuite/finsuite/renderer"
	"github.com/google/subcommands"
)

// assetCmd holds the flags for the 'asset' subcommand.
type assetCmd struct {
	name  string
	cost  string
	life  int
	start string
	rm    string
}

func (*assetCmd) Name() string     { return "asset" }
func (*assetCmd) Synopsis() string { return "register assets and their depreciation" }
func (*assetCmd) Usage() string {
	return `fos asset [-name <name> -cost <amount> -life <years>] [-rm <id>]

  Registers a depreciating asset, or lists the register with straight-line
  yearly depreciation when no flags are given.

Usage Examples:
$ fos asset -name "Workstations" -cost 24000 -life 3 -start 2024-01-01
$ fos asset
`
}

func (c *assetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Asset name.")
	f.StringVar(&c.cost, "cost", "0", "Acquisition cost.")
	f.IntVar(&c.life, "life", 1, "Useful life in years.")
	f.StringVar(&c.start, "start", "", "In-service date.")
	f.StringVar(&c.rm, "rm", "", "Remove the asset with this id.")
}

func (c *assetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.rm != "":
		if err := w.Assets.Remove(c.rm); err != nil {
			return fail(err)
		}
	case c.name != "":
		cost, err := finsuite.ParseMoney(c.cost, w.Currency)
		if err != nil {
			return usageError(err)
		}
		id, err := w.Assets.Add(finsuite.Asset{
			Name:      c.name,
			Cost:      cost,
			LifeYears: c.life,
			Start:     c.start,
		})
		if err != nil {
			return usageError(err)
		}
		fmt.Println("Registered asset", id)
	default:
		printMarkdown(renderer.RenderAssets(w.Assets))
		return subcommands.ExitSuccess
	}
	return save(w)
}
