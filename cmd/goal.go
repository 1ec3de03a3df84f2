package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finsuite/finsuite"
	"github.com/finsuite/finsuite/renderer"
	"github.com/google/subcommands"
)

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	name     string
	target   string
	due      string
	progress int
	set      string
	rm       string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "set financial goals and track progress" }
func (*goalCmd) Usage() string {
	return `fos goal [-name <name> -target <amount>] [-set <id> -progress <0..100>] [-rm <id>]

  Sets a financial goal, updates the progress of one, or lists goals when
  no flags are given.

Usage Examples:
$ fos goal -name "Runway 18 months" -target 500000 -due 2025-12-31
$ fos goal -set 01HZXK... -progress 40
$ fos goal
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name.")
	f.StringVar(&c.target, "target", "0", "Target amount.")
	f.StringVar(&c.due, "due", "", "Due date.")
	f.IntVar(&c.progress, "progress", 0, "Progress percentage, 0 to 100.")
	f.StringVar(&c.set, "set", "", "Update the progress of the goal with this id.")
	f.StringVar(&c.rm, "rm", "", "Remove the goal with this id.")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.rm != "":
		if err := w.Goals.Remove(c.rm); err != nil {
			return fail(err)
		}
	case c.set != "":
		if err := w.Goals.SetProgress(c.set, c.progress); err != nil {
			return fail(err)
		}
	case c.name != "":
		target, err := finsuite.ParseMoney(c.target, w.Currency)
		if err != nil {
			return usageError(err)
		}
		id, err := w.Goals.Add(finsuite.Goal{Name: c.name, Target: target, Due: c.due, Progress: c.progress})
		if err != nil {
			return usageError(err)
		}
		fmt.Println("Set goal", id)
	default:
		printMarkdown(renderer.RenderGoals(w.Goals))
		return subcommands.ExitSuccess
	}
	return save(w)
}
