package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"finledger/internal/aggregate"
	"finledger/internal/forms"
)

type budgetsCmd struct {
	app *App
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "list budgets with their progress" }
func (*budgetsCmd) Usage() string {
	return `ledgerctl budgets

  Lists every budget with the amount spent on its tag, the progress towards
  its limit and what is left.
`
}
func (*budgetsCmd) SetFlags(*flag.FlagSet) {}

func (c *budgetsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap := c.app.Store.Snapshot()
	statuses := aggregate.BudgetStatuses(snap.Budgets, snap.Transactions)

	var b strings.Builder
	b.WriteString("# Budgets\n\n")
	if len(statuses) == 0 {
		b.WriteString("No budgets.\n")
		return c.app.done(b.String())
	}
	b.WriteString("| ID | Name | Tag | Spent | Limit | Progress | Left |\n|---|---|---|---:|---:|---:|---:|\n")
	for _, s := range statuses {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s%% | %s |\n",
			cell(s.ID), cell(s.Name), cell(s.Tag),
			c.app.Money(s.Spent), c.app.Money(s.Limit), s.Progress.StringFixed(0), c.app.Money(s.Left))
	}
	return c.app.done(b.String())
}

type addBudgetCmd struct {
	app  *App
	form forms.BudgetForm
}

func (*addBudgetCmd) Name() string     { return "add-budget" }
func (*addBudgetCmd) Synopsis() string { return "create a budget on a tag" }
func (*addBudgetCmd) Usage() string {
	return `ledgerctl add-budget -name <name> -limit <amount> -tag <tag> [-start <date>] [-end <date>]
`
}

func (c *addBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.Name, "name", "", "Budget name.")
	f.Var(&c.form.Limit, "limit", "Spending limit, greater than 0.")
	f.StringVar(&c.form.Tag, "tag", "", "Tag whose expenses count against the limit.")
	f.StringVar(&c.form.StartDate, "start", "", "Start date (informational).")
	f.StringVar(&c.form.EndDate, "end", "", "End date (informational).")
}

func (c *addBudgetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cmd, err := c.form.Command()
	if err != nil {
		return c.app.fail(err)
	}
	budget, err := c.app.Store.AddBudget(cmd)
	if err != nil {
		return c.app.fail(err)
	}
	return c.app.done(fmt.Sprintf("Created budget **%s** on `%s` (`%s`).\n", budget.Name, budget.Tag, budget.ID))
}
