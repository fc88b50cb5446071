package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/google/subcommands"

	"finledger/internal/aggregate"
	"finledger/internal/models"
)

type summaryCmd struct {
	app     *App
	filters filterFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display income, expenses and spending by tag" }
func (*summaryCmd) Usage() string {
	return `ledgerctl summary [filters]

  Totals income and expenses over the transactions matching the filters and
  breaks expenses down by tag, largest first.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) { c.filters.set(f) }

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q, err := c.filters.query()
	if err != nil {
		fmt.Fprintln(c.app.Err, err)
		return subcommands.ExitUsageError
	}
	txs := matching(c.app, q)
	s := aggregate.SummaryTotals(txs)

	var b strings.Builder
	b.WriteString("# Summary\n\n")
	fmt.Fprintf(&b, "| Income | Expenses | Net |\n|---:|---:|---:|\n| %s | %s | %s |\n\n",
		c.app.Money(s.TotalIncome), c.app.Money(s.TotalExpense), c.app.Money(s.Net))

	byTag := aggregate.ExpenseAggregateByTag(txs)
	if len(byTag) > 0 {
		b.WriteString("## Expenses by tag\n\n| Tag | Amount |\n|---|---:|\n")
		for _, t := range byTag {
			fmt.Fprintf(&b, "| %s | %s |\n", cell(t.Tag), c.app.Money(t.Amount))
		}
	}
	return c.app.done(b.String())
}

type upcomingCmd struct {
	app  *App
	days int
}

func (*upcomingCmd) Name() string     { return "upcoming" }
func (*upcomingCmd) Synopsis() string { return "list upcoming recurring transactions" }
func (*upcomingCmd) Usage() string {
	return `ledgerctl upcoming [-days <n>]

  Projects recurring transactions from today through the next n days.
`
}

func (c *upcomingCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Number of days to look ahead.")
}

func (c *upcomingCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	maxDays := int(aggregate.MaxProjectionSpan / (24 * time.Hour))
	if c.days < 0 || c.days > maxDays {
		fmt.Fprintf(c.app.Err, "-days must be between 0 and %d\n", maxDays)
		return subcommands.ExitUsageError
	}
	from := c.app.Now()
	to := from.Add(time.Duration(c.days) * 24 * time.Hour)
	occurrences := aggregate.UpcomingRecurring(c.app.Store.Transactions(), from, to)

	var b strings.Builder
	fmt.Fprintf(&b, "# Upcoming %s to %s\n\n", models.FormatDate(from), models.FormatDate(to))
	if len(occurrences) == 0 {
		b.WriteString("Nothing scheduled.\n")
		return c.app.done(b.String())
	}
	b.WriteString("| Date | Description | Frequency | Amount |\n|---|---|---|---:|\n")
	for _, o := range occurrences {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			o.Date, cell(o.Transaction.Description), o.Transaction.Frequency, c.app.Money(o.Transaction.Amount))
	}
	return c.app.done(b.String())
}
