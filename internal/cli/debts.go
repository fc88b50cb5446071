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

type debtsCmd struct {
	app *App
}

func (*debtsCmd) Name() string     { return "debts" }
func (*debtsCmd) Synopsis() string { return "list debts with their remaining balance" }
func (*debtsCmd) Usage() string {
	return `ledgerctl debts
`
}
func (*debtsCmd) SetFlags(*flag.FlagSet) {}

func (c *debtsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap := c.app.Store.Snapshot()
	statuses := aggregate.DebtStatuses(snap.Debts, snap.Payments)

	var b strings.Builder
	b.WriteString("# Debts\n\n")
	if len(statuses) == 0 {
		b.WriteString("No debts.\n")
		return c.app.done(b.String())
	}
	b.WriteString("| ID | Name | Lender | Due | Principal | Paid | Remaining |\n|---|---|---|---|---:|---:|---:|\n")
	for _, s := range statuses {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			cell(s.ID), cell(s.Name), cell(s.Lender), s.DueDate,
			c.app.Money(s.Principal), c.app.Money(s.Paid), c.app.Money(s.Remaining))
	}
	return c.app.done(b.String())
}

type addDebtCmd struct {
	app  *App
	form forms.DebtForm
}

func (*addDebtCmd) Name() string     { return "add-debt" }
func (*addDebtCmd) Synopsis() string { return "record a debt" }
func (*addDebtCmd) Usage() string {
	return `ledgerctl add-debt -name <name> -lender <lender> -principal <amount> -due <date> [-rate <percent>] [-start <date>]
`
}

func (c *addDebtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.Name, "name", "", "Debt name.")
	f.StringVar(&c.form.Lender, "lender", "", "Lender.")
	f.Var(&c.form.Principal, "principal", "Amount borrowed.")
	f.Var(&c.form.InterestRate, "rate", "Interest rate in percent, for reference.")
	f.StringVar(&c.form.StartDate, "start", "", "Start date.")
	f.StringVar(&c.form.DueDate, "due", "", "Due date.")
}

func (c *addDebtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cmd, err := c.form.Command()
	if err != nil {
		return c.app.fail(err)
	}
	debt, err := c.app.Store.AddDebt(cmd)
	if err != nil {
		return c.app.fail(err)
	}
	return c.app.done(fmt.Sprintf("Created debt **%s** (`%s`).\n", debt.Name, debt.ID))
}

type payCmd struct {
	app  *App
	form forms.PaymentForm
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment towards a debt" }
func (*payCmd) Usage() string {
	return `ledgerctl pay -debt <id> -amount <amount> -date <date>
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.DebtID, "debt", "", "Debt id.")
	f.Var(&c.form.Amount, "amount", "Amount paid.")
	f.StringVar(&c.form.Date, "date", "", "Payment date.")
}

func (c *payCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cmd, err := c.form.Command()
	if err != nil {
		return c.app.fail(err)
	}
	payment, err := c.app.Store.AddPayment(cmd)
	if err != nil {
		return c.app.fail(err)
	}
	return c.app.done(fmt.Sprintf("Paid %s towards `%s` on %s.\n", c.app.Money(payment.Amount), payment.DebtID, payment.Date))
}
