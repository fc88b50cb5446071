// Package cli implements the ledgerctl subcommands over a ledger store.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"finledger/internal/ledger"
)

// App is the state shared by every subcommand.
type App struct {
	Store    *ledger.Store
	Out      io.Writer
	Err      io.Writer
	Currency string
	// Plain prints markdown as is instead of rendering it for a terminal.
	Plain bool
	Now   func() time.Time
}

// NewApp returns an App writing to stdout and stderr.
func NewApp(store *ledger.Store, currency string) *App {
	return &App{
		Store:    store,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Currency: currency,
		Now:      time.Now,
	}
}

// Register adds every subcommand to c.
func (a *App) Register(c *subcommands.Commander) {
	c.Register(&accountsCmd{app: a}, "accounts")
	c.Register(&addAccountCmd{app: a}, "accounts")
	c.Register(&rmAccountCmd{app: a}, "accounts")
	c.Register(&selectCmd{app: a}, "accounts")

	c.Register(&transactionsCmd{app: a}, "transactions")
	c.Register(&addTxCmd{app: a}, "transactions")
	c.Register(&rmTxCmd{app: a}, "transactions")

	c.Register(&budgetsCmd{app: a}, "budgets")
	c.Register(&addBudgetCmd{app: a}, "budgets")

	c.Register(&debtsCmd{app: a}, "debts")
	c.Register(&addDebtCmd{app: a}, "debts")
	c.Register(&payCmd{app: a}, "debts")

	c.Register(&summaryCmd{app: a}, "reports")
	c.Register(&upcomingCmd{app: a}, "reports")
}

// Run parses args against a fresh flag set and executes the matching command.
func (a *App) Run(ctx context.Context, args []string) subcommands.ExitStatus {
	fs := flag.NewFlagSet("ledgerctl", flag.ContinueOnError)
	fs.SetOutput(a.Err)
	fs.BoolVar(&a.Plain, "plain", a.Plain, "print raw markdown instead of rendering it")
	commander := subcommands.NewCommander(fs, "ledgerctl")
	commander.Output = a.Out
	commander.Error = a.Err
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	a.Register(commander)

	if err := fs.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	return commander.Execute(ctx)
}

// Money formats d in the app currency, for example "$1,234.50".
func (a *App) Money(d decimal.Decimal) string {
	return FormatMoney(d, a.Currency)
}

// FormatMoney formats d in the ISO 4217 currency code.
func FormatMoney(d decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return d.StringFixed(2) + " " + code
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// print renders markdown to Out.
func (a *App) print(md string) error {
	if a.Plain {
		_, err := io.WriteString(a.Out, md)
		return err
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.Out, out)
	return err
}

func (a *App) fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(a.Err, "Error:", err)
	return subcommands.ExitFailure
}

func (a *App) done(md string) subcommands.ExitStatus {
	if err := a.print(md); err != nil {
		return a.fail(err)
	}
	return subcommands.ExitSuccess
}

// cell escapes a value for a markdown table cell.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

// oneArg returns the single positional argument of f.
func oneArg(f *flag.FlagSet) (string, bool) {
	if f.NArg() != 1 || strings.TrimSpace(f.Arg(0)) == "" {
		return "", false
	}
	return strings.TrimSpace(f.Arg(0)), true
}
