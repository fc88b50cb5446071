package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"finledger/internal/forms"
	"finledger/internal/models"
	"finledger/internal/pagination"
	"finledger/internal/services"
)

// filterFlags binds the transaction filter flags shared by several commands.
type filterFlags struct {
	form     forms.FilterForm
	selected bool
}

func (ff *filterFlags) set(f *flag.FlagSet) {
	f.StringVar(&ff.form.AccountIDs, "accounts", "", "Comma separated account ids.")
	f.BoolVar(&ff.selected, "selected", false, "Only the selected accounts. Overrides -accounts.")
	f.StringVar(&ff.form.From, "from", "", "Start date (YYYY-MM-DD, inclusive).")
	f.StringVar(&ff.form.To, "to", "", "End date (YYYY-MM-DD, inclusive).")
	f.StringVar(&ff.form.Tags, "tags", "", "Comma separated tags; all must match.")
	f.StringVar(&ff.form.Query, "q", "", "Case-insensitive description search.")
	f.StringVar(&ff.form.AmountOp, "amount-op", "", "Amount comparison: gt, lt or between.")
	f.StringVar(&ff.form.Amount, "amount", "", "Amount bound; min,max for between.")
	f.BoolVar(&ff.form.RecurringOnly, "recurring", false, "Only recurring transactions.")
}

func (ff *filterFlags) query() (services.TransactionQuery, error) {
	ff.form.AmountOp = strings.TrimSpace(ff.form.AmountOp)
	if err := ff.form.Validate(); err != nil {
		return services.TransactionQuery{}, err
	}
	return services.TransactionQuery{Spec: ff.form.Spec(), SelectedOnly: ff.selected}, nil
}

type transactionsCmd struct {
	app     *App
	filters filterFlags
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list transactions matching filters" }
func (*transactionsCmd) Usage() string {
	return `ledgerctl transactions [filters]

  Lists the transactions matching every given filter, most recent first.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) { c.filters.set(f) }

func (c *transactionsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q, err := c.filters.query()
	if err != nil {
		fmt.Fprintln(c.app.Err, err)
		return subcommands.ExitUsageError
	}
	txs := matching(c.app, q)

	var b strings.Builder
	b.WriteString("# Transactions\n\n")
	if len(txs) == 0 {
		b.WriteString("No transactions.\n")
		return c.app.done(b.String())
	}
	b.WriteString("| Date | Description | Tags | Account | Amount |\n|---|---|---|---|---:|\n")
	for _, tx := range txs {
		desc := tx.Description
		if tx.IsRecurring {
			desc += " (" + string(tx.Frequency) + ")"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			tx.Date, cell(desc), cell(strings.Join(tx.Tags, ", ")), cell(tx.AccountID), c.app.Money(tx.Amount))
	}
	return c.app.done(b.String())
}

// matching returns every transaction q selects, unpaginated.
func matching(app *App, q services.TransactionQuery) []models.Transaction {
	all := pagination.PageRequest{Page: 1, PageSize: len(app.Store.Transactions()) + 1}
	page, err := services.NewTransactionService(app.Store).GetTransactions(q, all)
	if err != nil {
		return nil
	}
	return page.Data
}

type addTxCmd struct {
	app  *App
	form forms.TransactionForm
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record a transaction" }
func (*addTxCmd) Usage() string {
	return `ledgerctl add-tx -desc <description> -amount <amount> [-date <date>] [-tags <tags>] [-account <id>]
                 [-recurring -frequency <weekly|bi-weekly|monthly|quarterly|annually> [-until <date>]]

  Records a transaction. Positive amounts are income, negative amounts are
  expenses. Without -account the first selected account is used.
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.Date, "date", "", "Date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.form.Description, "desc", "", "Description.")
	f.Var(&c.form.Amount, "amount", "Signed amount.")
	f.Var(&c.form.Tags, "tags", "Comma separated tags.")
	f.StringVar(&c.form.AccountID, "account", "", "Account id.")
	f.BoolVar(&c.form.IsRecurring, "recurring", false, "Mark as recurring.")
	f.StringVar(&c.form.Frequency, "frequency", "", "Recurrence frequency.")
	f.StringVar(&c.form.RecurrenceEndDate, "until", "", "Last day of the recurrence.")
}

func (c *addTxCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cmd, err := c.form.Command()
	if err != nil {
		return c.app.fail(err)
	}
	tx, err := services.NewTransactionService(c.app.Store).CreateTransaction(cmd)
	if err != nil {
		return c.app.fail(err)
	}
	return c.app.done(fmt.Sprintf("Recorded **%s** %s on %s (`%s`).\n", tx.Description, c.app.Money(tx.Amount), tx.Date, tx.ID))
}

type rmTxCmd struct {
	app *App
}

func (*rmTxCmd) Name() string     { return "rm-tx" }
func (*rmTxCmd) Synopsis() string { return "delete a transaction" }
func (*rmTxCmd) Usage() string {
	return `ledgerctl rm-tx <id>
`
}
func (*rmTxCmd) SetFlags(*flag.FlagSet) {}

func (c *rmTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, ok := oneArg(f)
	if !ok {
		fmt.Fprint(c.app.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	c.app.Store.RemoveTransaction(id)
	return c.app.done(fmt.Sprintf("Deleted transaction `%s`.\n", id))
}
