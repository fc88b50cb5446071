package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"finledger/internal/forms"
	"finledger/internal/pagination"
	"finledger/internal/services"
)

type accountsCmd struct {
	app *App
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts with their balances" }
func (*accountsCmd) Usage() string {
	return `ledgerctl accounts

  Lists every account, most recent first, with its derived balance.
  Selected accounts are marked with *.
`
}
func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	page, err := services.NewAccountService(c.app.Store).GetAccounts(pagination.PageRequest{Page: 1, PageSize: len(c.app.Store.Accounts()) + 1})
	if err != nil {
		return c.app.fail(err)
	}

	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	if len(page.Data) == 0 {
		b.WriteString("No accounts.\n")
		return c.app.done(b.String())
	}
	b.WriteString("| | ID | Name | Balance |\n|---|---|---|---:|\n")
	for _, v := range page.Data {
		mark := ""
		if v.Selected {
			mark = "*"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", mark, cell(v.ID), cell(v.Name), c.app.Money(v.Balance))
	}
	return c.app.done(b.String())
}

type addAccountCmd struct {
	app  *App
	form forms.AccountForm
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create an account" }
func (*addAccountCmd) Usage() string {
	return `ledgerctl add-account -name <name> [-balance <amount>]

  Creates an account. A non-numeric starting balance is 0.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.Name, "name", "", "Account name.")
	f.Var(&c.form.StartingBalance, "balance", "Starting balance.")
}

func (c *addAccountCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cmd, err := c.form.Command()
	if err != nil {
		return c.app.fail(err)
	}
	account, err := c.app.Store.AddAccount(cmd)
	if err != nil {
		return c.app.fail(err)
	}
	return c.app.done(fmt.Sprintf("Created account **%s** (`%s`).\n", account.Name, account.ID))
}

type rmAccountCmd struct {
	app *App
}

func (*rmAccountCmd) Name() string     { return "rm-account" }
func (*rmAccountCmd) Synopsis() string { return "delete an account" }
func (*rmAccountCmd) Usage() string {
	return `ledgerctl rm-account <id>

  Deletes an account. Its transactions are kept.
`
}
func (*rmAccountCmd) SetFlags(*flag.FlagSet) {}

func (c *rmAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, ok := oneArg(f)
	if !ok {
		fmt.Fprint(c.app.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	c.app.Store.RemoveAccount(id)
	return c.app.done(fmt.Sprintf("Deleted account `%s`.\n", id))
}

type selectCmd struct {
	app *App
}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "toggle whether an account is selected" }
func (*selectCmd) Usage() string {
	return `ledgerctl select <id>

  Selects the account when unselected, otherwise deselects it. The first
  selected account is the default for add-tx.
`
}
func (*selectCmd) SetFlags(*flag.FlagSet) {}

func (c *selectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, ok := oneArg(f)
	if !ok {
		fmt.Fprint(c.app.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	selected, err := c.app.Store.ToggleSelection(id)
	if err != nil {
		return c.app.fail(err)
	}
	state := "deselected"
	if selected {
		state = "selected"
	}
	return c.app.done(fmt.Sprintf("Account `%s` %s.\n", id, state))
}
