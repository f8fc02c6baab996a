package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
	}

	cmd.AddCommand(accountsListCmd())
	cmd.AddCommand(accountsAddCmd())

	return cmd
}

func accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts and balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			accounts := led.Accounts()
			if len(accounts) == 0 {
				fmt.Println(cli.FormatInfo("No accounts yet. Add one with 'mizan accounts add'."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Accounts"))
			var total money.Amount
			for _, a := range accounts {
				total = total.Add(a.Balance)
				fmt.Printf("  %s  %s (%s): %s\n",
					cli.SubtleStyle.Render(a.ID),
					cli.BoldStyle.Render(a.Name),
					a.Type,
					styledAmount(led, a.Balance))
			}
			fmt.Printf("\n  Total: %s\n", cli.BoldStyle.Render(formatAmount(led, total)))
			return nil
		},
	}
}

func accountsAddCmd() *cobra.Command {
	var (
		accountType string
		balance     string
		color       string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			opening := money.Amount(0)
			if balance != "" {
				opening, err = money.Parse(balance)
				if err != nil {
					return fmt.Errorf("invalid balance %q: %w", balance, err)
				}
			}

			account, err := led.AddAccount(cmd.Context(), model.Account{
				Name:    args[0],
				Type:    model.AccountType(accountType),
				Balance: opening,
				Color:   color,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added account %s (%s)", account.Name, account.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&accountType, "type", "t", string(model.AccountCash), "account type (Cash, Bank, Wallet, Card, CCP)")
	cmd.Flags().StringVarP(&balance, "balance", "b", "", "opening balance")
	cmd.Flags().StringVar(&color, "color", "#8C6A4B", "display color")

	return cmd
}

// styledAmount colors an amount green or red by sign.
func styledAmount(led interface{ Settings() model.Settings }, a money.Amount) string {
	s := fmt.Sprintf("%s %s", a.String(), led.Settings().CurrencySymbol)
	if a.IsNegative() {
		return cli.AmountNegativeStyle.Render(s)
	}
	return cli.AmountPositiveStyle.Render(s)
}
