package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Track money lent and borrowed",
	}

	cmd.AddCommand(debtsListCmd())
	cmd.AddCommand(debtsAddCmd())
	cmd.AddCommand(debtsSettleCmd())

	return cmd
}

func debtsListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List debts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			debts := led.Debts()
			if len(debts) == 0 {
				fmt.Println(cli.FormatInfo("No debts recorded."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Debts"))
			for _, d := range debts {
				if d.IsPaid && !all {
					continue
				}
				direction := cli.AmountPositiveStyle.Render("lent to")
				if d.Type == model.DebtBorrowed {
					direction = cli.AmountNegativeStyle.Render("borrowed from")
				}
				status := ""
				if d.IsPaid {
					status = "  " + cli.StyleSuccess("settled")
				}
				if d.DueDate != "" {
					status += "  " + cli.SubtleStyle.Render("due "+d.DueDate)
				}
				fmt.Printf("  %s %s: %s remaining of %s%s  %s\n",
					direction,
					cli.BoldStyle.Render(d.Person),
					formatAmount(led, d.RemainingAmount),
					formatAmount(led, d.Amount),
					status,
					cli.SubtleStyle.Render(d.ID))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include settled debts")

	return cmd
}

func debtsAddCmd() *cobra.Command {
	var (
		debtType string
		dueDate  string
	)

	cmd := &cobra.Command{
		Use:   "add <person> <amount>",
		Short: "Record a new debt",
		Long: `Record money you lent to someone or borrowed from them.

Examples:
  mizan debts add "Yacine" 5000 --type lent
  mizan debts add "Amine" 12000 --type borrowed --note "car repair"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			amount, err := money.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			debt, err := led.AddDebt(cmd.Context(), model.Debt{
				Person:  args[0],
				Amount:  amount,
				Type:    model.DebtType(debtType),
				DueDate: dueDate,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s for %s (%s)",
				debt.Type, formatAmount(led, debt.Amount), debt.Person, debt.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&debtType, "type", "t", string(model.DebtLent), "debt direction (lent, borrowed)")
	cmd.Flags().StringVarP(&dueDate, "due", "d", "", "due date (YYYY-MM-DD)")

	return cmd
}

func debtsSettleCmd() *cobra.Command {
	var (
		account string
		partial string
	)

	cmd := &cobra.Command{
		Use:   "settle <debt-id>",
		Short: "Settle a debt fully or partially",
		Long: `Settle a debt. Without --amount the full remaining balance is
settled; with it only that much is repaid and the debt stays open.
The repayment is recorded as a transaction on the chosen account.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			acct, err := resolveAccount(led, account)
			if err != nil {
				return err
			}

			var partialAmount *money.Amount
			if partial != "" {
				amount, parseErr := money.Parse(partial)
				if parseErr != nil {
					return fmt.Errorf("invalid amount %q: %w", partial, parseErr)
				}
				partialAmount = &amount
			}

			return led.SettleDebt(cmd.Context(), args[0], acct.ID, partialAmount)
		},
	}

	cmd.Flags().StringVarP(&account, "account", "a", "", "account to settle through")
	cmd.Flags().StringVar(&partial, "amount", "", "partial amount to settle (default: full remainder)")

	return cmd
}
