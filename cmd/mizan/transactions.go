package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Record and inspect transactions",
	}

	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txListCmd())
	cmd.AddCommand(txDeleteCmd())
	cmd.AddCommand(txExportCmd())

	return cmd
}

func txAddCmd() *cobra.Command {
	var (
		txType    string
		category  string
		account   string
		toAccount string
		date      string
		note      string
		pending   bool
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <merchant>",
		Short: "Record a transaction",
		Long: `Record a transaction against an account.

Examples:
  mizan tx add 1200 "Carrefour" --category Food
  mizan tx add 50000 "Salary" --type income --account Bank
  mizan tx add 5000 transfer --type transfer --account Cash --to Bank`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			amount, err := money.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			acct, err := resolveAccount(led, account)
			if err != nil {
				return err
			}

			draft := model.Transaction{
				Amount:    amount,
				Merchant:  args[1],
				Category:  category,
				Date:      date,
				Note:      note,
				Type:      model.TransactionType(txType),
				AccountID: acct.ID,
			}
			if pending {
				draft.Status = model.StatusPending
			}
			if toAccount != "" {
				dest, destErr := resolveAccount(led, toAccount)
				if destErr != nil {
					return destErr
				}
				draft.ToAccountID = dest.ID
			}

			txn, err := led.AddTransaction(cmd.Context(), draft)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %s at %s (%s)",
				txn.Type, formatAmount(led, txn.Amount), txn.Merchant, txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", string(model.TypeExpense), "transaction type (income, expense, transfer)")
	cmd.Flags().StringVarP(&category, "category", "c", "General", "category")
	cmd.Flags().StringVarP(&account, "account", "a", "", "source account id or name")
	cmd.Flags().StringVar(&toAccount, "to", "", "destination account for transfers")
	cmd.Flags().StringVarP(&date, "date", "d", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-form note")
	cmd.Flags().BoolVar(&pending, "pending", false, "mark as pending")

	return cmd
}

func txListCmd() *cobra.Command {
	var (
		limit      int
		withGhosts bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			txns := led.Transactions()
			if withGhosts {
				txns = led.TransactionsWithGhosts()
			}
			if len(txns) == 0 {
				fmt.Println(cli.FormatInfo("No transactions recorded."))
				return nil
			}
			if limit > 0 && len(txns) > limit {
				txns = txns[:limit]
			}

			fmt.Println(cli.FormatTitle("Transactions"))
			for _, t := range txns {
				marker := " "
				if t.IsGhost {
					marker = cli.WarningStyle.Render("~")
				} else if t.Status == model.StatusPending {
					marker = cli.SubtleStyle.Render("?")
				}
				amount := formatAmount(led, t.Amount)
				switch t.Type {
				case model.TypeIncome:
					amount = cli.AmountPositiveStyle.Render("+" + amount)
				case model.TypeExpense:
					amount = cli.AmountNegativeStyle.Render("-" + amount)
				default:
					amount = cli.InfoStyle.Render(amount)
				}
				fmt.Printf("%s %s  %-12s %-24s %s  %s\n",
					marker, t.Date, t.Category, t.Merchant, amount,
					cli.SubtleStyle.Render(t.ID))
			}

			stats := led.Stats()
			fmt.Printf("\nIncome %s  Expense %s  Net %s\n",
				cli.AmountPositiveStyle.Render(formatAmount(led, stats.Income)),
				cli.AmountNegativeStyle.Render(formatAmount(led, stats.Expense)),
				cli.BoldStyle.Render(formatAmount(led, stats.Balance)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "max rows to show (0 for all)")
	cmd.Flags().BoolVar(&withGhosts, "ghosts", false, "include upcoming subscription charges")

	return cmd
}

func txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction and reverse its effects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := led.DeleteTransaction(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Transaction deleted and balances restored"))
			return nil
		},
	}
}

func txExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			w := os.Stdout
			if output != "" {
				f, createErr := os.Create(output)
				if createErr != nil {
					return fmt.Errorf("failed to create %s: %w", output, createErr)
				}
				defer f.Close()
				w = f
			}

			if err := led.ExportCSV(w); err != nil {
				return err
			}
			if output != "" {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s",
					len(led.Transactions()), output)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write CSV to file instead of stdout")

	return cmd
}
