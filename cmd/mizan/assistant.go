package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/ledger"
	"github.com/mizanapp/mizan/internal/llm"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

func assistantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ai",
		Aliases: []string{"assistant"},
		Short:   "AI-assisted entry, briefings and answers",
	}

	cmd.AddCommand(aiAddCmd())
	cmd.AddCommand(aiAskCmd())
	cmd.AddCommand(aiBriefingCmd())

	return cmd
}

func aiAddCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Turn free text into transactions",
		Long: `Parse a natural-language description into one or more transactions
and record them after confirmation.

Examples:
  mizan ai add "coffee 250 and taxi 400 from cash"
  mizan ai add "lent Yacine 5000 yesterday"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := createLLMClient()
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			categories := model.CategoryNames(led.CustomCategories())
			guesses, err := client.ParseTransactions(cmd.Context(), input, accountRefs(led), categories)
			if err != nil {
				return err
			}
			if len(guesses) == 0 {
				fmt.Println(cli.FormatInfo("Nothing recognizable in that text."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Recognized"))
			for i, g := range guesses {
				kind := g.Type
				if g.Type == "debt" {
					kind = fmt.Sprintf("debt (%s %s)", g.DebtType, g.PersonName)
				}
				fmt.Printf("  %d. %s %.2f at %s [%s]\n", i+1, kind, g.Amount, g.Merchant, g.Category)
			}

			if !yes {
				ok, confirmErr := cli.Confirm(cmd.Context(), os.Stdin, os.Stdout, "Record these?")
				if confirmErr != nil {
					return confirmErr
				}
				if !ok {
					fmt.Println(cli.FormatInfo("Nothing recorded."))
					return nil
				}
			}

			recorded := 0
			for _, g := range guesses {
				if err := recordGuess(cmd, led, g); err != nil {
					fmt.Println(cli.FormatWarning(fmt.Sprintf("Skipped %s: %v", g.Merchant, err)))
					continue
				}
				recorded++
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %d of %d entries", recorded, len(guesses))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "record without confirmation")

	return cmd
}

// recordGuess turns one guess into a ledger mutation: a debt guess
// becomes a debt plus its backing transaction, everything else a plain
// transaction.
func recordGuess(cmd *cobra.Command, led *ledger.Ledger, g llm.TransactionGuess) error {
	amount, err := money.FromFloat(g.Amount)
	if err != nil {
		return err
	}

	acct, err := resolveAccount(led, g.AccountID)
	if err != nil {
		return err
	}

	if g.Type == "debt" {
		person := g.PersonName
		if person == "" {
			person = g.Merchant
		}
		debtType := model.DebtType(g.DebtType)
		if debtType != model.DebtLent && debtType != model.DebtBorrowed {
			debtType = model.DebtLent
		}
		_, err = led.AddDebt(cmd.Context(), model.Debt{
			Person: person,
			Amount: amount,
			Type:   debtType,
		})
		if err != nil {
			return err
		}
		// Lending moves money out of the account, borrowing in.
		txType := model.TypeExpense
		if debtType == model.DebtBorrowed {
			txType = model.TypeIncome
		}
		_, err = led.AddTransaction(cmd.Context(), model.Transaction{
			Amount:    amount,
			Merchant:  "Debt: " + person,
			Category:  "DebtRepayment",
			Type:      txType,
			AccountID: acct.ID,
		})
		return err
	}

	_, err = led.AddTransaction(cmd.Context(), model.Transaction{
		Amount:    amount,
		Merchant:  g.Merchant,
		Category:  g.Category,
		Type:      model.TransactionType(g.Type),
		AccountID: acct.ID,
	})
	return err
}

func aiAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question about your finances",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := createLLMClient()
			if err != nil {
				return err
			}

			answer, err := client.Ask(cmd.Context(), strings.Join(args, " "), buildSnapshot(led))
			if err != nil {
				return err
			}

			fmt.Println(cli.RenderBox(cli.RobotIcon+" Answer", answer))
			return nil
		},
	}
}

func aiBriefingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "briefing",
		Short: "Get a short daily financial briefing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := createLLMClient()
			if err != nil {
				return err
			}

			name := led.Settings().UserName
			if name == "" {
				name = "friend"
			}

			briefing, err := client.DailyBriefing(cmd.Context(), name, buildSnapshot(led))
			if err != nil {
				return err
			}

			mood := "🙂"
			switch briefing.Mood {
			case "happy":
				mood = "😄"
			case "concerned":
				mood = "😟"
			}
			fmt.Println(cli.RenderBox(mood+" Daily briefing", briefing.Text))
			return nil
		},
	}
}
