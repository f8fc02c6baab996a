package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/llm"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage spending budgets",
	}

	cmd.AddCommand(budgetsListCmd())
	cmd.AddCommand(budgetsAddCmd())
	cmd.AddCommand(budgetsSuggestCmd())

	return cmd
}

func budgetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			budgets := led.Budgets()
			if len(budgets) == 0 {
				fmt.Println(cli.FormatInfo("No budgets set."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Budgets"))
			for _, b := range budgets {
				line := fmt.Sprintf("  %-14s %s / %s",
					b.Category,
					formatAmount(led, b.Spent),
					formatAmount(led, b.Limit))
				if b.Limit.IsPositive() && b.Spent.Decimal().GreaterThan(b.Limit.Decimal()) {
					line += "  " + cli.StyleWarning("over budget")
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func budgetsAddCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <category> <limit>",
		Short: "Set a monthly budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			limit, err := money.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}

			budget, err := led.AddBudget(cmd.Context(), model.Budget{
				Category: args[0],
				Limit:    limit,
				Color:    color,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s set to %s",
				budget.Category, formatAmount(led, budget.Limit))))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#4ECDC4", "display color")

	return cmd
}

func budgetsSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <category>",
		Short: "Ask the assistant for a recommended limit",
		Args:  cobra.ExactArgs(1),
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

			category := args[0]
			var history []llm.SpendingPoint
			for _, t := range led.Transactions() {
				if t.Type == model.TypeExpense && t.Category == category {
					history = append(history, llm.SpendingPoint{
						Date:     t.Date,
						Amount:   t.Amount.Decimal().InexactFloat64(),
						Merchant: t.Merchant,
					})
				}
			}
			if len(history) == 0 {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("No spending history for %s yet.", category)))
				return nil
			}

			suggestion, err := client.SuggestBudget(cmd.Context(), category, history)
			if err != nil {
				return err
			}

			limit, err := money.FromFloat(suggestion.SuggestedLimit)
			if err != nil {
				return fmt.Errorf("assistant returned an unusable limit: %w", err)
			}

			fmt.Println(cli.RenderBox(cli.RobotIcon+" Budget suggestion",
				fmt.Sprintf("%s: %s\n%s", category, formatAmount(led, limit), suggestion.Reason)))
			return nil
		},
	}
}
