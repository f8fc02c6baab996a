package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(goalsListCmd())
	cmd.AddCommand(goalsAddCmd())
	cmd.AddCommand(goalsDepositCmd())

	return cmd
}

func goalsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			goals := led.SavingsGoals()
			if len(goals) == 0 {
				fmt.Println(cli.FormatInfo("No savings goals yet."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Savings goals"))
			for _, g := range goals {
				fmt.Printf("  %s %-18s %s / %s  %s\n",
					g.Emoji,
					g.Name,
					formatAmount(led, g.Saved),
					formatAmount(led, g.Target),
					cli.SubtleStyle.Render(g.ID))
			}
			return nil
		},
	}
}

func goalsAddCmd() *cobra.Command {
	var emoji string

	cmd := &cobra.Command{
		Use:   "add <name> <target>",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			target, err := money.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid target %q: %w", args[1], err)
			}

			goal, err := led.AddSavingsGoal(cmd.Context(), model.SavingsGoal{
				Name:   args[0],
				Target: target,
				Emoji:  emoji,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Goal %s created (%s)", goal.Name, goal.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&emoji, "emoji", "🎯", "goal emoji")

	return cmd
}

func goalsDepositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <goal-id> <amount>",
		Short: "Add money toward a goal",
		Args:  cobra.ExactArgs(2),
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

			if err := led.AddToGoal(cmd.Context(), args[0], amount); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s toward the goal", formatAmount(led, amount))))
			return nil
		},
	}
}
