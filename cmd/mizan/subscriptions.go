package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

func subscriptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subs",
		Aliases: []string{"subscriptions"},
		Short:   "Manage recurring subscriptions",
	}

	cmd.AddCommand(subsListCmd())
	cmd.AddCommand(subsAddCmd())
	cmd.AddCommand(subsDeleteCmd())

	return cmd
}

func subsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			subs := led.Subscriptions()
			if len(subs) == 0 {
				fmt.Println(cli.FormatInfo("No subscriptions tracked."))
				return nil
			}

			now := time.Now()
			fmt.Println(cli.FormatTitle("Subscriptions"))
			for _, s := range subs {
				due := ""
				if s.DueWithin(now, 7) {
					due = "  " + cli.StyleWarning("due soon")
				}
				fmt.Printf("  %s %-16s %s / %s, next %s%s  %s\n",
					s.Icon,
					s.Name,
					formatAmount(led, s.Amount),
					s.BillingCycle,
					s.NextBillingDate,
					due,
					cli.SubtleStyle.Render(s.ID))
			}
			return nil
		},
	}
}

func subsAddCmd() *cobra.Command {
	var (
		cycle    string
		next     string
		icon     string
		category string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <amount>",
		Short: "Track a recurring subscription",
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

			sub, err := led.AddSubscription(cmd.Context(), model.Subscription{
				Name:            args[0],
				Amount:          amount,
				BillingCycle:    model.BillingCycle(cycle),
				NextBillingDate: next,
				Icon:            icon,
				Category:        category,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Tracking %s at %s/%s (%s)",
				sub.Name, formatAmount(led, sub.Amount), sub.BillingCycle, sub.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&cycle, "cycle", string(model.BillingMonthly), "billing cycle (monthly, yearly)")
	cmd.Flags().StringVar(&next, "next", "", "next billing date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&icon, "icon", "📦", "display icon")
	cmd.Flags().StringVarP(&category, "category", "c", "Subscriptions", "category for charges")

	return cmd
}

func subsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Stop tracking a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := led.DeleteSubscription(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Subscription removed"))
			return nil
		},
	}
}
