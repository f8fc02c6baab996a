package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

func djam3iaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "djam3ia",
		Short: "Manage rotating savings circles",
		Long: `A djam3ia is a rotating community savings circle: every member pays a
fixed monthly amount and each month one member takes the pooled sum.`,
	}

	cmd.AddCommand(djam3iaListCmd())
	cmd.AddCommand(djam3iaAddCmd())
	cmd.AddCommand(djam3iaPayCmd())

	return cmd
}

func djam3iaListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List circles and member progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			circles := led.Djam3ias()
			if len(circles) == 0 {
				fmt.Println(cli.FormatInfo("No djam3ia circles."))
				return nil
			}

			for _, c := range circles {
				header := fmt.Sprintf("%s — %s/month, pool %s, my turn month %d (%s)",
					c.Name,
					formatAmount(led, c.MonthlyPayment),
					formatAmount(led, c.TotalAmount),
					c.MyTurnMonth,
					c.Status)
				var lines []string
				for _, m := range c.Members {
					lines = append(lines, fmt.Sprintf("%-16s paid %d/%d months  %s",
						m.Name, len(m.PaidMonths), c.MembersCount,
						cli.SubtleStyle.Render(m.ID)))
				}
				fmt.Println(cli.RenderBox(header, strings.Join(lines, "\n")))
				fmt.Println(cli.SubtleStyle.Render("  id: " + c.ID))
			}
			return nil
		},
	}
}

func djam3iaAddCmd() *cobra.Command {
	var (
		monthly string
		members []string
		myTurn  int
		start   string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a circle",
		Long: `Create a djam3ia circle. The pooled total is the monthly payment
times the member count.

Example:
  mizan djam3ia add "Family circle" --monthly 10000 \
    --member Karim --member Samia --member Nadir --turn 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			payment, err := money.Parse(monthly)
			if err != nil {
				return fmt.Errorf("invalid monthly payment %q: %w", monthly, err)
			}
			if len(members) == 0 {
				return fmt.Errorf("at least one --member is required")
			}

			circle := model.Djam3ia{
				Name:           args[0],
				MonthlyPayment: payment,
				TotalAmount:    money.Amount(int64(payment) * int64(len(members))),
				MembersCount:   len(members),
				MyTurnMonth:    myTurn,
				StartDate:      start,
			}
			for _, name := range members {
				circle.Members = append(circle.Members, model.Djam3iaMember{Name: name})
			}

			created, err := led.AddDjam3ia(cmd.Context(), circle)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Circle %s created with %d members (%s)",
				created.Name, len(created.Members), created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthly, "monthly", "", "monthly payment per member")
	cmd.Flags().StringArrayVar(&members, "member", nil, "member name (repeatable)")
	cmd.Flags().IntVar(&myTurn, "turn", 1, "month in which you receive the pool")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("monthly")

	return cmd
}

func djam3iaPayCmd() *cobra.Command {
	var (
		account string
		member  string
	)

	cmd := &cobra.Command{
		Use:   "pay <circle-id>",
		Short: "Pay one monthly installment",
		Args:  cobra.ExactArgs(1),
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

			return led.PayDjam3iaInstallment(cmd.Context(), args[0], acct.ID, member)
		},
	}

	cmd.Flags().StringVarP(&account, "account", "a", "", "account to charge")
	cmd.Flags().StringVarP(&member, "member", "m", "", "member id (default: first member)")

	return cmd
}
