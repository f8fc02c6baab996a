package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/money"
)

func zakatCmd() *cobra.Command {
	var (
		goldPrice string
		assets    string
		debts     string
	)

	cmd := &cobra.Command{
		Use:   "zakat",
		Short: "Calculate zakat due on your wealth",
		Long: `Calculate zakat from your account balances, extra assets and
immediate debts. The nisab threshold is valued at 85 grams of gold;
wealth at or above it owes 2.5%.

Example:
  mizan zakat --gold-price 14500 --assets 200000 --debts 50000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			gold, err := money.Parse(goldPrice)
			if err != nil {
				return fmt.Errorf("invalid gold price %q: %w", goldPrice, err)
			}
			otherAssets := money.Amount(0)
			if assets != "" {
				otherAssets, err = money.Parse(assets)
				if err != nil {
					return fmt.Errorf("invalid assets %q: %w", assets, err)
				}
			}
			immediateDebts := money.Amount(0)
			if debts != "" {
				immediateDebts, err = money.Parse(debts)
				if err != nil {
					return fmt.Errorf("invalid debts %q: %w", debts, err)
				}
			}

			a := led.AssessZakat(gold, otherAssets, immediateDebts)

			content := fmt.Sprintf(
				"Cash on hand:  %s\nNet wealth:    %s\nNisab (85g):   %s\n",
				formatAmount(led, a.TotalCash),
				formatAmount(led, a.NetWealth),
				formatAmount(led, a.NisabValue))
			if a.Eligible {
				content += fmt.Sprintf("\nZakat due: %s",
					cli.BoldStyle.Render(formatAmount(led, a.ZakatDue)))
			} else {
				content += "\n" + cli.StyleInfo("Below nisab: no zakat due this year.")
			}
			fmt.Println(cli.RenderBox("🕌 Zakat assessment", content))
			return nil
		},
	}

	cmd.Flags().StringVar(&goldPrice, "gold-price", "", "current gold price per gram")
	cmd.Flags().StringVar(&assets, "assets", "", "other zakatable assets (gold, savings held elsewhere)")
	cmd.Flags().StringVar(&debts, "debts", "", "immediate debts to deduct")
	_ = cmd.MarkFlagRequired("gold-price")

	return cmd
}
