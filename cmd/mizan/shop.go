package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/model"
)

func shopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Spend XP on cosmetic rewards",
	}

	cmd.AddCommand(shopListCmd())
	cmd.AddCommand(shopBuyCmd())
	cmd.AddCommand(shopEquipCmd())

	return cmd
}

func shopListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the catalog and XP balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Println(cli.FormatTitle("Shop"))
			fmt.Printf("  XP balance: %s\n\n", cli.BoldStyle.Render(fmt.Sprintf("%d", led.Settings().SpentXP)))
			for _, item := range led.ShopItems() {
				owned := ""
				if item.IsOwned {
					owned = "  " + cli.StyleSuccess("owned")
				}
				fmt.Printf("  %-14s %-18s %4d XP  %s%s\n",
					item.ID, item.Name, item.Cost,
					cli.SubtleStyle.Render(item.Description), owned)
			}
			return nil
		},
	}
}

func shopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a catalog item with XP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			// The ledger toasts both outcomes; nothing extra to print.
			_, err = led.BuyShopItem(cmd.Context(), args[0])
			return err
		},
	}
}

func shopEquipCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "equip <item-id>",
		Short: "Equip an owned item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			return led.EquipShopItem(cmd.Context(), args[0], model.ShopItemType(kind))
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", string(model.ShopItemTheme), "item type (theme, icon)")

	return cmd
}
