package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change app settings",
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())
	cmd.AddCommand(settingsDarkModeCmd())
	cmd.AddCommand(settingsCategoryCmd())
	cmd.AddCommand(settingsResetCmd())

	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			s := led.Settings()
			dark := "off"
			if led.DarkMode() {
				dark = "on"
			}
			demo := ""
			if s.IsDemoMode {
				demo = "  " + cli.StyleWarning("(demo mode)")
			}
			content := fmt.Sprintf(
				"Name:       %s%s\nCurrency:   %s (%s)\nTheme:      %s\nCard style: %s\nDark mode:  %s\nXP balance: %d",
				s.UserName, demo, s.Currency, s.CurrencySymbol, s.ThemeColor, s.CardStyle, dark, s.SpentXP)
			fmt.Println(cli.RenderBox("Settings", content))
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var (
		name     string
		currency string
		symbol   string
		theme    string
		pin      string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			err = led.UpdateSettings(cmd.Context(), func(s *model.Settings) {
				if name != "" {
					s.UserName = name
					s.IsOnboarded = true
				}
				if currency != "" {
					s.Currency = currency
				}
				if symbol != "" {
					s.CurrencySymbol = symbol
				}
				if theme != "" {
					s.ThemeColor = theme
					s.AutoThemeFromWallpaper = false
				}
				if pin != "" {
					s.SecurityPIN = pin
				}
			})
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Settings updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO currency code")
	cmd.Flags().StringVar(&symbol, "symbol", "", "currency symbol")
	cmd.Flags().StringVar(&theme, "theme", "", "theme color")
	cmd.Flags().StringVar(&pin, "pin", "", "security PIN")

	return cmd
}

func settingsDarkModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "darkmode <on|off>",
		Short: "Toggle dark mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			switch args[0] {
			case "on":
				return led.SetDarkMode(cmd.Context(), true)
			case "off":
				return led.SetDarkMode(cmd.Context(), false)
			default:
				return fmt.Errorf("expected 'on' or 'off', got %q", args[0])
			}
		},
	}
}

func settingsCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-category <name>",
		Short: "Add a custom spending category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := led.AddCustomCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Category added: " + args[0]))
			return nil
		},
	}
}

func settingsResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all data and start over",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				ok, err := cli.Confirm(cmd.Context(), os.Stdin, os.Stdout,
					"This erases every transaction, account and setting. Continue?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.FormatInfo("Nothing erased."))
					return nil
				}
			}

			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := led.ClearAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("All data erased"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
