package main

import (
	"github.com/spf13/cobra"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Load a demo dataset",
		Long: `Replace current data with a realistic demo dataset. XP rewards are
disabled while demo mode is active.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			return led.SeedDemo(cmd.Context())
		},
	}
}
