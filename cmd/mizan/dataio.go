package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as a JSON backup",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			payload, err := led.ExportData()
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Println(string(payload))
				return nil
			}
			if err := os.WriteFile(output, payload, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Println(cli.FormatSuccess("Backup written to " + output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write backup to file instead of stdout")

	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore data from a JSON backup",
		Long: `Restore collections from a JSON backup file. Only the collections
present in the file are replaced; everything else is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, store, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			return led.ImportData(cmd.Context(), payload)
		},
	}
}
