package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/ofx"
)

func init() {
	importOFXCmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX bank files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from
your bank. Statement lines are recorded against the chosen account.

Examples:
  mizan import-ofx ~/Downloads/bna_jan_2026.ofx --account Bank
  mizan import-ofx ~/Downloads/*.qfx --account Bank --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	importOFXCmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	importOFXCmd.Flags().StringP("account", "a", "", "Account to record imported transactions against")

	rootCmd.AddCommand(importOFXCmd)
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	accountRef, _ := cmd.Flags().GetString("account")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	led, store, err := initLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	acct, err := resolveAccount(led, accountRef)
	if err != nil {
		return err
	}

	parser := ofx.NewParser()
	var drafts []model.Transaction

	for _, filePath := range allFiles {
		f, err := os.Open(filePath)
		if err != nil {
			common.LogError(err, "Failed to open file", common.Fields{"file": filePath})
			continue
		}

		transactions, err := parser.ParseFile(cmd.Context(), f)
		f.Close()
		if err != nil {
			common.LogError(err, "Failed to parse OFX file", common.Fields{"file": filePath})
			continue
		}
		if len(transactions) == 0 {
			slog.Warn("No transactions found in file", "file", filepath.Base(filePath))
			continue
		}

		drafts = append(drafts, transactions...)
		common.LogInfo("Processed file", common.Fields{
			"file":         filepath.Base(filePath),
			"transactions": len(transactions),
		})
	}

	if len(drafts) == 0 {
		fmt.Println(cli.FormatWarning("No transactions found in any file"))
		return nil
	}

	if dryRun {
		fmt.Println(cli.FormatTitle("Dry run"))
		for _, d := range drafts {
			fmt.Printf("  %s  %s %s at %s\n", d.Date, d.Type, d.Amount, d.Merchant)
		}
		fmt.Println(cli.FormatInfo(fmt.Sprintf("%d transactions would be recorded against %s", len(drafts), acct.Name)))
		return nil
	}

	bar := progressbar.NewOptions(len(drafts),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing transactions...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	imported := 0
	for _, draft := range drafts {
		draft.AccountID = acct.ID
		if _, err := led.AddTransaction(cmd.Context(), draft); err != nil {
			slog.Warn("Skipped statement line", "merchant", draft.Merchant, "error", err)
		} else {
			imported++
		}
		_ = bar.Add(1)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d of %d transactions into %s",
		imported, len(drafts), acct.Name)))
	return nil
}
