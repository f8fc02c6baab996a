package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/config"
	"github.com/mizanapp/mizan/internal/ledger"
	"github.com/mizanapp/mizan/internal/llm"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
	"github.com/mizanapp/mizan/internal/storage"
)

// initLedger opens the database, runs migrations and loads the ledger.
// Callers must Close the returned storage when done.
func initLedger(ctx context.Context) (*ledger.Ledger, *storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	led, err := ledger.New(ctx, store, ledger.WithNotifier(cli.NewToastNotifier()))
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	return led, store, nil
}

// createLLMClient creates an LLM client based on configuration.
// Shared by every command that needs assistant functionality.
func createLLMClient() (llm.Client, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "openai"
	}

	cfg := llm.Config{
		Provider:          provider,
		Model:             viper.GetString("llm.model"),
		Temperature:       viper.GetFloat64("llm.temperature"),
		MaxTokens:         viper.GetInt("llm.max_tokens"),
		RequestsPerMinute: viper.GetInt("llm.rate_limit"),
	}

	if cfg.RequestsPerMinute == 0 {
		cfg.RequestsPerMinute = 60
	}

	switch provider {
	case "openai":
		apiKey := viper.GetString("llm.openai_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("OpenAI API key not found in config or OPENAI_API_KEY environment variable")
		}
		cfg.APIKey = apiKey

	case "anthropic":
		apiKey := viper.GetString("llm.anthropic_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("anthropic API key not found in config or ANTHROPIC_API_KEY environment variable")
		}
		cfg.APIKey = apiKey

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}

	return llm.NewClient(cfg)
}

// resolveAccount finds an account by exact id, then by case-insensitive
// name. An empty ref resolves to the first account when one exists.
func resolveAccount(led *ledger.Ledger, ref string) (model.Account, error) {
	accounts := led.Accounts()
	if len(accounts) == 0 {
		return model.Account{}, fmt.Errorf("no accounts exist yet; run 'mizan accounts add' first")
	}

	if ref == "" {
		return accounts[0], nil
	}

	for _, a := range accounts {
		if a.ID == ref {
			return a, nil
		}
	}
	for _, a := range accounts {
		if strings.EqualFold(a.Name, ref) {
			return a, nil
		}
	}

	return model.Account{}, fmt.Errorf("account %q not found", ref)
}

// formatAmount renders an amount with the configured currency symbol.
func formatAmount(led *ledger.Ledger, a money.Amount) string {
	return fmt.Sprintf("%s %s", a.String(), led.Settings().CurrencySymbol)
}

// accountRefs converts ledger accounts into prompt references.
func accountRefs(led *ledger.Ledger) []llm.AccountRef {
	accounts := led.Accounts()
	refs := make([]llm.AccountRef, 0, len(accounts))
	for _, a := range accounts {
		refs = append(refs, llm.AccountRef{ID: a.ID, Name: a.Name})
	}
	return refs
}

// buildSnapshot summarizes the ledger for briefing and question prompts.
func buildSnapshot(led *ledger.Ledger) llm.Snapshot {
	var total money.Amount
	for _, a := range led.Accounts() {
		total = total.Add(a.Balance)
	}

	var due money.Amount
	now := time.Now()
	for _, s := range led.Subscriptions() {
		if s.DueWithin(now, 7) {
			due = due.Add(s.Amount)
		}
	}

	var debts money.Amount
	for _, d := range led.Debts() {
		if !d.IsPaid && d.Type == model.DebtBorrowed {
			debts = debts.Add(d.RemainingAmount)
		}
	}

	recentCategory := "none"
	for _, t := range led.Transactions() {
		if t.Type == model.TypeExpense {
			recentCategory = t.Category
			break
		}
	}

	return llm.Snapshot{
		TotalBalance:     total.String(),
		ObligationsDue:   due.String(),
		DisposableCash:   total.Sub(due).String(),
		ActiveDebts:      debts.String(),
		RecentCategory:   recentCategory,
		OpenSubscription: len(led.Subscriptions()),
	}
}
