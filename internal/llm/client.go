// Package llm talks to a large-language-model provider to turn free
// text into structured transaction guesses and to generate short
// financial briefings. Providers are interchangeable behind Client;
// every failure degrades to an empty result at the call site, never a
// crash.
package llm

import "context"

// AccountRef identifies an account in prompts, so the model can pick
// the most plausible one for a guess.
type AccountRef struct {
	ID   string
	Name string
}

// TransactionGuess is one structured guess extracted from free text,
// voice or a receipt. Amount is in major currency units as returned by
// the model; callers convert to fixed-point at the boundary.
type TransactionGuess struct {
	Amount     float64 `json:"amount"`
	Merchant   string  `json:"merchant"`
	Category   string  `json:"category"`
	Type       string  `json:"type"`
	DebtType   string  `json:"debtType,omitempty"`
	PersonName string  `json:"personName,omitempty"`
	AccountID  string  `json:"accountId,omitempty"`
}

// Briefing is a short daily financial summary with a coarse mood tag.
type Briefing struct {
	Text string `json:"text"`
	Mood string `json:"mood"` // happy, neutral or concerned
}

// BudgetSuggestion is a recommended monthly limit for a category.
type BudgetSuggestion struct {
	SuggestedLimit float64 `json:"suggestedLimit"`
	Reason         string  `json:"reason"`
}

// SpendingPoint is one historical expense used as budget context.
type SpendingPoint struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Merchant string  `json:"merchant"`
}

// Snapshot summarizes the caller's finances for briefing and question
// prompts.
type Snapshot struct {
	TotalBalance     string `json:"total_cash"`
	ObligationsDue   string `json:"obligations_next_7_days"`
	DisposableCash   string `json:"real_disposable_cash"`
	ActiveDebts      string `json:"active_debts"`
	RecentCategory   string `json:"recent_spending_category"`
	OpenSubscription int    `json:"subscription_count"`
}

// Client defines the interface for LLM providers.
type Client interface {
	// ParseTransactions extracts zero or more transaction guesses from
	// free text. An empty slice is a valid, non-error outcome.
	ParseTransactions(ctx context.Context, input string, accounts []AccountRef, categories []string) ([]TransactionGuess, error)

	// DailyBriefing produces a two-sentence briefing plus a mood tag.
	DailyBriefing(ctx context.Context, userName string, snapshot Snapshot) (Briefing, error)

	// SuggestBudget recommends a monthly limit for a category given
	// its spending history.
	SuggestBudget(ctx context.Context, category string, history []SpendingPoint) (BudgetSuggestion, error)

	// Ask answers a generic financial question in free text.
	Ask(ctx context.Context, question string, snapshot Snapshot) (string, error)
}

// Config holds provider configuration.
type Config struct {
	Provider          string
	APIKey            string
	Model             string
	Temperature       float64
	MaxTokens         int
	RequestsPerMinute int
}
