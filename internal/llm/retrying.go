package llm

import (
	"context"

	"github.com/mizanapp/mizan/internal/common"
)

// retryingClient wraps a provider with rate limiting and retry with
// exponential backoff.
type retryingClient struct {
	inner   Client
	limiter *rateLimiter
}

func newRetryingClient(inner Client, requestsPerMinute int) *retryingClient {
	return &retryingClient{
		inner:   inner,
		limiter: newRateLimiter(requestsPerMinute),
	}
}

func (c *retryingClient) do(ctx context.Context, operation func() error) error {
	if err := c.limiter.wait(ctx); err != nil {
		return err
	}
	return common.WithRetry(ctx, operation, common.RetryOptions{})
}

// ParseTransactions extracts transaction guesses from free text.
func (c *retryingClient) ParseTransactions(ctx context.Context, input string, accounts []AccountRef, categories []string) ([]TransactionGuess, error) {
	var guesses []TransactionGuess
	err := c.do(ctx, func() error {
		var innerErr error
		guesses, innerErr = c.inner.ParseTransactions(ctx, input, accounts, categories)
		return innerErr
	})
	return guesses, err
}

// DailyBriefing generates a short financial briefing.
func (c *retryingClient) DailyBriefing(ctx context.Context, userName string, snapshot Snapshot) (Briefing, error) {
	var briefing Briefing
	err := c.do(ctx, func() error {
		var innerErr error
		briefing, innerErr = c.inner.DailyBriefing(ctx, userName, snapshot)
		return innerErr
	})
	return briefing, err
}

// SuggestBudget recommends a monthly limit for a category.
func (c *retryingClient) SuggestBudget(ctx context.Context, category string, history []SpendingPoint) (BudgetSuggestion, error) {
	var suggestion BudgetSuggestion
	err := c.do(ctx, func() error {
		var innerErr error
		suggestion, innerErr = c.inner.SuggestBudget(ctx, category, history)
		return innerErr
	})
	return suggestion, err
}

// Ask answers a generic financial question.
func (c *retryingClient) Ask(ctx context.Context, question string, snapshot Snapshot) (string, error) {
	var answer string
	err := c.do(ctx, func() error {
		var innerErr error
		answer, innerErr = c.inner.Ask(ctx, question, snapshot)
		return innerErr
	})
	return answer, err
}

// Close releases the rate limiter.
func (c *retryingClient) Close() {
	c.limiter.Close()
}
