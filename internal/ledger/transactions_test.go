package ledger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

func TestAddTransactionExpense(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()

	account := addAccount(t, led, "Cash", "1000")
	_, err := led.AddBudget(ctx, model.Budget{Category: "Food", Limit: money.MustParse("500")})
	require.NoError(t, err)

	txn, err := led.AddTransaction(ctx, model.Transaction{
		Amount:    money.MustParse("200"),
		Merchant:  "Market",
		Category:  "Food",
		Type:      model.TypeExpense,
		AccountID: account.ID,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, txn.ID)
	assert.Equal(t, "2026-03-15", txn.Date, "defaults to today")
	assert.Equal(t, "DZD", txn.Currency)
	assert.Equal(t, model.StatusCompleted, txn.Status)

	assert.Equal(t, money.MustParse("800"), accountBalance(t, led, account.ID))
	assert.Equal(t, money.MustParse("200"), led.Budgets()[0].Spent)
}

func TestAddTransactionIncome(t *testing.T) {
	led, _ := newTestLedger(t)

	account := addAccount(t, led, "Bank", "500")
	_, err := led.AddTransaction(context.Background(), model.Transaction{
		Amount:    money.MustParse("50000"),
		Merchant:  "Salary",
		Category:  "Salary",
		Type:      model.TypeIncome,
		AccountID: account.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, money.MustParse("50500"), accountBalance(t, led, account.ID))
}

func TestAddTransactionValidation(t *testing.T) {
	led, _ := newTestLedger(t)
	account := addAccount(t, led, "Cash", "1000")

	tests := []struct {
		name    string
		draft   model.Transaction
		wantErr error
	}{
		{
			name: "zero amount",
			draft: model.Transaction{
				Merchant:  "X",
				Category:  "General",
				Type:      model.TypeExpense,
				AccountID: account.ID,
			},
			wantErr: common.ErrInvalidTransaction,
		},
		{
			name: "negative amount",
			draft: model.Transaction{
				Amount:    money.MustParse("-5"),
				Merchant:  "X",
				Category:  "General",
				Type:      model.TypeExpense,
				AccountID: account.ID,
			},
			wantErr: common.ErrInvalidTransaction,
		},
		{
			name: "unknown type",
			draft: model.Transaction{
				Amount:    money.MustParse("5"),
				Merchant:  "X",
				Category:  "General",
				Type:      "gift",
				AccountID: account.ID,
			},
			wantErr: common.ErrInvalidTransaction,
		},
		{
			name: "unknown account",
			draft: model.Transaction{
				Amount:    money.MustParse("5"),
				Merchant:  "X",
				Category:  "General",
				Type:      model.TypeExpense,
				AccountID: "nope",
			},
			wantErr: common.ErrInvalidAccount,
		},
		{
			name: "transfer without destination",
			draft: model.Transaction{
				Amount:    money.MustParse("5"),
				Merchant:  "transfer",
				Category:  "Transfer",
				Type:      model.TypeTransfer,
				AccountID: account.ID,
			},
			wantErr: common.ErrMissingDestination,
		},
		{
			name: "transfer to unknown destination",
			draft: model.Transaction{
				Amount:      money.MustParse("5"),
				Merchant:    "transfer",
				Category:    "Transfer",
				Type:        model.TypeTransfer,
				AccountID:   account.ID,
				ToAccountID: "nope",
			},
			wantErr: common.ErrMissingDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := led.AddTransaction(context.Background(), tt.draft)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Failed adds must leave no trace.
	assert.Empty(t, led.Transactions())
	assert.Equal(t, money.MustParse("1000"), accountBalance(t, led, account.ID))
}

func TestTransferConservesTotalBalance(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()

	src := addAccount(t, led, "Cash", "3000")
	dst := addAccount(t, led, "Bank", "7000")

	_, err := led.AddTransaction(ctx, model.Transaction{
		Amount:      money.MustParse("1200"),
		Merchant:    "transfer",
		Category:    "Transfer",
		Type:        model.TypeTransfer,
		AccountID:   src.ID,
		ToAccountID: dst.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, money.MustParse("1800"), accountBalance(t, led, src.ID))
	assert.Equal(t, money.MustParse("8200"), accountBalance(t, led, dst.ID))
	assert.Equal(t, money.MustParse("10000"), led.Stats().Balance, "total is conserved")

	stats := led.Stats()
	assert.True(t, stats.Income.IsZero(), "transfers are not income")
	assert.True(t, stats.Expense.IsZero(), "transfers are not expenses")
}

func TestBudgetAccumulatesAcrossExpenses(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()

	account := addAccount(t, led, "Cash", "10000")
	_, err := led.AddBudget(ctx, model.Budget{Category: "Food", Limit: money.MustParse("1000")})
	require.NoError(t, err)

	amounts := []string{"150", "220.50", "79.50"}
	for _, a := range amounts {
		_, err := led.AddTransaction(ctx, model.Transaction{
			Amount:    money.MustParse(a),
			Merchant:  "Market",
			Category:  "Food",
			Type:      model.TypeExpense,
			AccountID: account.ID,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, money.MustParse("450"), led.Budgets()[0].Spent)

	// Other categories leave the budget untouched.
	_, err = led.AddTransaction(ctx, model.Transaction{
		Amount:    money.MustParse("99"),
		Merchant:  "Taxi",
		Category:  "Transport",
		Type:      model.TypeExpense,
		AccountID: account.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, money.MustParse("450"), led.Budgets()[0].Spent)
}

func TestDeleteTransactionReversesEffects(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()

	account := addAccount(t, led, "Cash", "1000")
	_, err := led.AddBudget(ctx, model.Budget{Category: "Food", Limit: money.MustParse("500")})
	require.NoError(t, err)

	txn, err := led.AddTransaction(ctx, model.Transaction{
		Amount:    money.MustParse("200"),
		Merchant:  "Market",
		Category:  "Food",
		Type:      model.TypeExpense,
		AccountID: account.ID,
	})
	require.NoError(t, err)

	require.NoError(t, led.DeleteTransaction(ctx, txn.ID))

	assert.Empty(t, led.Transactions())
	assert.Equal(t, money.MustParse("1000"), accountBalance(t, led, account.ID))
	assert.True(t, led.Budgets()[0].Spent.IsZero())
}

func TestDeleteTransactionClampsBudgetAtZero(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()

	account := addAccount(t, led, "Cash", "1000")

	// Expense recorded before the budget existed.
	txn, err := led.AddTransaction(ctx, model.Transaction{
		Amount:    money.MustParse("200"),
		Merchant:  "Market",
		Category:  "Food",
		Type:      model.TypeExpense,
		AccountID: account.ID,
	})
	require.NoError(t, err)

	_, err = led.AddBudget(ctx, model.Budget{Category: "Food", Limit: money.MustParse("500")})
	require.NoError(t, err)

	require.NoError(t, led.DeleteTransaction(ctx, txn.ID))
	assert.True(t, led.Budgets()[0].Spent.IsZero(), "reversal never drives spent negative")
}

func TestDeleteTransactionNotFound(t *testing.T) {
	led, _ := newTestLedger(t)

	err := led.DeleteTransaction(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestXPReward(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()
	account := addAccount(t, led, "Cash", "1000")

	_, err := led.AddTransaction(ctx, model.Transaction{
		Amount:    money.MustParse("10"),
		Merchant:  "Kiosk",
		Category:  "General",
		Type:      model.TypeExpense,
		AccountID: account.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, led.Settings().SpentXP)

	// Demo mode suspends rewards.
	require.NoError(t, led.UpdateSettings(ctx, func(s *model.Settings) {
		s.IsDemoMode = true
	}))
	_, err = led.AddTransaction(ctx, model.Transaction{
		Amount:    money.MustParse("10"),
		Merchant:  "Kiosk",
		Category:  "General",
		Type:      model.TypeExpense,
		AccountID: account.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, led.Settings().SpentXP)
}

func TestGhostTransactions(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()

	sub, err := led.AddSubscription(ctx, model.Subscription{
		Name:            "Netflix",
		Amount:          money.MustParse("1500"),
		BillingCycle:    model.BillingMonthly,
		NextBillingDate: "2026-03-20",
		Category:        "Subscriptions",
	})
	require.NoError(t, err)

	ghosts := led.GhostTransactions()
	require.Len(t, ghosts, 1)
	assert.Equal(t, "ghost-"+sub.ID, ghosts[0].ID)
	assert.True(t, ghosts[0].IsGhost)
	assert.Equal(t, model.StatusPending, ghosts[0].Status)
	assert.Equal(t, model.TypeExpense, ghosts[0].Type)
	assert.Equal(t, "Netflix", ghosts[0].Merchant)

	assert.Empty(t, led.Transactions(), "ghosts are never persisted")
}

func TestTransactionsWithGhostsOrdering(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()
	account := addAccount(t, led, "Cash", "10000")

	_, err := led.AddTransaction(ctx, model.Transaction{
		Amount:    money.MustParse("100"),
		Merchant:  "Old",
		Category:  "General",
		Date:      "2026-03-01",
		Type:      model.TypeExpense,
		AccountID: account.ID,
	})
	require.NoError(t, err)

	_, err = led.AddSubscription(ctx, model.Subscription{
		Name:            "Spotify",
		Amount:          money.MustParse("900"),
		BillingCycle:    model.BillingMonthly,
		NextBillingDate: "2026-03-25",
		Category:        "Subscriptions",
	})
	require.NoError(t, err)

	merged := led.TransactionsWithGhosts()
	require.Len(t, merged, 2)
	assert.Equal(t, "Spotify", merged[0].Merchant, "newest first")
	assert.Equal(t, "Old", merged[1].Merchant)
}

func TestExportCSV(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()
	account := addAccount(t, led, "Cash", "10000")

	_, err := led.AddTransaction(ctx, model.Transaction{
		Amount:    money.MustParse("250"),
		Merchant:  `Cafe "El Bahdja"`,
		Category:  "Food",
		Date:      "2026-03-10",
		Type:      model.TypeExpense,
		AccountID: account.ID,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, led.ExportCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Merchant,Category,Amount,Currency,Type", lines[0])
	assert.Equal(t, `2026-03-10,"Cafe \"El Bahdja\"",Food,250,DZD,expense`, lines[1])
}
