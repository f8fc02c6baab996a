package ledger

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

func TestExportImportRoundTrip(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()

	account := addAccount(t, led, "Cash", "1000")
	_, err := led.AddBudget(ctx, model.Budget{Category: "Food", Limit: money.MustParse("500")})
	require.NoError(t, err)
	_, err = led.AddTransaction(ctx, model.Transaction{
		Amount:    money.MustParse("200"),
		Merchant:  "Market",
		Category:  "Food",
		Type:      model.TypeExpense,
		AccountID: account.ID,
	})
	require.NoError(t, err)
	_, err = led.AddDebt(ctx, model.Debt{
		Person: "Yacine",
		Amount: money.MustParse("5000"),
		Type:   model.DebtLent,
	})
	require.NoError(t, err)

	payload, err := led.ExportData()
	require.NoError(t, err)

	// Restoring the backup into a fresh ledger reproduces the state.
	restored, _ := newTestLedger(t)
	require.NoError(t, restored.ImportData(ctx, payload))

	assert.Equal(t, led.Transactions(), restored.Transactions())
	assert.Equal(t, led.Accounts(), restored.Accounts())
	assert.Equal(t, led.Budgets(), restored.Budgets())
	assert.Equal(t, led.Debts(), restored.Debts())
}

func TestImportReplacesOnlyPresentCollections(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()

	account := addAccount(t, led, "Cash", "1000")
	_, err := led.AddBudget(ctx, model.Budget{Category: "Food", Limit: money.MustParse("500")})
	require.NoError(t, err)
	_, err = led.AddDebt(ctx, model.Debt{
		Person: "Amine",
		Amount: money.MustParse("700"),
		Type:   model.DebtBorrowed,
	})
	require.NoError(t, err)

	// Payload carries only transactions.
	imported := []model.Transaction{{
		ID:        "t1",
		Amount:    money.MustParse("42"),
		Merchant:  "Imported",
		Category:  "General",
		Date:      "2026-01-01",
		Currency:  "DZD",
		Type:      model.TypeExpense,
		Status:    model.StatusCompleted,
		AccountID: account.ID,
	}}
	payload, err := json.Marshal(map[string]any{"transactions": imported})
	require.NoError(t, err)

	require.NoError(t, led.ImportData(ctx, payload))

	assert.Equal(t, imported, led.Transactions())
	require.Len(t, led.Accounts(), 1, "absent collections untouched")
	assert.Equal(t, money.MustParse("1000"), led.Accounts()[0].Balance,
		"imported transactions carry no balance side effects")
	assert.Len(t, led.Budgets(), 1)
	assert.Len(t, led.Debts(), 1)
}

func TestImportRejectsInvalidPayload(t *testing.T) {
	led, notifier := newTestLedger(t)
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
	before := led.Transactions()

	err = led.ImportData(ctx, []byte(`{broken`))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidImport)

	assert.Equal(t, before, led.Transactions(), "no partial changes")
	assert.Contains(t, notifier.messages, "Import failed: invalid file")
}

func TestImportIgnoresUnknownKeys(t *testing.T) {
	led, _ := newTestLedger(t)

	payload := []byte(`{"hackerSlot": [1,2,3], "customCategories": ["Crypto"]}`)
	require.NoError(t, led.ImportData(context.Background(), payload))

	assert.Equal(t, []string{"Crypto"}, led.CustomCategories())
}
