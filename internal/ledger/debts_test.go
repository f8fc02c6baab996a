package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

func TestAddDebt(t *testing.T) {
	led, _ := newTestLedger(t)

	debt, err := led.AddDebt(context.Background(), model.Debt{
		Person: "Yacine",
		Amount: money.MustParse("5000"),
		Type:   model.DebtLent,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, debt.ID)
	assert.Equal(t, money.MustParse("5000"), debt.RemainingAmount, "remaining initialized to full amount")
	assert.False(t, debt.IsPaid)
	assert.NotNil(t, debt.History)
	assert.Empty(t, debt.History)
}

func TestAddDebtValidation(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()

	_, err := led.AddDebt(ctx, model.Debt{Person: "X", Type: model.DebtLent})
	require.Error(t, err, "zero amount rejected")

	_, err = led.AddDebt(ctx, model.Debt{Person: "X", Amount: money.MustParse("10"), Type: "owed"})
	require.Error(t, err, "unknown type rejected")
}

func TestSettleDebtPartial(t *testing.T) {
	led, notifier := newTestLedger(t)
	ctx := context.Background()

	account := addAccount(t, led, "Cash", "0")
	debt, err := led.AddDebt(ctx, model.Debt{
		Person: "Amine",
		Amount: money.MustParse("1000"),
		Type:   model.DebtBorrowed,
	})
	require.NoError(t, err)

	// Paying back a borrowed debt needs funds first.
	_, err = led.AddTransaction(ctx, model.Transaction{
		Amount:    money.MustParse("1000"),
		Merchant:  "Salary",
		Category:  "Salary",
		Type:      model.TypeIncome,
		AccountID: account.ID,
	})
	require.NoError(t, err)

	partial := money.MustParse("600")
	require.NoError(t, led.SettleDebt(ctx, debt.ID, account.ID, &partial))

	got := led.Debts()[0]
	assert.Equal(t, money.MustParse("400"), got.RemainingAmount)
	assert.False(t, got.IsPaid)
	require.Len(t, got.History, 1)
	assert.Equal(t, money.MustParse("600"), got.History[0].Amount)

	// Settling borrowed money is an expense on the account.
	assert.Equal(t, money.MustParse("400"), accountBalance(t, led, account.ID))
	assert.Contains(t, notifier.messages, "Partial payment recorded ✅")

	// Remaining amount only ever shrinks across settlements.
	second := money.MustParse("100")
	require.NoError(t, led.SettleDebt(ctx, debt.ID, account.ID, &second))
	assert.Equal(t, money.MustParse("300"), led.Debts()[0].RemainingAmount)
}

func TestSettleDebtFull(t *testing.T) {
	led, notifier := newTestLedger(t)
	ctx := context.Background()

	account := addAccount(t, led, "Cash", "0")
	debt, err := led.AddDebt(ctx, model.Debt{
		Person: "Yacine",
		Amount: money.MustParse("5000"),
		Type:   model.DebtLent,
	})
	require.NoError(t, err)

	require.NoError(t, led.SettleDebt(ctx, debt.ID, account.ID, nil))

	got := led.Debts()[0]
	assert.True(t, got.IsPaid)
	assert.True(t, got.RemainingAmount.IsZero())

	// Getting lent money back is income.
	assert.Equal(t, money.MustParse("5000"), accountBalance(t, led, account.ID))
	assert.Contains(t, notifier.messages, "Debt fully settled ✅")

	require.Len(t, led.Transactions(), 1)
	txn := led.Transactions()[0]
	assert.Equal(t, model.TypeIncome, txn.Type)
	assert.Equal(t, "DebtRepayment", txn.Category)
	assert.Equal(t, "Debt settlement: Yacine", txn.Merchant)
}

func TestSettleDebtClampsOverpayment(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()

	account := addAccount(t, led, "Cash", "0")
	debt, err := led.AddDebt(ctx, model.Debt{
		Person: "Samia",
		Amount: money.MustParse("300"),
		Type:   model.DebtLent,
	})
	require.NoError(t, err)

	tooMuch := money.MustParse("1000")
	require.NoError(t, led.SettleDebt(ctx, debt.ID, account.ID, &tooMuch))

	got := led.Debts()[0]
	assert.True(t, got.IsPaid)
	assert.True(t, got.RemainingAmount.IsZero())
	assert.Equal(t, money.MustParse("300"), accountBalance(t, led, account.ID), "only the remainder moves")
}

func TestSettleDebtErrors(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()
	account := addAccount(t, led, "Cash", "0")

	err := led.SettleDebt(ctx, "missing", account.ID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// A settled debt cannot be settled again.
	debt, err := led.AddDebt(ctx, model.Debt{
		Person: "Nadir",
		Amount: money.MustParse("100"),
		Type:   model.DebtLent,
	})
	require.NoError(t, err)
	require.NoError(t, led.SettleDebt(ctx, debt.ID, account.ID, nil))

	err = led.SettleDebt(ctx, debt.ID, account.ID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidTransaction)
}
