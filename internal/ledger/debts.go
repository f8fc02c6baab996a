package ledger

import (
	"context"
	"fmt"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

// AddDebt registers a new debt. A zero remaining amount is initialized
// to the full amount.
func (l *Ledger) AddDebt(ctx context.Context, debt model.Debt) (model.Debt, error) {
	if !debt.Amount.IsPositive() {
		return model.Debt{}, fmt.Errorf("%w: debt amount must be positive", common.ErrInvalidTransaction)
	}
	if debt.Type != model.DebtLent && debt.Type != model.DebtBorrowed {
		return model.Debt{}, fmt.Errorf("unknown debt type %q", debt.Type)
	}
	if debt.ID == "" {
		debt.ID = l.nextID()
	}
	if debt.RemainingAmount.IsZero() {
		debt.RemainingAmount = debt.Amount
	}
	if debt.History == nil {
		debt.History = []model.DebtPayment{}
	}
	l.debts = append(l.debts, debt)
	if err := l.persist(ctx); err != nil {
		return model.Debt{}, err
	}
	return debt, nil
}

// SettleDebt records a settlement against a debt. A nil partial amount
// settles the full remaining amount; a partial amount is clamped to
// the remaining amount. The settlement reaches account balances
// through AddTransaction, mirrored against the debt direction:
// settling a lent debt produces income, settling a borrowed debt
// produces an expense.
func (l *Ledger) SettleDebt(ctx context.Context, debtID, accountID string, partial *money.Amount) error {
	var debt *model.Debt
	for i := range l.debts {
		if l.debts[i].ID == debtID {
			debt = &l.debts[i]
			break
		}
	}
	if debt == nil {
		return fmt.Errorf("debt %q: %w", debtID, common.ErrNotFound)
	}

	amount := debt.RemainingAmount
	if partial != nil {
		amount = money.Min(*partial, debt.RemainingAmount)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: nothing left to settle", common.ErrInvalidTransaction)
	}

	direction := model.TypeExpense
	if debt.Type == model.DebtLent {
		direction = model.TypeIncome
	}

	if _, err := l.AddTransaction(ctx, model.Transaction{
		Amount:    amount,
		Category:  "DebtRepayment",
		Merchant:  "Debt settlement: " + debt.Person,
		Type:      direction,
		Status:    model.StatusCompleted,
		AccountID: accountID,
	}); err != nil {
		return err
	}

	full := amount == debt.RemainingAmount
	debt.RemainingAmount = debt.RemainingAmount.Sub(amount)
	debt.IsPaid = !debt.RemainingAmount.IsPositive()
	debt.History = append(debt.History, model.DebtPayment{
		Amount: amount,
		Date:   l.now().Format(model.DateLayout),
		Note:   "Partial payment",
	})

	if err := l.persist(ctx); err != nil {
		return err
	}

	if full {
		l.notifier.Notify("Debt fully settled ✅")
	} else {
		l.notifier.Notify("Partial payment recorded ✅")
	}
	return nil
}
