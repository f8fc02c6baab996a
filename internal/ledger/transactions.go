package ledger

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

// xpPerTransaction is the reward-currency increment awarded for
// recording a transaction outside demo mode.
const xpPerTransaction = 10

// AddTransaction assigns an id to the draft, prepends it to the
// transaction collection and applies its effects: account balances,
// budget accumulation and the XP reward. A transfer whose destination
// account cannot be resolved is rejected outright, so balance
// conservation holds across all accounts.
func (l *Ledger) AddTransaction(ctx context.Context, draft model.Transaction) (model.Transaction, error) {
	if draft.Date == "" {
		draft.Date = l.now().Format(model.DateLayout)
	}
	if draft.Currency == "" {
		draft.Currency = l.settings.Currency
	}
	if draft.Status == "" {
		draft.Status = model.StatusCompleted
	}

	if err := draft.Validate(); err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", common.ErrInvalidTransaction, err)
	}

	switch draft.Type {
	case model.TypeIncome, model.TypeExpense:
		if l.account(draft.AccountID) == nil {
			return model.Transaction{}, fmt.Errorf("%w: %q", common.ErrInvalidAccount, draft.AccountID)
		}
	case model.TypeTransfer:
		if l.account(draft.AccountID) == nil {
			return model.Transaction{}, fmt.Errorf("%w: %q", common.ErrInvalidAccount, draft.AccountID)
		}
		if draft.ToAccountID == "" || l.account(draft.ToAccountID) == nil {
			return model.Transaction{}, common.ErrMissingDestination
		}
	case model.TypeDebt:
		// Debt markers carry no balance effect; an account is optional.
		if draft.AccountID != "" && l.account(draft.AccountID) == nil {
			return model.Transaction{}, fmt.Errorf("%w: %q", common.ErrInvalidAccount, draft.AccountID)
		}
	}

	draft.ID = l.nextID()
	draft.IsGhost = false
	l.transactions = append([]model.Transaction{draft}, l.transactions...)

	l.applyTransaction(draft, 1)

	if !l.settings.IsDemoMode {
		l.settings.SpentXP += xpPerTransaction
	}

	if err := l.persist(ctx); err != nil {
		return model.Transaction{}, err
	}
	return draft, nil
}

// DeleteTransaction removes a transaction by id and reverses its
// balance and budget effects, so deleting is the exact inverse of
// adding.
func (l *Ledger) DeleteTransaction(ctx context.Context, id string) error {
	idx := -1
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("transaction %q: %w", id, common.ErrNotFound)
	}

	txn := l.transactions[idx]
	l.transactions = append(l.transactions[:idx], l.transactions[idx+1:]...)
	l.applyTransaction(txn, -1)

	return l.persist(ctx)
}

// applyTransaction applies (sign=1) or reverses (sign=-1) the balance
// and budget effects of a transaction.
func (l *Ledger) applyTransaction(txn model.Transaction, sign int64) {
	delta := money.Amount(int64(txn.Amount) * sign)

	if acc := l.account(txn.AccountID); acc != nil {
		switch txn.Type {
		case model.TypeIncome:
			acc.Balance = acc.Balance.Add(delta)
		case model.TypeExpense, model.TypeTransfer:
			acc.Balance = acc.Balance.Sub(delta)
		case model.TypeDebt:
			// No balance effect; settlement produces its own entries.
		}
	}
	if txn.Type == model.TypeTransfer {
		if dst := l.account(txn.ToAccountID); dst != nil {
			dst.Balance = dst.Balance.Add(delta)
		}
	}

	if txn.Type == model.TypeExpense {
		// Every budget sharing the category accumulates; no dedup.
		for i := range l.budgets {
			if l.budgets[i].Category == txn.Category {
				spent := l.budgets[i].Spent.Add(delta)
				if spent.IsNegative() {
					spent = money.Zero
				}
				l.budgets[i].Spent = spent
			}
		}
	}
}

// Stats aggregates the headline numbers for the dashboard surfaces.
type Stats struct {
	Income  money.Amount
	Expense money.Amount
	Balance money.Amount
}

// Stats sums income, expenses and the total balance across accounts.
func (l *Ledger) Stats() Stats {
	var s Stats
	for _, t := range l.transactions {
		switch t.Type {
		case model.TypeIncome:
			s.Income = s.Income.Add(t.Amount)
		case model.TypeExpense:
			s.Expense = s.Expense.Add(t.Amount)
		case model.TypeTransfer, model.TypeDebt:
		}
	}
	for _, a := range l.accounts {
		s.Balance = s.Balance.Add(a.Balance)
	}
	return s
}

// GhostTransactions synthesizes pending transaction-shaped entries for
// upcoming subscription charges. Ghosts are never persisted.
func (l *Ledger) GhostTransactions() []model.Transaction {
	ghosts := make([]model.Transaction, 0, len(l.subscriptions))
	for _, sub := range l.subscriptions {
		ghosts = append(ghosts, model.Transaction{
			ID:       "ghost-" + sub.ID,
			Amount:   sub.Amount,
			Category: sub.Category,
			Merchant: sub.Name,
			Date:     sub.NextBillingDate,
			Currency: l.settings.Currency,
			Type:     model.TypeExpense,
			Status:   model.StatusPending,
			IsGhost:  true,
		})
	}
	return ghosts
}

// TransactionsWithGhosts merges real and ghost entries, newest first.
func (l *Ledger) TransactionsWithGhosts() []model.Transaction {
	merged := make([]model.Transaction, 0, len(l.transactions)+len(l.subscriptions))
	merged = append(merged, l.transactions...)
	merged = append(merged, l.GhostTransactions()...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Time().After(merged[j].Time())
	})
	return merged
}

// ExportCSV writes all transactions as CSV with the fixed header
// Date,Merchant,Category,Amount,Currency,Type. The merchant field is
// quoted; the rest are emitted verbatim.
func (l *Ledger) ExportCSV(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Date,Merchant,Category,Amount,Currency,Type"); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, t := range l.transactions {
		if _, err := fmt.Fprintf(w, "%s,%q,%s,%s,%s,%s\n",
			t.Date, t.Merchant, t.Category, t.Amount, t.Currency, t.Type); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return nil
}
