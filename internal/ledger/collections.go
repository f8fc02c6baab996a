package ledger

import (
	"context"
	"fmt"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

// AddAccount registers a new account.
func (l *Ledger) AddAccount(ctx context.Context, account model.Account) (model.Account, error) {
	if account.Name == "" {
		return model.Account{}, fmt.Errorf("%w: account name required", common.ErrInvalidAccount)
	}
	if account.ID == "" {
		account.ID = l.nextID()
	}
	if account.Currency == "" {
		account.Currency = l.settings.Currency
	}
	l.accounts = append(l.accounts, account)
	if err := l.persist(ctx); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// AddBudget registers a per-category spending budget.
func (l *Ledger) AddBudget(ctx context.Context, budget model.Budget) (model.Budget, error) {
	if budget.Category == "" {
		return model.Budget{}, fmt.Errorf("budget category required")
	}
	if budget.ID == "" {
		budget.ID = l.nextID()
	}
	l.budgets = append(l.budgets, budget)
	if err := l.persist(ctx); err != nil {
		return model.Budget{}, err
	}
	return budget, nil
}

// AddSavingsGoal registers a savings goal.
func (l *Ledger) AddSavingsGoal(ctx context.Context, goal model.SavingsGoal) (model.SavingsGoal, error) {
	if goal.Name == "" {
		return model.SavingsGoal{}, fmt.Errorf("goal name required")
	}
	if goal.ID == "" {
		goal.ID = l.nextID()
	}
	l.savingsGoals = append(l.savingsGoals, goal)
	if err := l.persist(ctx); err != nil {
		return model.SavingsGoal{}, err
	}
	return goal, nil
}

// AddToGoal increases a goal's saved amount. Saved only ever grows
// through this operation.
func (l *Ledger) AddToGoal(ctx context.Context, goalID string, amount money.Amount) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", common.ErrInvalidTransaction)
	}
	for i := range l.savingsGoals {
		if l.savingsGoals[i].ID == goalID {
			l.savingsGoals[i].Saved = l.savingsGoals[i].Saved.Add(amount)
			return l.persist(ctx)
		}
	}
	return fmt.Errorf("savings goal %q: %w", goalID, common.ErrNotFound)
}

// AddSubscription registers a recurring charge.
func (l *Ledger) AddSubscription(ctx context.Context, sub model.Subscription) (model.Subscription, error) {
	if sub.Name == "" {
		return model.Subscription{}, fmt.Errorf("subscription name required")
	}
	if sub.BillingCycle != model.BillingMonthly && sub.BillingCycle != model.BillingYearly {
		return model.Subscription{}, fmt.Errorf("unknown billing cycle %q", sub.BillingCycle)
	}
	if sub.ID == "" {
		sub.ID = l.nextID()
	}
	l.subscriptions = append(l.subscriptions, sub)
	if err := l.persist(ctx); err != nil {
		return model.Subscription{}, err
	}
	return sub, nil
}

// DeleteSubscription removes a subscription by id.
func (l *Ledger) DeleteSubscription(ctx context.Context, id string) error {
	for i := range l.subscriptions {
		if l.subscriptions[i].ID == id {
			l.subscriptions = append(l.subscriptions[:i], l.subscriptions[i+1:]...)
			return l.persist(ctx)
		}
	}
	return fmt.Errorf("subscription %q: %w", id, common.ErrNotFound)
}

// AddCustomCategory adds a user-defined category name; duplicates of
// built-in or existing custom names are ignored.
func (l *Ledger) AddCustomCategory(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("category name required")
	}
	for _, existing := range model.CategoryNames(l.customCategories) {
		if existing == name {
			return nil
		}
	}
	l.customCategories = append(l.customCategories, name)
	return l.persist(ctx)
}

// UpdateSettings applies a shallow mutation to the settings record and
// persists the result.
func (l *Ledger) UpdateSettings(ctx context.Context, apply func(*model.Settings)) error {
	apply(&l.settings)
	return l.persist(ctx)
}

// SetDarkMode persists the dark mode preference.
func (l *Ledger) SetDarkMode(ctx context.Context, on bool) error {
	l.darkMode = on
	return l.persist(ctx)
}

// ClearAll wipes every persisted slot and resets the in-memory state
// to first-run defaults.
func (l *Ledger) ClearAll(ctx context.Context) error {
	if err := l.store.DeleteAll(ctx); err != nil {
		return err
	}
	return l.reload(ctx)
}
