// Package ledger implements the single source of truth for all
// financial entities. Every mutation funnels through the operations
// defined here, and every mutation re-persists all collections.
//
// The ledger assumes exactly one active writer per data file.
// Concurrent processes race on the persisted slots with
// last-write-wins semantics; no merge is attempted.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/storage"
)

// Notifier receives transient user-facing messages (toasts).
type Notifier interface {
	Notify(message string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// Option configures a Ledger.
type Option func(*Ledger)

// WithNotifier routes user-facing notifications to n.
func WithNotifier(n Notifier) Option {
	return func(l *Ledger) { l.notifier = n }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// Ledger owns the in-memory collections and their persistence.
type Ledger struct {
	store    *storage.SQLiteStorage
	notifier Notifier
	now      func() time.Time
	lastID   int64

	transactions     []model.Transaction
	accounts         []model.Account
	budgets          []model.Budget
	savingsGoals     []model.SavingsGoal
	subscriptions    []model.Subscription
	debts            []model.Debt
	djam3ias         []model.Djam3ia
	customCategories []string
	shopItems        []model.ShopItem
	settings         model.Settings
	darkMode         bool
}

// New builds a ledger rehydrated from the given store.
func New(ctx context.Context, store *storage.SQLiteStorage, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store:    store,
		notifier: nopNotifier{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if err := l.reload(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

// reload replaces all in-memory collections with the persisted state.
// Missing or unparsable slots fall back to their empty defaults.
func (l *Ledger) reload(ctx context.Context) error {
	if err := loadSlot(ctx, l.store, storage.SlotTransactions, &l.transactions, []model.Transaction{}); err != nil {
		return err
	}
	if err := loadSlot(ctx, l.store, storage.SlotAccounts, &l.accounts, []model.Account{}); err != nil {
		return err
	}
	if err := loadSlot(ctx, l.store, storage.SlotBudgets, &l.budgets, []model.Budget{}); err != nil {
		return err
	}
	if err := loadSlot(ctx, l.store, storage.SlotSavingsGoals, &l.savingsGoals, []model.SavingsGoal{}); err != nil {
		return err
	}
	if err := loadSlot(ctx, l.store, storage.SlotSubscriptions, &l.subscriptions, []model.Subscription{}); err != nil {
		return err
	}
	if err := loadSlot(ctx, l.store, storage.SlotDebts, &l.debts, []model.Debt{}); err != nil {
		return err
	}
	if err := loadSlot(ctx, l.store, storage.SlotDjam3ias, &l.djam3ias, []model.Djam3ia{}); err != nil {
		return err
	}
	if err := loadSlot(ctx, l.store, storage.SlotCustomCategories, &l.customCategories, []string{}); err != nil {
		return err
	}
	if err := loadSlot(ctx, l.store, storage.SlotShopItems, &l.shopItems, model.DefaultShopItems()); err != nil {
		return err
	}
	if err := loadSlot(ctx, l.store, storage.SlotAppSettings, &l.settings, model.DefaultSettings()); err != nil {
		return err
	}
	// Dark mode defaults to on unless explicitly disabled.
	if err := loadSlot(ctx, l.store, storage.SlotDarkMode, &l.darkMode, true); err != nil {
		return err
	}
	return nil
}

// loadSlot reads one collection, substituting the fallback for missing
// or corrupt data. Only storage-level failures propagate.
func loadSlot[T any](ctx context.Context, store *storage.SQLiteStorage, slot string, out *T, fallback T) error {
	data, err := store.LoadRaw(ctx, slot)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", slot, err)
	}
	if len(data) == 0 {
		*out = fallback
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Warn("discarding unparsable collection", "slot", slot, "error", err)
		*out = fallback
	}
	return nil
}

// persist re-serializes every collection to its slot. Persistence cost
// is O(total data size) per mutation, which is fine at personal-ledger
// volumes.
func (l *Ledger) persist(ctx context.Context) error {
	slots := make(map[string][]byte, 11)
	for slot, v := range map[string]any{
		storage.SlotTransactions:     l.transactions,
		storage.SlotAccounts:         l.accounts,
		storage.SlotBudgets:          l.budgets,
		storage.SlotSavingsGoals:     l.savingsGoals,
		storage.SlotSubscriptions:    l.subscriptions,
		storage.SlotDebts:            l.debts,
		storage.SlotDjam3ias:         l.djam3ias,
		storage.SlotCustomCategories: l.customCategories,
		storage.SlotShopItems:        l.shopItems,
		storage.SlotAppSettings:      l.settings,
		storage.SlotDarkMode:         l.darkMode,
	} {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", slot, err)
		}
		slots[slot] = data
	}
	return l.store.SaveAll(ctx, slots)
}

// nextID returns a unique time-based identifier. Identifiers are
// monotonic even when several are minted in the same millisecond.
func (l *Ledger) nextID() string {
	candidate := l.now().UnixMilli()
	if candidate <= l.lastID {
		candidate = l.lastID + 1
	}
	l.lastID = candidate
	return strconv.FormatInt(candidate, 10)
}

func (l *Ledger) account(id string) *model.Account {
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			return &l.accounts[i]
		}
	}
	return nil
}

// Read accessors. Returned slices are owned by the ledger and must not
// be mutated by callers; all mutation goes through the operations.

// Transactions returns all transactions, newest first.
func (l *Ledger) Transactions() []model.Transaction { return l.transactions }

// Accounts returns all accounts.
func (l *Ledger) Accounts() []model.Account { return l.accounts }

// Budgets returns all budgets.
func (l *Ledger) Budgets() []model.Budget { return l.budgets }

// SavingsGoals returns all savings goals.
func (l *Ledger) SavingsGoals() []model.SavingsGoal { return l.savingsGoals }

// Subscriptions returns all subscriptions.
func (l *Ledger) Subscriptions() []model.Subscription { return l.subscriptions }

// Debts returns all debts.
func (l *Ledger) Debts() []model.Debt { return l.debts }

// Djam3ias returns all rotating savings circles.
func (l *Ledger) Djam3ias() []model.Djam3ia { return l.djam3ias }

// CustomCategories returns user-defined category names.
func (l *Ledger) CustomCategories() []string { return l.customCategories }

// ShopItems returns the rewards catalog.
func (l *Ledger) ShopItems() []model.ShopItem { return l.shopItems }

// Settings returns the settings record.
func (l *Ledger) Settings() model.Settings { return l.settings }

// DarkMode returns the persisted dark mode flag.
func (l *Ledger) DarkMode() bool { return l.darkMode }
