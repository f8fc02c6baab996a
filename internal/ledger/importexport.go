package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/storage"
)

// importableSlots are the top-level keys an import payload may carry.
// Present keys overwrite their persisted slots verbatim; everything
// else in the payload is ignored.
var importableSlots = []string{
	storage.SlotTransactions,
	storage.SlotAccounts,
	storage.SlotBudgets,
	storage.SlotSavingsGoals,
	storage.SlotDebts,
	storage.SlotCustomCategories,
}

// ImportData replaces persisted collections from a JSON export. The
// write bypasses in-memory state and is followed by a full reload, so
// the ledger reinitializes from exactly what was written. A payload
// that fails to parse aborts with no partial changes.
func (l *Ledger) ImportData(ctx context.Context, payload []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		l.notifier.Notify("Import failed: invalid file")
		return fmt.Errorf("%w: %v", common.ErrInvalidImport, err)
	}

	for _, slot := range importableSlots {
		raw, ok := doc[slot]
		if !ok {
			continue
		}
		if err := l.store.SaveRaw(ctx, slot, raw); err != nil {
			return err
		}
	}

	if err := l.reload(ctx); err != nil {
		return err
	}

	l.notifier.Notify("Data imported successfully")
	return nil
}

// ExportData serializes the collections covered by the import format.
func (l *Ledger) ExportData() ([]byte, error) {
	doc := map[string]any{
		storage.SlotTransactions:     l.transactions,
		storage.SlotAccounts:         l.accounts,
		storage.SlotBudgets:          l.budgets,
		storage.SlotSavingsGoals:     l.savingsGoals,
		storage.SlotDebts:            l.debts,
		storage.SlotCustomCategories: l.customCategories,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return data, nil
}
