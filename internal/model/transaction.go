// Package model defines the financial entities owned by the ledger.
// JSON tags match the persisted collection layout exactly, so blobs
// written by the store round-trip byte for byte.
package model

import (
	"fmt"
	"time"

	"github.com/mizanapp/mizan/internal/money"
)

// TransactionType enumerates the direction of a transaction.
type TransactionType string

const (
	// TypeIncome credits the source account.
	TypeIncome TransactionType = "income"
	// TypeExpense debits the source account.
	TypeExpense TransactionType = "expense"
	// TypeTransfer moves money between two accounts.
	TypeTransfer TransactionType = "transfer"
	// TypeDebt marks a debt event; it does not touch balances itself.
	TypeDebt TransactionType = "debt"
)

// TransactionStatus enumerates settlement states.
type TransactionStatus string

const (
	// StatusCompleted means the transaction has been applied.
	StatusCompleted TransactionStatus = "completed"
	// StatusPending means the transaction is expected but not applied.
	StatusPending TransactionStatus = "pending"
)

// DateLayout is the calendar-day format used for persisted dates.
const DateLayout = "2006-01-02"

// Transaction is a single ledger entry. Amount is always stored
// positive; direction is derived from Type at read time.
type Transaction struct {
	ID          string            `json:"id"`
	Amount      money.Amount      `json:"amount"`
	Category    string            `json:"category"`
	Merchant    string            `json:"merchant"`
	Date        string            `json:"date"`
	Note        string            `json:"note,omitempty"`
	Currency    string            `json:"currency"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	AccountID   string            `json:"accountId,omitempty"`
	ToAccountID string            `json:"toAccountId,omitempty"`
	IsGhost     bool              `json:"isGhost,omitempty"`
}

// ValidType reports whether t is one of the four transaction kinds.
func ValidType(t TransactionType) bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer, TypeDebt:
		return true
	}
	return false
}

// Validate checks the structural constraints of a transaction draft.
func (t *Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", t.Amount)
	}
	if !ValidType(t.Type) {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if t.Type == TypeTransfer && t.AccountID != "" && t.AccountID == t.ToAccountID {
		return fmt.Errorf("transfer must reference two distinct accounts")
	}
	return nil
}

// Time parses the transaction date. An empty or malformed date
// resolves to the zero time.
func (t *Transaction) Time() time.Time {
	parsed, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
