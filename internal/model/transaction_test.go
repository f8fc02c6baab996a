package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizanapp/mizan/internal/money"
)

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		txn     Transaction
		wantErr bool
	}{
		{
			name: "valid expense",
			txn: Transaction{
				Amount:   money.MustParse("10"),
				Merchant: "Cafe",
				Type:     TypeExpense,
			},
		},
		{
			name: "zero amount",
			txn: Transaction{
				Merchant: "Cafe",
				Type:     TypeExpense,
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			txn: Transaction{
				Amount: money.MustParse("-1"),
				Type:   TypeExpense,
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			txn: Transaction{
				Amount: money.MustParse("10"),
				Type:   "refund",
			},
			wantErr: true,
		},
		{
			name: "self transfer",
			txn: Transaction{
				Amount:      money.MustParse("10"),
				Type:        TypeTransfer,
				AccountID:   "a1",
				ToAccountID: "a1",
			},
			wantErr: true,
		},
		{
			name: "transfer between distinct accounts",
			txn: Transaction{
				Amount:      money.MustParse("10"),
				Type:        TypeTransfer,
				AccountID:   "a1",
				ToAccountID: "a2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTransactionTime(t *testing.T) {
	txn := Transaction{Date: "2026-03-15"}
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), txn.Time())

	assert.True(t, (&Transaction{Date: "yesterday"}).Time().IsZero())
	assert.True(t, (&Transaction{}).Time().IsZero())
}

func TestSubscriptionDueWithin(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		next string
		want bool
	}{
		{name: "inside window", next: "2026-03-20", want: true},
		{name: "past due", next: "2026-03-01", want: true},
		{name: "outside window", next: "2026-04-20", want: false},
		{name: "unparsable", next: "soon", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := Subscription{NextBillingDate: tt.next}
			assert.Equal(t, tt.want, sub.DueWithin(now, 7))
		})
	}
}
