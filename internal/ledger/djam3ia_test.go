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

func newTestCircle(t *testing.T, led *Ledger) model.Djam3ia {
	t.Helper()

	circle, err := led.AddDjam3ia(context.Background(), model.Djam3ia{
		Name:           "Family circle",
		MonthlyPayment: money.MustParse("10000"),
		TotalAmount:    money.MustParse("30000"),
		MembersCount:   3,
		MyTurnMonth:    2,
		Members: []model.Djam3iaMember{
			{Name: "Karim"},
			{Name: "Samia"},
			{Name: "Nadir"},
		},
	})
	require.NoError(t, err)
	return circle
}

func TestAddDjam3ia(t *testing.T) {
	led, _ := newTestLedger(t)

	circle := newTestCircle(t, led)

	assert.NotEmpty(t, circle.ID)
	assert.Equal(t, model.Djam3iaActive, circle.Status)
	assert.Equal(t, "2026-03-15", circle.StartDate, "defaults to today")
	for _, m := range circle.Members {
		assert.NotEmpty(t, m.ID, "members get generated ids")
		assert.NotNil(t, m.PaidMonths)
	}
}

func TestAddDjam3iaValidation(t *testing.T) {
	led, _ := newTestLedger(t)

	_, err := led.AddDjam3ia(context.Background(), model.Djam3ia{Name: "broke"})
	require.Error(t, err, "non-positive monthly payment rejected")
}

func TestPayDjam3iaInstallment(t *testing.T) {
	led, notifier := newTestLedger(t)
	ctx := context.Background()

	account := addAccount(t, led, "Cash", "50000")
	circle := newTestCircle(t, led)
	member := circle.Members[1]

	require.NoError(t, led.PayDjam3iaInstallment(ctx, circle.ID, account.ID, member.ID))

	// Charged as an expense.
	assert.Equal(t, money.MustParse("40000"), accountBalance(t, led, account.ID))
	require.Len(t, led.Transactions(), 1)
	assert.Equal(t, "Djam3ia installment: Family circle", led.Transactions()[0].Merchant)

	// The member's earliest unpaid month is marked.
	got := led.Djam3ias()[0].Member(member.ID)
	require.NotNil(t, got)
	assert.Equal(t, []int{1}, got.PaidMonths)

	assert.Contains(t, notifier.messages, "Djam3ia installment paid 🚀")

	// A second payment marks the following month.
	require.NoError(t, led.PayDjam3iaInstallment(ctx, circle.ID, account.ID, member.ID))
	got = led.Djam3ias()[0].Member(member.ID)
	assert.Equal(t, []int{1, 2}, got.PaidMonths)
}

func TestPayDjam3iaInstallmentDefaultsToFirstMember(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()

	account := addAccount(t, led, "Cash", "50000")
	circle := newTestCircle(t, led)

	require.NoError(t, led.PayDjam3iaInstallment(ctx, circle.ID, account.ID, ""))

	first := led.Djam3ias()[0].Members[0]
	assert.Equal(t, []int{1}, first.PaidMonths)
}

func TestPayDjam3iaInstallmentErrors(t *testing.T) {
	led, _ := newTestLedger(t)
	ctx := context.Background()
	account := addAccount(t, led, "Cash", "50000")
	circle := newTestCircle(t, led)

	err := led.PayDjam3iaInstallment(ctx, "missing", account.ID, "")
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = led.PayDjam3iaInstallment(ctx, circle.ID, account.ID, "missing-member")
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = led.PayDjam3iaInstallment(ctx, circle.ID, "missing-account", "")
	assert.ErrorIs(t, err, common.ErrInvalidAccount)
}

func TestNextUnpaidMonth(t *testing.T) {
	tests := []struct {
		name   string
		paid   []int
		months int
		want   int
	}{
		{name: "nothing paid", paid: nil, months: 3, want: 1},
		{name: "gap first", paid: []int{2, 3}, months: 3, want: 1},
		{name: "sequential", paid: []int{1}, months: 3, want: 2},
		{name: "all paid", paid: []int{1, 2, 3}, months: 3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.Djam3iaMember{PaidMonths: tt.paid}
			assert.Equal(t, tt.want, m.NextUnpaidMonth(tt.months))
		})
	}
}
