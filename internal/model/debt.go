package model

import "github.com/mizanapp/mizan/internal/money"

// DebtType distinguishes money lent out from money borrowed.
type DebtType string

const (
	// DebtLent is money the user gave and expects back.
	DebtLent DebtType = "lent"
	// DebtBorrowed is money the user owes.
	DebtBorrowed DebtType = "borrowed"
)

// DebtPayment records one partial settlement.
type DebtPayment struct {
	Amount money.Amount `json:"amount"`
	Date   string       `json:"date"`
	Note   string       `json:"note,omitempty"`
}

// Debt is an informal IOU with a running remaining amount and a
// settlement history. RemainingAmount never exceeds Amount and IsPaid
// holds exactly when RemainingAmount reaches zero.
type Debt struct {
	ID              string        `json:"id"`
	Person          string        `json:"person"`
	Amount          money.Amount  `json:"amount"`
	RemainingAmount money.Amount  `json:"remainingAmount"`
	Type            DebtType      `json:"type"`
	DueDate         string        `json:"dueDate,omitempty"`
	IsPaid          bool          `json:"isPaid"`
	History         []DebtPayment `json:"history"`
}
