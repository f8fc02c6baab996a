package model

import "github.com/mizanapp/mizan/internal/money"

// AccountType enumerates where money is held.
type AccountType string

const (
	// AccountCash is physical cash.
	AccountCash AccountType = "Cash"
	// AccountBank is a bank account.
	AccountBank AccountType = "Bank"
	// AccountWallet is a mobile wallet.
	AccountWallet AccountType = "Wallet"
	// AccountCard is a payment card.
	AccountCard AccountType = "Card"
	// AccountCCP is a postal current account.
	AccountCCP AccountType = "CCP"
)

// Account holds a balance in the working currency. Balances may go
// negative; there is no overdraft check.
type Account struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     AccountType  `json:"type"`
	Balance  money.Amount `json:"balance"`
	Currency string       `json:"currency"`
	Color    string       `json:"color"`
}
