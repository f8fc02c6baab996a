package model

import "github.com/mizanapp/mizan/internal/money"

// Budget tracks spending against a per-category limit. Spent
// accumulates from expense transactions whose category matches.
type Budget struct {
	ID       string       `json:"id"`
	Category string       `json:"category"`
	Limit    money.Amount `json:"limit"`
	Spent    money.Amount `json:"spent"`
	Color    string       `json:"color"`
}

// SavingsGoal tracks progress toward a savings target. Saved only
// grows through explicit add-to-goal actions.
type SavingsGoal struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Target money.Amount `json:"target"`
	Saved  money.Amount `json:"saved"`
	Emoji  string       `json:"emoji"`
	Color  string       `json:"color"`
}
