package model

import (
	"time"

	"github.com/mizanapp/mizan/internal/money"
)

// BillingCycle enumerates subscription renewal periods.
type BillingCycle string

const (
	// BillingMonthly renews every month.
	BillingMonthly BillingCycle = "monthly"
	// BillingYearly renews every year.
	BillingYearly BillingCycle = "yearly"
)

// Subscription is a recurring charge. The next billing date is not
// auto-advanced; due subscriptions surface as ghost transactions until
// the user records the charge.
type Subscription struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Amount          money.Amount `json:"amount"`
	BillingCycle    BillingCycle `json:"billingCycle"`
	NextBillingDate string       `json:"nextBillingDate"`
	Icon            string       `json:"icon"`
	Color           string       `json:"color"`
	Category        string       `json:"category"`
	AutoDeduct      bool         `json:"autoDeduct,omitempty"`
}

// DueWithin reports whether the next billing date falls inside the
// window ending days from now. Past-due subscriptions count as due.
func (s *Subscription) DueWithin(now time.Time, days int) bool {
	next, err := time.Parse(DateLayout, s.NextBillingDate)
	if err != nil {
		return false
	}
	return !next.After(now.AddDate(0, 0, days))
}
