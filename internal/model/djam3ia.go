package model

import "github.com/mizanapp/mizan/internal/money"

// Djam3iaStatus enumerates circle lifecycle states.
type Djam3iaStatus string

const (
	// Djam3iaActive means installments are still being collected.
	Djam3iaActive Djam3iaStatus = "active"
	// Djam3iaCompleted means the circle has run its full course.
	Djam3iaCompleted Djam3iaStatus = "completed"
)

// Djam3iaMember is one participant in a rotating savings circle, with
// the list of months (1-based) they have paid.
type Djam3iaMember struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	PaidMonths []int  `json:"paidMonths"`
}

// Djam3ia is a rotating community savings circle: members contribute a
// fixed monthly amount and take turns receiving the pooled sum.
type Djam3ia struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	TotalAmount    money.Amount    `json:"totalAmount"`
	MonthlyPayment money.Amount    `json:"monthlyPayment"`
	MembersCount   int             `json:"membersCount"`
	MyTurnMonth    int             `json:"myTurnMonth"`
	StartDate      string          `json:"startDate"`
	Status         Djam3iaStatus   `json:"status"`
	Members        []Djam3iaMember `json:"members"`
}

// Member returns the member with the given id, or nil.
func (d *Djam3ia) Member(id string) *Djam3iaMember {
	for i := range d.Members {
		if d.Members[i].ID == id {
			return &d.Members[i]
		}
	}
	return nil
}

// NextUnpaidMonth returns the lowest month in 1..MembersCount the
// member has not paid yet, or 0 when every month is covered.
func (m *Djam3iaMember) NextUnpaidMonth(monthsTotal int) int {
	paid := make(map[int]bool, len(m.PaidMonths))
	for _, p := range m.PaidMonths {
		paid[p] = true
	}
	for month := 1; month <= monthsTotal; month++ {
		if !paid[month] {
			return month
		}
	}
	return 0
}
