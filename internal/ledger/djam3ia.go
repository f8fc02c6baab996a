package ledger

import (
	"context"
	"fmt"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
)

// AddDjam3ia registers a rotating savings circle. Members without ids
// get generated ones.
func (l *Ledger) AddDjam3ia(ctx context.Context, circle model.Djam3ia) (model.Djam3ia, error) {
	if !circle.MonthlyPayment.IsPositive() {
		return model.Djam3ia{}, fmt.Errorf("%w: monthly payment must be positive", common.ErrInvalidTransaction)
	}
	if circle.ID == "" {
		circle.ID = l.nextID()
	}
	if circle.Status == "" {
		circle.Status = model.Djam3iaActive
	}
	if circle.StartDate == "" {
		circle.StartDate = l.now().Format(model.DateLayout)
	}
	for i := range circle.Members {
		if circle.Members[i].ID == "" {
			circle.Members[i].ID = l.nextID()
		}
		if circle.Members[i].PaidMonths == nil {
			circle.Members[i].PaidMonths = []int{}
		}
	}
	l.djam3ias = append(l.djam3ias, circle)
	if err := l.persist(ctx); err != nil {
		return model.Djam3ia{}, err
	}
	return circle, nil
}

// PayDjam3iaInstallment charges one monthly installment to the given
// account and marks the member's next unpaid month as paid. An empty
// memberID marks the first member of the circle.
func (l *Ledger) PayDjam3iaInstallment(ctx context.Context, circleID, accountID, memberID string) error {
	var circle *model.Djam3ia
	for i := range l.djam3ias {
		if l.djam3ias[i].ID == circleID {
			circle = &l.djam3ias[i]
			break
		}
	}
	if circle == nil {
		return fmt.Errorf("djam3ia %q: %w", circleID, common.ErrNotFound)
	}

	if _, err := l.AddTransaction(ctx, model.Transaction{
		Amount:    circle.MonthlyPayment,
		Category:  "Transfer",
		Merchant:  "Djam3ia installment: " + circle.Name,
		Type:      model.TypeExpense,
		Status:    model.StatusCompleted,
		AccountID: accountID,
	}); err != nil {
		return err
	}

	var member *model.Djam3iaMember
	if memberID == "" {
		if len(circle.Members) > 0 {
			member = &circle.Members[0]
		}
	} else {
		member = circle.Member(memberID)
		if member == nil {
			return fmt.Errorf("djam3ia member %q: %w", memberID, common.ErrNotFound)
		}
	}

	if member != nil {
		months := circle.MembersCount
		if months < len(circle.Members) {
			months = len(circle.Members)
		}
		if month := member.NextUnpaidMonth(months); month > 0 {
			member.PaidMonths = append(member.PaidMonths, month)
		}
	}

	if err := l.persist(ctx); err != nil {
		return err
	}

	l.notifier.Notify("Djam3ia installment paid 🚀")
	return nil
}
