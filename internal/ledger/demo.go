package ledger

import (
	"context"

	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

// SeedDemo loads a realistic demo dataset and switches the ledger into
// demo mode, which suspends XP rewards.
func (l *Ledger) SeedDemo(ctx context.Context) error {
	day := func(daysAgo int) string {
		return l.now().AddDate(0, 0, -daysAgo).Format(model.DateLayout)
	}

	l.accounts = []model.Account{
		{ID: "acc_ccp", Name: "CCP", Type: model.AccountCCP, Balance: money.MustParse("45000"), Currency: "DZD", Color: "yellow"},
		{ID: "acc_baridi", Name: "BaridiMob", Type: model.AccountCard, Balance: money.MustParse("12000"), Currency: "DZD", Color: "blue"},
		{ID: "acc_cash", Name: "Wallet", Type: model.AccountCash, Balance: money.MustParse("3500"), Currency: "DZD", Color: "emerald"},
	}

	l.budgets = []model.Budget{
		{ID: "b1", Category: "Food", Limit: money.MustParse("25000"), Spent: money.MustParse("22000"), Color: "orange"},
		{ID: "b2", Category: "Transport", Limit: money.MustParse("6000"), Spent: money.MustParse("4500"), Color: "blue"},
		{ID: "b3", Category: "Shopping", Limit: money.MustParse("10000"), Spent: money.MustParse("12500"), Color: "pink"},
	}

	l.transactions = []model.Transaction{
		{ID: "t1", Amount: money.MustParse("65000"), Category: "Salary", Merchant: "Monthly salary", Date: day(2), Type: model.TypeIncome, Currency: "DZD", AccountID: "acc_ccp", Status: model.StatusCompleted},
		{ID: "t2", Amount: money.MustParse("15000"), Category: "Freelance", Merchant: "Design project", Date: day(15), Type: model.TypeIncome, Currency: "DZD", AccountID: "acc_baridi", Status: model.StatusCompleted},
		{ID: "t3", Amount: money.MustParse("2500"), Category: "Food", Merchant: "Superette Amine", Date: day(0), Type: model.TypeExpense, Currency: "DZD", AccountID: "acc_cash", Status: model.StatusCompleted},
		{ID: "t4", Amount: money.MustParse("600"), Category: "Transport", Merchant: "Yassir", Date: day(1), Type: model.TypeExpense, Currency: "DZD", AccountID: "acc_cash", Status: model.StatusCompleted},
		{ID: "t5", Amount: money.MustParse("4500"), Category: "Utilities", Merchant: "Sonelgaz", Date: day(10), Type: model.TypeExpense, Currency: "DZD", AccountID: "acc_ccp", Status: model.StatusCompleted},
		{ID: "t6", Amount: money.MustParse("2000"), Category: "Entertainment", Merchant: "Netflix", Date: day(12), Type: model.TypeExpense, Currency: "DZD", AccountID: "acc_baridi", Status: model.StatusCompleted},
	}

	l.debts = []model.Debt{
		{ID: "d1", Person: "Khaled", Amount: money.MustParse("3500"), RemainingAmount: money.MustParse("1500"), Type: model.DebtBorrowed, History: []model.DebtPayment{{Amount: money.MustParse("2000"), Date: day(5)}}},
		{ID: "d2", Person: "Yacine", Amount: money.MustParse("10000"), RemainingAmount: money.MustParse("10000"), Type: model.DebtLent, History: []model.DebtPayment{}},
	}

	l.savingsGoals = []model.SavingsGoal{
		{ID: "g1", Name: "Golf 7", Target: money.MustParse("3500000"), Saved: money.MustParse("450000"), Emoji: "🚗", Color: "slate"},
		{ID: "g2", Name: "Summer holiday", Target: money.MustParse("150000"), Saved: money.MustParse("30000"), Emoji: "🏖️", Color: "blue"},
	}

	l.subscriptions = []model.Subscription{
		{ID: "s1", Name: "Netflix Premium", Amount: money.MustParse("2000"), BillingCycle: model.BillingMonthly, NextBillingDate: day(-10), Icon: "N", Color: "red", Category: "Entertainment", AutoDeduct: true},
		{ID: "s2", Name: "Gym", Amount: money.MustParse("3000"), BillingCycle: model.BillingMonthly, NextBillingDate: day(-2), Icon: "🏋️", Color: "slate", Category: "Health"},
	}

	l.djam3ias = []model.Djam3ia{
		{
			ID: "dj1", Name: "Work circle",
			TotalAmount:    money.MustParse("120000"),
			MonthlyPayment: money.MustParse("10000"),
			MembersCount:   12, MyTurnMonth: 8,
			StartDate: day(60), Status: model.Djam3iaActive,
			Members: []model.Djam3iaMember{
				{ID: "m1", Name: "Ahmed", PaidMonths: []int{1, 2}},
				{ID: "m2", Name: "Samir", PaidMonths: []int{1, 2}},
				{ID: "m3", Name: "Me", PaidMonths: []int{1, 2}},
			},
		},
	}

	l.settings.IsOnboarded = true
	l.settings.IsDemoMode = true
	l.settings.UserName = "Amine"
	l.settings.SpentXP = 450

	if err := l.persist(ctx); err != nil {
		return err
	}

	l.notifier.Notify("Demo mode activated 🇩🇿")
	return nil
}
