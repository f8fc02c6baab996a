package ledger

import "github.com/mizanapp/mizan/internal/money"

// nisabGoldGrams is the gold weight defining the nisab threshold.
const nisabGoldGrams = 85

// ZakatAssessment is the result of a zakat calculation.
type ZakatAssessment struct {
	NisabValue money.Amount
	TotalCash  money.Amount
	NetWealth  money.Amount
	ZakatDue   money.Amount
	Eligible   bool
}

// AssessZakat computes zakat due from the current account balances
// plus user-supplied other assets, less immediate debts. Zakat is due
// at 2.5 % (exactly 1/40) of net wealth once net wealth reaches the
// nisab, valued at 85 grams of gold.
func (l *Ledger) AssessZakat(goldPricePerGram, otherAssets, immediateDebts money.Amount) ZakatAssessment {
	var totalCash money.Amount
	for _, acc := range l.accounts {
		totalCash = totalCash.Add(acc.Balance)
	}

	assessment := ZakatAssessment{
		NisabValue: money.Amount(int64(goldPricePerGram) * nisabGoldGrams),
		TotalCash:  totalCash,
		NetWealth:  totalCash.Add(otherAssets).Sub(immediateDebts),
	}

	if assessment.NetWealth >= assessment.NisabValue && assessment.NetWealth.IsPositive() {
		assessment.Eligible = true
		assessment.ZakatDue = money.Amount(int64(assessment.NetWealth) / 40)
	}
	return assessment
}
