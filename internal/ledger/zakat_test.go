package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mizanapp/mizan/internal/money"
)

func TestAssessZakat(t *testing.T) {
	tests := []struct {
		name      string
		balances  []string
		goldPrice string
		assets    string
		debts     string
		wantNet   string
		wantDue   string
		wantOwed  bool
	}{
		{
			name:      "above nisab",
			balances:  []string{"1000000", "500000"},
			goldPrice: "14000", // nisab 85 * 14000 = 1190000
			assets:    "0",
			debts:     "0",
			wantNet:   "1500000",
			wantDue:   "37500", // exactly 2.5%
			wantOwed:  true,
		},
		{
			name:      "below nisab",
			balances:  []string{"100000"},
			goldPrice: "14000",
			assets:    "0",
			debts:     "0",
			wantNet:   "100000",
			wantDue:   "0",
			wantOwed:  false,
		},
		{
			name:      "debts pull below threshold",
			balances:  []string{"1200000"},
			goldPrice: "14000",
			assets:    "0",
			debts:     "100000",
			wantNet:   "1100000",
			wantDue:   "0",
			wantOwed:  false,
		},
		{
			name:      "other assets push above threshold",
			balances:  []string{"1000000"},
			goldPrice: "14000",
			assets:    "200000",
			debts:     "0",
			wantNet:   "1200000",
			wantDue:   "30000",
			wantOwed:  true,
		},
		{
			name:      "exactly at nisab owes zakat",
			balances:  []string{"1190000"},
			goldPrice: "14000",
			assets:    "0",
			debts:     "0",
			wantNet:   "1190000",
			wantDue:   "29750",
			wantOwed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			led, _ := newTestLedger(t)
			for _, b := range tt.balances {
				addAccount(t, led, "acct", b)
			}

			a := led.AssessZakat(
				money.MustParse(tt.goldPrice),
				money.MustParse(tt.assets),
				money.MustParse(tt.debts))

			assert.Equal(t, money.MustParse(tt.wantNet), a.NetWealth)
			assert.Equal(t, money.MustParse(tt.wantDue), a.ZakatDue)
			assert.Equal(t, tt.wantOwed, a.Eligible)
		})
	}
}
