package ofx

import (
	"testing"

	"github.com/aclindsa/ofxgo"
	"github.com/stretchr/testify/assert"
)

func TestExtractMerchantName(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name string
		tx   ofxgo.Transaction
		want string
	}{
		{
			name: "payee preferred",
			tx: ofxgo.Transaction{
				Name:  ofxgo.String("POS PURCHASE 1234"),
				Payee: &ofxgo.Payee{Name: ofxgo.String("Carrefour Alger")},
			},
			want: "Carrefour Alger",
		},
		{
			name: "pos prefix stripped",
			tx: ofxgo.Transaction{
				Name: ofxgo.String("POS PURCHASE SUPERETTE AMINE"),
			},
			want: "SUPERETTE AMINE",
		},
		{
			name: "authorized prefix stripped",
			tx: ofxgo.Transaction{
				Name: ofxgo.String("PURCHASE AUTHORIZED ON 03/12 NAFTAL STATION"),
			},
			want: "NAFTAL STATION",
		},
		{
			name: "generic name falls back to memo",
			tx: ofxgo.Transaction{
				Name: ofxgo.String("DEBIT"),
				Memo: ofxgo.String("Sonelgaz bill"),
			},
			want: "Sonelgaz bill",
		},
		{
			name: "plain name untouched",
			tx: ofxgo.Transaction{
				Name: ofxgo.String("Yassir"),
			},
			want: "Yassir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.extractMerchantName(tt.tx))
		})
	}
}

func TestIsGenericDescription(t *testing.T) {
	assert.True(t, isGenericDescription("DEBIT"))
	assert.True(t, isGenericDescription("card purchase"))
	assert.False(t, isGenericDescription("Carrefour"))
}

func TestPreprocessOFX(t *testing.T) {
	p := NewParser()

	t.Run("uppercases severity", func(t *testing.T) {
		got := p.preprocessOFX("<SEVERITY>Info</SEVERITY>")
		assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", got)
	})

	t.Run("closes dangling tags", func(t *testing.T) {
		got := p.preprocessOFX("<OFX\n")
		assert.Equal(t, "<OFX>\n", got)
	})
}
