package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `[{"amount": 250}]`,
			want:  `[{"amount": 250}]`,
		},
		{
			name:  "json fence",
			input: "```json\n[{\"amount\": 250}]\n```",
			want:  `[{"amount": 250}]`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"text\": \"hi\"}\n```",
			want:  `{"text": "hi"}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n[1]\n  ",
			want:  "[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.input))
		})
	}
}

func TestDecodeGuesses(t *testing.T) {
	t.Run("parses valid guesses", func(t *testing.T) {
		content := "```json\n" + `[
			{"amount": 250, "merchant": "Cafe", "category": "Food", "type": "expense"},
			{"amount": 5000, "merchant": "Yacine", "category": "General", "type": "debt", "debtType": "lent", "personName": "Yacine"}
		]` + "\n```"

		guesses, err := decodeGuesses(content)
		require.NoError(t, err)
		require.Len(t, guesses, 2)
		assert.Equal(t, "Cafe", guesses[0].Merchant)
		assert.Equal(t, "lent", guesses[1].DebtType)
	})

	t.Run("drops invalid entries instead of failing", func(t *testing.T) {
		content := `[
			{"amount": 0, "merchant": "zero", "type": "expense"},
			{"amount": 100, "merchant": "", "type": "expense"},
			{"amount": 100, "merchant": "ok", "type": "donation"},
			{"amount": 100, "merchant": "keeper", "type": "income"}
		]`

		guesses, err := decodeGuesses(content)
		require.NoError(t, err)
		require.Len(t, guesses, 1)
		assert.Equal(t, "keeper", guesses[0].Merchant)
	})

	t.Run("defaults missing category", func(t *testing.T) {
		guesses, err := decodeGuesses(`[{"amount": 10, "merchant": "x", "type": "expense"}]`)
		require.NoError(t, err)
		require.Len(t, guesses, 1)
		assert.Equal(t, "General", guesses[0].Category)
	})

	t.Run("rejects non-json", func(t *testing.T) {
		_, err := decodeGuesses("I could not parse that, sorry!")
		require.Error(t, err)
	})
}

func TestDecodeBriefing(t *testing.T) {
	t.Run("valid briefing", func(t *testing.T) {
		b, err := decodeBriefing(`{"text": "Spending looks fine.", "mood": "happy"}`)
		require.NoError(t, err)
		assert.Equal(t, "happy", b.Mood)
	})

	t.Run("unknown mood normalized", func(t *testing.T) {
		b, err := decodeBriefing(`{"text": "hmm", "mood": "ecstatic"}`)
		require.NoError(t, err)
		assert.Equal(t, "neutral", b.Mood)
	})

	t.Run("missing text fails", func(t *testing.T) {
		_, err := decodeBriefing(`{"mood": "happy"}`)
		require.Error(t, err)
	})
}

func TestDecodeBudgetSuggestion(t *testing.T) {
	s, err := decodeBudgetSuggestion(`{"suggestedLimit": 25000, "reason": "matches average"}`)
	require.NoError(t, err)
	assert.InDelta(t, 25000, s.SuggestedLimit, 0.001)

	_, err = decodeBudgetSuggestion(`{"suggestedLimit": 0}`)
	require.Error(t, err)
}

func TestDecodeAnswer(t *testing.T) {
	answer, err := decodeAnswer("```json\n{\"answer\": \"You can afford it.\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "You can afford it.", answer)

	_, err = decodeAnswer(`{"answer": ""}`)
	require.Error(t, err)
}
