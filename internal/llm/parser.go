package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// cleanMarkdownWrapper strips ```json fences some models wrap around
// their output despite instructions.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx >= 0 {
			content = content[idx+1:]
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return strings.TrimSpace(content)
}

// validGuessType reports whether the model returned a known kind.
func validGuessType(t string) bool {
	switch t {
	case "expense", "income", "transfer", "debt":
		return true
	}
	return false
}

// decodeGuesses parses the model's transaction array, dropping entries
// that lack the required fields rather than failing the whole batch.
func decodeGuesses(content string) ([]TransactionGuess, error) {
	content = cleanMarkdownWrapper(content)

	var raw []TransactionGuess
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse guesses: %w", err)
	}

	guesses := make([]TransactionGuess, 0, len(raw))
	for _, g := range raw {
		if g.Amount <= 0 || g.Merchant == "" || !validGuessType(g.Type) {
			continue
		}
		if g.Category == "" {
			g.Category = "General"
		}
		guesses = append(guesses, g)
	}
	return guesses, nil
}

// decodeBriefing parses the briefing object and normalizes the mood.
func decodeBriefing(content string) (Briefing, error) {
	content = cleanMarkdownWrapper(content)

	var briefing Briefing
	if err := json.Unmarshal([]byte(content), &briefing); err != nil {
		return Briefing{}, fmt.Errorf("failed to parse briefing: %w", err)
	}
	if briefing.Text == "" {
		return Briefing{}, fmt.Errorf("no briefing text in response")
	}
	switch briefing.Mood {
	case "happy", "neutral", "concerned":
	default:
		briefing.Mood = "neutral"
	}
	return briefing, nil
}

// decodeBudgetSuggestion parses the budget suggestion object.
func decodeBudgetSuggestion(content string) (BudgetSuggestion, error) {
	content = cleanMarkdownWrapper(content)

	var suggestion BudgetSuggestion
	if err := json.Unmarshal([]byte(content), &suggestion); err != nil {
		return BudgetSuggestion{}, fmt.Errorf("failed to parse budget suggestion: %w", err)
	}
	if suggestion.SuggestedLimit <= 0 {
		return BudgetSuggestion{}, fmt.Errorf("no usable limit in response")
	}
	return suggestion, nil
}

// decodeAnswer parses the free-text answer object.
func decodeAnswer(content string) (string, error) {
	content = cleanMarkdownWrapper(content)

	var resp struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return "", fmt.Errorf("failed to parse answer: %w", err)
	}
	if resp.Answer == "" {
		return "", fmt.Errorf("no answer in response")
	}
	return resp.Answer, nil
}
