package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// systemPrompt instructs the model to answer with bare JSON so the
// parser can decode responses without scraping prose.
const systemPrompt = "You are a personal finance assistant. You MUST respond with ONLY valid JSON. " +
	"Do not include any explanatory text, markdown formatting, or commentary before or after the JSON."

func buildParsePrompt(input string, accounts []AccountRef, categories []string) string {
	accountList := make([]string, 0, len(accounts))
	for _, a := range accounts {
		accountList = append(accountList, fmt.Sprintf("%s (ID: %s)", a.Name, a.ID))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Parse this input into financial transactions: %q\n\n", input)
	fmt.Fprintf(&b, "CONTEXT:\n- Categories: [%s]\n- Accounts: [%s]\n\n",
		strings.Join(categories, ", "), strings.Join(accountList, ", "))
	b.WriteString(`RULES:
1. Detect whether each transaction is "expense", "income", "transfer" or "debt".
2. If "debt", set debtType to "lent" or "borrowed" and personName to the counterparty.
3. Extract the amount strictly in the working currency.
4. Pick the most logical accountId when none is named (cash for small amounts, bank for salary).
5. Return a JSON array of objects with keys: amount, merchant, category, type, debtType, personName, accountId.
6. Return [] if no transaction can be extracted.`)
	return b.String()
}

func buildBriefingPrompt(userName string, snapshot Snapshot) string {
	context, _ := json.Marshal(snapshot)
	var b strings.Builder
	fmt.Fprintf(&b, "Write a daily financial briefing for %s.\n\nCONTEXT: %s\n\n", userName, context)
	b.WriteString(`ANALYSIS:
1. If real_disposable_cash is low, warn the user.
2. If obligations_next_7_days is above zero, remind them to set that aside.
3. Be punchy: two sentences maximum.

Return a JSON object with keys "text" and "mood" (one of "happy", "neutral", "concerned").`)
	return b.String()
}

func buildBudgetPrompt(category string, history []SpendingPoint) string {
	context, _ := json.Marshal(map[string]any{
		"category": category,
		"history":  history,
	})
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest a realistic monthly budget limit for the category %q.\n\nCONTEXT: %s\n\n", category, context)
	b.WriteString(`LOGIC: average monthly spending plus a 10% inflation buffer. If the history is empty, suggest a typical amount for the category.

Return a JSON object with keys "suggestedLimit" (number) and "reason" (one short sentence).`)
	return b.String()
}

func buildAskPrompt(question string, snapshot Snapshot) string {
	context, _ := json.Marshal(snapshot)
	return fmt.Sprintf(`Answer the user's financial question using their data.

CONTEXT: %s

QUESTION: %s

Be direct and practical: if they ask about affording something, check their debts and upcoming bills first. Return a JSON object with a single key "answer".`, context, question)
}
