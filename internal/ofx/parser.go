// Package ofx parses OFX/QFX bank statement files into transaction
// drafts for the ledger.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/money"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Fix missing closing angle brackets in SGML-style OFX files
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns transaction drafts.
// Statement lines with a negative amount become expenses, positive
// ones income; the draft's AccountID carries the statement account id
// and must be mapped to a ledger account before adding.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	processedContent := p.preprocessOFX(string(content))

	resp, err := ofxgo.ParseResponse(strings.NewReader(processedContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			accountID := string(stmt.BankAcctFrom.AcctID)
			for _, ofxTx := range stmt.BankTranList.Transactions {
				txn, err := p.convertTransaction(ofxTx, accountID)
				if err != nil {
					slog.Warn("skipping unconvertible statement line",
						"account", accountID, "error", err)
					continue
				}
				transactions = append(transactions, txn)
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			accountID := string(stmt.CCAcctFrom.AcctID)
			for _, ofxTx := range stmt.BankTranList.Transactions {
				txn, err := p.convertTransaction(ofxTx, accountID)
				if err != nil {
					slog.Warn("skipping unconvertible statement line",
						"account", accountID, "error", err)
					continue
				}
				transactions = append(transactions, txn)
			}
		}
	}

	slog.Info("parsed OFX file",
		"total_transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

// convertTransaction converts an OFX transaction to a ledger draft.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction, accountID string) (model.Transaction, error) {
	// OFX uses negative amounts for debits.
	amountFloat, _ := ofxTx.TrnAmt.Float64()
	direction := model.TypeIncome
	if amountFloat < 0 {
		direction = model.TypeExpense
		amountFloat = -amountFloat
	}

	amount, err := money.FromFloat(amountFloat)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad amount on %q: %w", ofxTx.FiTID, err)
	}

	txn := model.Transaction{
		Amount:    amount,
		Merchant:  p.extractMerchantName(ofxTx),
		Category:  categoryForType(fmt.Sprintf("%v", ofxTx.TrnType)),
		Date:      ofxTx.DtPosted.Time.Format(model.DateLayout),
		Type:      direction,
		Status:    model.StatusCompleted,
		AccountID: accountID,
	}
	return txn, nil
}

// categoryForType infers a category from the OFX transaction type.
// Statements carry no real category data, so most lines land in
// General and get refined by hand or by the assistant.
func categoryForType(trnType string) string {
	switch trnType {
	case "INT":
		return "Investment"
	case "FEE", "SRVCHG":
		return "Utilities"
	case "ATM":
		return "General"
	default:
		return "General"
	}
}

// extractMerchantName tries to get a clean merchant name from OFX data.
func (p *Parser) extractMerchantName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := string(tx.Name)

	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}

	name = strings.TrimSpace(name)

	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}

	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Strip leading "MM/DD " date patterns.
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

// isGenericDescription checks if a transaction name is too generic.
func isGenericDescription(name string) bool {
	generic := []string{
		"DEBIT",
		"CREDIT",
		"PURCHASE",
		"PAYMENT",
		"POS TRANSACTION",
		"CARD PURCHASE",
	}

	upperName := strings.ToUpper(name)
	for _, g := range generic {
		if upperName == g {
			return true
		}
	}
	return false
}
