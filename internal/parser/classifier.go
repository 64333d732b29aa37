package parser

import (
	"regexp"
	"strings"
)

// transactionLine matches "<date> <description> <CREDIT|DEBIT> <amount>".
// The date is DD/MM/YYYY or DD-MM-YYYY, the type token is case-insensitive,
// and the description capture is lazy so it stops at the first type token.
var transactionLine = regexp.MustCompile(`(?i)(\d{2}[/-]\d{2}[/-]\d{4})\s+(.+?)\s+(CREDIT|DEBIT)\s+(\d+\.?\d*)`)

// Match holds the raw captured fields of one transaction-bearing line.
type Match struct {
	Date        string
	Description string
	Type        string
	Amount      string
}

// ClassifyLine reports whether a line encodes a transaction and returns its
// raw fields. A non-matching line is not an error, it is simply skipped.
// Blank and whitespace-only lines are skipped without attempting a match.
func ClassifyLine(line string) (Match, bool) {
	if strings.TrimSpace(line) == "" {
		return Match{}, false
	}

	groups := transactionLine.FindStringSubmatch(line)
	if groups == nil {
		return Match{}, false
	}

	return Match{
		Date:        groups[1],
		Description: groups[2],
		Type:        groups[3],
		Amount:      groups[4],
	}, true
}
