package parser

import (
	"strings"
	"time"
)

// DroppedLine records a line that matched the transaction pattern but failed
// normalization. Collected for diagnostics only; a dropped line never fails
// the extraction.
type DroppedLine struct {
	LineNo int
	Line   string
	Reason string
}

// Result is the outcome of extracting one document. Transactions keep
// document order. StartDate/EndDate are the min/max transaction dates, or
// the extraction time when nothing was extracted.
type Result struct {
	Transactions []Transaction
	StartDate    time.Time
	EndDate      time.Time
	Dropped      []DroppedLine
}

// Extractor drives the line classifier, normalizer and categorizer over a
// full document's text. It is stateless across documents and safe to share.
type Extractor struct {
	categorizer *Categorizer
	now         func() time.Time
}

// NewExtractor builds an extractor; nil selects the default categorizer.
func NewExtractor(categorizer *Categorizer) *Extractor {
	if categorizer == nil {
		categorizer = NewCategorizer(nil)
	}
	return &Extractor{categorizer: categorizer, now: time.Now}
}

// Extract parses the full document text into ordered transactions plus the
// statement's date span. It never fails on unparseable lines, it only ever
// produces fewer transactions.
func (e *Extractor) Extract(text string) Result {
	var res Result
	var start, end time.Time

	for i, line := range strings.Split(text, "\n") {
		match, ok := ClassifyLine(line)
		if !ok {
			continue
		}

		tx, err := normalize(match)
		if err != nil {
			res.Dropped = append(res.Dropped, DroppedLine{
				LineNo: i + 1,
				Line:   line,
				Reason: err.Error(),
			})
			continue
		}
		tx.Category = e.categorizer.Categorize(tx.Description)

		if start.IsZero() || tx.Date.Before(start) {
			start = tx.Date
		}
		if end.IsZero() || tx.Date.After(end) {
			end = tx.Date
		}

		res.Transactions = append(res.Transactions, tx)
	}

	if start.IsZero() {
		now := e.now()
		start, end = now, now
	}
	res.StartDate, res.EndDate = start, end

	return res
}
