package parser

import (
	"strings"

	"finsight/internal/models"
)

// Rule maps a category to the keywords that select it. Rules are checked in
// slice order and the first keyword hit wins, so the order of DefaultRules
// is part of the categorization contract (e.g. "amazon prime" lands in
// shopping because the shopping rule is checked before entertainment).
type Rule struct {
	Category models.TransactionCategory
	Keywords []string
}

func DefaultRules() []Rule {
	return []Rule{
		{models.CategoryTransport, []string{"uber", "ola", "metro", "bus", "taxi"}},
		{models.CategoryFood, []string{"swiggy", "zomato", "restaurant", "food"}},
		{models.CategoryShopping, []string{"amazon", "flipkart", "myntra"}},
		{models.CategoryUtilities, []string{"electricity", "water", "gas", "internet", "phone"}},
		{models.CategoryEntertainment, []string{"netflix", "amazon prime", "spotify"}},
		{models.CategoryHealthcare, []string{"hospital", "medical", "pharmacy"}},
	}
}

// Categorizer classifies a free-text description by case-insensitive keyword
// membership against an ordered rule list.
type Categorizer struct {
	rules []Rule
}

// NewCategorizer builds a categorizer from the given rules; nil selects the
// default table.
func NewCategorizer(rules []Rule) *Categorizer {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Categorizer{rules: rules}
}

func (c *Categorizer) Categorize(description string) models.TransactionCategory {
	description = strings.ToLower(description)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(description, keyword) {
				return rule.Category
			}
		}
	}

	return models.CategoryUncategorized
}
