package parser

import (
	"testing"

	"finsight/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCategorize_DefaultTable(t *testing.T) {
	c := NewCategorizer(nil)

	cases := []struct {
		description string
		want        models.TransactionCategory
	}{
		{"Uber Ride", models.CategoryTransport},
		{"OLA CABS BANGALORE", models.CategoryTransport},
		{"Swiggy Order #1234", models.CategoryFood},
		{"THE GRAND RESTAURANT", models.CategoryFood},
		{"Amazon.in purchase", models.CategoryShopping},
		{"Electricity bill March", models.CategoryUtilities},
		{"NETFLIX.COM subscription", models.CategoryEntertainment},
		{"Apollo Pharmacy", models.CategoryHealthcare},
		{"Salary for March", models.CategoryUncategorized},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Categorize(tc.description), "description %q", tc.description)
	}
}

func TestCategorize_PriorityOrder(t *testing.T) {
	c := NewCategorizer(nil)

	// "amazon prime" contains the shopping keyword "amazon", and shopping
	// is checked before entertainment, so shopping wins.
	assert.Equal(t, models.CategoryShopping, c.Categorize("Amazon Prime renewal"))

	// "bus" (transport) beats "food" because transport is checked first.
	assert.Equal(t, models.CategoryTransport, c.Categorize("bus station food court"))
}

func TestCategorize_Deterministic(t *testing.T) {
	c := NewCategorizer(nil)

	first := c.Categorize("Metro card recharge")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Categorize("Metro card recharge"))
	}
}

func TestCategorize_CustomRules(t *testing.T) {
	c := NewCategorizer([]Rule{
		{models.CategoryEntertainment, []string{"steam"}},
	})

	assert.Equal(t, models.CategoryEntertainment, c.Categorize("STEAM PURCHASE"))
	// Default table is replaced, not extended.
	assert.Equal(t, models.CategoryUncategorized, c.Categorize("Uber Ride"))
}
