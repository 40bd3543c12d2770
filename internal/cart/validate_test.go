package cart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridianpress/storybook-backend/internal/personalization"
)

func TestValidateForCheckoutEmptyCart(t *testing.T) {
	t.Parallel()

	cart := NewCart("session-1", "USD", time.Now())

	violations := ValidateForCheckout(cart)
	if len(violations) != 1 || violations[0].Rule != RuleEmptyCart {
		t.Fatalf("expected only EMPTY_CART, got %+v", violations)
	}
}

func TestValidateForCheckoutAggregatesPerItem(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cart := NewCart("session-1", "USD", now)
	cart.AddItem(bookInput("Emma"), now)
	cart.AddItem(NewItemInput{
		ProductID: "book-2",
		VariantID: "softcover",
		Quantity:  1,
		Personalization: personalization.Input{
			ChildName:  "   ",
			CoverColor: "pink",
			ThemeID:    "2",
		},
		Price: decimal.RequireFromString("19.99"),
	}, now)

	// Quantity damage has to be staged directly; mutations refuse it.
	cart.Items[1].Quantity = 0

	violations := ValidateForCheckout(cart)
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %+v", violations)
	}

	badItem := cart.Items[1].ID.String()
	for _, v := range violations {
		if v.ItemID != badItem {
			t.Fatalf("violation points at wrong item: %+v", v)
		}
		if v.Message == "" {
			t.Fatalf("violation missing message: %+v", v)
		}
	}

	rules := map[CheckoutRule]bool{}
	for _, v := range violations {
		rules[v.Rule] = true
	}
	if !rules[RuleMissingChildName] || !rules[RuleInvalidQuantity] {
		t.Fatalf("expected MISSING_CHILD_NAME and INVALID_QUANTITY, got %+v", violations)
	}
}

func TestValidateForCheckoutCleanCart(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cart := NewCart("session-1", "USD", now)
	cart.AddItem(bookInput("Emma"), now)

	if violations := ValidateForCheckout(cart); len(violations) != 0 {
		t.Fatalf("expected no violations, got %+v", violations)
	}
}
