package cart

import (
	"fmt"
	"strings"
)

// CheckoutRule identifies a checkout-time validation rule.
type CheckoutRule string

const (
	RuleEmptyCart        CheckoutRule = "EMPTY_CART"
	RuleMissingChildName CheckoutRule = "MISSING_CHILD_NAME"
	RuleInvalidQuantity  CheckoutRule = "INVALID_QUANTITY"
)

// CheckoutViolation points at one violated rule, optionally at one line.
type CheckoutViolation struct {
	Rule    CheckoutRule `json:"rule"`
	ItemID  string       `json:"itemId,omitempty"`
	Message string       `json:"message"`
}

// ValidateForCheckout reports every violation at once so the customer can fix
// everything in one pass.
func ValidateForCheckout(cart *Cart) []CheckoutViolation {
	var out []CheckoutViolation

	if len(cart.Items) == 0 {
		out = append(out, CheckoutViolation{
			Rule:    RuleEmptyCart,
			Message: "Cart is empty",
		})
		return out
	}

	for idx, item := range cart.Items {
		if strings.TrimSpace(item.Personalization.ChildName) == "" {
			out = append(out, CheckoutViolation{
				Rule:    RuleMissingChildName,
				ItemID:  item.ID.String(),
				Message: fmt.Sprintf("Item %d: Child name is required", idx+1),
			})
		}
		if item.Quantity <= 0 {
			out = append(out, CheckoutViolation{
				Rule:    RuleInvalidQuantity,
				ItemID:  item.ID.String(),
				Message: fmt.Sprintf("Item %d: Invalid quantity", idx+1),
			})
		}
	}

	return out
}
