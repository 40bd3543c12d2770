package cart

import (
	"github.com/shopspring/decimal"

	"github.com/meridianpress/storybook-backend/pkg/config"
)

// DiscountType tags the discount variants the engine can derive.
type DiscountType string

const (
	DiscountFreeShipping DiscountType = "free_shipping"
	DiscountBulk         DiscountType = "bulk_discount"
)

// Discount is a derived value object. Discounts are recomputed from cart
// contents on every read and never stored.
type Discount struct {
	Type        DiscountType    `json:"type"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
}

// Quote is one consistent derivation of all totals from a single snapshot.
type Quote struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
	Discounts []Discount      `json:"discounts"`
	Currency  string          `json:"currency"`
}

// Pricer derives totals and discounts from cart snapshots. All methods are
// pure; safe to call concurrently with cart reads.
type Pricer struct {
	rates config.PricingRates
}

// NewPricer builds a pricing engine with the configured rates.
func NewPricer(rates config.PricingRates) *Pricer {
	return &Pricer{rates: rates}
}

// Subtotal sums price x quantity over the snapshot.
func (p *Pricer) Subtotal(items []Item) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

// Tax applies the flat configured rate. Real jurisdiction logic lives behind
// an external tax service in production.
func (p *Pricer) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(p.rates.TaxRate)
}

// Shipping applies the tiered rates: free above the free-shipping threshold,
// the standard rate above the standard threshold, the base rate otherwise.
func (p *Pricer) Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(p.rates.FreeShippingThreshold) {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(p.rates.StandardThreshold) {
		return p.rates.StandardRate
	}
	return p.rates.BaseRate
}

// ItemCount sums quantities across the snapshot.
func (p *Pricer) ItemCount(items []Item) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// Discounts derives the applicable display discounts. The free shipping entry
// explains why shipping is zero and carries the rate the next tier down would
// have charged. The bulk discount triggers on the number of distinct lines,
// not the quantity sum, and is informational: it does not reduce the total.
func (p *Pricer) Discounts(items []Item, subtotal decimal.Decimal) []Discount {
	var discounts []Discount

	if subtotal.GreaterThanOrEqual(p.rates.FreeShippingThreshold) {
		discounts = append(discounts, Discount{
			Type:        DiscountFreeShipping,
			Value:       p.rates.StandardRate,
			Description: "Free shipping on orders over $65",
		})
	}

	if p.rates.BulkDiscountMinItems > 0 && len(items) >= p.rates.BulkDiscountMinItems {
		discounts = append(discounts, Discount{
			Type:        DiscountBulk,
			Value:       subtotal.Mul(p.rates.BulkDiscountRate),
			Description: "10% off when ordering 3+ books",
		})
	}

	return discounts
}

// Quote derives every total in one pass over a single snapshot. Total is
// subtotal + tax + shipping; the free-shipping discount is already reflected
// in the shipping tier and the bulk discount intentionally does not subtract.
func (p *Pricer) Quote(cart *Cart) Quote {
	items := cart.Snapshot()

	subtotal := p.Subtotal(items)
	tax := p.Tax(subtotal)
	shipping := p.Shipping(subtotal)

	return Quote{
		Subtotal:  subtotal,
		Tax:       tax,
		Shipping:  shipping,
		Total:     subtotal.Add(tax).Add(shipping),
		ItemCount: p.ItemCount(items),
		Discounts: p.Discounts(items, subtotal),
		Currency:  cart.Currency,
	}
}
