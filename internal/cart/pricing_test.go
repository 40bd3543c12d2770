package cart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridianpress/storybook-backend/internal/personalization"
	"github.com/meridianpress/storybook-backend/pkg/config"
)

func testRates() config.PricingRates {
	return config.PricingRates{
		TaxRate:               decimal.RequireFromString("0.08"),
		FreeShippingThreshold: decimal.RequireFromString("65"),
		StandardThreshold:     decimal.RequireFromString("35"),
		StandardRate:          decimal.RequireFromString("4.99"),
		BaseRate:              decimal.RequireFromString("6.99"),
		BulkDiscountMinItems:  3,
		BulkDiscountRate:      decimal.RequireFromString("0.10"),
		Currency:              "USD",
	}
}

func cartWithLines(t *testing.T, prices ...string) *Cart {
	t.Helper()
	now := time.Now()
	cart := NewCart("session-1", "USD", now)
	for i, price := range prices {
		input := NewItemInput{
			ProductID: "book-1",
			VariantID: "hardcover",
			Quantity:  1,
			Personalization: personalization.Input{
				ChildName:  "Emma" + string(rune('A'+i)),
				CoverColor: "blue",
				Locale:     "en-US",
				ThemeID:    "1",
			},
			Price: decimal.RequireFromString(price),
		}
		if _, created := cart.AddItem(input, now); !created {
			t.Fatalf("line %d unexpectedly merged", i)
		}
	}
	return cart
}

func TestShippingTiers(t *testing.T) {
	t.Parallel()

	pricer := NewPricer(testRates())

	cases := []struct {
		subtotal string
		want     string
	}{
		{"65.00", "0"},
		{"70.00", "0"},
		{"64.99", "4.99"},
		{"35.00", "4.99"},
		{"34.99", "6.99"},
		{"10.00", "6.99"},
		{"0", "6.99"},
	}
	for _, tc := range cases {
		got := pricer.Shipping(decimal.RequireFromString(tc.subtotal))
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("shipping for %s: want %s, got %s", tc.subtotal, tc.want, got)
		}
	}
}

func TestQuoteThreeBooks(t *testing.T) {
	t.Parallel()

	pricer := NewPricer(testRates())
	cart := cartWithLines(t, "30.00", "30.00", "30.00")

	quote := pricer.Quote(cart)

	if !quote.Subtotal.Equal(decimal.RequireFromString("90.00")) {
		t.Fatalf("subtotal: got %s", quote.Subtotal)
	}
	if !quote.Tax.Equal(decimal.RequireFromString("7.20")) {
		t.Fatalf("tax: got %s", quote.Tax)
	}
	if !quote.Shipping.IsZero() {
		t.Fatalf("shipping over the free threshold: got %s", quote.Shipping)
	}
	if !quote.Total.Equal(decimal.RequireFromString("97.20")) {
		t.Fatalf("total: got %s", quote.Total)
	}
	if quote.ItemCount != 3 {
		t.Fatalf("item count: got %d", quote.ItemCount)
	}
	if quote.Currency != "USD" {
		t.Fatalf("currency: got %s", quote.Currency)
	}

	byType := map[DiscountType]Discount{}
	for _, d := range quote.Discounts {
		byType[d.Type] = d
	}

	free, ok := byType[DiscountFreeShipping]
	if !ok {
		t.Fatalf("expected free shipping discount, got %+v", quote.Discounts)
	}
	if !free.Value.Equal(decimal.RequireFromString("4.99")) {
		t.Fatalf("free shipping value: got %s", free.Value)
	}

	bulk, ok := byType[DiscountBulk]
	if !ok {
		t.Fatalf("expected bulk discount at 3 lines, got %+v", quote.Discounts)
	}
	if !bulk.Value.Equal(decimal.RequireFromString("9.00")) {
		t.Fatalf("bulk value: got %s", bulk.Value)
	}
}

func TestBulkDiscountCountsLinesNotQuantity(t *testing.T) {
	t.Parallel()

	pricer := NewPricer(testRates())

	now := time.Now()
	cart := cartWithLines(t, "10.00")
	cart.UpdateQuantity(cart.Items[0].ID, 5, now)

	quote := pricer.Quote(cart)
	for _, d := range quote.Discounts {
		if d.Type == DiscountBulk {
			t.Fatal("one line at quantity 5 must not trigger the bulk discount")
		}
	}
	if quote.ItemCount != 5 {
		t.Fatalf("item count: got %d", quote.ItemCount)
	}
}

func TestBulkDiscountDoesNotReduceTotal(t *testing.T) {
	t.Parallel()

	pricer := NewPricer(testRates())
	cart := cartWithLines(t, "10.00", "10.00", "10.00")

	quote := pricer.Quote(cart)

	// 30.00 + 2.40 tax + 6.99 shipping, with the bulk line shown alongside.
	if !quote.Total.Equal(decimal.RequireFromString("39.39")) {
		t.Fatalf("total: got %s", quote.Total)
	}

	foundBulk := false
	for _, d := range quote.Discounts {
		if d.Type == DiscountBulk {
			foundBulk = true
			if !d.Value.Equal(decimal.RequireFromString("3.00")) {
				t.Fatalf("bulk value: got %s", d.Value)
			}
		}
	}
	if !foundBulk {
		t.Fatal("expected bulk discount entry")
	}
}

func TestQuoteEmptyCart(t *testing.T) {
	t.Parallel()

	pricer := NewPricer(testRates())
	cart := NewCart("session-1", "USD", time.Now())

	quote := pricer.Quote(cart)
	if !quote.Subtotal.IsZero() || !quote.Tax.IsZero() {
		t.Fatalf("empty cart should price to zero, got %+v", quote)
	}
	if !quote.Shipping.Equal(decimal.RequireFromString("6.99")) {
		t.Fatalf("empty cart shipping: got %s", quote.Shipping)
	}
	if quote.ItemCount != 0 || len(quote.Discounts) != 0 {
		t.Fatalf("empty cart derived %+v", quote)
	}
}
