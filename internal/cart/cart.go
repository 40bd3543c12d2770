package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meridianpress/storybook-backend/internal/personalization"
)

// Item is one line of the cart. Identity for merging is the dedup key:
// (ProductID, VariantID, personalization fingerprint).
type Item struct {
	ID              uuid.UUID             `json:"id"`
	ProductID       string                `json:"productId"`
	VariantID       string                `json:"variantId"`
	Quantity        int                   `json:"quantity"`
	Personalization personalization.Input `json:"personalization"`
	Price           decimal.Decimal       `json:"price"`
	CompareAtPrice  *decimal.Decimal      `json:"compareAtPrice,omitempty"`
	AddedAt         time.Time             `json:"addedAt"`
}

// DedupKey returns the merge identity for this line.
func (i Item) DedupKey() string {
	return fmt.Sprintf("%s|%s|%s", i.ProductID, i.VariantID, i.Personalization.Fingerprint())
}

// Cart holds the session's line items in insertion order. The order is
// display-relevant and preserved across mutations.
type Cart struct {
	ID         uuid.UUID `json:"id"`
	SessionKey string    `json:"-"`
	Items      []Item    `json:"items"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewCart creates an empty cart bound to a session key.
func NewCart(sessionKey, currency string, now time.Time) *Cart {
	return &Cart{
		ID:         uuid.New(),
		SessionKey: sessionKey,
		Items:      nil,
		Currency:   currency,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewItemInput carries the caller-supplied fields for AddItem; id and
// timestamp are assigned by the aggregate.
type NewItemInput struct {
	ProductID       string
	VariantID       string
	Quantity        int
	Personalization personalization.Input
	Price           decimal.Decimal
	CompareAtPrice  *decimal.Decimal
}

func (in NewItemInput) dedupKey() string {
	return fmt.Sprintf("%s|%s|%s", in.ProductID, in.VariantID, in.Personalization.Fingerprint())
}

// AddItem merges into an existing line when the dedup key matches, otherwise
// appends a new line with a fresh id. It reports whether a new line was
// created and always touches UpdatedAt.
func (c *Cart) AddItem(input NewItemInput, now time.Time) (Item, bool) {
	key := input.dedupKey()
	for idx := range c.Items {
		if c.Items[idx].DedupKey() == key {
			c.Items[idx].Quantity += input.Quantity
			c.UpdatedAt = now
			return c.Items[idx], false
		}
	}

	item := Item{
		ID:              uuid.New(),
		ProductID:       input.ProductID,
		VariantID:       input.VariantID,
		Quantity:        input.Quantity,
		Personalization: input.Personalization,
		Price:           input.Price,
		CompareAtPrice:  input.CompareAtPrice,
		AddedAt:         now,
	}
	c.Items = append(c.Items, item)
	c.UpdatedAt = now
	return item, true
}

// RemoveItem deletes the matching line. Unknown ids are a no-op; removal is
// idempotent.
func (c *Cart) RemoveItem(itemID uuid.UUID, now time.Time) bool {
	for idx := range c.Items {
		if c.Items[idx].ID == itemID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			c.UpdatedAt = now
			return true
		}
	}
	return false
}

// UpdateQuantity sets the quantity of a line. Quantities <= 0 and unknown ids
// are a total no-op; dropping a line goes through RemoveItem.
func (c *Cart) UpdateQuantity(itemID uuid.UUID, quantity int, now time.Time) bool {
	if quantity <= 0 {
		return false
	}
	for idx := range c.Items {
		if c.Items[idx].ID == itemID {
			c.Items[idx].Quantity = quantity
			c.UpdatedAt = now
			return true
		}
	}
	return false
}

// Clear empties the items list, keeping cart identity and currency.
func (c *Cart) Clear(now time.Time) {
	c.Items = nil
	c.UpdatedAt = now
}

// Snapshot returns a copy of the item list so derivations read one atomic
// view even while the cart is being mutated by its owner.
func (c *Cart) Snapshot() []Item {
	out := make([]Item, len(c.Items))
	copy(out, c.Items)
	return out
}
