package cart

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meridianpress/storybook-backend/internal/personalization"
)

func bookInput(name string) NewItemInput {
	return NewItemInput{
		ProductID: "book-1",
		VariantID: "hardcover",
		Quantity:  1,
		Personalization: personalization.Input{
			ChildName:  name,
			CoverColor: "blue",
			Locale:     "en-US",
			ThemeID:    "1",
		},
		Price: decimal.RequireFromString("29.99"),
	}
}

func TestAddItemMergesOnDedupKey(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cart := NewCart("session-1", "USD", now)

	first, created := cart.AddItem(bookInput("Emma"), now)
	if !created {
		t.Fatal("first add should create a line")
	}

	second, created := cart.AddItem(bookInput("Emma"), now.Add(time.Second))
	if created {
		t.Fatal("same product, variant and personalization must merge")
	}
	if second.ID != first.ID {
		t.Fatalf("merged line changed identity: %s vs %s", second.ID, first.ID)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", cart.Items)
	}
}

func TestAddItemDifferentPersonalizationSplitsLines(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cart := NewCart("session-1", "USD", now)

	cart.AddItem(bookInput("Emma"), now)
	_, created := cart.AddItem(bookInput("Liam"), now)
	if !created {
		t.Fatal("different child name is a different snapshot and a new line")
	}
	if len(cart.Items) != 2 {
		t.Fatalf("expected two lines, got %d", len(cart.Items))
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cart := NewCart("session-1", "USD", now)
	item, _ := cart.AddItem(bookInput("Emma"), now)

	if !cart.RemoveItem(item.ID, now) {
		t.Fatal("expected removal of an existing line")
	}
	if cart.RemoveItem(item.ID, now) {
		t.Fatal("second removal must be a no-op")
	}
	if cart.RemoveItem(uuid.New(), now) {
		t.Fatal("unknown id must be a no-op")
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(cart.Items))
	}
}

func TestUpdateQuantity(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cart := NewCart("session-1", "USD", now)
	item, _ := cart.AddItem(bookInput("Emma"), now)

	if !cart.UpdateQuantity(item.ID, 4, now) {
		t.Fatal("expected update of an existing line")
	}
	if cart.Items[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", cart.Items[0].Quantity)
	}

	if cart.UpdateQuantity(item.ID, 0, now) {
		t.Fatal("zero quantity must be a no-op, not a removal")
	}
	if cart.UpdateQuantity(item.ID, -2, now) {
		t.Fatal("negative quantity must be a no-op")
	}
	if cart.Items[0].Quantity != 4 {
		t.Fatalf("no-op update changed quantity to %d", cart.Items[0].Quantity)
	}
}

func TestClearKeepsIdentity(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cart := NewCart("session-1", "USD", now)
	cart.AddItem(bookInput("Emma"), now)

	id := cart.ID
	cart.Clear(now.Add(time.Minute))

	if len(cart.Items) != 0 {
		t.Fatalf("expected no items after clear, got %d", len(cart.Items))
	}
	if cart.ID != id || cart.Currency != "USD" {
		t.Fatal("clear must keep cart identity and currency")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cart := NewCart("session-1", "USD", now)
	cart.AddItem(bookInput("Emma"), now)

	snapshot := cart.Snapshot()
	snapshot[0].Quantity = 99

	if cart.Items[0].Quantity != 1 {
		t.Fatalf("snapshot mutation leaked into the cart: %d", cart.Items[0].Quantity)
	}
}
