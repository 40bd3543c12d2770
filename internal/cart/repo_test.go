package cart

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&CartRecord{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	store, err := NewGormStore(db)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	return store
}

func TestGormStoreLoadMissing(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Load(context.Background(), "absent"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGormStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	cart := NewCart("session-1", "USD", now)
	cart.AddItem(bookInput("Emma"), now)

	if err := store.Save(ctx, cart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := store.Load(ctx, "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.ID != cart.ID || loaded.SessionKey != "session-1" || loaded.Currency != "USD" {
		t.Fatalf("cart identity did not survive the round trip: %+v", loaded)
	}
	if len(loaded.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(loaded.Items))
	}

	item := loaded.Items[0]
	original := cart.Items[0]
	if item.ID != original.ID || item.Quantity != original.Quantity {
		t.Fatalf("item did not survive the round trip: %+v", item)
	}
	if !item.Price.Equal(original.Price) {
		t.Fatalf("price drifted: %s vs %s", item.Price, original.Price)
	}
	if item.Personalization.ChildName != "Emma" {
		t.Fatalf("personalization dropped: %+v", item.Personalization)
	}
}

func TestGormStoreSaveUpserts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	cart := NewCart("session-1", "USD", now)
	cart.AddItem(bookInput("Emma"), now)
	if err := store.Save(ctx, cart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart.AddItem(bookInput("Liam"), now.Add(time.Minute))
	if err := store.Save(ctx, cart); err != nil {
		t.Fatalf("second save must upsert, got %v", err)
	}

	loaded, err := store.Load(ctx, "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded.Items) != 2 {
		t.Fatalf("expected upserted cart with 2 items, got %d", len(loaded.Items))
	}
	if loaded.ID != cart.ID {
		t.Fatal("upsert must not reassign the cart id")
	}
}
