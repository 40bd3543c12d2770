package cart

import "github.com/google/uuid"

// EventKind names the notifications the aggregate emits.
type EventKind string

const (
	// EventItemAdded asks subscribed UI layers to surface the cart. It is an
	// explicit notification, not a flag mutated alongside the domain change.
	EventItemAdded EventKind = "item_added"
)

// Event is an observable cart notification.
type Event struct {
	Kind       EventKind
	CartID     uuid.UUID
	ItemID     uuid.UUID
	SessionKey string
	OpenCart   bool
}

// Listener receives cart events. Listeners must not mutate the cart.
type Listener func(Event)
