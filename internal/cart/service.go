package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/meridianpress/storybook-backend/internal/personalization"
	pkgerrors "github.com/meridianpress/storybook-backend/pkg/errors"
	"github.com/meridianpress/storybook-backend/pkg/logger"
	"github.com/meridianpress/storybook-backend/pkg/metrics"
)

// View is what read endpoints return: the cart plus one consistent quote.
type View struct {
	Cart  *Cart `json:"cart"`
	Quote Quote `json:"quote"`
}

// Service exposes the session-scoped cart operations. One session owns one
// cart; mutations are last-write-wins against the injected Store.
type Service interface {
	Get(ctx context.Context, sessionKey string) (*View, error)
	AddItem(ctx context.Context, sessionKey string, input NewItemInput) (*View, error)
	UpdateQuantity(ctx context.Context, sessionKey string, itemID uuid.UUID, quantity int) (*View, error)
	RemoveItem(ctx context.Context, sessionKey string, itemID uuid.UUID) (*View, error)
	Clear(ctx context.Context, sessionKey string) (*View, error)
	ValidateCheckout(ctx context.Context, sessionKey string) ([]CheckoutViolation, error)
}

type service struct {
	store     Store
	pricer    *Pricer
	screener  personalization.Screener
	listeners []Listener
	currency  string
	logg      *logger.Logger
	met       *metrics.CartMetrics
	now       func() time.Time
}

// ServiceParams collects the cart service collaborators.
type ServiceParams struct {
	Store    Store
	Pricer   *Pricer
	Screener personalization.Screener
	Currency string
	Logger   *logger.Logger
	Metrics  *metrics.CartMetrics

	// Listeners receive cart notifications such as EventItemAdded. Wired at
	// startup; not safe to change afterwards.
	Listeners []Listener

	// Now is overridable for tests.
	Now func() time.Time
}

// NewService builds a cart service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if params.Pricer == nil {
		return nil, fmt.Errorf("pricer required")
	}
	if params.Currency == "" {
		params.Currency = "USD"
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		store:     params.Store,
		pricer:    params.Pricer,
		screener:  params.Screener,
		listeners: params.Listeners,
		currency:  params.Currency,
		logg:      params.Logger,
		met:       params.Metrics,
		now:       params.Now,
	}, nil
}

func (s *service) Get(ctx context.Context, sessionKey string) (*View, error) {
	cart, err := s.loadOrCreate(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

func (s *service) AddItem(ctx context.Context, sessionKey string, input NewItemInput) (*View, error) {
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if violations := personalization.Validate(input.Personalization, s.screener); len(violations) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "personalization validation failed").
			WithDetails(map[string]any{"violations": violations})
	}

	cart, err := s.loadOrCreate(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	item, _ := cart.AddItem(input, s.now())

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}

	s.met.IncMutation("add_item")
	s.emit(Event{
		Kind:       EventItemAdded,
		CartID:     cart.ID,
		ItemID:     item.ID,
		SessionKey: sessionKey,
		OpenCart:   true,
	})

	return s.view(cart), nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionKey string, itemID uuid.UUID, quantity int) (*View, error) {
	cart, err := s.loadOrCreate(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if cart.UpdateQuantity(itemID, quantity, s.now()) {
		if err := s.store.Save(ctx, cart); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
		}
		s.met.IncMutation("update_quantity")
	}

	return s.view(cart), nil
}

func (s *service) RemoveItem(ctx context.Context, sessionKey string, itemID uuid.UUID) (*View, error) {
	cart, err := s.loadOrCreate(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if cart.RemoveItem(itemID, s.now()) {
		if err := s.store.Save(ctx, cart); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
		}
		s.met.IncMutation("remove_item")
	}

	return s.view(cart), nil
}

func (s *service) Clear(ctx context.Context, sessionKey string) (*View, error) {
	cart, err := s.loadOrCreate(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	cart.Clear(s.now())
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	s.met.IncMutation("clear")

	return s.view(cart), nil
}

func (s *service) ValidateCheckout(ctx context.Context, sessionKey string) ([]CheckoutViolation, error) {
	cart, err := s.loadOrCreate(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	return ValidateForCheckout(cart), nil
}

func (s *service) loadOrCreate(ctx context.Context, sessionKey string) (*Cart, error) {
	if sessionKey == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session key is required")
	}
	cart, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return NewCart(sessionKey, s.currency, s.now()), nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return cart, nil
}

func (s *service) view(cart *Cart) *View {
	return &View{
		Cart:  cart,
		Quote: s.pricer.Quote(cart),
	}
}

func (s *service) emit(event Event) {
	for _, listener := range s.listeners {
		listener(event)
	}
}
