package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meridianpress/storybook-backend/api/middleware"
	"github.com/meridianpress/storybook-backend/api/responses"
	"github.com/meridianpress/storybook-backend/api/validators"
	cartsvc "github.com/meridianpress/storybook-backend/internal/cart"
	"github.com/meridianpress/storybook-backend/internal/personalization"
	pkgerrors "github.com/meridianpress/storybook-backend/pkg/errors"
	"github.com/meridianpress/storybook-backend/pkg/logger"
)

// AddCartItemRequest is the payload for adding a line to the session cart.
type AddCartItemRequest struct {
	ProductID       string                `json:"productId" validate:"required"`
	VariantID       string                `json:"variantId" validate:"required"`
	Quantity        int                   `json:"quantity" validate:"required,gte=1"`
	Price           decimal.Decimal       `json:"price" validate:"required"`
	CompareAtPrice  *decimal.Decimal      `json:"compareAtPrice,omitempty"`
	Personalization personalization.Input `json:"personalization"`
}

// UpdateCartItemRequest carries a quantity change for one line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// CartFetch returns the session cart with a freshly derived quote.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.Get(r.Context(), sessionKey(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartAddItem adds or merges a line item.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload AddCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.AddItem(r.Context(), sessionKey(r), cartsvc.NewItemInput{
			ProductID:       payload.ProductID,
			VariantID:       payload.VariantID,
			Quantity:        payload.Quantity,
			Personalization: payload.Personalization,
			Price:           payload.Price,
			CompareAtPrice:  payload.CompareAtPrice,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartUpdateItem changes a line quantity. Quantities <= 0 leave the cart
// untouched; line removal goes through the delete route.
func CartUpdateItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := itemIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload UpdateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.UpdateQuantity(r.Context(), sessionKey(r), itemID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartRemoveItem deletes a line item; removing an absent line is a no-op.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := itemIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.RemoveItem(r.Context(), sessionKey(r), itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartClear empties the session cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.Clear(r.Context(), sessionKey(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartValidate runs checkout validation and reports every violation.
func CartValidate(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		violations, err := svc.ValidateCheckout(r.Context(), sessionKey(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"valid":      len(violations) == 0,
			"violations": violations,
		})
	}
}

func sessionKey(r *http.Request) string {
	return middleware.SessionKeyFromContext(r.Context())
}

func itemIDFromPath(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "itemID")
	itemID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id")
	}
	return itemID, nil
}
