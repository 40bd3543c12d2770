package controllers

import (
	"net/http"

	"github.com/meridianpress/storybook-backend/api/responses"
	"github.com/meridianpress/storybook-backend/api/validators"
	"github.com/meridianpress/storybook-backend/internal/personalization"
	previewsvc "github.com/meridianpress/storybook-backend/internal/preview"
	pkgerrors "github.com/meridianpress/storybook-backend/pkg/errors"
	"github.com/meridianpress/storybook-backend/pkg/logger"
)

// GeneratePreview handles preview generation for a personalization payload.
func GeneratePreview(svc previewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "preview service unavailable"))
			return
		}

		var payload personalization.Input
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithThemeID(ctx, payload.ThemeID)
		}

		response, err := svc.GeneratePreview(ctx, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, response)
	}
}

// CreatePrintAsset handles print-ready asset creation for fulfillment.
func CreatePrintAsset(svc previewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "preview service unavailable"))
			return
		}

		var payload personalization.Input
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		asset, err := svc.CreatePrintAsset(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, asset)
	}
}
