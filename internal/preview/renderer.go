package preview

import (
	"context"
	"time"

	"github.com/meridianpress/storybook-backend/internal/catalog"
	"github.com/meridianpress/storybook-backend/internal/personalization"
)

// RenderedPage is what the renderer collaborator produces for one page.
type RenderedPage struct {
	ImageURL     string `json:"imageUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// Renderer turns a resolved page template plus personalization into preview
// artifacts. Implementations must be safe for concurrent use; the pipeline
// fans out one call per page.
type Renderer interface {
	Render(ctx context.Context, page catalog.PageTemplate, input personalization.Input, scheme catalog.ColorScheme) (RenderedPage, error)
}

// Page is one entry of a preview response.
type Page struct {
	PageNumber   int    `json:"pageNumber"`
	ImageURL     string `json:"imageUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// Response is the assembled preview. Pages are in template order and the
// response is logically invalid after ExpiresAt; consumers must check.
type Response struct {
	Pages     []Page    `json:"pages"`
	AssetID   string    `json:"assetId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// PrintAsset references a print-ready artifact produced for fulfillment.
type PrintAsset struct {
	AssetID          string    `json:"assetId"`
	PrintReadyPDFURL string    `json:"printReadyPdfUrl"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}
