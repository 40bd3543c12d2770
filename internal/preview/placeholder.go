package preview

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/meridianpress/storybook-backend/internal/catalog"
	"github.com/meridianpress/storybook-backend/internal/personalization"
)

const (
	pageWidth   = 1100
	pageHeight  = 850
	thumbWidth  = 150
	thumbHeight = 200
)

// PlaceholderRenderer builds placeholder-image URLs in place of a real
// rendering service. It exists to satisfy the Renderer contract; swapping in
// a production renderer must not touch the pipeline.
type PlaceholderRenderer struct {
	baseURL string
}

// NewPlaceholderRenderer builds a renderer rooted at the given base URL.
func NewPlaceholderRenderer(baseURL string) *PlaceholderRenderer {
	return &PlaceholderRenderer{baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *PlaceholderRenderer) Render(_ context.Context, page catalog.PageTemplate, input personalization.Input, scheme catalog.ColorScheme) (RenderedPage, error) {
	text := ComposePageText(page, input.ChildName)

	image := fmt.Sprintf(
		"%s/%dx%d/%s/%s?text=Page+%d%%0A%s",
		r.baseURL, pageWidth, pageHeight,
		hexValue(scheme.Primary), hexValue(scheme.Background),
		page.PageNumber, url.QueryEscape(text),
	)
	thumbnail := fmt.Sprintf(
		"%s/%dx%d/%s/%s?text=P%d",
		r.baseURL, thumbWidth, thumbHeight,
		hexValue(scheme.Primary), hexValue(scheme.Background),
		page.PageNumber,
	)

	return RenderedPage{
		ImageURL:     image,
		ThumbnailURL: thumbnail,
		Width:        pageWidth,
		Height:       pageHeight,
	}, nil
}

func hexValue(color string) string {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) > 6 {
		hex = hex[:6]
	}
	return hex
}
