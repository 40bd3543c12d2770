package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meridianpress/storybook-backend/internal/catalog"
	"github.com/meridianpress/storybook-backend/internal/personalization"
	"github.com/meridianpress/storybook-backend/pkg/config"
	pkgerrors "github.com/meridianpress/storybook-backend/pkg/errors"
	"github.com/meridianpress/storybook-backend/pkg/logger"
	"github.com/meridianpress/storybook-backend/pkg/metrics"
	"github.com/meridianpress/storybook-backend/pkg/redis"
)

// RuleUnknownCoverColor is reported when the requested cover color is not in
// the catalog palette.
const RuleUnknownCoverColor personalization.Rule = "UNKNOWN_COVER_COLOR"

// Cache is the subset of the redis client used for preview caching and print
// asset idempotency. Cache failures are never fatal to a request.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	PreviewKey(fingerprint string) string
	AssetKey(fingerprint string) string
}

// Service orchestrates validation, catalog lookup, per-page rendering and
// response assembly.
type Service interface {
	GeneratePreview(ctx context.Context, input personalization.Input) (*Response, error)
	CreatePrintAsset(ctx context.Context, input personalization.Input) (*PrintAsset, error)
}

type service struct {
	renderer Renderer
	screener personalization.Screener
	cache    Cache
	cfg      config.PreviewConfig
	logg     *logger.Logger
	met      *metrics.PreviewMetrics
	now      func() time.Time
	newID    func() string
}

// ServiceParams collects the pipeline collaborators.
type ServiceParams struct {
	Renderer Renderer
	Screener personalization.Screener
	Cache    Cache
	Config   config.PreviewConfig
	Logger   *logger.Logger
	Metrics  *metrics.PreviewMetrics

	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

// NewService builds a preview service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Renderer == nil {
		return nil, fmt.Errorf("renderer required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	if params.NewID == nil {
		params.NewID = newOpaqueID
	}
	return &service{
		renderer: params.Renderer,
		screener: params.Screener,
		cache:    params.Cache,
		cfg:      params.Config,
		logg:     params.Logger,
		met:      params.Metrics,
		now:      params.Now,
		newID:    params.NewID,
	}, nil
}

// GeneratePreview validates the input, resolves the theme and palette, renders
// every page and assembles the ordered response. Per-page renders run
// concurrently; results join back in template page order. A single render
// failure fails the whole request.
func (s *service) GeneratePreview(ctx context.Context, input personalization.Input) (*Response, error) {
	start := s.now()

	scheme, theme, err := s.resolve(input)
	if err != nil {
		return nil, err
	}

	if cached := s.cachedResponse(ctx, input); cached != nil {
		return cached, nil
	}

	renderCtx := ctx
	if s.cfg.RenderTimeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, s.cfg.RenderTimeout)
		defer cancel()
	}

	pages := make([]Page, len(theme.Pages))
	g, renderCtx := errgroup.WithContext(renderCtx)
	for i, page := range theme.Pages {
		i, page := i, page
		g.Go(func() error {
			rendered, err := s.renderer.Render(renderCtx, page, input, scheme)
			if err != nil {
				s.met.IncRender("failure")
				return fmt.Errorf("render page %d: %w", page.PageNumber, err)
			}
			s.met.IncRender("success")
			pages[i] = Page{
				PageNumber:   page.PageNumber,
				ImageURL:     rendered.ImageURL,
				ThumbnailURL: rendered.ThumbnailURL,
				Width:        rendered.Width,
				Height:       rendered.Height,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "preview rendering failed")
	}

	response := &Response{
		Pages:     pages,
		AssetID:   "preview-" + s.newID(),
		ExpiresAt: s.now().Add(s.cfg.TTL),
	}

	s.storeResponse(ctx, input, response)
	s.met.ObserveDuration(theme.ID, s.now().Sub(start))

	return response, nil
}

// CreatePrintAsset produces a deterministic print-ready asset reference for
// valid personalization. Repeat calls for the same snapshot return the same
// asset.
func (s *service) CreatePrintAsset(ctx context.Context, input personalization.Input) (*PrintAsset, error) {
	if _, _, err := s.resolve(input); err != nil {
		return nil, err
	}

	fingerprint := input.Fingerprint()
	asset := &PrintAsset{
		AssetID:   "asset-" + fingerprint[:16],
		Status:    "generated",
		CreatedAt: s.now().UTC(),
	}
	asset.PrintReadyPDFURL = fmt.Sprintf("%s/%s.pdf", s.cfg.AssetBaseURL, asset.AssetID)

	if s.cache != nil {
		key := s.cache.AssetKey(fingerprint)
		payload, err := json.Marshal(asset)
		if err == nil {
			created, setErr := s.cache.SetNX(ctx, key, payload, 0)
			if setErr != nil {
				s.warn(ctx, "print asset idempotency write failed", setErr)
			} else if !created {
				if stored, getErr := s.cache.Get(ctx, key); getErr == nil {
					var existing PrintAsset
					if json.Unmarshal([]byte(stored), &existing) == nil {
						return &existing, nil
					}
				}
			}
		}
	}

	return asset, nil
}

// resolve runs validation and catalog lookups shared by both operations.
func (s *service) resolve(input personalization.Input) (catalog.ColorScheme, catalog.Theme, error) {
	violations := personalization.Validate(input, s.screener)

	color, colorOK := catalog.ParseCoverColor(input.CoverColor)
	if !colorOK {
		violations = append(violations, personalization.Violation{
			Field:   "coverColor",
			Rule:    RuleUnknownCoverColor,
			Message: "Cover color is not available",
		})
	}

	if len(violations) > 0 {
		err := pkgerrors.New(pkgerrors.CodeValidation, "personalization validation failed").
			WithDetails(map[string]any{"violations": violations})
		return catalog.ColorScheme{}, catalog.Theme{}, err
	}

	theme, ok := catalog.ThemeByID(input.ThemeID)
	if !ok {
		return catalog.ColorScheme{}, catalog.Theme{}, pkgerrors.New(pkgerrors.CodeNotFound, "book template not found")
	}

	return catalog.SchemeFor(color), theme, nil
}

func (s *service) cachedResponse(ctx context.Context, input personalization.Input) *Response {
	if s.cache == nil {
		return nil
	}
	key := s.cache.PreviewKey(input.Fingerprint())
	stored, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.met.IncCache("error")
			s.warn(ctx, "preview cache read failed", err)
		} else {
			s.met.IncCache("miss")
		}
		return nil
	}
	var response Response
	if err := json.Unmarshal([]byte(stored), &response); err != nil {
		s.met.IncCache("error")
		return nil
	}
	if !response.ExpiresAt.After(s.now()) {
		s.met.IncCache("miss")
		return nil
	}
	s.met.IncCache("hit")
	return &response
}

func (s *service) storeResponse(ctx context.Context, input personalization.Input, response *Response) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(response)
	if err != nil {
		return
	}
	key := s.cache.PreviewKey(input.Fingerprint())
	if err := s.cache.Set(ctx, key, payload, s.cfg.TTL); err != nil {
		s.warn(ctx, "preview cache write failed", err)
	}
}

func (s *service) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), msg)
}
