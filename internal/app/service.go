// Package service ties datasets, encoding presets and renderers together
// behind the operations used by the CLI and the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/okian/scatterviz/internal/adapters/render"
	"github.com/okian/scatterviz/internal/adapters/render/plotchart"
	"github.com/okian/scatterviz/internal/adapters/render/svgchart"
	repository "github.com/okian/scatterviz/internal/adapters/repository"
	"github.com/okian/scatterviz/internal/domain/dataset"
	"github.com/okian/scatterviz/internal/domain/encoding"
	"github.com/okian/scatterviz/internal/domain/model"
	"github.com/okian/scatterviz/internal/domain/variant"
	"github.com/okian/scatterviz/pkg/logger"
	"github.com/okian/scatterviz/pkg/metrics"
)

const (
	defaultCanvasSize = 600
	defaultMargin     = 25
)

// Service implements the dependencies of the HTTP API and the CLI.
type Service struct {
	store          repository.Store
	canvas         model.Canvas
	defaultVariant string
	seedBuiltin    bool
	builtinID      string

	logger logger.Logger
}

// New constructs a Service. Unless WithoutBuiltinDataset is given, the
// built-in weather dataset is stored and its id reported by BuiltinID.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	s := &Service{
		canvas:         model.Canvas{Size: defaultCanvasSize, Margin: defaultMargin},
		defaultVariant: variant.Weather,
		seedBuiltin:    true,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore()
	}
	if err := s.canvas.Validate(); err != nil {
		return nil, fmt.Errorf("new service: %w", err)
	}
	if _, err := variant.Lookup(s.defaultVariant); err != nil {
		return nil, fmt.Errorf("new service: %w", err)
	}

	if s.seedBuiltin {
		ds, err := s.store.Put(ctx, dataset.Weather())
		if err != nil {
			return nil, fmt.Errorf("seed builtin dataset: %w", err)
		}
		s.builtinID = ds.ID
		s.logger.Info(ctx, "seeded builtin dataset",
			logger.String("id", ds.ID),
			logger.String("name", ds.Name),
			logger.Int("points", len(ds.Points)),
		)
	}

	return s, nil
}

// BuiltinID returns the id of the seeded weather dataset, or "" if none.
func (s *Service) BuiltinID() string { return s.builtinID }

// Canvas returns the drawing surface used for renders.
func (s *Service) Canvas() model.Canvas { return s.canvas }

// AddDataset stores ds and returns it with its assigned id.
func (s *Service) AddDataset(ctx context.Context, ds model.Dataset) (model.Dataset, error) {
	stored, err := s.store.Put(ctx, ds)
	if err != nil {
		return model.Dataset{}, err
	}
	s.logger.Info(ctx, "dataset added",
		logger.String("id", stored.ID),
		logger.String("name", stored.Name),
		logger.Int("points", len(stored.Points)),
	)
	return stored, nil
}

// Dataset returns the dataset stored under id.
func (s *Service) Dataset(ctx context.Context, id string) (model.Dataset, error) {
	return s.store.Get(ctx, id)
}

// Datasets lists stored datasets.
func (s *Service) Datasets(ctx context.Context) []repository.Summary {
	return s.store.List(ctx)
}

// Encode encodes the dataset id with the named preset; an empty name selects
// the default preset.
func (s *Service) Encode(ctx context.Context, id, variantName string) ([]model.VisualPoint, error) {
	_, _, points, err := s.encode(ctx, id, variantName)
	return points, err
}

// Render encodes the dataset id with the named preset and writes it to w in
// format (svg, png or pdf).
func (s *Service) Render(ctx context.Context, w io.Writer, id, variantName, format string) error {
	r, err := Renderer(format)
	if err != nil {
		return err
	}

	v, ds, points, err := s.encode(ctx, id, variantName)
	if err != nil {
		return err
	}

	chart := render.Chart{
		Title:  ds.Name,
		Canvas: s.canvas,
		X:      render.Axis{Title: v.X.Title, MinLabel: v.X.MinLabel, MaxLabel: v.X.MaxLabel},
		Y:      render.Axis{Title: v.Y.Title, MinLabel: v.Y.MinLabel, MaxLabel: v.Y.MaxLabel},
		Points: points,
	}

	start := time.Now()
	if err := r.Render(ctx, w, chart); err != nil {
		s.logger.Error(ctx, "render failed",
			logger.String("id", id),
			logger.String("format", format),
			logger.Error(err),
		)
		return err
	}
	took := time.Since(start)
	metrics.RecordRender(r.Format(), float64(took.Microseconds())/1000)
	s.logger.Debug(ctx, "chart rendered",
		logger.String("id", id),
		logger.String("variant", v.Name),
		logger.String("format", r.Format()),
		logger.Duration("took", took),
	)
	return nil
}

// Renderer resolves the renderer for format; see the package-level Renderer.
func (s *Service) Renderer(format string) (render.Renderer, error) {
	return Renderer(format)
}

// Renderer returns the renderer for format. SVG output goes through the
// tooltip-aware svgchart renderer; other formats through gonum/plot.
func Renderer(format string) (render.Renderer, error) {
	if format == "" || format == render.FormatSVG {
		return svgchart.New(), nil
	}
	return plotchart.New(format)
}

func (s *Service) encode(ctx context.Context, id, variantName string) (variant.Variant, model.Dataset, []model.VisualPoint, error) {
	if variantName == "" {
		variantName = s.defaultVariant
	}
	v, err := variant.Lookup(variantName)
	if err != nil {
		return variant.Variant{}, model.Dataset{}, nil, err
	}

	ds, err := s.store.Get(ctx, id)
	if err != nil {
		return variant.Variant{}, model.Dataset{}, nil, err
	}

	points, err := v.Encode(ds.Points, s.canvas)
	if err != nil {
		metrics.RecordEncodeError(errorKind(err))
		s.logger.Warn(ctx, "encode rejected",
			logger.String("id", id),
			logger.String("variant", v.Name),
			logger.Error(err),
		)
		return variant.Variant{}, model.Dataset{}, nil, fmt.Errorf("dataset %s as %s: %w", id, v.Name, err)
	}

	metrics.RecordEncode(v.Name, len(points))
	return v, ds, points, nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, encoding.ErrInvalidScale):
		return "invalid_scale"
	case errors.Is(err, encoding.ErrInvalidMargin):
		return "invalid_margin"
	case errors.Is(err, encoding.ErrAttributeMismatch):
		return "attribute_mismatch"
	default:
		return "other"
	}
}
