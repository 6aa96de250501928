package dataset

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.yaml.in/yaml/v3"

	"github.com/okian/scatterviz/internal/domain/model"
)

// document mirrors the on-disk layout:
//
//	name: february
//	points:
//	  - {date: 11/02/23, x: 44, y: 10}
//	  - {date: 12/02/23, x: 51, y: 237, outcome: true}
//	  - {date: 01/03/23, x: 3.5, y: 42, mood: 4}
type document struct {
	Name   string   `yaml:"name"`
	Points []record `yaml:"points"`
}

type record struct {
	Date    string   `yaml:"date"`
	X       *float64 `yaml:"x"`
	Y       *float64 `yaml:"y"`
	Outcome *bool    `yaml:"outcome"`
	Mood    *float64 `yaml:"mood"`
}

// Load reads a dataset from a YAML or JSON file. A missing name defaults to
// the file's base name without extension.
func Load(ctx context.Context, path string) (model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return model.Dataset{}, fmt.Errorf("load dataset: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	if ds.Name == "" {
		ds.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ds, nil
}

// Parse decodes a dataset document. JSON input is accepted as YAML.
func Parse(data []byte) (model.Dataset, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.Dataset{}, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}

	for i, r := range doc.Points {
		if err := r.validate(); err != nil {
			return model.Dataset{}, fmt.Errorf("%w: point %d: %w", ErrInvalidDataset, i, err)
		}
	}

	return model.Dataset{
		Name:   strings.TrimSpace(doc.Name),
		Points: lo.Map(doc.Points, func(r record, _ int) model.DataPoint { return r.point() }),
	}, nil
}

func (r record) validate() error {
	switch {
	case r.X == nil:
		return errMissingX
	case r.Y == nil:
		return errMissingY
	case !finite(*r.X) || !finite(*r.Y):
		return errNotFinite
	case *r.Y < 0:
		return errNegativeY
	case r.Outcome != nil && r.Mood != nil:
		return errBothAttributes
	case r.Mood != nil && !finite(*r.Mood):
		return errNotFinite
	}
	return nil
}

func (r record) point() model.DataPoint {
	p := model.DataPoint{X: *r.X, Y: *r.Y, Label: r.Date}
	switch {
	case r.Mood != nil:
		p.Attribute = model.Mood(*r.Mood)
	case r.Outcome != nil && *r.Outcome:
		p.Attribute = model.Won()
	case r.Outcome != nil:
		p.Attribute = model.Lost()
	}
	return p
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
