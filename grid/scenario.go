package grid

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/hupe1980/sightline/fov"
	"github.com/hupe1980/sightline/morton"
	"gopkg.in/yaml.v3"
)

// Position is a YAML-friendly grid point.
type Position struct {
	X int64 `yaml:"x"`
	Y int64 `yaml:"y"`
}

// Point converts p to a morton.Point.
func (p Position) Point() morton.Point {
	return morton.Pt(p.X, p.Y)
}

// KindSpec is the YAML form of a Kind.
type KindSpec struct {
	Blocked bool `yaml:"blocked"`
	Actor   bool `yaml:"actor"`
	Void    bool `yaml:"void"`
}

// Scenario is a map plus the parameters of a field-of-view run.
type Scenario struct {
	Name     string              `yaml:"name"`
	Map      []string            `yaml:"map"`
	Origin   *Position           `yaml:"origin"`
	MaxDepth *int                `yaml:"max_depth"`
	Legend   map[string]KindSpec `yaml:"legend"`
	Actors   map[string]Position `yaml:"actors"`
}

// LoadScenario decodes a YAML scenario. Unknown fields are rejected.
func LoadScenario(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyMap
		}
		return nil, fmt.Errorf("grid: decode scenario: %w", err)
	}
	if len(s.Map) == 0 {
		return nil, ErrEmptyMap
	}
	return &s, nil
}

// LoadScenarioFile reads a YAML scenario from path.
func LoadScenarioFile(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := LoadScenario(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LegendWithDefaults returns DefaultLegend extended with the scenario's overrides.
func (s *Scenario) LegendWithDefaults() (Legend, error) {
	l := DefaultLegend.Clone()
	for key, spec := range s.Legend {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("grid: legend key %q must be a single glyph", key)
		}
		r, _ := utf8.DecodeRuneInString(key)
		l[r] = Kind(spec)
	}
	return l, nil
}

// Grid parses the scenario map.
func (s *Scenario) Grid() (*Grid, error) {
	l, err := s.LegendWithDefaults()
	if err != nil {
		return nil, err
	}
	return Parse(s.Map, l)
}

// Depth returns the configured max depth or fov.DefaultMaxDepth.
func (s *Scenario) Depth() int {
	if s.MaxDepth == nil {
		return fov.DefaultMaxDepth
	}
	return *s.MaxDepth
}

// Start returns the configured origin, or the first '@' on the map.
func (s *Scenario) Start(g *Grid) (morton.Point, bool) {
	if s.Origin != nil {
		return s.Origin.Point(), true
	}
	if at := g.Find('@'); len(at) > 0 {
		return at[0], true
	}
	return morton.Point{}, false
}
