// Package config loads and saves curve definitions: control points,
// boundary policy, optional tangents and sampling parameters.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/splinekit/internal/spline"
)

const (
	DefaultSamples = 120
	DefaultMargin  = 0.0
)

// Config describes one curve. Points are row vectors, one per control
// point; all rows must share the same dimension. Arguments, when
// present, must be strictly increasing and match the point count.
type Config struct {
	Name         string      `yaml:"name"`
	Boundary     string      `yaml:"boundary"`
	Points       [][]float64 `yaml:"points"`
	Arguments    []float64   `yaml:"arguments,omitempty"`
	StartTangent []float64   `yaml:"start_tangent,omitempty"`
	EndTangent   []float64   `yaml:"end_tangent,omitempty"`
	Samples      int         `yaml:"samples"`
	// Margin extends the sampled range past the domain on both sides,
	// in argument units, to show extrapolation behavior.
	Margin float64 `yaml:"margin"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:     "wave",
		Boundary: "natural",
		Points:   [][]float64{{0}, {1}, {0}, {-1}},
		Samples:  DefaultSamples,
		Margin:   DefaultMargin,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Points = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks structural consistency; spline construction handles
// the rest.
func (c *Config) Validate() error {
	switch c.Boundary {
	case "natural", "clamped", "periodic":
	case "":
		c.Boundary = "natural"
	default:
		return fmt.Errorf("config: unknown boundary %q (want natural, clamped or periodic)", c.Boundary)
	}

	if len(c.Points) < 2 {
		return fmt.Errorf("config: need at least 2 points, have %d", len(c.Points))
	}
	dim := len(c.Points[0])
	if dim == 0 {
		return fmt.Errorf("config: points must have at least one component")
	}
	for i, p := range c.Points {
		if len(p) != dim {
			return fmt.Errorf("config: point %d has dimension %d, want %d", i, len(p), dim)
		}
	}
	if c.Arguments != nil && len(c.Arguments) != len(c.Points) {
		return fmt.Errorf("config: %d arguments for %d points", len(c.Arguments), len(c.Points))
	}
	if c.Boundary == "clamped" {
		if len(c.StartTangent) != dim || len(c.EndTangent) != dim {
			return fmt.Errorf("config: clamped boundary needs start_tangent and end_tangent of dimension %d", dim)
		}
	}
	if c.Samples <= 0 {
		c.Samples = DefaultSamples
	}
	return nil
}

// Dim returns the dimension of the value space.
func (c *Config) Dim() int {
	if len(c.Points) == 0 {
		return 0
	}
	return len(c.Points[0])
}

// Vectors converts the point rows into spline values.
func (c *Config) Vectors() []spline.Vec {
	values := make([]spline.Vec, len(c.Points))
	for i, p := range c.Points {
		values[i] = spline.Vec{}.FromComponents(p)
	}
	return values
}

// Condition builds the boundary condition named by the config.
func (c *Config) Condition() (spline.Condition[spline.Vec], error) {
	switch c.Boundary {
	case "clamped":
		return spline.Clamped(
			spline.Vec{}.FromComponents(c.StartTangent),
			spline.Vec{}.FromComponents(c.EndTangent),
		), nil
	case "periodic":
		return spline.Periodic[spline.Vec](), nil
	case "natural", "":
		return spline.Natural[spline.Vec](), nil
	default:
		return spline.Condition[spline.Vec]{}, fmt.Errorf("config: unknown boundary %q", c.Boundary)
	}
}

// Build constructs the spline the config describes.
func (c *Config) Build() (*spline.Spline[spline.Vec], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	cond, err := c.Condition()
	if err != nil {
		return nil, err
	}
	return spline.New(c.Arguments, c.Vectors(), cond)
}
