package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/membrane/internal/curve"
	"github.com/san-kum/membrane/internal/membrane"
	"github.com/san-kum/membrane/internal/render"
	"github.com/san-kum/membrane/internal/scene"
)

const (
	DefaultWidth            = 1280
	DefaultHeight           = 720
	DefaultFPS              = 60
	DefaultMinRadius        = 5.0
	DefaultMargin           = membrane.DefaultMargin
	DefaultSamplesPerCircle = membrane.DefaultSamplesPerCircle
	DefaultOutlineThickness = 4.0
	DefaultOutlineColor     = "#55cc99"
	DefaultCircleThickness  = 3.0
	DefaultCircleColor      = "#55ccee"
	DefaultBackground       = "#0a0a0a"
	DefaultLogLevel         = "info"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Geometry GeometryConfig `yaml:"geometry"`
	Style    StyleConfig    `yaml:"style"`
	LogLevel string         `yaml:"log_level"`
	Circles  []CircleConfig `yaml:"circles"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

type GeometryConfig struct {
	MinRadius        float64 `yaml:"min_radius"`
	Margin           float64 `yaml:"margin"`
	SamplesPerCircle int     `yaml:"samples_per_circle"`
	Blend            float64 `yaml:"blend"`
}

type StyleConfig struct {
	Background       string  `yaml:"background"`
	CircleColor      string  `yaml:"circle_color"`
	CircleThickness  float64 `yaml:"circle_thickness"`
	OutlineColor     string  `yaml:"outline_color"`
	OutlineThickness float64 `yaml:"outline_thickness"`
}

type CircleConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	R float64 `yaml:"r"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
		Geometry: GeometryConfig{
			MinRadius:        DefaultMinRadius,
			Margin:           DefaultMargin,
			SamplesPerCircle: DefaultSamplesPerCircle,
			Blend:            curve.DefaultBlend,
		},
		Style: StyleConfig{
			Background:       DefaultBackground,
			CircleColor:      DefaultCircleColor,
			CircleThickness:  DefaultCircleThickness,
			OutlineColor:     DefaultOutlineColor,
			OutlineThickness: DefaultOutlineThickness,
		},
		LogLevel: DefaultLogLevel,
		Circles:  demoCircles(),
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
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

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d", c.Window.FPS))
	}
	if c.Geometry.MinRadius <= 0 {
		errs = append(errs, fmt.Errorf("min_radius %g must be positive", c.Geometry.MinRadius))
	}
	if c.Geometry.Margin < 0 {
		errs = append(errs, fmt.Errorf("margin %g must not be negative", c.Geometry.Margin))
	}
	if c.Geometry.SamplesPerCircle < 3 {
		errs = append(errs, fmt.Errorf("samples_per_circle %d must be at least 3", c.Geometry.SamplesPerCircle))
	}
	if !(c.Geometry.Blend > 0 && c.Geometry.Blend < 1) {
		errs = append(errs, fmt.Errorf("blend %g must be in (0, 1)", c.Geometry.Blend))
	}
	if c.Style.CircleThickness <= 0 || c.Style.OutlineThickness <= 0 {
		errs = append(errs, errors.New("stroke thickness must be positive"))
	}
	for name, hex := range map[string]string{
		"background":    c.Style.Background,
		"circle_color":  c.Style.CircleColor,
		"outline_color": c.Style.OutlineColor,
	} {
		if _, err := ParseHexColor(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func (c *Config) Params() membrane.Params {
	return membrane.Params{
		Margin:           c.Geometry.Margin,
		SamplesPerCircle: c.Geometry.SamplesPerCircle,
		Blend:            c.Geometry.Blend,
	}
}

// RenderStyle converts the style section. Colors are assumed valid; call
// Validate first.
func (c *Config) RenderStyle() render.Style {
	bg, _ := ParseHexColor(c.Style.Background)
	cc, _ := ParseHexColor(c.Style.CircleColor)
	oc, _ := ParseHexColor(c.Style.OutlineColor)
	return render.Style{
		Background: bg,
		Circle:     render.Stroke{Color: cc, Width: c.Style.CircleThickness},
		Membrane:   render.Stroke{Color: oc, Width: c.Style.OutlineThickness},
	}
}

func (c *Config) NewStore() *scene.Store {
	seed := make([]scene.Circle, len(c.Circles))
	for i, cc := range c.Circles {
		seed[i] = scene.Circle{X: cc.X, Y: cc.Y, R: cc.R}
	}
	return scene.NewStore(c.Geometry.MinRadius, seed...)
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
