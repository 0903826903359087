// Package theme loads named color palettes from TOML files and derives
// interaction-state variants (hover, pressed, disabled) in a perceptual
// color space.
package theme

import (
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Theme is a resolved palette. Zero-value fields never occur: Load
// starts from Default and overrides only the colors the file names.
type Theme struct {
	Name string

	Background color.RGBA
	Surface    color.RGBA
	Primary    color.RGBA
	Accent     color.RGBA
	Text       color.RGBA
	Muted      color.RGBA
	Border     color.RGBA
}

// fileTheme is the on-disk TOML shape. Colors are hex strings like
// "#1e1e2e"; omitted fields keep the default palette's value.
type fileTheme struct {
	Name   string `toml:"name"`
	Colors struct {
		Background string `toml:"background"`
		Surface    string `toml:"surface"`
		Primary    string `toml:"primary"`
		Accent     string `toml:"accent"`
		Text       string `toml:"text"`
		Muted      string `toml:"muted"`
		Border     string `toml:"border"`
	} `toml:"colors"`
}

// Default returns the built-in dark editor palette.
func Default() *Theme {
	return &Theme{
		Name:       "easel-dark",
		Background: mustHex("#1e1e2e"),
		Surface:    mustHex("#2a2a3c"),
		Primary:    mustHex("#4f6ef2"),
		Accent:     mustHex("#f2a54f"),
		Text:       mustHex("#e6e6f0"),
		Muted:      mustHex("#8c8ca6"),
		Border:     mustHex("#44445c"),
	}
}

// Load reads a TOML theme file, overriding the default palette with the
// colors the file names.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML theme bytes, overriding the default palette.
func Parse(data []byte) (*Theme, error) {
	var ft fileTheme
	if err := toml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	t := Default()
	if ft.Name != "" {
		t.Name = ft.Name
	}
	fields := []struct {
		hex string
		dst *color.RGBA
	}{
		{ft.Colors.Background, &t.Background},
		{ft.Colors.Surface, &t.Surface},
		{ft.Colors.Primary, &t.Primary},
		{ft.Colors.Accent, &t.Accent},
		{ft.Colors.Text, &t.Text},
		{ft.Colors.Muted, &t.Muted},
		{ft.Colors.Border, &t.Border},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := ParseHex(f.hex)
		if err != nil {
			return nil, err
		}
		*f.dst = c
	}
	return t, nil
}

// ParseHex converts a "#rrggbb" string to an opaque RGBA color.
func ParseHex(s string) (color.RGBA, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func mustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hover lightens a color for pointer-over states, blending toward white
// in Lab space so the shift reads evenly across hues.
func Hover(c color.RGBA) color.RGBA {
	return blendToward(c, colorful.Color{R: 1, G: 1, B: 1}, 0.12)
}

// Pressed darkens a color for pressed states.
func Pressed(c color.RGBA) color.RGBA {
	return blendToward(c, colorful.Color{}, 0.18)
}

// Disabled desaturates a color toward gray.
func Disabled(c color.RGBA) color.RGBA {
	cf, ok := colorful.MakeColor(opaque(c))
	if !ok {
		return c
	}
	h, s, l := cf.Hsl()
	out := colorful.Hsl(h, s*0.25, l).Clamped()
	r, g, b := out.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

func blendToward(c color.RGBA, target colorful.Color, amount float64) color.RGBA {
	cf, ok := colorful.MakeColor(opaque(c))
	if !ok {
		return c
	}
	out := cf.BlendLab(target, amount).Clamped()
	r, g, b := out.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

// opaque strips alpha before conversion: MakeColor rejects transparent
// colors, and state variants keep the original alpha anyway.
func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
