package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func luminance(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

func TestDefaultPalette(t *testing.T) {
	th := Default()

	if th.Name != "easel-dark" {
		t.Errorf("Name = %q, want %q", th.Name, "easel-dark")
	}
	colors := map[string]color.RGBA{
		"background": th.Background,
		"surface":    th.Surface,
		"primary":    th.Primary,
		"accent":     th.Accent,
		"text":       th.Text,
		"muted":      th.Muted,
		"border":     th.Border,
	}
	for name, c := range colors {
		if c.A != 255 {
			t.Errorf("%s alpha = %d, want opaque", name, c.A)
		}
	}
	if th.Background == th.Text {
		t.Error("background and text must differ")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"black", "#000000", color.RGBA{A: 255}, false},
		{"white", "#ffffff", color.RGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"mixed", "#4f6ef2", color.RGBA{R: 0x4f, G: 0x6e, B: 0xf2, A: 255}, false},
		{"short form", "#fff", color.RGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"missing hash", "4f6ef2", color.RGBA{}, true},
		{"truncated", "#ff", color.RGBA{}, true},
		{"garbage", "#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseOverridesOnlyNamedColors(t *testing.T) {
	data := []byte(`
name = "tester"

[colors]
primary = "#ff0000"
text = "#00ff00"
`)
	th, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if th.Name != "tester" {
		t.Errorf("Name = %q, want %q", th.Name, "tester")
	}
	if th.Primary != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Primary = %v, want pure red", th.Primary)
	}
	if th.Text != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("Text = %v, want pure green", th.Text)
	}

	def := Default()
	if th.Background != def.Background {
		t.Errorf("Background = %v, want the default %v", th.Background, def.Background)
	}
	if th.Border != def.Border {
		t.Errorf("Border = %v, want the default %v", th.Border, def.Border)
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	th, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *th != *Default() {
		t.Errorf("empty file should produce the default palette")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", `name = `},
		{"bad hex", "[colors]\nprimary = \"notacolor\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	data := "name = \"disk\"\n\n[colors]\nsurface = \"#123456\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Name != "disk" {
		t.Errorf("Name = %q, want %q", th.Name, "disk")
	}
	if th.Surface != (color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}) {
		t.Errorf("Surface = %v, want #123456", th.Surface)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestHoverLightens(t *testing.T) {
	base := color.RGBA{R: 0x4f, G: 0x6e, B: 0xf2, A: 255}
	got := Hover(base)

	if luminance(got) <= luminance(base) {
		t.Errorf("Hover(%v) = %v, want lighter", base, got)
	}
	if got.A != base.A {
		t.Errorf("alpha = %d, want preserved", got.A)
	}
}

func TestPressedDarkens(t *testing.T) {
	base := color.RGBA{R: 0x4f, G: 0x6e, B: 0xf2, A: 255}
	got := Pressed(base)

	if luminance(got) >= luminance(base) {
		t.Errorf("Pressed(%v) = %v, want darker", base, got)
	}
}

func TestDisabledDesaturates(t *testing.T) {
	base := color.RGBA{R: 230, G: 40, B: 40, A: 255}
	got := Disabled(base)

	spread := func(c color.RGBA) int {
		lo := min(int(c.R), min(int(c.G), int(c.B)))
		hi := max(int(c.R), max(int(c.G), int(c.B)))
		return hi - lo
	}
	if spread(got) >= spread(base) {
		t.Errorf("Disabled(%v) = %v, want less saturated", base, got)
	}
}

func TestStateVariantsKeepAlpha(t *testing.T) {
	base := color.RGBA{R: 100, G: 150, B: 200, A: 128}

	for name, variant := range map[string]color.RGBA{
		"hover":    Hover(base),
		"pressed":  Pressed(base),
		"disabled": Disabled(base),
	} {
		if variant.A != base.A {
			t.Errorf("%s alpha = %d, want %d", name, variant.A, base.A)
		}
	}
}
