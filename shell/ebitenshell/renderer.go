package ebitenshell

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/quarterpixel/easel"
)

// Renderer draws easel primitives onto an Ebitengine image. Text uses
// the embedded Go Regular face.
type Renderer struct {
	face  *text.GoTextFace
	lineH float64

	screen *ebiten.Image
	target *ebiten.Image

	textures map[easel.TextureID]*ebiten.Image
	nextID   easel.TextureID
}

var _ easel.Renderer = (*Renderer)(nil)

// NewRenderer builds a renderer with the given font size in points.
func NewRenderer(fontSize float64) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: fontSize}
	m := face.Metrics()
	return &Renderer{
		face:     face,
		lineH:    m.HAscent + m.HDescent + m.HLineGap,
		textures: make(map[easel.TextureID]*ebiten.Image),
	}, nil
}

// begin points the renderer at this frame's screen and resets the
// scissor.
func (r *Renderer) begin(screen *ebiten.Image) {
	r.screen = screen
	r.target = screen
}

func (r *Renderer) BeginFrame() {}

func (r *Renderer) EndFrame() {}

// Present is a no-op; Ebitengine presents when Draw returns.
func (r *Renderer) Present() {}

// DrawRect fills a rectangle.
func (r *Renderer) DrawRect(rect easel.Rect, fill color.RGBA) {
	if r.target == nil || rect.Empty() {
		return
	}
	vector.DrawFilledRect(r.target,
		float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H),
		fill, false)
}

// DrawSprite draws a texture region into dst, tinted.
func (r *Renderer) DrawSprite(tex easel.TextureID, src, dst easel.Rect, tint color.RGBA) {
	if r.target == nil || dst.Empty() {
		return
	}
	img, ok := r.textures[tex]
	if !ok {
		easel.Logger().Debug("ebitenshell: draw on unknown texture", "id", uint32(tex))
		return
	}
	part := img
	if !src.Empty() {
		sub := image.Rect(src.X, src.Y, src.X+src.W, src.Y+src.H).Intersect(img.Bounds())
		if sub.Empty() {
			return
		}
		part = img.SubImage(sub).(*ebiten.Image)
	}
	sw, sh := part.Bounds().Dx(), part.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(sw), float64(dst.H)/float64(sh))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	op.ColorScale.ScaleWithColor(tint)
	r.target.DrawImage(part, op)
}

// DrawSprites draws a batch from one texture.
func (r *Renderer) DrawSprites(tex easel.TextureID, draws []easel.SpriteDraw) {
	for _, d := range draws {
		r.DrawSprite(tex, d.Src, d.Dst, d.Tint)
	}
}

// DrawText draws a single line with its top-left corner at (x, y).
func (r *Renderer) DrawText(s string, x, y int, c color.RGBA) {
	if r.target == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.target, s, r.face, op)
}

// MeasureText returns the pixel box DrawText would cover.
func (r *Renderer) MeasureText(s string) (int, int) {
	if s == "" {
		return 0, int(math.Ceil(r.lineH))
	}
	w, h := text.Measure(s, r.face, r.lineH)
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// ScissorOn clips subsequent draws to rect via a subimage target.
func (r *Renderer) ScissorOn(rect easel.Rect) {
	if r.screen == nil {
		return
	}
	clip := image.Rect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H).Intersect(r.screen.Bounds())
	if clip.Empty() {
		r.target = nil
		return
	}
	r.target = r.screen.SubImage(clip).(*ebiten.Image)
}

// ScissorOff restores drawing to the full screen.
func (r *Renderer) ScissorOff() {
	r.target = r.screen
}

// CreateTexture uploads an image and returns its handle.
func (r *Renderer) CreateTexture(img image.Image) easel.TextureID {
	r.nextID++
	r.textures[r.nextID] = ebiten.NewImageFromImage(img)
	return r.nextID
}

// UpdateTexture replaces a texture's pixels, keeping its id.
func (r *Renderer) UpdateTexture(id easel.TextureID, img image.Image) {
	tex, ok := r.textures[id]
	if !ok {
		easel.Logger().Debug("ebitenshell: update on unknown texture", "id", uint32(id))
		return
	}
	tex.Deallocate()
	r.textures[id] = ebiten.NewImageFromImage(img)
}

// DeleteTexture releases a texture.
func (r *Renderer) DeleteTexture(id easel.TextureID) {
	tex, ok := r.textures[id]
	if !ok {
		easel.Logger().Debug("ebitenshell: delete on unknown texture", "id", uint32(id))
		return
	}
	tex.Deallocate()
	delete(r.textures, id)
}

// ScaleImage resamples src to w by h with Catmull-Rom interpolation.
// It runs on the CPU, so texture content can be prepared off the UI
// thread and handed over through the callback queue.
func ScaleImage(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
