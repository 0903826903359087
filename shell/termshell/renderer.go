package termshell

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/quarterpixel/easel"
)

// Renderer draws easel primitives as terminal cells. Coordinates are
// cell coordinates; text is one cell tall.
type Renderer struct {
	screen tcell.Screen
	clear  color.RGBA

	clip   easel.Rect
	clipOn bool

	textures map[easel.TextureID]image.Image
	nextID   easel.TextureID
}

var _ easel.Renderer = (*Renderer)(nil)

func newRenderer(clear color.RGBA) *Renderer {
	return &Renderer{
		clear:    clear,
		textures: make(map[easel.TextureID]image.Image),
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clipped reports whether a cell is masked by the active scissor.
func (r *Renderer) clipped(x, y int) bool {
	return r.clipOn && !r.clip.Contains(x, y)
}

// BeginFrame clears the screen to the configured background.
func (r *Renderer) BeginFrame() {
	if r.screen == nil {
		return
	}
	r.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(r.clear)))
}

func (r *Renderer) EndFrame() {}

// Present pushes the cell buffer to the terminal.
func (r *Renderer) Present() {
	if r.screen != nil {
		r.screen.Show()
	}
}

// DrawRect fills cells with the color as background.
func (r *Renderer) DrawRect(rect easel.Rect, fill color.RGBA) {
	if r.screen == nil || rect.Empty() {
		return
	}
	st := tcell.StyleDefault.Background(toTcell(fill))
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			if r.clipped(x, y) {
				continue
			}
			r.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// DrawSprite samples the texture nearest-neighbor, one sample per
// cell, modulated by the tint.
func (r *Renderer) DrawSprite(tex easel.TextureID, src, dst easel.Rect, tint color.RGBA) {
	if r.screen == nil || dst.Empty() {
		return
	}
	img, ok := r.textures[tex]
	if !ok {
		easel.Logger().Debug("termshell: draw on unknown texture", "id", uint32(tex))
		return
	}
	b := img.Bounds()
	if src.Empty() {
		src = easel.Rect{W: b.Dx(), H: b.Dy()}
	}
	for cy := 0; cy < dst.H; cy++ {
		for cx := 0; cx < dst.W; cx++ {
			x, y := dst.X+cx, dst.Y+cy
			if r.clipped(x, y) {
				continue
			}
			u := b.Min.X + src.X + cx*src.W/dst.W
			v := b.Min.Y + src.Y + cy*src.H/dst.H
			cr, cg, cb, _ := img.At(u, v).RGBA()
			sample := color.RGBA{
				R: uint8(cr >> 8 * uint32(tint.R) / 255),
				G: uint8(cg >> 8 * uint32(tint.G) / 255),
				B: uint8(cb >> 8 * uint32(tint.B) / 255),
				A: 0xff,
			}
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(toTcell(sample)))
		}
	}
}

// DrawSprites draws a batch from one texture.
func (r *Renderer) DrawSprites(tex easel.TextureID, draws []easel.SpriteDraw) {
	for _, d := range draws {
		r.DrawSprite(tex, d.Src, d.Dst, d.Tint)
	}
}

// DrawText sets runes at (x, y), keeping each cell's background.
func (r *Renderer) DrawText(s string, x, y int, c color.RGBA) {
	if r.screen == nil || s == "" {
		return
	}
	fg := toTcell(c)
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if !r.clipped(col, y) {
			_, _, st, _ := r.screen.GetContent(col, y)
			_, bg, _ := st.Decompose()
			r.screen.SetContent(col, y, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
		col += w
	}
}

// MeasureText returns the cell width of s and a height of one cell.
func (r *Renderer) MeasureText(s string) (int, int) {
	return runewidth.StringWidth(s), 1
}

// ScissorOn clips subsequent draws to rect.
func (r *Renderer) ScissorOn(rect easel.Rect) {
	r.clip = rect
	r.clipOn = true
}

// ScissorOff removes the clip.
func (r *Renderer) ScissorOff() {
	r.clipOn = false
}

// CreateTexture keeps the image for cell sampling.
func (r *Renderer) CreateTexture(img image.Image) easel.TextureID {
	r.nextID++
	r.textures[r.nextID] = img
	return r.nextID
}

// UpdateTexture replaces a texture's image, keeping its id.
func (r *Renderer) UpdateTexture(id easel.TextureID, img image.Image) {
	if _, ok := r.textures[id]; !ok {
		easel.Logger().Debug("termshell: update on unknown texture", "id", uint32(id))
		return
	}
	r.textures[id] = img
}

// DeleteTexture releases a texture.
func (r *Renderer) DeleteTexture(id easel.TextureID) {
	if _, ok := r.textures[id]; !ok {
		easel.Logger().Debug("termshell: delete on unknown texture", "id", uint32(id))
		return
	}
	delete(r.textures, id)
}
