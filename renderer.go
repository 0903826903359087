package easel

import (
	"image"
	"image/color"
)

// TextureID identifies a texture owned by a Renderer.
type TextureID uint32

// SpriteDraw is one entry in a batched DrawSprites call. A zero Src
// uses the whole texture.
type SpriteDraw struct {
	Src  Rect
	Dst  Rect
	Tint color.RGBA
}

// Renderer is the drawing capability components call during Render.
// Coordinates are window-space pixels. The core never implements this;
// shells do.
type Renderer interface {
	// BeginFrame, EndFrame, and Present bracket one frame. On platforms
	// that present implicitly, Present is a no-op.
	BeginFrame()
	EndFrame()
	Present()

	// DrawRect fills a rectangle.
	DrawRect(r Rect, fill color.RGBA)

	// DrawSprite draws a texture region into dst, tinted. A zero src
	// uses the whole texture.
	DrawSprite(tex TextureID, src, dst Rect, tint color.RGBA)

	// DrawSprites draws a batch from one texture.
	DrawSprites(tex TextureID, draws []SpriteDraw)

	// DrawText draws a line of text with its top-left corner at (x, y).
	DrawText(s string, x, y int, c color.RGBA)

	// MeasureText returns the pixel size DrawText would cover.
	MeasureText(s string) (w, h int)

	// ScissorOn clips subsequent draws to r; ScissorOff removes the
	// clip.
	ScissorOn(r Rect)
	ScissorOff()

	// CreateTexture uploads an image and returns its handle.
	// UpdateTexture replaces a texture's pixels; DeleteTexture releases
	// it. Operating on an unknown id is ignored with a diagnostic.
	CreateTexture(img image.Image) TextureID
	UpdateTexture(id TextureID, img image.Image)
	DeleteTexture(id TextureID)
}

// InputCallbacks is the set of window input hooks a shell invokes on
// the UI thread. The fields line up one-to-one with the dispatcher's
// Process* entry points; unset fields are simply skipped.
type InputCallbacks struct {
	MouseButton       func(button MouseButton, pressed bool, x, y int)
	MouseMove         func(x, y int)
	Scroll            func(dx, dy float64)
	Key               func(key Key, pressed bool, mods Modifiers)
	Char              func(r rune)
	FramebufferResize func(w, h int)
}

// Window is the windowing capability a shell provides: size and cursor
// queries plus input callback registration.
type Window interface {
	Size() (w, h int)
	CursorPos() (x, y int)
	SetInputCallbacks(cb InputCallbacks)
}

// DispatcherCallbacks wires a dispatcher's Process* entry points into
// an InputCallbacks value ready to hand to Window.SetInputCallbacks.
func DispatcherCallbacks(d *EventDispatcher) InputCallbacks {
	return InputCallbacks{
		MouseButton:       d.ProcessMouseButton,
		MouseMove:         d.ProcessMouseMove,
		Scroll:            d.ProcessScroll,
		Key:               d.ProcessKey,
		Char:              d.ProcessChar,
		FramebufferResize: d.ProcessFramebufferResize,
	}
}

// Clipboard is the text clipboard capability consumed by text-entry
// components.
type Clipboard interface {
	Text() string
	SetText(s string)
	HasText() bool
}

// EditAction is a logical text-editing action produced by translating a
// platform key chord.
type EditAction uint8

const (
	EditNone EditAction = iota
	EditCaretLeft
	EditCaretRight
	EditCaretStart
	EditCaretEnd
	EditDeleteBack
	EditDeleteForward
	EditNewline
	EditSelectAll
	EditCut
	EditCopy
	EditPaste
)

// Keyboard translates platform-flavored key chords into editing
// actions. Shells implement it with their platform's conventions;
// text-entry components consume it so shortcuts follow the platform,
// not the component.
type Keyboard interface {
	Action(key Key, mods Modifiers) EditAction
}
