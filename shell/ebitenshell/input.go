package ebitenshell

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/quarterpixel/easel"
)

// mouseButtons pairs each polled Ebitengine button with its easel
// identity.
var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	id easel.MouseButton
}{
	{ebiten.MouseButtonLeft, easel.MouseButtonLeft},
	{ebiten.MouseButtonRight, easel.MouseButtonRight},
	{ebiten.MouseButtonMiddle, easel.MouseButtonMiddle},
}

// keymap covers the Ebitengine keys easel has logical names for.
var keymap = map[ebiten.Key]easel.Key{
	ebiten.KeyArrowLeft:  easel.KeyLeft,
	ebiten.KeyArrowRight: easel.KeyRight,
	ebiten.KeyArrowUp:    easel.KeyUp,
	ebiten.KeyArrowDown:  easel.KeyDown,
	ebiten.KeyHome:       easel.KeyHome,
	ebiten.KeyEnd:        easel.KeyEnd,
	ebiten.KeyPageUp:     easel.KeyPageUp,
	ebiten.KeyPageDown:   easel.KeyPageDown,
	ebiten.KeyBackspace:  easel.KeyBackspace,
	ebiten.KeyDelete:     easel.KeyDelete,
	ebiten.KeyEnter:      easel.KeyEnter,
	ebiten.KeyTab:        easel.KeyTab,
	ebiten.KeyEscape:     easel.KeyEscape,
	ebiten.KeySpace:      easel.KeySpace,
}

func init() {
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		keymap[k] = easel.KeyA + easel.Key(k-ebiten.KeyA)
	}
	for k := ebiten.KeyDigit0; k <= ebiten.KeyDigit9; k++ {
		keymap[k] = easel.Key0 + easel.Key(k-ebiten.KeyDigit0)
	}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() easel.Modifiers {
	var mods easel.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= easel.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= easel.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= easel.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= easel.ModSuper
	}
	return mods
}

// pollInput diffs this tick's input state against the last and feeds
// the transitions to the registered callbacks.
func (s *Shell) pollInput() {
	mods := readModifiers()
	s.loop.Dispatcher.SetModifiers(mods)

	mx, my := ebiten.CursorPosition()
	if mx != s.lastMX || my != s.lastMY {
		s.lastMX, s.lastMY = mx, my
		if s.cb.MouseMove != nil {
			s.cb.MouseMove(mx, my)
		}
	}
	if s.cb.MouseButton != nil {
		for _, b := range mouseButtons {
			if inpututil.IsMouseButtonJustPressed(b.eb) {
				s.cb.MouseButton(b.id, true, mx, my)
			}
			if inpututil.IsMouseButtonJustReleased(b.eb) {
				s.cb.MouseButton(b.id, false, mx, my)
			}
		}
	}
	if dx, dy := ebiten.Wheel(); (dx != 0 || dy != 0) && s.cb.Scroll != nil {
		s.cb.Scroll(dx, dy)
	}
	if s.cb.Key != nil {
		s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
		for _, k := range s.keyBuf {
			if key, ok := keymap[k]; ok {
				s.cb.Key(key, true, mods)
			}
		}
		s.keyBuf = inpututil.AppendJustReleasedKeys(s.keyBuf[:0])
		for _, k := range s.keyBuf {
			if key, ok := keymap[k]; ok {
				s.cb.Key(key, false, mods)
			}
		}
	}
	if s.cb.Char != nil {
		s.charBuf = ebiten.AppendInputChars(s.charBuf[:0])
		for _, r := range s.charBuf {
			s.cb.Char(r)
		}
	}
}

// Keyboard translates desktop chords into edit actions. Ctrl and super
// both drive the clipboard shortcuts, so the bindings work across
// platforms.
type Keyboard struct{}

var _ easel.Keyboard = Keyboard{}

func (Keyboard) Action(key easel.Key, mods easel.Modifiers) easel.EditAction {
	if mods.Has(easel.ModCtrl) || mods.Has(easel.ModSuper) {
		switch key {
		case easel.KeyA:
			return easel.EditSelectAll
		case easel.KeyC:
			return easel.EditCopy
		case easel.KeyX:
			return easel.EditCut
		case easel.KeyV:
			return easel.EditPaste
		}
		return easel.EditNone
	}
	switch key {
	case easel.KeyLeft:
		return easel.EditCaretLeft
	case easel.KeyRight:
		return easel.EditCaretRight
	case easel.KeyHome:
		return easel.EditCaretStart
	case easel.KeyEnd:
		return easel.EditCaretEnd
	case easel.KeyBackspace:
		return easel.EditDeleteBack
	case easel.KeyDelete:
		return easel.EditDeleteForward
	case easel.KeyEnter:
		return easel.EditNewline
	}
	return easel.EditNone
}

// Clipboard is an in-process clipboard. Ebitengine exposes no system
// clipboard, so cut and paste stay within the application.
type Clipboard struct {
	text string
	set  bool
}

var _ easel.Clipboard = (*Clipboard)(nil)

func (c *Clipboard) Text() string { return c.text }

func (c *Clipboard) SetText(s string) {
	c.text = s
	c.set = true
}

func (c *Clipboard) HasText() bool { return c.set && c.text != "" }
