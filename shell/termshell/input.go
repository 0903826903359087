package termshell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/quarterpixel/easel"
)

var termButtons = [...]struct {
	mask tcell.ButtonMask
	id   easel.MouseButton
}{
	{tcell.ButtonPrimary, easel.MouseButtonLeft},
	{tcell.ButtonSecondary, easel.MouseButtonRight},
	{tcell.ButtonMiddle, easel.MouseButtonMiddle},
}

func translateMods(m tcell.ModMask) easel.Modifiers {
	var mods easel.Modifiers
	if m&tcell.ModShift != 0 {
		mods |= easel.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= easel.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= easel.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= easel.ModSuper
	}
	return mods
}

// translateKey maps a non-rune tcell key to a logical key. Control
// letters come back as the letter plus ctrl; ctrl-h, ctrl-i and ctrl-m
// surface as backspace, tab and enter, which is what the terminal
// means by them.
func translateKey(ev *tcell.EventKey) (easel.Key, easel.Modifiers) {
	mods := translateMods(ev.Modifiers())
	switch ev.Key() {
	case tcell.KeyLeft:
		return easel.KeyLeft, mods
	case tcell.KeyRight:
		return easel.KeyRight, mods
	case tcell.KeyUp:
		return easel.KeyUp, mods
	case tcell.KeyDown:
		return easel.KeyDown, mods
	case tcell.KeyHome:
		return easel.KeyHome, mods
	case tcell.KeyEnd:
		return easel.KeyEnd, mods
	case tcell.KeyPgUp:
		return easel.KeyPageUp, mods
	case tcell.KeyPgDn:
		return easel.KeyPageDown, mods
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return easel.KeyBackspace, mods
	case tcell.KeyDelete:
		return easel.KeyDelete, mods
	case tcell.KeyEnter:
		return easel.KeyEnter, mods
	case tcell.KeyTab:
		return easel.KeyTab, mods
	case tcell.KeyEscape:
		return easel.KeyEscape, mods
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return easel.KeyA + easel.Key(k-tcell.KeyCtrlA), mods | easel.ModCtrl
	}
	return easel.KeyUnknown, mods
}

// logicalKeyForRune gives plain text runes a logical key identity so
// focused components see a key event alongside the char event.
func logicalKeyForRune(r rune) easel.Key {
	switch {
	case r >= 'a' && r <= 'z':
		return easel.KeyA + easel.Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return easel.KeyA + easel.Key(r-'A')
	case r >= '0' && r <= '9':
		return easel.Key0 + easel.Key(r-'0')
	case r == ' ':
		return easel.KeySpace
	}
	return easel.KeyUnknown
}

func (s *Shell) handleKey(ev *tcell.EventKey) {
	mods := translateMods(ev.Modifiers())
	s.loop.Dispatcher.SetModifiers(mods)

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if key := logicalKeyForRune(r); key != easel.KeyUnknown && s.cb.Key != nil {
			s.cb.Key(key, true, mods)
		}
		if s.cb.Char != nil {
			s.cb.Char(r)
		}
		return
	}
	key, mods := translateKey(ev)
	if key != easel.KeyUnknown && s.cb.Key != nil {
		s.cb.Key(key, true, mods)
	}
}

func (s *Shell) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	mods := translateMods(ev.Modifiers())
	s.loop.Dispatcher.SetModifiers(mods)
	btns := ev.Buttons()

	if s.cb.Scroll != nil {
		if btns&tcell.WheelUp != 0 {
			s.cb.Scroll(0, 1)
		}
		if btns&tcell.WheelDown != 0 {
			s.cb.Scroll(0, -1)
		}
		if btns&tcell.WheelLeft != 0 {
			s.cb.Scroll(-1, 0)
		}
		if btns&tcell.WheelRight != 0 {
			s.cb.Scroll(1, 0)
		}
	}

	if x != s.lastMX || y != s.lastMY {
		s.lastMX, s.lastMY = x, y
		if s.cb.MouseMove != nil {
			s.cb.MouseMove(x, y)
		}
	}

	held := btns & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	for _, b := range termButtons {
		was := s.lastButtons&b.mask != 0
		now := held&b.mask != 0
		if was == now {
			continue
		}
		if s.cb.MouseButton != nil {
			s.cb.MouseButton(b.id, now, x, y)
		}
	}
	s.lastButtons = held
}

// Keyboard translates readline-flavored chords into edit actions:
// ctrl-a and ctrl-e jump to the line ends, ctrl-b and ctrl-f move the
// caret, ctrl-d deletes forward, ctrl-k cuts and ctrl-y pastes.
// Ctrl-c is the session kill and never reaches components.
type Keyboard struct{}

var _ easel.Keyboard = Keyboard{}

func (Keyboard) Action(key easel.Key, mods easel.Modifiers) easel.EditAction {
	if mods.Has(easel.ModCtrl) {
		switch key {
		case easel.KeyA:
			return easel.EditCaretStart
		case easel.KeyE:
			return easel.EditCaretEnd
		case easel.KeyB:
			return easel.EditCaretLeft
		case easel.KeyF:
			return easel.EditCaretRight
		case easel.KeyD:
			return easel.EditDeleteForward
		case easel.KeyK:
			return easel.EditCut
		case easel.KeyY:
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

// Clipboard is an in-process clipboard; the terminal offers no system
// one.
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
