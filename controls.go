package easel

import (
	"image/color"

	"github.com/quarterpixel/easel/theme"
)

// Control padding in pixels.
const (
	controlPadding = 6
	borderWidth    = 1
)

// drawBorder strokes a one-pixel border as four filled strips.
func drawBorder(r Renderer, b Rect, c color.RGBA) {
	if b.Empty() {
		return
	}
	r.DrawRect(Rect{X: b.X, Y: b.Y, W: b.W, H: borderWidth}, c)
	r.DrawRect(Rect{X: b.X, Y: b.Y + b.H - borderWidth, W: b.W, H: borderWidth}, c)
	r.DrawRect(Rect{X: b.X, Y: b.Y, W: borderWidth, H: b.H}, c)
	r.DrawRect(Rect{X: b.X + b.W - borderWidth, Y: b.Y, W: borderWidth, H: b.H}, c)
}

// Panel is a plain themed surface used to group other components.
type Panel struct {
	*Component
	th *theme.Theme
}

// NewPanel creates a panel drawing the theme's surface color with a
// border.
func NewPanel(th *theme.Theme, name string) *Panel {
	p := &Panel{Component: NewComponent(name), th: th}
	p.OnRender = func(r Renderer) {
		b := p.AbsoluteBounds()
		r.DrawRect(b, th.Surface)
		drawBorder(r, b, th.Border)
	}
	return p
}

// Label draws a single line of text, vertically centered in its bounds.
type Label struct {
	*Component
	th   *theme.Theme
	text string

	// Color overrides the theme's text color when non-zero alpha.
	Color color.RGBA
}

// NewLabel creates a label with the given text.
func NewLabel(th *theme.Theme, name, text string) *Label {
	l := &Label{Component: NewComponent(name), th: th, text: text}
	l.OnRender = func(r Renderer) {
		b := l.AbsoluteBounds()
		c := l.Color
		if c.A == 0 {
			c = th.Text
		}
		_, textH := r.MeasureText(l.text)
		r.DrawText(l.text, b.X+controlPadding, b.Y+max(b.H-textH, 0)/2, c)
	}
	return l
}

// Text returns the label's text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label's text.
func (l *Label) SetText(s string) *Label {
	l.text = s
	return l
}

// Button is a clickable control with hover and pressed visuals derived
// from the theme.
type Button struct {
	*Component
	th      *theme.Theme
	label   string
	hovered bool
	held    bool

	// OnPress fires when a click lands on the button.
	OnPress func()
}

// NewButton creates a button with a label and press handler.
func NewButton(th *theme.Theme, name, label string, onPress func()) *Button {
	b := &Button{Component: NewComponent(name), th: th, label: label, OnPress: onPress}
	b.OnHoverEnter = func() { b.hovered = true }
	b.OnHoverExit = func() { b.hovered = false }
	b.OnMouseDown = func(*MouseEvent) { b.held = true }
	b.OnMouseUp = func(*MouseEvent) { b.held = false }
	b.OnClick = func(*MouseEvent) {
		if b.OnPress != nil {
			b.OnPress()
		}
	}
	b.OnRender = func(r Renderer) {
		bounds := b.AbsoluteBounds()
		bg := th.Primary
		switch {
		case b.held:
			bg = theme.Pressed(bg)
		case b.hovered:
			bg = theme.Hover(bg)
		}
		r.DrawRect(bounds, bg)
		drawBorder(r, bounds, th.Border)
		textW, textH := r.MeasureText(b.label)
		r.DrawText(b.label,
			bounds.X+max(bounds.W-textW, 0)/2,
			bounds.Y+max(bounds.H-textH, 0)/2,
			th.Text)
	}
	return b
}

// Label returns the button's label text.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the button's label text.
func (b *Button) SetLabel(s string) *Button {
	b.label = s
	return b
}

// EditBox is a single-line text entry. Characters arrive through the
// dispatcher's char path; navigation and clipboard shortcuts arrive as
// key events translated by the Keyboard capability, so chords follow
// the platform. Clipboard traffic goes through the Clipboard
// capability.
type EditBox struct {
	*Component
	th      *theme.Theme
	clip    Clipboard
	keys    Keyboard
	buf     []rune
	caret   int
	focused bool

	// OnChange fires after every edit; OnSubmit fires on the newline
	// action with the current text.
	OnChange func(text string)
	OnSubmit func(text string)
}

// NewEditBox creates an empty edit box wired to the given clipboard and
// keyboard capabilities. Either may be nil; the matching features are
// then inert.
func NewEditBox(th *theme.Theme, name string, clip Clipboard, keys Keyboard) *EditBox {
	eb := &EditBox{Component: NewComponent(name), th: th, clip: clip, keys: keys}
	eb.OnFocus = func() { eb.focused = true }
	eb.OnBlur = func() { eb.focused = false }
	eb.OnChar = func(r rune) { eb.insert(r) }
	eb.OnKeyDown = func(ev *KeyEvent) { eb.handleKey(ev) }
	eb.OnMouseDown = func(ev *MouseEvent) { eb.caret = eb.caretForX(ev.X) }
	eb.OnRender = func(r Renderer) { eb.draw(r) }
	return eb
}

// Text returns the current contents.
func (eb *EditBox) Text() string { return string(eb.buf) }

// SetText replaces the contents and moves the caret to the end.
func (eb *EditBox) SetText(s string) *EditBox {
	eb.buf = []rune(s)
	eb.caret = len(eb.buf)
	return eb
}

// Caret returns the caret's rune index.
func (eb *EditBox) Caret() int { return eb.caret }

func (eb *EditBox) insert(r rune) {
	if r < ' ' {
		return
	}
	eb.buf = append(eb.buf[:eb.caret], append([]rune{r}, eb.buf[eb.caret:]...)...)
	eb.caret++
	eb.changed()
}

func (eb *EditBox) insertString(s string) {
	for _, r := range s {
		if r < ' ' {
			continue
		}
		eb.buf = append(eb.buf[:eb.caret], append([]rune{r}, eb.buf[eb.caret:]...)...)
		eb.caret++
	}
	eb.changed()
}

func (eb *EditBox) changed() {
	if eb.OnChange != nil {
		eb.OnChange(string(eb.buf))
	}
}

func (eb *EditBox) handleKey(ev *KeyEvent) {
	if eb.keys == nil {
		return
	}
	switch eb.keys.Action(ev.Key, ev.Mods) {
	case EditCaretLeft:
		if eb.caret > 0 {
			eb.caret--
		}
	case EditCaretRight:
		if eb.caret < len(eb.buf) {
			eb.caret++
		}
	case EditCaretStart:
		eb.caret = 0
	case EditCaretEnd:
		eb.caret = len(eb.buf)
	case EditDeleteBack:
		if eb.caret > 0 {
			eb.buf = append(eb.buf[:eb.caret-1], eb.buf[eb.caret:]...)
			eb.caret--
			eb.changed()
		}
	case EditDeleteForward:
		if eb.caret < len(eb.buf) {
			eb.buf = append(eb.buf[:eb.caret], eb.buf[eb.caret+1:]...)
			eb.changed()
		}
	case EditSelectAll:
		eb.caret = len(eb.buf)
	case EditCopy:
		if eb.clip != nil {
			eb.clip.SetText(string(eb.buf))
		}
	case EditCut:
		if eb.clip != nil {
			eb.clip.SetText(string(eb.buf))
			eb.buf = eb.buf[:0]
			eb.caret = 0
			eb.changed()
		}
	case EditPaste:
		if eb.clip != nil && eb.clip.HasText() {
			eb.insertString(eb.clip.Text())
		}
	case EditNewline:
		if eb.OnSubmit != nil {
			eb.OnSubmit(string(eb.buf))
		}
	}
}

// caretForX maps a local x coordinate to the nearest caret index.
func (eb *EditBox) caretForX(x int) int {
	r := eb.Renderer()
	if r == nil {
		return len(eb.buf)
	}
	target := x - controlPadding
	for i := 1; i <= len(eb.buf); i++ {
		w, _ := r.MeasureText(string(eb.buf[:i]))
		if w > target {
			return i - 1
		}
	}
	return len(eb.buf)
}

func (eb *EditBox) draw(r Renderer) {
	b := eb.AbsoluteBounds()
	r.DrawRect(b, eb.th.Background)
	borderColor := eb.th.Border
	if eb.focused {
		borderColor = eb.th.Primary
	}
	drawBorder(r, b, borderColor)

	text := string(eb.buf)
	_, textH := r.MeasureText(text)
	textX := b.X + controlPadding
	textY := b.Y + max(b.H-textH, 0)/2

	r.ScissorOn(b)
	r.DrawText(text, textX, textY, eb.th.Text)
	if eb.focused {
		caretW, _ := r.MeasureText(string(eb.buf[:eb.caret]))
		caretH := textH
		if caretH == 0 {
			caretH = b.H - 2*controlPadding
		}
		r.DrawRect(Rect{X: textX + caretW, Y: textY, W: 1, H: caretH}, eb.th.Text)
	}
	r.ScissorOff()
}
