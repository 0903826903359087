package easel

import (
	"image/color"
	"testing"

	"github.com/quarterpixel/easel/theme"
)

func newTestEditBox() (*EditBox, *fakeClipboard) {
	clip := &fakeClipboard{}
	eb := NewEditBox(theme.Default(), "edit", clip, fakeKeyboard{})
	eb.SetBounds(0, 0, 120, 24)
	return eb, clip
}

func pressKey(eb *EditBox, key Key, mods Modifiers) {
	eb.OnKeyDown(&KeyEvent{Key: key, Mods: mods})
}

func typeString(eb *EditBox, s string) {
	for _, r := range s {
		eb.OnChar(r)
	}
}

// --- EditBox ---

func TestEditBoxTyping(t *testing.T) {
	eb, _ := newTestEditBox()

	var changes []string
	eb.OnChange = func(text string) { changes = append(changes, text) }

	typeString(eb, "hi")

	if got := eb.Text(); got != "hi" {
		t.Errorf("Text = %q, want %q", got, "hi")
	}
	if eb.Caret() != 2 {
		t.Errorf("Caret = %d, want 2", eb.Caret())
	}
	if len(changes) != 2 || changes[1] != "hi" {
		t.Errorf("changes = %v, want one per character", changes)
	}
}

func TestEditBoxRejectsControlCharacters(t *testing.T) {
	eb, _ := newTestEditBox()
	eb.OnChar('\t')
	eb.OnChar('\n')
	eb.OnChar(0x07)

	if got := eb.Text(); got != "" {
		t.Errorf("Text = %q, control characters should be dropped", got)
	}
}

func TestEditBoxCaretMovement(t *testing.T) {
	eb, _ := newTestEditBox()
	eb.SetText("hello")

	tests := []struct {
		name string
		key  Key
		want int
	}{
		{"left", KeyLeft, 4},
		{"left again", KeyLeft, 3},
		{"home", KeyHome, 0},
		{"left clamps at start", KeyLeft, 0},
		{"right", KeyRight, 1},
		{"end", KeyEnd, 5},
		{"right clamps at end", KeyRight, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pressKey(eb, tt.key, 0)
			if got := eb.Caret(); got != tt.want {
				t.Errorf("Caret = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEditBoxInsertAtCaret(t *testing.T) {
	eb, _ := newTestEditBox()
	eb.SetText("hllo")
	pressKey(eb, KeyHome, 0)
	pressKey(eb, KeyRight, 0)

	eb.OnChar('e')

	if got := eb.Text(); got != "hello" {
		t.Errorf("Text = %q, want %q", got, "hello")
	}
	if eb.Caret() != 2 {
		t.Errorf("Caret = %d, want 2", eb.Caret())
	}
}

func TestEditBoxDeletion(t *testing.T) {
	eb, _ := newTestEditBox()
	eb.SetText("abcd")

	changes := 0
	eb.OnChange = func(string) { changes++ }

	// Backspace removes before the caret.
	pressKey(eb, KeyBackspace, 0)
	if got := eb.Text(); got != "abc" {
		t.Fatalf("Text = %q, want %q", got, "abc")
	}
	if eb.Caret() != 3 {
		t.Errorf("Caret = %d, want 3", eb.Caret())
	}

	// Delete removes after the caret.
	pressKey(eb, KeyHome, 0)
	pressKey(eb, KeyDelete, 0)
	if got := eb.Text(); got != "bc" {
		t.Fatalf("Text = %q, want %q", got, "bc")
	}

	// Nothing to delete at the boundaries: no change events either.
	before := changes
	pressKey(eb, KeyBackspace, 0)
	pressKey(eb, KeyEnd, 0)
	pressKey(eb, KeyDelete, 0)
	if got := eb.Text(); got != "bc" {
		t.Errorf("Text = %q, boundary deletes should do nothing", got)
	}
	if changes != before {
		t.Errorf("change events = %d, want %d; no-ops must not fire", changes, before)
	}
}

func TestEditBoxClipboard(t *testing.T) {
	eb, clip := newTestEditBox()
	eb.SetText("hello")

	// Copy leaves the buffer alone.
	pressKey(eb, KeyC, ModCtrl)
	if clip.text != "hello" {
		t.Errorf("clipboard = %q, want %q", clip.text, "hello")
	}
	if eb.Text() != "hello" {
		t.Errorf("Text = %q after copy, want unchanged", eb.Text())
	}

	// Cut clears the buffer.
	pressKey(eb, KeyX, ModCtrl)
	if eb.Text() != "" || eb.Caret() != 0 {
		t.Errorf("Text = %q, Caret = %d after cut, want empty", eb.Text(), eb.Caret())
	}
	if clip.text != "hello" {
		t.Errorf("clipboard = %q after cut, want %q", clip.text, "hello")
	}

	// Paste inserts at the caret.
	eb.SetText("[]")
	pressKey(eb, KeyHome, 0)
	pressKey(eb, KeyRight, 0)
	pressKey(eb, KeyV, ModCtrl)
	if got := eb.Text(); got != "[hello]" {
		t.Errorf("Text = %q after paste, want %q", got, "[hello]")
	}
	if eb.Caret() != 6 {
		t.Errorf("Caret = %d after paste, want 6", eb.Caret())
	}
}

func TestEditBoxPasteEmptyClipboard(t *testing.T) {
	eb, _ := newTestEditBox()
	eb.SetText("keep")

	pressKey(eb, KeyV, ModCtrl)
	if got := eb.Text(); got != "keep" {
		t.Errorf("Text = %q, paste from an empty clipboard should do nothing", got)
	}
}

func TestEditBoxSelectAll(t *testing.T) {
	eb, _ := newTestEditBox()
	eb.SetText("words")
	pressKey(eb, KeyHome, 0)

	pressKey(eb, KeyA, ModCtrl)
	if eb.Caret() != 5 {
		t.Errorf("Caret = %d after select all, want 5", eb.Caret())
	}
}

func TestEditBoxSubmit(t *testing.T) {
	eb, _ := newTestEditBox()
	eb.SetText("run")

	var submitted []string
	eb.OnSubmit = func(text string) { submitted = append(submitted, text) }

	pressKey(eb, KeyEnter, 0)
	if len(submitted) != 1 || submitted[0] != "run" {
		t.Errorf("submitted = %v, want [run]", submitted)
	}
	if eb.Text() != "run" {
		t.Errorf("Text = %q, submit must not clear the buffer", eb.Text())
	}
}

func TestEditBoxNilCapabilities(t *testing.T) {
	eb := NewEditBox(theme.Default(), "bare", nil, nil)
	eb.SetText("ok")

	// Nothing to translate chords or hold clipboard text: keys become
	// no-ops instead of panics.
	pressKey(eb, KeyLeft, 0)
	pressKey(eb, KeyC, ModCtrl)
	typeString(eb, "!")

	if got := eb.Text(); got != "ok!" {
		t.Errorf("Text = %q, want %q", got, "ok!")
	}
}

func TestEditBoxCaretForClick(t *testing.T) {
	eb, _ := newTestEditBox()
	eb.SetRenderer(&fakeRenderer{})
	eb.SetText("abc")

	// The fake renderer makes every rune 8 pixels; text starts after the
	// control padding.
	tests := []struct {
		name string
		x    int
		want int
	}{
		{"at text start", controlPadding, 0},
		{"inside first rune", controlPadding + 7, 0},
		{"second rune", controlPadding + 9, 1},
		{"past the end", controlPadding + 200, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eb.OnMouseDown(&MouseEvent{X: tt.x})
			if got := eb.Caret(); got != tt.want {
				t.Errorf("Caret = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEditBoxDrawsCaretOnlyWhenFocused(t *testing.T) {
	eb, _ := newTestEditBox()
	r := &fakeRenderer{}
	eb.SetRenderer(r)
	eb.SetText("ab")

	eb.OnRender(r)
	unfocusedRects := len(r.rects)

	eb.OnFocus()
	eb.OnRender(r)
	focusedRects := len(r.rects) - unfocusedRects

	if focusedRects != unfocusedRects+1 {
		t.Errorf("focused draw made %d rects, want %d plus a caret", focusedRects, unfocusedRects)
	}
	caret := r.lastRect(t)
	if caret.bounds.W != 1 {
		t.Errorf("caret width = %d, want 1", caret.bounds.W)
	}
	// Caret sits after two 8-pixel runes.
	if caret.bounds.X != controlPadding+16 {
		t.Errorf("caret x = %d, want %d", caret.bounds.X, controlPadding+16)
	}
	if len(r.scissors) != 2 {
		t.Errorf("scissor set %d times, want once per draw", len(r.scissors))
	}
}

// --- Button ---

func TestButtonPressThroughDispatcher(t *testing.T) {
	th := theme.Default()
	presses := 0
	btn := NewButton(th, "ok", "OK", func() { presses++ })
	btn.SetBounds(0, 0, 80, 30)

	d := NewEventDispatcher()
	d.Register(btn.Component)

	d.ProcessMouseButton(MouseButtonLeft, true, 10, 10)
	if !btn.held {
		t.Error("button should be held while pressed")
	}
	d.ProcessMouseButton(MouseButtonLeft, false, 10, 10)
	if btn.held {
		t.Error("button should release")
	}
	if presses != 1 {
		t.Errorf("presses = %d, want 1", presses)
	}

	// Dragging off the button cancels the press.
	d.ProcessMouseButton(MouseButtonLeft, true, 10, 10)
	d.ProcessMouseMove(60, 60)
	d.ProcessMouseButton(MouseButtonLeft, false, 60, 60)
	if presses != 1 {
		t.Errorf("presses = %d after a drag, want still 1", presses)
	}
}

func TestButtonStateColors(t *testing.T) {
	th := theme.Default()
	btn := NewButton(th, "b", "B", nil)
	btn.SetBounds(0, 0, 60, 24)
	r := &fakeRenderer{}
	btn.SetRenderer(r)

	background := func() color.RGBA {
		r.rects = nil
		btn.OnRender(r)
		return r.rects[0].fill
	}

	if got := background(); got != th.Primary {
		t.Errorf("idle fill = %v, want %v", got, th.Primary)
	}

	btn.OnHoverEnter()
	if got := background(); got != theme.Hover(th.Primary) {
		t.Errorf("hover fill = %v, want lightened primary", got)
	}

	btn.OnMouseDown(&MouseEvent{})
	if got := background(); got != theme.Pressed(th.Primary) {
		t.Errorf("held fill = %v, want darkened primary", got)
	}

	btn.OnMouseUp(&MouseEvent{})
	btn.OnHoverExit()
	if got := background(); got != th.Primary {
		t.Errorf("fill after release = %v, want %v", got, th.Primary)
	}
}

func TestButtonCentersLabel(t *testing.T) {
	th := theme.Default()
	btn := NewButton(th, "b", "Go", nil)
	btn.SetBounds(10, 10, 80, 32)
	r := &fakeRenderer{}
	btn.SetRenderer(r)

	btn.OnRender(r)

	if len(r.texts) != 1 {
		t.Fatalf("drew %d texts, want 1", len(r.texts))
	}
	// "Go" is 16 fake pixels wide, 12 tall, inside an 80x32 box at
	// (10, 10).
	got := r.texts[0]
	if got.x != 10+32 || got.y != 10+10 {
		t.Errorf("label at (%d, %d), want (42, 20)", got.x, got.y)
	}
}

// --- Label ---

func TestLabelText(t *testing.T) {
	th := theme.Default()
	l := NewLabel(th, "status", "ready")
	l.SetBounds(0, 0, 100, 30)
	r := &fakeRenderer{}
	l.SetRenderer(r)

	l.OnRender(r)
	if len(r.texts) != 1 {
		t.Fatalf("drew %d texts, want 1", len(r.texts))
	}
	got := r.texts[0]
	if got.s != "ready" {
		t.Errorf("text = %q, want %q", got.s, "ready")
	}
	if got.x != controlPadding || got.y != 9 {
		t.Errorf("text at (%d, %d), want (%d, 9)", got.x, got.y, controlPadding)
	}
	if got.fill != th.Text {
		t.Errorf("color = %v, want the theme text color", got.fill)
	}

	l.SetText("busy")
	if l.Text() != "busy" {
		t.Errorf("Text = %q, want %q", l.Text(), "busy")
	}
}

func TestLabelColorOverride(t *testing.T) {
	th := theme.Default()
	l := NewLabel(th, "warn", "careful")
	l.SetBounds(0, 0, 100, 30)
	l.Color = color.RGBA{R: 255, A: 255}
	r := &fakeRenderer{}
	l.SetRenderer(r)

	l.OnRender(r)
	if got := r.texts[0].fill; got != l.Color {
		t.Errorf("color = %v, want the override", got)
	}
}

// --- Panel ---

func TestPanelDrawsSurfaceAndBorder(t *testing.T) {
	th := theme.Default()
	p := NewPanel(th, "side")
	p.SetBounds(5, 5, 50, 50)
	r := &fakeRenderer{}
	p.SetRenderer(r)

	p.OnRender(r)

	// One fill plus four border strips.
	if len(r.rects) != 5 {
		t.Fatalf("drew %d rects, want 5", len(r.rects))
	}
	if r.rects[0].fill != th.Surface {
		t.Errorf("fill = %v, want the surface color", r.rects[0].fill)
	}
	for i := 1; i < 5; i++ {
		if r.rects[i].fill != th.Border {
			t.Errorf("strip %d = %v, want the border color", i, r.rects[i].fill)
		}
	}
}

func TestPanelIsAComponent(t *testing.T) {
	p := NewPanel(theme.Default(), "parent")
	child := NewComponent("child")
	p.AddChild(child)

	if child.Parent() != p.Component {
		t.Error("wrapper controls should compose into the tree")
	}
}
