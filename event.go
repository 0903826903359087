package easel

import "sync"

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Modifiers is a bitmask of modifier keys held during an input event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether every modifier in mod is set.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// Key is a logical key identifier. Shells translate platform keycodes
// into these before feeding the dispatcher.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape
	KeySpace
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyEscape:    "escape",
	KeySpace:     "space",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyA && k <= KeyZ {
		return string(rune('a' + int(k-KeyA)))
	}
	if k >= Key0 && k <= Key9 {
		return string(rune('0' + int(k-Key0)))
	}
	return "unknown"
}

// MouseEvent carries pointer state for a mouse hook. X and Y are local
// to the receiving component; ScreenX and ScreenY are window
// coordinates. Events are pooled: they are only valid for the duration
// of the hook call and must not be retained.
type MouseEvent struct {
	X, Y             int
	ScreenX, ScreenY int
	Button           MouseButton
	Mods             Modifiers
}

// KeyEvent carries a logical key press for a keyboard hook. X and Y are
// the cursor position local to the focused component, computed from its
// bounds at dispatch time. Pooled like MouseEvent.
type KeyEvent struct {
	Key  Key
	Mods Modifiers
	X, Y int
}

var mouseEventPool = sync.Pool{
	New: func() any { return &MouseEvent{} },
}

func acquireMouseEvent(localX, localY, screenX, screenY int, button MouseButton, mods Modifiers) *MouseEvent {
	ev := mouseEventPool.Get().(*MouseEvent)
	ev.X, ev.Y = localX, localY
	ev.ScreenX, ev.ScreenY = screenX, screenY
	ev.Button = button
	ev.Mods = mods
	return ev
}

func releaseMouseEvent(ev *MouseEvent) {
	*ev = MouseEvent{}
	mouseEventPool.Put(ev)
}

var keyEventPool = sync.Pool{
	New: func() any { return &KeyEvent{} },
}

func acquireKeyEvent(key Key, mods Modifiers, localX, localY int) *KeyEvent {
	ev := keyEventPool.Get().(*KeyEvent)
	ev.Key = key
	ev.Mods = mods
	ev.X, ev.Y = localX, localY
	return ev
}

func releaseKeyEvent(ev *KeyEvent) {
	*ev = KeyEvent{}
	keyEventPool.Put(ev)
}
