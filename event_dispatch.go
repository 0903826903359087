package easel

// DragThreshold is the distance in pixels the cursor must travel from
// the press position before a drag begins.
const DragThreshold = 3

// InputMode selects which scroll-region set the dispatcher routes
// scroll gestures through. Applications define their own modes above
// ModeDefault.
type InputMode int

// ModeDefault is the dispatcher's initial input mode.
const ModeDefault InputMode = 0

// ScrollStrategy interprets a scroll gesture for one screen region.
// Strategies are named so routing decisions show up in debug logs.
type ScrollStrategy interface {
	Name() string

	// Scroll receives the wheel deltas and the cursor position in window
	// coordinates.
	Scroll(dx, dy float64, x, y int)
}

// ScrollRegion is a named window-space rectangle owned by an input
// mode. The dispatcher routes a scroll gesture to the first region of
// the active mode containing the cursor; the component tree is not
// consulted.
type ScrollRegion struct {
	Name     string
	Bounds   Rect
	Strategy ScrollStrategy
}

// Panner is scrolled content a PanStrategy translates.
type Panner interface {
	Pan(dx, dy float64)
}

// Zoomer is scalable content a ZoomStrategy zooms about a point.
type Zoomer interface {
	Zoom(factor float64, x, y int)
}

// DefaultPanStep is the pan distance in pixels per wheel notch.
const DefaultPanStep = 24.0

// DefaultZoomFactor is the zoom multiplier per wheel notch.
const DefaultZoomFactor = 1.1

// PanStrategy converts wheel deltas into pan offsets. A zero Step uses
// DefaultPanStep.
type PanStrategy struct {
	Target Panner
	Step   float64
}

// Name implements ScrollStrategy.
func (PanStrategy) Name() string { return "pan" }

// Scroll implements ScrollStrategy.
func (p PanStrategy) Scroll(dx, dy float64, _, _ int) {
	if p.Target == nil {
		return
	}
	step := p.Step
	if step == 0 {
		step = DefaultPanStep
	}
	p.Target.Pan(dx*step, dy*step)
}

// ZoomStrategy converts vertical wheel deltas into zoom about the
// cursor. A zero Factor uses DefaultZoomFactor.
type ZoomStrategy struct {
	Target Zoomer
	Factor float64
}

// Name implements ScrollStrategy.
func (ZoomStrategy) Name() string { return "zoom" }

// Scroll implements ScrollStrategy.
func (z ZoomStrategy) Scroll(_, dy float64, x, y int) {
	if z.Target == nil || dy == 0 {
		return
	}
	factor := z.Factor
	if factor == 0 {
		factor = DefaultZoomFactor
	}
	if dy < 0 {
		factor = 1 / factor
	}
	z.Target.Zoom(factor, x, y)
}

// EventDispatcher routes raw input to components. It owns nothing: the
// registered top-level components and everything it points at belong to
// the application. Registration order is paint order, so the
// last-registered component is hit-tested first.
//
// The dispatcher is single-threaded like the tree it routes into; its
// Process* entry points are designed to be bound to a Window
// capability's input callbacks on the UI thread.
type EventDispatcher struct {
	components []*Component

	// Current state
	hovered *Component // Component currently under the cursor
	focused *Component // Component with keyboard focus
	dragged *Component // Component being dragged, fixed until release

	// Press/drag bookkeeping
	pressed     *Component // Component where the press landed
	pressButton MouseButton
	pressX      int
	pressY      int
	dragging    bool

	mouseX, mouseY int
	mods           Modifiers

	winW, winH int
	onResize   func(w, h int)

	mode    InputMode
	regions map[InputMode][]ScrollRegion

	dragThreshold int // Distance to move before a press becomes a drag (pixels)
}

// NewEventDispatcher creates a dispatcher with no registered
// components, in ModeDefault.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		regions:       make(map[InputMode][]ScrollRegion),
		dragThreshold: DragThreshold,
	}
}

// Register appends a top-level component to the hit-test set. The
// dispatcher does not take ownership. Nil and duplicate registrations
// are ignored with a diagnostic.
func (d *EventDispatcher) Register(c *Component) {
	if c == nil {
		logger().Debug("easel: ignoring nil component registration")
		return
	}
	for _, existing := range d.components {
		if existing == c {
			logger().Debug("easel: component already registered", "component", c.Name())
			return
		}
	}
	d.components = append(d.components, c)
}

// Unregister removes a top-level component from the hit-test set. Any
// hover, focus, or drag reference into that component's subtree is
// cleared so the dispatcher never points at an unreachable component.
func (d *EventDispatcher) Unregister(c *Component) {
	if c == nil {
		return
	}
	for i, existing := range d.components {
		if existing == c {
			d.components = append(d.components[:i], d.components[i+1:]...)
			break
		}
	}
	if descendsFrom(d.hovered, c) {
		d.hovered = nil
	}
	if descendsFrom(d.focused, c) {
		d.focused = nil
	}
	if descendsFrom(d.dragged, c) {
		d.dragged = nil
		d.dragging = false
	}
	if descendsFrom(d.pressed, c) {
		d.pressed = nil
		d.dragging = false
	}
}

// descendsFrom reports whether c is root itself or one of root's
// descendants.
func descendsFrom(c, root *Component) bool {
	for p := c; p != nil; p = p.Parent() {
		if p == root {
			return true
		}
	}
	return false
}

// ComponentAt returns the topmost component whose bounds contain the
// window-space point, or nil. Top-level components are tested from
// last-registered to first; within a component, children are tested
// last-added first, before the component itself, so the deepest node
// painted last wins.
func (d *EventDispatcher) ComponentAt(x, y int) *Component {
	for i := len(d.components) - 1; i >= 0; i-- {
		if hit := hitTest(d.components[i], x, y); hit != nil {
			return hit
		}
	}
	return nil
}

// hitTest checks c against a point in c's parent space, descending with
// the point translated into c's local space.
func hitTest(c *Component, x, y int) *Component {
	b := c.Bounds()
	if !b.Contains(x, y) {
		return nil
	}
	lx, ly := x-b.X, y-b.Y
	children := c.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := hitTest(children[i], lx, ly); hit != nil {
			return hit
		}
	}
	return c
}

// Hovered returns the component under the cursor, or nil.
func (d *EventDispatcher) Hovered() *Component { return d.hovered }

// Focused returns the component holding keyboard focus, or nil.
func (d *EventDispatcher) Focused() *Component { return d.focused }

// Dragged returns the component being dragged, or nil when no drag is
// active.
func (d *EventDispatcher) Dragged() *Component { return d.dragged }

// Dragging reports whether a drag is in progress.
func (d *EventDispatcher) Dragging() bool { return d.dragging }

// SetFocus moves keyboard focus, emitting blur on the old component and
// focus on the new one. Pass nil to clear focus.
func (d *EventDispatcher) SetFocus(c *Component) {
	if d.focused == c {
		return
	}
	if d.focused != nil && d.focused.OnBlur != nil {
		d.focused.OnBlur()
	}
	d.focused = c
	if c != nil && c.OnFocus != nil {
		c.OnFocus()
	}
}

// ProcessMouseMove handles cursor movement in window coordinates:
// arming and feeding drags, then recomputing hover. An active drag
// keeps its target no matter what the cursor passes over.
func (d *EventDispatcher) ProcessMouseMove(x, y int) {
	d.mouseX, d.mouseY = x, y

	if d.pressed != nil && !d.dragging {
		dx, dy := x-d.pressX, y-d.pressY
		if dx*dx+dy*dy > d.dragThreshold*d.dragThreshold {
			d.dragging = true
			d.dragged = d.pressed
			if d.dragged.OnDragStart != nil {
				ev := d.localMouseEvent(d.dragged, x, y, d.pressButton)
				d.dragged.OnDragStart(ev)
				releaseMouseEvent(ev)
			}
		}
	}
	if d.dragging && d.dragged != nil && d.dragged.OnDrag != nil {
		ev := d.localMouseEvent(d.dragged, x, y, d.pressButton)
		d.dragged.OnDrag(ev)
		releaseMouseEvent(ev)
	}

	hit := d.ComponentAt(x, y)
	if hit != d.hovered {
		if d.hovered != nil && d.hovered.OnHoverExit != nil {
			d.hovered.OnHoverExit()
		}
		d.hovered = hit
		if hit != nil && hit.OnHoverEnter != nil {
			hit.OnHoverEnter()
		}
	}
}

// ProcessMouseButton handles a button transition at the given window
// coordinates. A press focuses the hit component (or clears focus on a
// miss) and arms drag tracking; a release ends any drag and synthesizes
// a click when the cursor never left the pressed component, but leaves
// focus alone.
func (d *EventDispatcher) ProcessMouseButton(button MouseButton, pressed bool, x, y int) {
	d.mouseX, d.mouseY = x, y

	if pressed {
		hit := d.ComponentAt(x, y)
		d.SetFocus(hit)
		d.pressed = hit
		d.pressButton = button
		d.pressX, d.pressY = x, y
		d.dragging = false
		if hit != nil && hit.OnMouseDown != nil {
			ev := d.localMouseEvent(hit, x, y, button)
			hit.OnMouseDown(ev)
			releaseMouseEvent(ev)
		}
		return
	}

	if d.dragging && d.dragged != nil && d.dragged.OnDragEnd != nil {
		ev := d.localMouseEvent(d.dragged, x, y, button)
		d.dragged.OnDragEnd(ev)
		releaseMouseEvent(ev)
	}
	target := d.pressed
	if target != nil && target.OnMouseUp != nil {
		ev := d.localMouseEvent(target, x, y, button)
		target.OnMouseUp(ev)
		releaseMouseEvent(ev)
	}
	if !d.dragging && target != nil && target == d.ComponentAt(x, y) && target.OnClick != nil {
		ev := d.localMouseEvent(target, x, y, button)
		target.OnClick(ev)
		releaseMouseEvent(ev)
	}
	d.pressed = nil
	d.dragged = nil
	d.dragging = false
}

// ProcessKey delivers a key transition to the focused component. Cursor
// coordinates in the event are local to the focused component's bounds
// as they are now, not as they were when focus was taken.
func (d *EventDispatcher) ProcessKey(key Key, pressed bool, mods Modifiers) {
	d.mods = mods
	if d.focused == nil {
		return
	}
	ax, ay := d.focused.AbsoluteOrigin()
	ev := acquireKeyEvent(key, mods, d.mouseX-ax, d.mouseY-ay)
	if pressed {
		if d.focused.OnKeyDown != nil {
			d.focused.OnKeyDown(ev)
		}
	} else if d.focused.OnKeyUp != nil {
		d.focused.OnKeyUp(ev)
	}
	releaseKeyEvent(ev)
}

// SetModifiers refreshes the cached modifier state attached to mouse
// events. Key events update the cache on their own.
func (d *EventDispatcher) SetModifiers(mods Modifiers) {
	d.mods = mods
}

// ProcessChar delivers typed text to the focused component.
func (d *EventDispatcher) ProcessChar(r rune) {
	if d.focused == nil || d.focused.OnChar == nil {
		return
	}
	d.focused.OnChar(r)
}

// ProcessScroll routes a wheel gesture through the active mode's scroll
// regions using the last known cursor position. The first region
// containing the cursor wins; a gesture outside every region is
// dropped.
func (d *EventDispatcher) ProcessScroll(dx, dy float64) {
	for _, region := range d.regions[d.mode] {
		if region.Strategy == nil || !region.Bounds.Contains(d.mouseX, d.mouseY) {
			continue
		}
		logger().Debug("easel: scroll routed",
			"region", region.Name, "strategy", region.Strategy.Name(), "mode", int(d.mode))
		region.Strategy.Scroll(dx, dy, d.mouseX, d.mouseY)
		return
	}
}

// ProcessFramebufferResize caches the new window size and invokes the
// registered resize callback. The dispatcher does not resize components
// itself; whoever owns the root tree propagates from the callback.
func (d *EventDispatcher) ProcessFramebufferResize(w, h int) {
	d.winW, d.winH = w, h
	if d.onResize != nil {
		d.onResize(w, h)
	}
}

// SetResizeCallback registers the function ProcessFramebufferResize
// invokes after caching the new size.
func (d *EventDispatcher) SetResizeCallback(fn func(w, h int)) {
	d.onResize = fn
}

// WindowSize returns the last framebuffer size seen by the dispatcher.
func (d *EventDispatcher) WindowSize() (int, int) { return d.winW, d.winH }

// CursorPos returns the last cursor position seen by the dispatcher.
func (d *EventDispatcher) CursorPos() (int, int) { return d.mouseX, d.mouseY }

// SetMode switches the active input mode, changing which scroll regions
// apply.
func (d *EventDispatcher) SetMode(mode InputMode) {
	if d.mode == mode {
		return
	}
	d.mode = mode
	logger().Debug("easel: input mode changed", "mode", int(mode))
}

// Mode returns the active input mode.
func (d *EventDispatcher) Mode() InputMode { return d.mode }

// AddScrollRegion appends a scroll region to the given mode. Regions
// are tested in registration order.
func (d *EventDispatcher) AddScrollRegion(mode InputMode, region ScrollRegion) {
	d.regions[mode] = append(d.regions[mode], region)
}

// SetScrollRegions replaces the given mode's region list, typically
// after a window resize changes the region geometry.
func (d *EventDispatcher) SetScrollRegions(mode InputMode, regions []ScrollRegion) {
	d.regions[mode] = regions
}

// localMouseEvent builds a pooled mouse event with coordinates local to
// c, computed from c's current absolute origin.
func (d *EventDispatcher) localMouseEvent(c *Component, x, y int, button MouseButton) *MouseEvent {
	ax, ay := c.AbsoluteOrigin()
	return acquireMouseEvent(x-ax, y-ay, x, y, button, d.mods)
}
