package easel

import (
	"math"
	"sync/atomic"
)

// ComponentID uniquely identifies a component. IDs are stable for the
// life of the process and appear in log output.
type ComponentID uint64

var nextComponentID atomic.Uint64

func newComponentID() ComponentID {
	return ComponentID(nextComponentID.Add(1))
}

// ResizeBehavior selects how a component reacts to OnParentResize.
type ResizeBehavior int

const (
	// ResizeNone leaves the component's bounds untouched.
	ResizeNone ResizeBehavior = iota

	// ResizeFill stretches the component to cover the parent exactly,
	// placing it at the parent's origin.
	ResizeFill

	// ResizeScale scales position and size proportionally, per axis,
	// against the first observed parent size. Scaling is always computed
	// from that baseline, never from the previous size, so repeated
	// grow/shrink cycles do not accumulate rounding drift.
	ResizeScale
)

// Component is a node in the UI ownership tree. A parent owns its
// children exclusively; renderer references flow downward; the
// dispatcher holds non-owning references sideways. Bounds are integers
// relative to the parent's top-left corner and never negative.
//
// Components are not safe for concurrent use. The tree must only be
// touched from the thread driving the frame loop; background work hands
// results over through AsyncCallbackQueue.
type Component struct {
	id       ComponentID
	name     string
	parent   *Component
	children []*Component

	bounds      Rect
	behavior    ResizeBehavior
	constraints LayoutConstraints

	// Resize baseline, captured on the first OnParentResize call. The
	// owner primes it by sending the initial parent size once.
	baselineParent Size
	baselineBounds Rect
	baselineSet    bool

	renderer Renderer

	layout        LayoutManager
	layoutInvalid bool

	// Frame hooks installed by concrete components. The tree itself only
	// walks; it never interprets what a hook draws or updates.
	OnUpdate func(dt float64)
	OnRender func(r Renderer)

	// Input hooks invoked by the dispatcher. Event coordinates are local
	// to this component. Pooled events are only valid during the call.
	OnMouseDown  func(ev *MouseEvent)
	OnMouseUp    func(ev *MouseEvent)
	OnClick      func(ev *MouseEvent)
	OnHoverEnter func()
	OnHoverExit  func()
	OnDragStart  func(ev *MouseEvent)
	OnDrag       func(ev *MouseEvent)
	OnDragEnd    func(ev *MouseEvent)
	OnKeyDown    func(ev *KeyEvent)
	OnKeyUp      func(ev *KeyEvent)
	OnChar       func(r rune)
	OnFocus      func()
	OnBlur       func()
}

// NewComponent creates a detached component with zero bounds, no layout
// strategy, and no renderer. Layout starts invalid.
func NewComponent(name string) *Component {
	return &Component{
		id:            newComponentID(),
		name:          name,
		layoutInvalid: true,
	}
}

// ID returns the component's unique identifier.
func (c *Component) ID() ComponentID { return c.id }

// Name returns the component's debug tag.
func (c *Component) Name() string { return c.name }

// SetName sets the component's debug tag.
func (c *Component) SetName(name string) *Component {
	c.name = name
	return c
}

// Parent returns the owning component, or nil for a root.
func (c *Component) Parent() *Component { return c.parent }

// Children returns the child sequence in insertion order. Callers must
// not mutate the returned slice.
func (c *Component) Children() []*Component { return c.children }

// AddChild transfers ownership of child into this node's child
// sequence. The child inherits this node's renderer if it has none, and
// this node's layout is marked invalid. A nil child is ignored with a
// diagnostic; a child attached elsewhere is moved here.
func (c *Component) AddChild(child *Component) *Component {
	if child == nil {
		logger().Debug("easel: ignoring nil child", "component", c.name)
		return c
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = c
	c.children = append(c.children, child)
	if c.renderer != nil {
		child.adoptRenderer(c.renderer)
	}
	c.markLayoutInvalid()
	return c
}

// RemoveChild detaches child from this node, releasing ownership.
// Returns false when child is not a direct child of this node.
func (c *Component) RemoveChild(child *Component) bool {
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			child.parent = nil
			c.markLayoutInvalid()
			return true
		}
	}
	return false
}

// RemoveFromParent detaches this component from its parent, if any.
func (c *Component) RemoveFromParent() {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
}

// Bounds returns the component's rectangle relative to its parent.
func (c *Component) Bounds() Rect { return c.bounds }

// SetBounds sets the component's rectangle. Negative values are clamped
// to zero with a diagnostic. A size change marks layout invalid;
// repositioning alone does not.
func (c *Component) SetBounds(x, y, w, h int) *Component {
	if x < 0 || y < 0 || w < 0 || h < 0 {
		logger().Debug("easel: clamping negative bounds",
			"component", c.name, "x", x, "y", y, "w", w, "h", h)
		x, y = max(x, 0), max(y, 0)
		w, h = max(w, 0), max(h, 0)
	}
	sizeChanged := w != c.bounds.W || h != c.bounds.H
	c.bounds = Rect{X: x, Y: y, W: w, H: h}
	if sizeChanged {
		c.markLayoutInvalid()
	}
	return c
}

// PreferredSize returns the component's current size. Layout strategies
// use it to measure a child's contribution when no constraint says
// otherwise.
func (c *Component) PreferredSize() Size {
	return Size{W: c.bounds.W, H: c.bounds.H}
}

// SetConstraints attaches the layout constraints the parent's strategy
// reads when sizing and placing this component. Marks the parent's
// layout invalid so the change takes effect on the next pass.
func (c *Component) SetConstraints(cons LayoutConstraints) *Component {
	c.constraints = cons
	if c.parent != nil {
		c.parent.markLayoutInvalid()
	}
	return c
}

// Constraints returns the layout constraints attached to this
// component.
func (c *Component) Constraints() LayoutConstraints { return c.constraints }

// SetResizeBehavior selects how OnParentResize reacts.
func (c *Component) SetResizeBehavior(b ResizeBehavior) *Component {
	c.behavior = b
	return c
}

// ResizeBehavior returns the configured resize behavior.
func (c *Component) ResizeBehavior() ResizeBehavior { return c.behavior }

// OnParentResize recomputes this node's bounds for a new parent size,
// then propagates to children with this node's new size. The first call
// captures the resize baseline (parent size and own bounds), so owners
// issue one priming call with the initial parent size before any real
// resize arrives.
func (c *Component) OnParentResize(parentW, parentH int) {
	if parentW < 0 {
		parentW = 0
	}
	if parentH < 0 {
		parentH = 0
	}
	if !c.baselineSet {
		c.baselineParent = Size{W: parentW, H: parentH}
		c.baselineBounds = c.bounds
		c.baselineSet = true
	}
	switch c.behavior {
	case ResizeFill:
		c.SetBounds(0, 0, parentW, parentH)
	case ResizeScale:
		if c.baselineParent.W > 0 && c.baselineParent.H > 0 {
			sx := float64(parentW) / float64(c.baselineParent.W)
			sy := float64(parentH) / float64(c.baselineParent.H)
			c.SetBounds(
				scaleRound(c.baselineBounds.X, sx),
				scaleRound(c.baselineBounds.Y, sy),
				scaleRound(c.baselineBounds.W, sx),
				scaleRound(c.baselineBounds.H, sy),
			)
		}
	}
	for _, ch := range c.children {
		ch.OnParentResize(c.bounds.W, c.bounds.H)
	}
}

func scaleRound(v int, s float64) int {
	return int(math.Round(float64(v) * s))
}

// SetRenderer sets the renderer capability for this component and
// overwrites it on every descendant, keeping the subtree consistent.
func (c *Component) SetRenderer(r Renderer) *Component {
	c.renderer = r
	for _, ch := range c.children {
		ch.SetRenderer(r)
	}
	return c
}

// Renderer returns the renderer capability this component draws with,
// or nil when none has been set or inherited.
func (c *Component) Renderer() Renderer { return c.renderer }

// adoptRenderer fills in r where no renderer is set, stopping at
// subtrees that already carry one.
func (c *Component) adoptRenderer(r Renderer) {
	if c.renderer != nil {
		return
	}
	c.renderer = r
	for _, ch := range c.children {
		ch.adoptRenderer(r)
	}
}

// SetLayout attaches a layout strategy. Strategies are shared: the same
// value may be attached to any number of components. Marks layout
// invalid.
func (c *Component) SetLayout(m LayoutManager) *Component {
	c.layout = m
	c.markLayoutInvalid()
	return c
}

// ClearLayout detaches the layout strategy and marks layout invalid.
func (c *Component) ClearLayout() *Component {
	c.layout = nil
	c.markLayoutInvalid()
	return c
}

// HasLayout reports whether a layout strategy is attached.
func (c *Component) HasLayout() bool { return c.layout != nil }

// LayoutInvalid reports whether this node needs a layout pass.
func (c *Component) LayoutInvalid() bool { return c.layoutInvalid }

// InvalidateLayout forces the next PerformLayout to run the strategy.
func (c *Component) InvalidateLayout() *Component {
	c.markLayoutInvalid()
	return c
}

func (c *Component) markLayoutInvalid() {
	c.layoutInvalid = true
}

// PerformLayout runs the attached strategy over this node's children
// using its current size as the available space, then descends so
// children refine their own subtrees. The parent strategy runs first,
// top-down. No-op when layout is valid or no strategy is attached.
//
// The node is marked valid before the strategy runs: strategies mutate
// child bounds, and those mutations must not re-trigger this pass.
func (c *Component) PerformLayout() {
	if !c.layoutInvalid || c.layout == nil {
		return
	}
	c.layoutInvalid = false
	c.layout.Layout(c.children, Size{W: c.bounds.W, H: c.bounds.H})
	for _, ch := range c.children {
		ch.PerformLayout()
	}
}

// Update walks the subtree invoking OnUpdate hooks, parent first.
func (c *Component) Update(dt float64) {
	if c.OnUpdate != nil {
		c.OnUpdate(dt)
	}
	for _, ch := range c.children {
		ch.Update(dt)
	}
}

// Render walks the subtree invoking OnRender hooks, parent first so
// children paint over their parent. Nodes without a renderer skip their
// hook but still descend.
func (c *Component) Render() {
	if c.OnRender != nil && c.renderer != nil {
		c.OnRender(c.renderer)
	}
	for _, ch := range c.children {
		ch.Render()
	}
}

// AbsoluteOrigin returns this component's top-left corner in window
// coordinates, accumulated over its ancestor chain.
func (c *Component) AbsoluteOrigin() (int, int) {
	x, y := 0, 0
	for p := c; p != nil; p = p.parent {
		x += p.bounds.X
		y += p.bounds.Y
	}
	return x, y
}

// AbsoluteBounds returns this component's rectangle in window
// coordinates.
func (c *Component) AbsoluteBounds() Rect {
	x, y := c.AbsoluteOrigin()
	return Rect{X: x, Y: y, W: c.bounds.W, H: c.bounds.H}
}

// Walk visits this component and every descendant depth-first, parents
// before children. Return false from fn to stop the walk.
func (c *Component) Walk(fn func(*Component) bool) bool {
	if !fn(c) {
		return false
	}
	for _, ch := range c.children {
		if !ch.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first component in this subtree with the given name,
// or nil.
func (c *Component) Find(name string) *Component {
	var found *Component
	c.Walk(func(n *Component) bool {
		if n.name == name {
			found = n
			return false
		}
		return true
	})
	return found
}
