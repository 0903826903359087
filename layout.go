package easel

// SizePolicy tells a layout strategy how to size a child along the
// strategy's main axis.
type SizePolicy int

const (
	// SizeFixed keeps the size the application assigned.
	SizeFixed SizePolicy = iota

	// SizeContentBased sizes the child from its preferred size.
	SizeContentBased

	// SizeExpand gives the child an equal share of leftover space.
	SizeExpand

	// SizeProportional gives the child a weighted share of leftover
	// space, using LayoutConstraints.Ratio as the weight.
	SizeProportional
)

// Alignment positions a child along the strategy's cross axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Margins is outer spacing around a child, in pixels.
type Margins struct {
	Top, Right, Bottom, Left int
}

// Horizontal returns left + right.
func (m Margins) Horizontal() int { return m.Left + m.Right }

// Vertical returns top + bottom.
func (m Margins) Vertical() int { return m.Top + m.Bottom }

// UniformMargins returns margins with the same value on every side.
func UniformMargins(v int) Margins {
	return Margins{Top: v, Right: v, Bottom: v, Left: v}
}

// LayoutConstraints describes how a layout strategy should size and
// position one child. It is a value: strategies consume it and never
// mutate it. The zero value is a fixed-size child aligned at the start
// of the cross axis with no margins.
type LayoutConstraints struct {
	Policy SizePolicy
	Align  Alignment

	// Ratio weights SizeProportional children when splitting leftover
	// space. Zero is treated as 1.
	Ratio float64

	// Min and Max clamp the size a strategy assigns. Nil means
	// unconstrained.
	Min *Size
	Max *Size

	Margins Margins
}

// LayoutManager is the contract every layout strategy implements. A
// strategy may be shared across any number of components.
type LayoutManager interface {
	// Measure computes the space the components would need if
	// unconstrained. It must not mutate any component.
	Measure(components []*Component) Size

	// Layout assigns bounds to the components within the available
	// space. It must be idempotent: run twice with unchanged inputs, the
	// second run reproduces the same bounds.
	Layout(components []*Component, available Size)
}

// AbsoluteLayout is the default do-nothing strategy: children keep the
// bounds the application assigned. Attach it to containers that manage
// positions manually but still want the recursive layout walk to reach
// their subtrees.
type AbsoluteLayout struct{}

// Measure returns zero: absolutely-positioned children make no size
// demand on their container.
func (AbsoluteLayout) Measure([]*Component) Size { return Size{} }

// Layout leaves every child untouched.
func (AbsoluteLayout) Layout([]*Component, Size) {}

// Orientation selects a StackLayout's main axis.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// StackLayout places children in a row or column. Each child's
// LayoutConstraints decide its main-axis size (fixed, content, or a
// share of leftover space), its cross-axis alignment, and its margins.
type StackLayout struct {
	Orientation Orientation

	// Gap is spacing between consecutive children, in pixels.
	Gap int

	// Padding is inset from the container's edges.
	Padding Margins
}

// NewStackLayout returns a stack with the given orientation and gap.
func NewStackLayout(o Orientation, gap int) *StackLayout {
	return &StackLayout{Orientation: o, Gap: gap}
}

// Measure sums the children's preferred sizes plus margins and gaps
// along the main axis and takes the maximum along the cross axis.
func (s *StackLayout) Measure(components []*Component) Size {
	mainTotal, crossMax := 0, 0
	for i, c := range components {
		cons := c.Constraints()
		pref := c.PreferredSize()
		main := s.mainOf(pref) + s.mainOf(marginSize(cons.Margins))
		cross := s.crossOf(pref) + s.crossOf(marginSize(cons.Margins))
		mainTotal += main
		if i > 0 {
			mainTotal += s.Gap
		}
		crossMax = max(crossMax, cross)
	}
	mainTotal += s.mainOf(paddingSize(s.Padding))
	crossMax += s.crossOf(paddingSize(s.Padding))
	return s.sizeFrom(mainTotal, crossMax)
}

// Layout distributes the available space: fixed and content children
// first, then leftover space split across expanding children by weight,
// clamped to each child's min/max.
func (s *StackLayout) Layout(components []*Component, available Size) {
	innerMain := s.mainOf(available) - s.mainOf(paddingSize(s.Padding))
	innerCross := s.crossOf(available) - s.crossOf(paddingSize(s.Padding))

	// First pass: main-axis sizes for non-expanding children, and the
	// total weight of the expanding ones.
	mains := make([]int, len(components))
	used := 0
	weightTotal := 0.0
	for i, c := range components {
		cons := c.Constraints()
		switch cons.Policy {
		case SizeExpand:
			weightTotal += 1
		case SizeProportional:
			w := cons.Ratio
			if w <= 0 {
				w = 1
			}
			weightTotal += w
		default:
			mains[i] = clampAxis(s.mainOf(c.PreferredSize()), cons, s.mainIsWidth())
			used += mains[i]
		}
		used += s.mainOf(marginSize(cons.Margins))
		if i > 0 {
			used += s.Gap
		}
	}

	leftover := max(innerMain-used, 0)
	for i, c := range components {
		cons := c.Constraints()
		var w float64
		switch cons.Policy {
		case SizeExpand:
			w = 1
		case SizeProportional:
			w = cons.Ratio
			if w <= 0 {
				w = 1
			}
		default:
			continue
		}
		share := 0
		if weightTotal > 0 {
			share = int(float64(leftover) * w / weightTotal)
		}
		mains[i] = clampAxis(share, cons, s.mainIsWidth())
	}

	// Second pass: place children and resolve the cross axis.
	pos := s.mainOf(Size{W: s.Padding.Left, H: s.Padding.Top})
	for i, c := range components {
		cons := c.Constraints()
		pos += s.mainLeadingMargin(cons.Margins)

		cross := clampAxis(s.crossOf(c.PreferredSize()), cons, !s.mainIsWidth())
		crossAvail := innerCross - s.crossOf(marginSize(cons.Margins))
		if cons.Align == AlignStretch {
			cross = clampAxis(max(crossAvail, 0), cons, !s.mainIsWidth())
		}
		crossPos := s.crossOf(Size{W: s.Padding.Left, H: s.Padding.Top}) + s.crossLeadingMargin(cons.Margins)
		switch cons.Align {
		case AlignCenter:
			crossPos += max((crossAvail-cross)/2, 0)
		case AlignEnd:
			crossPos += max(crossAvail-cross, 0)
		}

		x, y := s.point(pos, crossPos)
		w, h := s.dims(mains[i], cross)
		c.SetBounds(x, y, w, h)

		pos += mains[i] + s.mainTrailingMargin(cons.Margins) + s.Gap
	}
}

func (s *StackLayout) mainIsWidth() bool { return s.Orientation == Horizontal }

func (s *StackLayout) mainOf(sz Size) int {
	if s.mainIsWidth() {
		return sz.W
	}
	return sz.H
}

func (s *StackLayout) crossOf(sz Size) int {
	if s.mainIsWidth() {
		return sz.H
	}
	return sz.W
}

func (s *StackLayout) sizeFrom(main, cross int) Size {
	if s.mainIsWidth() {
		return Size{W: main, H: cross}
	}
	return Size{W: cross, H: main}
}

func (s *StackLayout) point(main, cross int) (int, int) {
	if s.mainIsWidth() {
		return main, cross
	}
	return cross, main
}

func (s *StackLayout) dims(main, cross int) (int, int) {
	if s.mainIsWidth() {
		return main, cross
	}
	return cross, main
}

func (s *StackLayout) mainLeadingMargin(m Margins) int {
	if s.mainIsWidth() {
		return m.Left
	}
	return m.Top
}

func (s *StackLayout) mainTrailingMargin(m Margins) int {
	if s.mainIsWidth() {
		return m.Right
	}
	return m.Bottom
}

func (s *StackLayout) crossLeadingMargin(m Margins) int {
	if s.mainIsWidth() {
		return m.Top
	}
	return m.Left
}

func marginSize(m Margins) Size {
	return Size{W: m.Horizontal(), H: m.Vertical()}
}

func paddingSize(m Margins) Size {
	return Size{W: m.Horizontal(), H: m.Vertical()}
}

// clampAxis clamps v to the constraint's min/max on one axis.
func clampAxis(v int, cons LayoutConstraints, width bool) int {
	if cons.Min != nil {
		if width {
			v = max(v, cons.Min.W)
		} else {
			v = max(v, cons.Min.H)
		}
	}
	if cons.Max != nil {
		if width {
			v = min(v, cons.Max.W)
		} else {
			v = min(v, cons.Max.H)
		}
	}
	return max(v, 0)
}
