package easel

import "testing"

func stackChild(name string, w, h int, cons LayoutConstraints) *Component {
	c := NewComponent(name)
	c.SetBounds(0, 0, w, h)
	c.SetConstraints(cons)
	return c
}

func assertBounds(t *testing.T, c *Component, want Rect) {
	t.Helper()
	if got := c.Bounds(); got != want {
		t.Errorf("%s bounds = %v, want %v", c.Name(), got, want)
	}
}

// --- Interface conformance ---

var (
	_ LayoutManager = (*StackLayout)(nil)
	_ LayoutManager = AbsoluteLayout{}
)

func TestAbsoluteLayoutLeavesChildrenAlone(t *testing.T) {
	child := stackChild("child", 30, 40, LayoutConstraints{})
	child.SetBounds(7, 9, 30, 40)

	AbsoluteLayout{}.Layout([]*Component{child}, Size{W: 500, H: 500})
	assertBounds(t, child, Rect{X: 7, Y: 9, W: 30, H: 40})

	if got := (AbsoluteLayout{}).Measure([]*Component{child}); got != (Size{}) {
		t.Errorf("Measure = %v, want zero", got)
	}
}

// --- StackLayout distribution ---

func TestStackLayoutVerticalDistribution(t *testing.T) {
	top := stackChild("top", 50, 40, LayoutConstraints{Policy: SizeFixed})
	middle := stackChild("middle", 0, 0, LayoutConstraints{Policy: SizeExpand, Align: AlignStretch})
	bottom := stackChild("bottom", 80, 60, LayoutConstraints{Policy: SizeFixed, Align: AlignCenter})
	children := []*Component{top, middle, bottom}

	s := NewStackLayout(Vertical, 10)
	s.Layout(children, Size{W: 200, H: 300})

	assertBounds(t, top, Rect{X: 0, Y: 0, W: 50, H: 40})
	assertBounds(t, middle, Rect{X: 0, Y: 50, W: 200, H: 180})
	assertBounds(t, bottom, Rect{X: 60, Y: 240, W: 80, H: 60})
}

func TestStackLayoutHorizontalDistribution(t *testing.T) {
	left := stackChild("left", 40, 0, LayoutConstraints{Policy: SizeFixed, Align: AlignStretch})
	right := stackChild("right", 0, 0, LayoutConstraints{Policy: SizeExpand, Align: AlignStretch})
	children := []*Component{left, right}

	s := NewStackLayout(Horizontal, 0)
	s.Layout(children, Size{W: 200, H: 100})

	assertBounds(t, left, Rect{X: 0, Y: 0, W: 40, H: 100})
	assertBounds(t, right, Rect{X: 40, Y: 0, W: 160, H: 100})
}

func TestStackLayoutProportionalShares(t *testing.T) {
	tests := []struct {
		name    string
		ratioA  float64
		ratioB  float64
		wantA   int
		wantB   int
	}{
		{"one to two", 1, 2, 100, 200},
		{"zero ratio counts as one", 0, 1, 150, 150},
		{"equal", 3, 3, 150, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := stackChild("a", 0, 0, LayoutConstraints{Policy: SizeProportional, Ratio: tt.ratioA, Align: AlignStretch})
			b := stackChild("b", 0, 0, LayoutConstraints{Policy: SizeProportional, Ratio: tt.ratioB, Align: AlignStretch})

			s := NewStackLayout(Horizontal, 0)
			s.Layout([]*Component{a, b}, Size{W: 300, H: 100})

			if got := a.Bounds().W; got != tt.wantA {
				t.Errorf("a width = %d, want %d", got, tt.wantA)
			}
			if got := b.Bounds().W; got != tt.wantB {
				t.Errorf("b width = %d, want %d", got, tt.wantB)
			}
		})
	}
}

func TestStackLayoutExpandSplitsEvenly(t *testing.T) {
	a := stackChild("a", 0, 0, LayoutConstraints{Policy: SizeExpand})
	b := stackChild("b", 0, 0, LayoutConstraints{Policy: SizeExpand})

	s := NewStackLayout(Vertical, 0)
	s.Layout([]*Component{a, b}, Size{W: 100, H: 240})

	if a.Bounds().H != 120 || b.Bounds().H != 120 {
		t.Errorf("heights = %d, %d, want 120 each", a.Bounds().H, b.Bounds().H)
	}
}

func TestStackLayoutPadding(t *testing.T) {
	child := stackChild("child", 0, 0, LayoutConstraints{Policy: SizeExpand, Align: AlignStretch})

	s := NewStackLayout(Vertical, 5)
	s.Padding = UniformMargins(10)
	s.Layout([]*Component{child}, Size{W: 120, H: 200})

	assertBounds(t, child, Rect{X: 10, Y: 10, W: 100, H: 180})
}

func TestStackLayoutMargins(t *testing.T) {
	child := stackChild("child", 30, 20, LayoutConstraints{
		Policy:  SizeFixed,
		Margins: Margins{Top: 5, Left: 8},
	})

	s := NewStackLayout(Vertical, 0)
	s.Layout([]*Component{child}, Size{W: 100, H: 100})

	assertBounds(t, child, Rect{X: 8, Y: 5, W: 30, H: 20})
}

func TestStackLayoutAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align Alignment
		wantX int
		wantW int
	}{
		{"start", AlignStart, 0, 40},
		{"center", AlignCenter, 30, 40},
		{"end", AlignEnd, 60, 40},
		{"stretch", AlignStretch, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := stackChild("child", 40, 20, LayoutConstraints{Policy: SizeFixed, Align: tt.align})

			s := NewStackLayout(Vertical, 0)
			s.Layout([]*Component{child}, Size{W: 100, H: 100})

			got := child.Bounds()
			if got.X != tt.wantX || got.W != tt.wantW {
				t.Errorf("x, w = %d, %d, want %d, %d", got.X, got.W, tt.wantX, tt.wantW)
			}
		})
	}
}

func TestStackLayoutMinMaxClamp(t *testing.T) {
	capped := stackChild("capped", 60, 0, LayoutConstraints{
		Policy: SizeExpand,
		Max:    &Size{W: 999, H: 50},
	})
	floored := stackChild("floored", 10, 10, LayoutConstraints{
		Policy: SizeFixed,
		Min:    &Size{W: 40, H: 30},
	})

	s := NewStackLayout(Vertical, 0)
	s.Layout([]*Component{capped}, Size{W: 100, H: 300})
	s.Layout([]*Component{floored}, Size{W: 100, H: 300})

	if got := capped.Bounds().H; got != 50 {
		t.Errorf("capped height = %d, want 50", got)
	}
	fb := floored.Bounds()
	if fb.W != 40 || fb.H != 30 {
		t.Errorf("floored size = %dx%d, want 40x30", fb.W, fb.H)
	}
}

func TestStackLayoutIdempotent(t *testing.T) {
	top := stackChild("top", 50, 40, LayoutConstraints{Policy: SizeFixed})
	rest := stackChild("rest", 0, 0, LayoutConstraints{Policy: SizeExpand, Align: AlignStretch})
	children := []*Component{top, rest}

	s := NewStackLayout(Vertical, 10)
	s.Layout(children, Size{W: 200, H: 300})
	first := []Rect{top.Bounds(), rest.Bounds()}

	s.Layout(children, Size{W: 200, H: 300})
	for i, c := range children {
		if got := c.Bounds(); got != first[i] {
			t.Errorf("%s moved between identical runs: %v then %v", c.Name(), first[i], got)
		}
	}
}

func TestStackLayoutOverflowClampsToZero(t *testing.T) {
	big := stackChild("big", 100, 500, LayoutConstraints{Policy: SizeFixed})
	squeezed := stackChild("squeezed", 0, 0, LayoutConstraints{Policy: SizeExpand})

	s := NewStackLayout(Vertical, 0)
	s.Layout([]*Component{big, squeezed}, Size{W: 100, H: 200})

	if got := squeezed.Bounds().H; got != 0 {
		t.Errorf("squeezed height = %d, want 0 when nothing is left", got)
	}
}

// --- Measure ---

func TestStackLayoutMeasure(t *testing.T) {
	a := stackChild("a", 50, 40, LayoutConstraints{})
	b := stackChild("b", 80, 60, LayoutConstraints{Margins: UniformMargins(2)})
	children := []*Component{a, b}

	s := NewStackLayout(Vertical, 10)
	s.Padding = UniformMargins(5)

	want := Size{W: 94, H: 124}
	if got := s.Measure(children); got != want {
		t.Errorf("Measure = %v, want %v", got, want)
	}

	// Measure must not move anything.
	assertBounds(t, a, Rect{X: 0, Y: 0, W: 50, H: 40})
	assertBounds(t, b, Rect{X: 0, Y: 0, W: 80, H: 60})
}

func TestStackLayoutMeasureEmpty(t *testing.T) {
	s := NewStackLayout(Horizontal, 10)
	s.Padding = UniformMargins(3)

	want := Size{W: 6, H: 6}
	if got := s.Measure(nil); got != want {
		t.Errorf("Measure = %v, want padding only %v", got, want)
	}
}

// --- Integration with the component tree ---

func TestStackLayoutThroughPerformLayout(t *testing.T) {
	root := NewComponent("root")
	root.SetBounds(0, 0, 300, 200)
	root.SetLayout(NewStackLayout(Horizontal, 0))

	sidebar := stackChild("sidebar", 80, 0, LayoutConstraints{Policy: SizeFixed, Align: AlignStretch})
	content := stackChild("content", 0, 0, LayoutConstraints{Policy: SizeExpand, Align: AlignStretch})
	root.AddChild(sidebar)
	root.AddChild(content)

	root.PerformLayout()

	assertBounds(t, sidebar, Rect{X: 0, Y: 0, W: 80, H: 200})
	assertBounds(t, content, Rect{X: 80, Y: 0, W: 220, H: 200})
}
