package easel

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"right edge exclusive", 30, 15, false},
		{"bottom edge exclusive", 15, 30, false},
		{"outside left", 9, 15, false},
		{"outside above", 15, 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			"overlapping",
			Rect{X: 0, Y: 0, W: 10, H: 10},
			Rect{X: 5, Y: 5, W: 10, H: 10},
			Rect{X: 5, Y: 5, W: 5, H: 5},
		},
		{
			"contained",
			Rect{X: 0, Y: 0, W: 20, H: 20},
			Rect{X: 5, Y: 5, W: 5, H: 5},
			Rect{X: 5, Y: 5, W: 5, H: 5},
		},
		{
			"disjoint",
			Rect{X: 0, Y: 0, W: 10, H: 10},
			Rect{X: 20, Y: 20, W: 10, H: 10},
			Rect{},
		},
		{
			"touching edges",
			Rect{X: 0, Y: 0, W: 10, H: 10},
			Rect{X: 10, Y: 0, W: 10, H: 10},
			Rect{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
			if got := tt.a.Intersects(tt.b); got != (tt.want != Rect{}) {
				t.Errorf("Intersects = %v, want %v", got, tt.want != Rect{})
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{}).Empty() {
		t.Error("zero rect should be empty")
	}
	if !(Rect{W: 10}).Empty() {
		t.Error("zero-height rect should be empty")
	}
	if (Rect{W: 1, H: 1}).Empty() {
		t.Error("1x1 rect should not be empty")
	}
}

func TestRectSize(t *testing.T) {
	r := Rect{X: 3, Y: 4, W: 50, H: 60}
	if got := r.Size(); got != (Size{W: 50, H: 60}) {
		t.Errorf("Size = %v, want (50, 60)", got)
	}
}
