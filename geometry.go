package easel

// Point is a position in integer pixel coordinates.
type Point struct {
	X, Y int
}

// Size is a width/height pair in integer pixels.
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle. X and Y locate the top-left corner
// in the owning coordinate space; a component's Rect is relative to its
// parent's top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle. The
// right and bottom edges are exclusive so adjacent rectangles never
// claim the same point.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Intersect returns the overlapping region of the two rectangles, or a
// zero Rect when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}
