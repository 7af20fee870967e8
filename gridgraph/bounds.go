package gridgraph

import "iter"

// InBounds reports whether p lies within the rectangle.
// Complexity: O(1).
func (b Bounds) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Corner returns the bottom-right cell.
func (b Bounds) Corner() Point {
	return Point{b.Width - 1, b.Height - 1}
}

// Neighbors yields the in-bounds orthogonal neighbours of p in the order
// up, left, down, right. The sequence is finite and may be ranged repeatedly.
func (b Bounds) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range neighborOffsets {
			n := p.Add(d)
			if !b.InBounds(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Cells yields every cell in row-major order.
func (b Bounds) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (b Bounds) index(x, y int) int {
	return y*b.Width + x
}

// Index maps p to its row‑major index.
func (b Bounds) Index(p Point) int {
	return b.index(p.X, p.Y)
}

// Coordinate converts a row‑major index back to a Point.
// Complexity: O(1).
func (b Bounds) Coordinate(idx int) Point {
	return Point{idx % b.Width, idx / b.Width}
}
