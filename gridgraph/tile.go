package gridgraph

import "fmt"

// Tile returns a new grid factor× wider and taller than g. The copy in tile
// (tx,ty) has every weight raised by tx+ty, wrapping so that values stay in
// 1–9: ((v + tx + ty - 1) mod 9) + 1. The receiver is not modified.
//
// Factor 1 returns an unchanged copy. A larger factor requires every weight
// to be at least 1 (ErrWeightRange otherwise), so the result holds only 1–9.
//
// Complexity: O(W×H×factor²) time and memory.
func (g *Grid) Tile(factor int) (*Grid, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadFactor, factor)
	}
	if factor > 1 {
		for i, v := range g.weights {
			if v == 0 {
				return nil, fmt.Errorf("%w: cell %v is 0, tiling needs 1–9", ErrWeightRange, g.Coordinate(i))
			}
		}
	}
	w, h := g.Width*factor, g.Height*factor
	out := &Grid{Bounds: Bounds{Width: w, Height: h}, weights: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		ty, sy := y/g.Height, y%g.Height
		for x := 0; x < w; x++ {
			tx, sx := x/g.Width, x%g.Width
			out.weights[out.index(x, y)] = uint8(wrapWeight(g.Weight(Point{sx, sy}), tx+ty))
		}
	}

	return out, nil
}

// wrapWeight raises v by offset tiles, wrapping 9 back to 1.
func wrapWeight(v, offset int) int {
	if offset == 0 {
		return v
	}

	return (v+offset-1)%MaxWeight + 1
}
