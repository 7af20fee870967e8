// Package gridgraph treats a rectangular grid of single-digit weights as an
// implicit weighted graph and answers minimum entering-cost path queries over
// it with the generic search engine.
//
// What:
//
//   - Grid is an immutable W×H array of weights 0–9 stored row-major.
//   - Neighbors yields the up-to-four orthogonal in-bounds cells in the fixed
//     order up, left, down, right so searches are reproducible.
//   - Tile expands a grid factor× in both directions; every tile step raises
//     the weight by one, wrapping 9 back to 1.
//   - ShortestPath and Route run Dijkstra where moving into a cell costs that
//     cell's weight; the start cell is never charged.
//
// Why:
//
//   - Risk maps, terrain costs, any "cheapest walk across a board" puzzle
//     where building an explicit edge list would double the memory.
//
// Complexity:
//
//   - NewGrid, ParseDigits, Tile: O(W×H) time and memory.
//   - ShortestPath: O(W×H·log(W×H)) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrWeightRange: a weight lies outside 0–9, or is 0 when tiling by more than 1.
//   - ErrInvalidDigit: a text row holds a non-digit rune (wrapped in *input.ParseError).
//   - ErrBadFactor: Tile factor below 1.
//   - search.ErrConfiguration: start or goal outside the grid, or a nil grid.
package gridgraph
