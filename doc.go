// Package advent is a small search toolkit and the puzzles built on it:
// minimum-risk cave paths, quantum dice and amphipod burrows.
//
// 🚀 What is in here?
//
//	One generic engine, many state spaces:
//		• Best-first shortest path with lazy decrease-key and stable ties
//		• Weighted enumeration that counts universes instead of minimizing
//		• Grid model with tiling and 4-neighbour traversal
//		• Legal-move generator for the amphipod burrow
//
// ✨ Design rules
//
//   - States carry no cost; the frontier does
//   - Every state has a canonical, comparable key
//   - Overflow is an error, never a wrap-around
//   - Unreachable is a result (found == false), not an error
//
// Packages:
//
//	search/    — ShortestPath and Enumerate over any Space/Branching
//	gridgraph/ — digit grids, Tile, LowestRisk (2021/15)
//	dirac/     — Dirac Dice universes and the practice game (2021/21)
//	amphipod/  — burrow Board, Moves, Solve (2021/23)
//	heightmap/ — hill-climbing map (2022/12)
//	input/     — line and integer helpers, ParseError
//	config/    — YAML runner settings
//	puzzle/    — registry dispatching year/day/part to a solver
//	cmd/advent — command-line runner
//
// Quick ASCII example, the chiton cave:
//
//	1 1 6      start at the top-left, end at the bottom-right;
//	1 3 8      entering a cell costs its digit.
//	2 1 3      lowest total risk here: 1+2+1+3 = 7
//
//	go run ./cmd/advent run --year 2021 --day 15 --part 2
package advent
