// Package dirac plays Dirac Dice: two pawns on a circular ten-space track,
// three rolls of a three-sided die per turn, scores grown by the landing
// space.
//
// Every roll splits the universe. Instead of following the 27 raw roll
// combinations, each turn branches on the seven distinct sums 3..9 weighted
// by how many combinations produce them (RollFrequencies), and identical
// universes are merged by search.Enumerate. CountOutcomes returns how many
// universes each player wins in.
//
// PlayPractice runs the deterministic warm-up game with a cycling die.
//
// Positions are 0-indexed in this package (space 1 is position 0); ParseStart
// converts from the 1-indexed puzzle text.
package dirac
