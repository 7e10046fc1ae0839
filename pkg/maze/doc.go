// Package maze carves mazes into a grid.Grid using one of four randomized
// spanning-tree algorithms: [BinaryTree], [Sidewinder], [Backtracker], and
// [HuntAndKill]. Every algorithm produces a connected, cycle-free link
// graph covering all cells, the invariant the analysis routines in package
// grid depend on.
//
// Randomness is an injected capability: [Carve] takes a [Source], and
// [NewSource] provides the seeded math/rand implementation used in
// production. Identical seeds yield identical mazes.
package maze
