// Package grid implements the rectangular cell grid at the heart of maze
// generation and analysis.
//
// A [Grid] is a rows×cols array of cells identified by integer [Cell] IDs
// (interconvertible with (row, col) pairs). Adjacent cells can be linked to
// carve passages; links are always symmetric and only ever connect geometric
// neighbors. On top of the link graph the package provides breadth-first
// analysis: distance fields ([Grid.Distances]), point-to-point paths
// ([Grid.ShortestPath]), the graph diameter ([Grid.LongestPath]), and
// dead-end enumeration ([Grid.DeadEnds]).
//
// The package is purely an in-memory engine: carving strategies live in
// package maze, and rendering in package render.
package grid
