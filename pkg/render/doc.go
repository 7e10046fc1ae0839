// Package render turns a grid.Grid's link state into human-consumable
// output: an ASCII wall diagram ([Text]), an in-memory pixel buffer
// ([Image] and [Pixmap]), or a Graphviz drawing of the underlying link
// graph ([ToDOT]).
//
// Renderers borrow the grid read-only and never mutate it. The pixel
// renderer deliberately stops at the [Pixmap]: encoding to PNG or any
// other file format is left to callers via [Pixmap.ToImage].
package render
