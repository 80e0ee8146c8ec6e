// Package layout implements the grid-track model the data-grid presenters
// generate into.
//
// A [Grid] holds row and column [Track] definitions plus placed children.
// Track widths follow a [Length] policy (auto, pixel or star). Auto tracks
// that carry a shared size group key are kept equally wide across
// independently generated grids through a [SharedSizeScope].
//
// The entry points are [Measure] and [Arrange], which resolve track widths
// for a given available width.
package layout
