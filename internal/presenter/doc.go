// Package presenter generates the header row and data rows of a grid from
// a shared column collection.
//
// Both presenters lay their content out the same way: for N leaf columns
// they emit 2N+1 column tracks (a track per leaf, a one-cell separator
// after each, and a trailing filler), so a header and every row below it
// line up track for track. Auto tracks are keyed "Column{i}" and, given a
// SharedSizeScope, sized to the widest member across all rows.
//
// Every binding created while generating is owned by a reactive.Scope that
// lives exactly as long as one attach cycle. Detach disposes it; any change
// to the column collection rebuilds from scratch through InvalidateRoot.
package presenter
