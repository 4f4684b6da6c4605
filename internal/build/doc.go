// Package build drives a documentation build: it prepares the doc root,
// plans navigation order for the whole tree once, and then invokes the
// configured builder for every tree entry in tree order.
//
// Builders run strictly sequentially. Later entries may nest inside folders
// that earlier entries created.
package build
