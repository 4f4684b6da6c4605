// Package navplan computes navigation ordering for a documentation tree.
//
// A tree is a flat, ordered list of entries linked to their ancestors by
// title. Compute inspects the whole list once and produces, for every entry,
// its position among its siblings and, for every title, how many entries
// name it as their parent. Top-level entries keep their configured order
// (offset by two, leaving 0 and 1 to structural pages); children are ordered
// submodules first, then classes, then everything else, alphabetically
// within each group.
package navplan
