// Package pages assembles and writes the Markdown pages of a reference site.
//
// A page is a YAML header read by the navigation theme (title, parent,
// grand_parent, nav_order, permalink) followed by a body in a fixed layout:
// a level-one title, the elevator pitch, a numbered table of contents, an
// overview section and one section per constructor argument.
package pages
