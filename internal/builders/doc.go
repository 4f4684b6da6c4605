// Package builders renders one tree entry into pages.
//
// Builders form a closed family selected by the final segment of the entry's
// builder identifier:
//
//	Module               section index + one page per listed class
//	SingleClass          one class page beside its siblings
//	SingleClassToSection one class page that is itself a section index
//
// Every builder receives the entry already enriched with its nav_order and
// child_entry_count; no builder computes ordering on its own.
package builders
