package navplan

import "strings"

// Category drives sibling ordering only; it never changes page content.
type Category string

const (
	CategorySubmodule Category = "submodule"
	CategoryClass     Category = "class"
	// CategoryOther is the empty category assigned to unrecognized builders.
	CategoryOther Category = ""
)

// Builder identifiers are matched on their final dotted segment, so both
// "clearskies_doc_builder.builders.Module" and "Module" name the module builder.
const (
	BuilderModule               = "Module"
	BuilderSingleClass          = "SingleClass"
	BuilderSingleClassToSection = "SingleClassToSection"
)

// BuilderKind returns the final dotted segment of a builder identifier.
func BuilderKind(builder string) string {
	if i := strings.LastIndexByte(builder, '.'); i >= 0 {
		return builder[i+1:]
	}
	return builder
}

// Classify infers an entry's category. An explicit entry_type always wins and
// is returned verbatim; otherwise the builder decides.
func Classify(e Entry) Category {
	if e.EntryType != "" {
		return Category(e.EntryType)
	}
	switch BuilderKind(e.Builder) {
	case BuilderModule:
		return CategorySubmodule
	case BuilderSingleClass, BuilderSingleClassToSection:
		return CategoryClass
	default:
		return CategoryOther
	}
}

// priority ranks categories for sibling ordering; unknown values sort last.
func (c Category) priority() int {
	switch c {
	case CategorySubmodule:
		return 0
	case CategoryClass:
		return 1
	default:
		return 2
	}
}
