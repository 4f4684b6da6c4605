package navplan

// Entry is one node of the configuration tree. It is read-only input for a
// whole run.
type Entry struct {
	Title       string `yaml:"title"`
	Parent      string `yaml:"parent,omitempty"`
	GrandParent string `yaml:"grand_parent,omitempty"`
	Builder     string `yaml:"builder"`
	EntryType   string `yaml:"entry_type,omitempty"`
	Source      string `yaml:"source"`

	// Classes lists the class identifiers a module-style section documents,
	// in the order they should appear.
	Classes []string `yaml:"classes,omitempty"`

	// ArgsToAdditionalAttributesMap names extra attributes whose docs stand in
	// for a constructor argument that has none of its own.
	ArgsToAdditionalAttributesMap map[string][]string `yaml:"args_to_additional_attributes_map,omitempty"`

	// Extra keeps builder-specific keys this package does not interpret.
	Extra map[string]any `yaml:",inline"`
}

// HasParent reports whether the entry is nested under another entry.
func (e Entry) HasParent() bool { return e.Parent != "" }

// HasGrandParent reports whether the entry sits three levels deep.
func (e Entry) HasGrandParent() bool { return e.GrandParent != "" }

// Planned is an Entry enriched with the ordering metadata computed by Compute.
type Planned struct {
	Entry

	// Index is the entry's position in the configured tree.
	Index int
	// NavOrder is unique among entries sharing the same parent.
	NavOrder int
	Category Category
	// ChildEntryCount is the number of entries naming this entry's title as
	// their parent. Section builders number their own member pages after it.
	ChildEntryCount int
}
