package navplan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		entry Entry
		want  Category
	}{
		{"module builder", Entry{Builder: "clearskies_doc_builder.builders.Module"}, CategorySubmodule},
		{"bare module id", Entry{Builder: "Module"}, CategorySubmodule},
		{"single class", Entry{Builder: "clearskies_doc_builder.builders.SingleClass"}, CategoryClass},
		{"single class to section", Entry{Builder: "clearskies_doc_builder.builders.SingleClassToSection"}, CategoryClass},
		{"unknown builder", Entry{Builder: "clearskies_doc_builder.builders.Custom"}, CategoryOther},
		{"empty builder", Entry{}, CategoryOther},
		{"suffix must be a whole segment", Entry{Builder: "pkg.MyModule"}, CategoryOther},
		{"override beats module", Entry{Builder: "x.Module", EntryType: "class"}, CategoryClass},
		{"override beats class", Entry{Builder: "x.SingleClass", EntryType: "submodule"}, CategorySubmodule},
		{"override returned verbatim", Entry{Builder: "x.Module", EntryType: "guide"}, Category("guide")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.entry))
		})
	}
}

func TestBuilderKind(t *testing.T) {
	require.Equal(t, "Module", BuilderKind("a.b.Module"))
	require.Equal(t, "Module", BuilderKind("Module"))
	require.Equal(t, "", BuilderKind("a.b."))
}

func TestCategoryPriority(t *testing.T) {
	require.Less(t, CategorySubmodule.priority(), CategoryClass.priority())
	require.Less(t, CategoryClass.priority(), CategoryOther.priority())
	require.Equal(t, CategoryOther.priority(), Category("guide").priority())
}
