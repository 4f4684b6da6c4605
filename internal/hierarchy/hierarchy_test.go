package hierarchy

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/refdocs/internal/navplan"
)

func TestToken(t *testing.T) {
	cases := map[string]string{
		"Cursors":          "cursors",
		"From Environment": "from-environment",
		"EnvCursor":        "env-cursor",
		"snake_case_name":  "snake-case-name",
		"HTTPServer":       "h-t-t-p-server",
		"already-token":    "already-token",
		"Mixed Case_Thing": "mixed-case--thing",
		" Leading":         "leading",
		"Read/Write":       "read--write",
		`Back\Slash`:       "back--slash",
		"../../Escape":     "-------escape",
		"v1.2":             "v1-2",
		"..":               "--",
		"":                 "",
	}
	for in, want := range cases {
		require.Equal(t, want, Token(in), "Token(%q)", in)
	}
}

func TestToken_Idempotent(t *testing.T) {
	for _, title := range []string{"From Environment", "EnvCursor", "a_b C", "X", "Read/Write", "../../Escape", `a\b.c`} {
		once := Token(title)
		require.Equal(t, once, Token(once))
		require.Equal(t, once, Token(title))
	}
}

func TestResolve_TitlesStayInsideRoot(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "out", "docs")
	loc := Resolve(navplan.Entry{Title: "../../Escape", Parent: "Read/Write"})

	require.Equal(t, []string{"read--write", "-------escape"}, loc.Segments)
	require.Equal(t, "read--write/-------escape", loc.SectionName)
	require.Equal(t, filepath.Join(root, "read--write", "-------escape"), loc.Dir(root))
}

func TestResolve_ThreeLevels(t *testing.T) {
	loc := Resolve(navplan.Entry{Title: "EnvCursor", Parent: "From Environment", GrandParent: "Cursors"})

	require.Equal(t, []string{"cursors", "from-environment", "env-cursor"}, loc.Segments)
	require.Equal(t, "cursors/from-environment/env-cursor", loc.SectionName)
	require.Equal(t, filepath.Join("/docs", "cursors", "from-environment", "env-cursor"), loc.Dir("/docs"))
	require.Equal(t, filepath.Join("/docs", "cursors", "from-environment"), loc.ParentDir("/docs"))
}

func TestResolve_TwoLevels(t *testing.T) {
	loc := Resolve(navplan.Entry{Title: "From Environment", Parent: "Cursors"})

	require.Equal(t, []string{"cursors", "from-environment"}, loc.Segments)
	require.Equal(t, "cursors/from-environment", loc.SectionName)
}

func TestResolve_TopLevel(t *testing.T) {
	loc := Resolve(navplan.Entry{Title: "Cursors"})

	require.Equal(t, []string{"cursors"}, loc.Segments)
	require.Equal(t, "cursors", loc.SectionName)
	require.Equal(t, "/docs", loc.ParentDir("/docs"))
}

// A grand-parent without a parent is not a valid chain; only the grand-parent
// check decides the three-level layout, so the empty parent token shows up.
func TestResolve_GrandParentWithoutParent(t *testing.T) {
	loc := Resolve(navplan.Entry{Title: "X", GrandParent: "G"})
	require.Equal(t, []string{"g", "", "x"}, loc.Segments)
}
