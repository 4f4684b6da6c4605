package navplan

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	moduleBuilder = "clearskies_doc_builder.builders.Module"
	classBuilder  = "clearskies_doc_builder.builders.SingleClass"
)

func navByTitle(p *Plan) map[string]int {
	out := make(map[string]int, p.Len())
	for _, e := range p.Entries() {
		out[e.Title] = e.NavOrder
	}
	return out
}

func TestCompute_ParentAndChild(t *testing.T) {
	p := Compute([]Entry{
		{Title: "A"},
		{Title: "B", Parent: "A"},
	})

	require.Equal(t, 2, p.NavOrder(0))
	require.Equal(t, 1, p.NavOrder(1))
	require.Equal(t, map[string]int{"A": 1}, p.ChildCounts())
	require.Equal(t, 1, p.Entry(0).ChildEntryCount)
	require.Equal(t, 0, p.Entry(1).ChildEntryCount)
}

func TestCompute_SubmodulesBeforeClassesAlphabetically(t *testing.T) {
	p := Compute([]Entry{
		{Title: "Cursors", Builder: moduleBuilder},
		{Title: "Zebra", Parent: "Cursors", Builder: classBuilder},
		{Title: "Apple", Parent: "Cursors", Builder: classBuilder},
		{Title: "Mango", Parent: "Cursors", Builder: moduleBuilder},
		{Title: "Banana", Parent: "Cursors", Builder: moduleBuilder},
	})

	got := navByTitle(p)
	require.Equal(t, 1, got["Banana"])
	require.Equal(t, 2, got["Mango"])
	require.Equal(t, 3, got["Apple"])
	require.Equal(t, 4, got["Zebra"])
	require.Equal(t, 2, got["Cursors"])
	require.Equal(t, 4, p.ChildCount("Cursors"))
}

func TestCompute_ThreeLevelChain(t *testing.T) {
	p := Compute([]Entry{
		{Title: "Cursors", Builder: moduleBuilder},
		{Title: "From Environment", Parent: "Cursors", Builder: moduleBuilder},
		{Title: "EnvCursor", Parent: "From Environment", GrandParent: "Cursors", Builder: classBuilder},
	})

	require.Equal(t, 1, p.Entry(2).NavOrder)
	require.Equal(t, 1, p.Entry(1).NavOrder)
	require.Equal(t, 1, p.Entry(1).ChildEntryCount)
	require.Equal(t, 1, p.Entry(0).ChildEntryCount)
}

func TestCompute_OtherCategorySortsLastAndCaseInsensitive(t *testing.T) {
	p := Compute([]Entry{
		{Title: "root"},
		{Title: "guide", Parent: "root", Builder: "x.Custom"},
		{Title: "beta", Parent: "root", Builder: classBuilder},
		{Title: "Alpha", Parent: "root", Builder: classBuilder},
	})

	got := navByTitle(p)
	require.Equal(t, 1, got["Alpha"])
	require.Equal(t, 2, got["beta"])
	require.Equal(t, 3, got["guide"])
	require.Equal(t, CategoryOther, p.Entry(1).Category)
}

func TestCompute_EntryTypeOverrideAffectsOrdering(t *testing.T) {
	p := Compute([]Entry{
		{Title: "root"},
		{Title: "Aardvark", Parent: "root", Builder: classBuilder},
		{Title: "Zoo", Parent: "root", Builder: classBuilder, EntryType: "submodule"},
	})

	got := navByTitle(p)
	require.Equal(t, 1, got["Zoo"])
	require.Equal(t, 2, got["Aardvark"])
}

func TestCompute_StableForEqualKeys(t *testing.T) {
	entries := []Entry{
		{Title: "root"},
		{Title: "Same", Parent: "root", Builder: classBuilder, Source: "first"},
		{Title: "same", Parent: "root", Builder: classBuilder, Source: "second"},
		{Title: "SAME", Parent: "root", Builder: classBuilder, Source: "third"},
	}
	p := Compute(entries)

	require.Equal(t, 1, p.NavOrder(1))
	require.Equal(t, 2, p.NavOrder(2))
	require.Equal(t, 3, p.NavOrder(3))
}

func TestCompute_UnknownParentIsItsOwnGroup(t *testing.T) {
	p := Compute([]Entry{
		{Title: "Top"},
		{Title: "Orphan", Parent: "Nobody"},
	})

	require.Equal(t, 1, p.NavOrder(1))
	require.Equal(t, 1, p.ChildCount("Nobody"))
	require.Equal(t, 0, p.ChildCount("Top"))
	_, present := p.ChildCounts()["Top"]
	require.False(t, present)
}

func TestCompute_TopLevelKeepsTreeOrder(t *testing.T) {
	entries := []Entry{
		{Title: "Zeta", Builder: moduleBuilder},
		{Title: "child", Parent: "Zeta"},
		{Title: "Alpha", Builder: classBuilder},
		{Title: "Mid"},
	}
	p := Compute(entries)

	require.Equal(t, 2, p.NavOrder(0))
	require.Equal(t, 4, p.NavOrder(2))
	require.Equal(t, 5, p.NavOrder(3))
}

func TestCompute_EmptyTree(t *testing.T) {
	p := Compute(nil)
	require.Equal(t, 0, p.Len())
	require.Empty(t, p.Entries())
	require.Empty(t, p.ChildCounts())
}

// TestCompute_SiblingOrdersArePermutations shuffles a tree repeatedly and
// checks every sibling group is numbered 1..N with no gaps or repeats.
func TestCompute_SiblingOrdersArePermutations(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	builders := []string{moduleBuilder, classBuilder, "x.Other", ""}
	parents := []string{"", "", "A", "A", "A", "B", "B", "C"}

	for round := 0; round < 50; round++ {
		n := 1 + rng.IntN(30)
		entries := make([]Entry, n)
		for i := range entries {
			entries[i] = Entry{
				Title:   string(rune('a'+rng.IntN(6))) + string(rune('A'+rng.IntN(3))),
				Parent:  parents[rng.IntN(len(parents))],
				Builder: builders[rng.IntN(len(builders))],
			}
		}
		p := Compute(entries)

		groups := map[string][]int{}
		counts := map[string]int{}
		lastTop := 0
		for i, e := range entries {
			if !e.HasParent() {
				require.Equal(t, i+TopLevelOffset, p.NavOrder(i))
				require.Greater(t, p.NavOrder(i), lastTop)
				lastTop = p.NavOrder(i)
				continue
			}
			groups[e.Parent] = append(groups[e.Parent], p.NavOrder(i))
			counts[e.Parent]++
		}
		for parent, orders := range groups {
			slices.Sort(orders)
			for i, o := range orders {
				require.Equal(t, i+1, o, "round %d parent %s", round, parent)
			}
		}
		require.Equal(t, counts, p.ChildCounts())
	}
}

func TestPlan_EntriesCarryPayload(t *testing.T) {
	entries := []Entry{
		{
			Title:   "Cursors",
			Builder: moduleBuilder,
			Source:  "pkg.Cursor",
			Classes: []string{"pkg.Memory"},
			Extra:   map[string]any{"custom": "kept"},
		},
	}
	planned := Compute(entries).Entries()

	require.Len(t, planned, 1)
	require.Equal(t, 0, planned[0].Index)
	require.Equal(t, CategorySubmodule, planned[0].Category)
	require.Equal(t, []string{"pkg.Memory"}, planned[0].Classes)
	require.Equal(t, "kept", planned[0].Extra["custom"])
}
