package navplan

import (
	"cmp"
	"maps"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TopLevelOffset is added to a top-level entry's tree index. nav_order 0 and 1
// belong to structural pages written by surrounding tooling.
const TopLevelOffset = 2

// Plan is the ordering computed for one tree. It is built once, before any
// builder runs, and is read-only afterwards.
type Plan struct {
	entries     []Entry
	navOrders   map[int]int
	categories  map[int]Category
	childCounts map[string]int
}

type member struct {
	index    int
	category Category
	sortKey  string
}

// Compute plans the whole tree. Children are grouped by their parent title,
// which is a plain string match: a parent title naming no entry still forms
// its own group.
func Compute(entries []Entry) *Plan {
	p := &Plan{
		entries:     entries,
		navOrders:   make(map[int]int, len(entries)),
		categories:  make(map[int]Category, len(entries)),
		childCounts: make(map[string]int),
	}

	lower := cases.Lower(language.Und)
	groups := make(map[string][]member)
	var parents []string
	for i, e := range entries {
		cat := Classify(e)
		p.categories[i] = cat
		if !e.HasParent() {
			p.navOrders[i] = i + TopLevelOffset
			continue
		}
		if _, seen := groups[e.Parent]; !seen {
			parents = append(parents, e.Parent)
		}
		groups[e.Parent] = append(groups[e.Parent], member{
			index:    i,
			category: cat,
			sortKey:  lower.String(e.Title),
		})
		p.childCounts[e.Parent]++
	}

	for _, parent := range parents {
		siblings := groups[parent]
		slices.SortStableFunc(siblings, func(a, b member) int {
			return cmp.Or(
				cmp.Compare(a.category.priority(), b.category.priority()),
				cmp.Compare(a.sortKey, b.sortKey),
			)
		})
		for rank, m := range siblings {
			p.navOrders[m.index] = rank + 1
		}
	}
	return p
}

// Len returns the number of planned entries.
func (p *Plan) Len() int { return len(p.entries) }

// NavOrder returns the nav_order assigned to the entry at index.
func (p *Plan) NavOrder(index int) int { return p.navOrders[index] }

// NavOrders returns a copy of the index → nav_order map.
func (p *Plan) NavOrders() map[int]int {
	return maps.Clone(p.navOrders)
}

// ChildCount returns how many entries declare title as their parent.
func (p *Plan) ChildCount(title string) int { return p.childCounts[title] }

// ChildCounts returns a copy of the parent title → child count map. Titles
// nobody references are absent.
func (p *Plan) ChildCounts() map[string]int {
	return maps.Clone(p.childCounts)
}

// Entry returns the enriched entry at index.
func (p *Plan) Entry(index int) Planned {
	e := p.entries[index]
	return Planned{
		Entry:           e,
		Index:           index,
		NavOrder:        p.navOrders[index],
		Category:        p.categories[index],
		ChildEntryCount: p.childCounts[e.Title],
	}
}

// Entries returns every enriched entry in original tree order.
func (p *Plan) Entries() []Planned {
	out := make([]Planned, len(p.entries))
	for i := range p.entries {
		out[i] = p.Entry(i)
	}
	return out
}
