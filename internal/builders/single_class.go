package builders

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/refdocs/internal/catalog"
	"git.home.luguber.info/inful/refdocs/internal/hierarchy"
	"git.home.luguber.info/inful/refdocs/internal/navplan"
	"git.home.luguber.info/inful/refdocs/internal/pages"
)

// SingleClass renders the entry's source class as one page inside its
// parent's section folder (or the doc root for top-level entries).
type SingleClass struct {
	entry navplan.Planned
	env   Env
}

// NewSingleClass is the Factory for standalone class pages.
func NewSingleClass(entry navplan.Planned, env Env) Builder {
	return &SingleClass{entry: entry, env: env}
}

// Build implements Builder.
func (s *SingleClass) Build() (Report, error) {
	loc := hierarchy.Resolve(s.entry.Entry)
	filename := loc.Segments[len(loc.Segments)-1]
	section := strings.Join(loc.Segments[:len(loc.Segments)-1], "/")

	page, err := entryClassPage(s.env, s.entry)
	if err != nil {
		return Report{}, err
	}
	page.Header.Permalink = pages.PagePermalink(s.env.Pages, section, filename)

	path := filepath.Join(loc.ParentDir(s.env.DocRoot), filename+".md")
	if err := pages.Write(path, page, s.env.Pages); err != nil {
		return Report{}, err
	}
	return Report{Pages: []string{path}}, nil
}

// SingleClassToSection renders the entry's source class as the index page of
// its own section, so later entries can nest beneath it.
type SingleClassToSection struct {
	entry navplan.Planned
	env   Env
}

// NewSingleClassToSection is the Factory for class pages that open a section.
func NewSingleClassToSection(entry navplan.Planned, env Env) Builder {
	return &SingleClassToSection{entry: entry, env: env}
}

// Build implements Builder.
func (s *SingleClassToSection) Build() (Report, error) {
	loc := hierarchy.Resolve(s.entry.Entry)

	page, err := entryClassPage(s.env, s.entry)
	if err != nil {
		return Report{}, err
	}
	page.Header.HasChildren = true
	page.Header.Permalink = pages.SectionPermalink(s.env.Pages, loc.SectionName)

	path := filepath.Join(loc.Dir(s.env.DocRoot), indexFile)
	if err := pages.Write(path, page, s.env.Pages); err != nil {
		return Report{}, err
	}
	return Report{Pages: []string{path}}, nil
}

// entryClassPage builds the page for an entry documenting exactly one class.
// The entry's own title and ancestry head the page.
func entryClassPage(env Env, entry navplan.Planned) (pages.Page, error) {
	class, err := env.Classes.Find(catalog.ByImportPath(entry.Source))
	if err != nil {
		return pages.Page{}, err
	}
	args, err := classArguments(env, class, entry.ArgsToAdditionalAttributesMap)
	if err != nil {
		return pages.Page{}, err
	}
	return pages.Page{
		Header: pages.Header{
			Title:       entry.Title,
			Parent:      entry.Parent,
			GrandParent: entry.GrandParent,
			NavOrder:    entry.NavOrder,
		},
		Body: pages.ClassBody(entry.Title, class.Doc, args),
	}, nil
}
