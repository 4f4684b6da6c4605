package builders

import (
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/refdocs/internal/catalog"
	"git.home.luguber.info/inful/refdocs/internal/hierarchy"
	"git.home.luguber.info/inful/refdocs/internal/logfields"
	"git.home.luguber.info/inful/refdocs/internal/navplan"
	"git.home.luguber.info/inful/refdocs/internal/pages"
)

const indexFile = "index.md"

// Module renders a section: an index page for the entry's source record and
// one page per class in the entry's class list.
type Module struct {
	entry navplan.Planned
	env   Env
}

// NewModule is the Factory for module sections.
func NewModule(entry navplan.Planned, env Env) Builder {
	return &Module{entry: entry, env: env}
}

// Build implements Builder.
func (m *Module) Build() (Report, error) {
	var report Report
	loc := hierarchy.Resolve(m.entry.Entry)
	dir := loc.Dir(m.env.DocRoot)
	if err := pages.EnsureDir(dir); err != nil {
		return report, err
	}

	source, err := m.env.Classes.Find(catalog.ByImportPath(m.entry.Source))
	if err != nil {
		return report, err
	}
	index := pages.Page{
		Header: pages.Header{
			Title:       m.entry.Title,
			Parent:      m.entry.Parent,
			GrandParent: m.entry.GrandParent,
			NavOrder:    m.entry.NavOrder,
			HasChildren: true,
			Permalink:   pages.SectionPermalink(m.env.Pages, loc.SectionName),
		},
		Body: pages.IndexBody(m.entry.Title, source.Doc),
	}
	indexPath := filepath.Join(dir, indexFile)
	if err := pages.Write(indexPath, index, m.env.Pages); err != nil {
		return report, err
	}
	report.Pages = append(report.Pages, indexPath)

	// Member pages keep the configured class order. They are numbered after
	// the section's child sections so those are listed first.
	for i, importPath := range m.entry.Classes {
		class, err := m.env.Classes.Find(catalog.ByImportPath(importPath))
		if err != nil {
			return report, err
		}
		args, err := classArguments(m.env, class, m.entry.ArgsToAdditionalAttributesMap)
		if err != nil {
			return report, err
		}
		filename := hierarchy.Token(class.Name)
		page := pages.Page{
			Header: pages.Header{
				Title:       class.Name,
				Parent:      m.entry.Title,
				GrandParent: m.entry.Parent,
				NavOrder:    i + 1,
				NavOffset:   m.entry.ChildEntryCount,
				Permalink:   pages.PagePermalink(m.env.Pages, loc.SectionName, filename),
			},
			Body: pages.ClassBody(class.Name, class.Doc, args),
		}
		path := filepath.Join(dir, filename+".md")
		if err := pages.Write(path, page, m.env.Pages); err != nil {
			return report, err
		}
		report.Pages = append(report.Pages, path)
	}

	slog.Debug("Section built",
		logfields.Section(loc.SectionName),
		logfields.Count(len(report.Pages)),
		logfields.ChildEntryCount(m.entry.ChildEntryCount))
	return report, nil
}
