package catalog

import (
	"errors"
	"log/slog"

	"git.home.luguber.info/inful/refdocs/internal/logfields"
)

// AttributeDocs collects the documentation of every documented attribute
// visible on class: its own attributes first, then those of its base classes
// breadth-first in declared order. The nearest declaration of a name wins.
//
// The result is not limited to names the caller cares about; callers filter
// it against the arguments they actually render. Base classes missing from
// the catalog (builtins, third-party types) are skipped. Any other lookup
// failure is returned.
func AttributeDocs(classes ClassSource, class *Class) (map[string]string, error) {
	docs := map[string]string{}
	seen := map[string]bool{class.ImportPath: true}
	queue := []*Class{class}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, attr := range current.Attributes {
			if attr.Doc == "" {
				continue
			}
			if _, ok := docs[attr.Name]; !ok {
				docs[attr.Name] = attr.Doc
			}
		}
		for _, base := range current.BaseClasses {
			if seen[base] {
				continue
			}
			seen[base] = true
			parent, err := classes.Find(ByImportPath(base))
			if errors.Is(err, ErrRecordNotFound) {
				slog.Debug("Skipping base class outside the catalog", logfields.Class(current.ImportPath), logfields.Identifier(base))
				continue
			}
			if err != nil {
				return nil, err
			}
			queue = append(queue, parent)
		}
	}
	return docs, nil
}
