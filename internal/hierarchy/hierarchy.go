// Package hierarchy maps tree entry titles onto output folders.
package hierarchy

import (
	"path/filepath"
	"strings"
	"unicode"

	"git.home.luguber.info/inful/refdocs/internal/navplan"
)

// Location is where a section lives below the doc root.
type Location struct {
	// Segments are the folder names from the doc root down to the section.
	Segments []string
	// SectionName is Segments joined with "/", used in permalinks.
	SectionName string
}

// Dir returns the section folder below root.
func (l Location) Dir(root string) string {
	return filepath.Join(append([]string{root}, l.Segments...)...)
}

// ParentDir returns the folder that contains the section folder.
func (l Location) ParentDir(root string) string {
	return filepath.Join(append([]string{root}, l.Segments[:len(l.Segments)-1]...)...)
}

// Token converts a display title into a path-safe folder or file name:
// spaces are dropped, every upper-case letter after the first character starts
// a new hyphen-separated word, and underscores, dots and path separators
// become hyphens. A token is always a single path element and never "." or "..".
//
//	"From Environment" → "from-environment"
//	"EnvCursor"        → "env-cursor"
//	"snake_case"       → "snake-case"
//	"Read/Write"       → "read--write"
//
// Token is idempotent: Token(Token(s)) == Token(s).
func Token(title string) string {
	var b strings.Builder
	b.Grow(len(title) + 4)
	first := true
	for _, r := range title {
		if r == ' ' {
			continue
		}
		if unicode.IsUpper(r) && !first {
			b.WriteByte('-')
		}
		first = false
		if r == '_' || r == '.' || r == '/' || r == '\\' {
			b.WriteByte('-')
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Resolve places an entry under its grand-parent and parent folders, when present.
func Resolve(e navplan.Entry) Location {
	var segments []string
	switch {
	case e.HasGrandParent():
		segments = []string{Token(e.GrandParent), Token(e.Parent), Token(e.Title)}
	case e.HasParent():
		segments = []string{Token(e.Parent), Token(e.Title)}
	default:
		segments = []string{Token(e.Title)}
	}
	return Location{
		Segments:    segments,
		SectionName: strings.Join(segments, "/"),
	}
}
