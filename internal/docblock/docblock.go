// Package docblock turns raw docstrings into Markdown fragments.
package docblock

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Render converts a raw docstring to Markdown. Triple-quote markers are
// dropped, the common indentation of continuation lines is removed and
// surrounding blank lines are trimmed. Everything else passes through.
func Render(raw string) string {
	raw = strings.ReplaceAll(raw, `"""`, "")
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")

	indent := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	lines[0] = strings.TrimLeft(lines[0], " \t")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			lines[i] = ""
			continue
		}
		if indent > 0 {
			lines[i] = lines[i][indent:]
		}
	}

	out := strings.Join(lines, "\n")
	out = strings.TrimLeft(out, "\n")
	return strings.TrimRight(out, " \t\n")
}

// SplitOverview separates the elevator pitch (the leading paragraph) from the
// rest of a rendered docstring. Text that does not open with a paragraph has
// no pitch; all of it is overview.
func SplitOverview(md string) (pitch, overview string) {
	source := []byte(md)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	first := root.FirstChild()
	para, ok := first.(*gmast.Paragraph)
	if !ok || para.Lines().Len() == 0 {
		return "", strings.TrimSpace(md)
	}
	lines := para.Lines()
	start := lines.At(0).Start
	stop := lines.At(lines.Len() - 1).Stop
	pitch = strings.TrimSpace(string(source[start:stop]))
	overview = strings.TrimSpace(string(source[stop:]))
	return pitch, overview
}
