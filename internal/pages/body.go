package pages

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/refdocs/internal/docblock"
)

// Argument is one documented constructor argument.
type Argument struct {
	Name     string
	Required bool
	// Doc is the raw docstring; it is rendered when the body is built.
	Doc string
}

// Label is the requirement marker written under the argument heading.
func (a Argument) Label() string {
	if a.Required {
		return "Required"
	}
	return "Optional"
}

// IndexBody renders a section index: title, elevator pitch and overview of
// the section's own docstring.
func IndexBody(title, rawDoc string) string {
	pitch, overview := docblock.SplitOverview(docblock.Render(rawDoc))
	var b strings.Builder
	fmt.Fprintf(&b, "\n# %s\n\n%s\n\n## Overview\n\n%s\n", title, pitch, overview)
	return b.String()
}

// ClassBody renders a class page. The table of contents is numbered by hand:
// the overview is always 1, arguments follow in declaration order.
func ClassBody(title, rawDoc string, args []Argument) string {
	pitch, overview := docblock.SplitOverview(docblock.Render(rawDoc))

	var toc, main strings.Builder
	toc.WriteString(" 1. [Overview](#overview)\n")
	fmt.Fprintf(&main, "## Overview\n\n%s\n\n", overview)
	for i, arg := range args {
		fmt.Fprintf(&toc, " %d. [%s](#%s)\n", i+2, arg.Name, arg.Name)
		fmt.Fprintf(&main, "## %s\n**%s**\n\n%s\n\n", arg.Name, arg.Label(), docblock.Render(arg.Doc))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n# %s\n\n%s\n\n", title, pitch)
	b.WriteString(toc.String())
	b.WriteString("\n")
	b.WriteString(main.String())
	return b.String()
}
