package pages

import (
	"strings"

	"git.home.luguber.info/inful/refdocs/internal/frontmatter"
)

// Options are site-wide page settings.
type Options struct {
	Layout          string
	PermalinkPrefix string
	// PageIDs adds a uid derived from the permalink.
	PageIDs bool
	// Fingerprint adds an mdfp content fingerprint.
	Fingerprint bool
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{Layout: "default", PermalinkPrefix: "/docs"}
}

// Header is the navigation metadata of one page.
type Header struct {
	Title       string
	Parent      string
	GrandParent string
	// NavOrder is the page's position among its siblings.
	NavOrder int
	// NavOffset shifts NavOrder past sibling sections so member pages of a
	// section are listed after its child sections. The written nav_order is
	// the sum of both (see EffectiveNavOrder), not NavOrder alone.
	NavOffset   int
	HasChildren bool
	Permalink   string
}

// EffectiveNavOrder is the nav_order written to the page.
func (h Header) EffectiveNavOrder() int { return h.NavOffset + h.NavOrder }

// Fields renders the header as ordered frontmatter.
func (h Header) Fields(opts Options) frontmatter.Fields {
	var f frontmatter.Fields
	if opts.Layout != "" {
		f = f.Set("layout", opts.Layout)
	}
	f = f.Set("title", h.Title)
	if h.Parent != "" {
		f = f.Set("parent", h.Parent)
	}
	if h.GrandParent != "" {
		f = f.Set("grand_parent", h.GrandParent)
	}
	f = f.Set("nav_order", h.EffectiveNavOrder())
	if h.HasChildren {
		f = f.Set("has_children", true)
	}
	if h.Permalink != "" {
		f = f.Set("permalink", h.Permalink)
	}
	return f
}

// SectionPermalink is the permalink of a section index page.
func SectionPermalink(opts Options, sectionName string) string {
	return joinPermalink(opts.PermalinkPrefix, sectionName) + "/"
}

// PagePermalink is the permalink of a member page inside a section.
func PagePermalink(opts Options, sectionName, filename string) string {
	return joinPermalink(opts.PermalinkPrefix, sectionName, filename) + ".html"
}

func joinPermalink(prefix string, parts ...string) string {
	out := strings.TrimRight(prefix, "/")
	for _, p := range parts {
		if p = strings.Trim(p, "/"); p != "" {
			out += "/" + p
		}
	}
	if !strings.HasPrefix(out, "/") {
		out = "/" + out
	}
	return out
}
