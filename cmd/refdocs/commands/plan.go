package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/refdocs/internal/config"
	ferrors "git.home.luguber.info/inful/refdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/refdocs/internal/navplan"
)

// PlanCmd implements the 'plan' command.
type PlanCmd struct {
	Format string `help:"Output format (text|yaml)" enum:"text,yaml" default:"text"`
}

func (p *PlanCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	return WritePlan(g.out(), navplan.Compute(cfg.Tree), p.Format)
}

type planRow struct {
	Index           int    `yaml:"index"`
	Title           string `yaml:"title"`
	Parent          string `yaml:"parent,omitempty"`
	Category        string `yaml:"category"`
	NavOrder        int    `yaml:"nav_order"`
	ChildEntryCount int    `yaml:"child_entry_count"`
}

func categoryLabel(c navplan.Category) string {
	if c == navplan.CategoryOther {
		return "other"
	}
	return string(c)
}

// WritePlan prints plan in tree order.
func WritePlan(w io.Writer, plan *navplan.Plan, format string) error {
	rows := make([]planRow, 0, plan.Len())
	for _, e := range plan.Entries() {
		rows = append(rows, planRow{
			Index:           e.Index,
			Title:           e.Title,
			Parent:          e.Parent,
			Category:        categoryLabel(e.Category),
			NavOrder:        e.NavOrder,
			ChildEntryCount: e.ChildEntryCount,
		})
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to encode plan").Build()
		}
		return enc.Close()
	case "", "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "INDEX\tTITLE\tPARENT\tCATEGORY\tNAV_ORDER\tCHILDREN")
		for _, r := range rows {
			parent := r.Parent
			if parent == "" {
				parent = "-"
			}
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n", r.Index, r.Title, parent, r.Category, r.NavOrder, r.ChildEntryCount)
		}
		return tw.Flush()
	default:
		return ferrors.ValidationError("unknown plan format").WithContext("format", format).Build()
	}
}
