// Package export renders an extracted schema for people and downstream tools.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/brunobiangulo/tgschema/schema"
)

// Text writes a human-readable dump of s: recent changes first, then every
// type with its fields and every method with its parameters.
func Text(w io.Writer, s *schema.Schema) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Recent changes (%d)\n", len(s.RecentChanges))
	for _, c := range s.RecentChanges {
		fmt.Fprintf(bw, "\n%s  %s\n", c.Date, c.Version)
		for _, item := range c.Changes {
			fmt.Fprintf(bw, "  - %s\n", item)
		}
	}

	fmt.Fprintf(bw, "\n# Types (%d)\n", len(s.Types))
	for _, t := range s.Types {
		fmt.Fprintf(bw, "\n%s\n", t.Name)
		if t.Description != "" {
			fmt.Fprintf(bw, "  %s\n", t.Description)
		}
		for _, f := range t.Fields {
			fmt.Fprintf(bw, "  %-24s %-32s %s\n", f.Name, f.Type, f.Description)
		}
	}

	fmt.Fprintf(bw, "\n# Methods (%d)\n", len(s.Methods))
	for _, m := range s.Methods {
		fmt.Fprintf(bw, "\n%s -> %s\n", m.Name, m.ReturnType)
		if m.Description != "" {
			fmt.Fprintf(bw, "  %s\n", m.Description)
		}
		for _, p := range m.Params {
			fmt.Fprintf(bw, "  %-24s %-32s %-8s %s\n", p.Name, p.Type, p.Required, p.Description)
		}
	}

	if refs := s.UnresolvedReferences(); len(refs) > 0 {
		fmt.Fprintf(bw, "\n# Unresolved references (%d)\n", len(refs))
		for _, r := range refs {
			fmt.Fprintf(bw, "  %s\n", r)
		}
	}

	return bw.Flush()
}
