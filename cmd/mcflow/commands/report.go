package commands

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcflow/flow"
)

// Report is the outcome of one solve.
type Report struct {
	Flow      int64           `yaml:"flow"`
	Cost      int64           `yaml:"cost"`
	Saturated []flow.NodePair `yaml:"saturated,omitempty"`
}

// writeReport renders r as "text" or "yaml".
func writeReport(w io.Writer, r Report, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	}

	if _, err := fmt.Fprintf(w, "flow: %d\ncost: %d\n", r.Flow, r.Cost); err != nil {
		return err
	}
	if len(r.Saturated) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "saturated:"); err != nil {
		return err
	}
	for _, p := range r.Saturated {
		if _, err := fmt.Fprintf(w, "  %d -> %d\n", p.From, p.To); err != nil {
			return err
		}
	}

	return nil
}
