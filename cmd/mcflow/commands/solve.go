package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/internal/netfile"
)

// errNoEndpoint is returned when neither the file nor the flags name a source or sink.
var errNoEndpoint = errors.New("source and sink must be given in the file or with --source/--sink")

func newSolveCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <network-file>",
		Short: "Compute a minimum-cost flow",
		Long: `Load a network (text edge list, or YAML for .yaml/.yml files), route the
maximum flow of minimum cost from source to sink and print flow and cost.

Flags override the source, sink and limit stored in the file.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, v, args[0])
		},
	}

	cmd.Flags().Int("source", -1, "source node (default: from file)")
	cmd.Flags().Int("sink", -1, "sink node (default: from file)")
	cmd.Flags().Int64("limit", -1, "stop after routing this much flow; 0 routes nothing (default: from file, else unbounded)")
	cmd.Flags().Bool("saturated", false, "list edges carrying their full capacity")
	cmd.Flags().StringP("output", "o", "text", "report format: text or yaml")

	return cmd
}

func runSolve(cmd *cobra.Command, v *viper.Viper, path string) error {
	log := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))

	format := v.GetString("output")
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown output format %q", format)
	}

	d, err := netfile.Load(path)
	if err != nil {
		return err
	}
	source, sink, limit, err := endpoints(d, v)
	if err != nil {
		return err
	}
	log.Debug().
		Str("file", path).
		Int("nodes", d.Nodes).
		Int("edges", len(d.Edges)).
		Int("source", source).
		Int("sink", sink).
		Int64("limit", limit).
		Msg("network loaded")

	nw, err := d.Build()
	if err != nil {
		return err
	}

	opts := flow.DefaultOptions()
	opts.Ctx = cmd.Context()
	opts.FlowLimit = limit
	opts.Verbose = v.GetBool("verbose")
	opts.Logger = &log

	value, cost, err := nw.MinCostFlow(source, sink, opts)
	if err != nil {
		return fmt.Errorf("solving %s: %w", path, err)
	}

	rep := Report{Flow: value, Cost: cost}
	if v.GetBool("saturated") {
		if rep.Saturated, err = nw.SaturatedEdges(); err != nil {
			return err
		}
	}

	return writeReport(cmd.OutOrStdout(), rep, format)
}

// endpoints resolves source, sink and limit; flags win over the file. A limit
// given nowhere means Unbounded; an explicit 0 is kept.
func endpoints(d *netfile.Description, v *viper.Viper) (source, sink int, limit int64, err error) {
	source, sink, limit = v.GetInt("source"), v.GetInt("sink"), v.GetInt64("limit")
	if source < 0 && d.Source != nil {
		source = *d.Source
	}
	if sink < 0 && d.Sink != nil {
		sink = *d.Sink
	}
	if source < 0 || sink < 0 {
		return 0, 0, 0, errNoEndpoint
	}
	if limit < 0 {
		limit = flow.Unbounded
		if d.Limit != nil {
			limit = *d.Limit
		}
	}

	return source, sink, limit, nil
}
