package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mcflow/builder"
	"github.com/katalvlaran/mcflow/internal/netfile"
)

func newGenCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random network file",
		Long: `Sample a random directed network and print it as a network file that
"mcflow solve" accepts. Node 0 is the source and the last node is the sink.
The same seed always produces the same network.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, v)
		},
	}

	cmd.Flags().Int("nodes", 10, "number of nodes (at least 2)")
	cmd.Flags().Float64("density", 0.3, "probability of an edge between each ordered node pair")
	cmd.Flags().Int64("seed", 1, "random seed")
	cmd.Flags().Int64("max-capacity", 10, "capacities are drawn from [1, max-capacity]")
	cmd.Flags().Int64("max-cost", 10, "costs are drawn from [0, max-cost]")
	cmd.Flags().String("format", "text", "file format: text or yaml")

	return cmd
}

func runGen(cmd *cobra.Command, v *viper.Viper) error {
	log := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))

	var format netfile.Format
	switch f := v.GetString("format"); f {
	case "text":
		format = netfile.FormatText
	case "yaml":
		format = netfile.FormatYAML
	default:
		return fmt.Errorf("unknown file format %q", f)
	}
	maxCap, maxCost := v.GetInt64("max-capacity"), v.GetInt64("max-cost")
	if maxCap < 1 || maxCost < 0 {
		return fmt.Errorf("max-capacity must be ≥ 1 and max-cost ≥ 0, got %d and %d", maxCap, maxCost)
	}

	nw, err := builder.RandomSparse(v.GetInt("nodes"), v.GetFloat64("density"),
		builder.WithSeed(v.GetInt64("seed")),
		builder.WithUniformCapacity(1, maxCap),
		builder.WithUniformCost(0, maxCost),
	)
	if err != nil {
		return err
	}
	log.Debug().
		Int("nodes", nw.NodeCount()).
		Int("edges", nw.EdgeCount()).
		Int64("seed", v.GetInt64("seed")).
		Msg("network generated")

	return netfile.FromNetwork(nw.Network, nw.Source, nw.Sink).Write(cmd.OutOrStdout(), format)
}
