package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mcflow:", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Each call gets its own viper instance
// so commands can be executed repeatedly in tests.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "mcflow",
		Short: "Minimum-cost flow solver",
		Long: `mcflow computes the maximum flow of minimum total cost between two nodes
of a directed capacitated network, optionally capped at a flow limit.

Every flag can also be set through an MCFLOW_<FLAG> environment variable
or a YAML config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlag("verbose", cmd.Flags().Lookup("verbose")); err != nil {
				return err
			}
			return initConfig(v, cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.mcflow.yaml if present)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log the potential pass and every augmentation")

	root.AddCommand(newSolveCmd(v), newGenCmd(v))

	return root
}

// initConfig wires environment overrides and the optional config file.
// A missing default config file is not an error; a missing explicit one is.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("mcflow")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	path := filepath.Join(home, ".mcflow.yaml")
	if _, err = os.Stat(path); err != nil {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	return nil
}
