// SPDX-License-Identifier: MIT

// Package cli implements the kfca command tree.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kfca/hasse"
	"github.com/katalvlaran/kfca/lattice"
)

// state carries the settings resolved in the root pre-run to subcommands.
type state struct {
	configPath string
	settings   Settings
}

// NewRootCmd returns the kfca root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	st := &state{}
	root := &cobra.Command{
		Use:   "kfca",
		Short: "Formal concept analysis over K-valued contexts",
		Long: `kfca builds φ-concept lattices of K-valued formal contexts.

Settings come from flags, then KFCA_* environment variables (KFCA_PIVOT,
KFCA_MAX_CONCEPTS, ...), then ./kfca.yaml or the file named by --config.

Example:
  kfca cross
  kfca vehicles --pivot 0.75 --dot vehicles.dot --svg vehicles.svg
  kfca random --objects 8 --attributes 6 --seed 3 --semiring fuzzy
  kfca scale ordinal 5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := loadConfig(cmd, st.configPath)
			if err != nil {
				return err
			}
			if st.settings, err = settingsFrom(v); err != nil {
				return err
			}
			if v.GetBool(keyNoColor) {
				color.NoColor = true
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.configPath, keyConfig, "", "config file (default ./kfca.yaml when present)")
	pf.Float64(keyPivot, 1, "pivot φ for graded contexts")
	pf.String(keyMethod, lattice.DefaultMethod.String(), "enumeration method: canonical, objects or attributes")
	pf.Int(keyWorkers, 0, "closure workers (0 means GOMAXPROCS)")
	pf.Int(keyMaxConcepts, lattice.DefaultMaxConcepts, "abort above this many concepts (0 disables)")
	pf.String(keyRankDir, hasse.DefaultRankDir, "diagram rank direction: BT, TB, LR or RL")
	pf.BoolP(keyVerbose, "v", false, "log build phases to stderr")
	pf.Bool(keyNoColor, false, "disable colored output")
	pf.Bool(keyMetrics, false, "print build metrics to stderr")
	pf.String(keyDOT, "", "write the Hasse diagram as DOT to this file")
	pf.String(keySVG, "", "render the Hasse diagram as SVG to this file")
	pf.String(keyPNG, "", "render the Hasse diagram as PNG to this file")

	root.AddCommand(crossCmd(st))
	root.AddCommand(vehiclesCmd(st))
	root.AddCommand(randomCmd(st))
	root.AddCommand(scaleCmd(st))

	return root
}
