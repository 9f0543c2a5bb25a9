// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kfca/builder"
	"github.com/katalvlaran/kfca/galois"
	"github.com/katalvlaran/kfca/kcontext"
)

// boolean reports a Boolean context at pivot ⊤; --pivot does not apply.
func boolean(cmd *cobra.Command, st *state, ctx *kcontext.Context[bool]) error {
	conn, err := galois.NewAtOne(ctx)
	if err != nil {
		return err
	}
	return report(cmd, st.settings, conn)
}

func graded(cmd *cobra.Command, st *state, ctx *kcontext.Context[float64]) error {
	conn, err := galois.New(ctx, st.settings.Pivot)
	if err != nil {
		return err
	}
	return report(cmd, st.settings, conn)
}

func crossCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "cross",
		Short: "Lattice of the 5×4 Boolean cross table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := builder.CrossTable()
			if err != nil {
				return err
			}
			return boolean(cmd, st, ctx)
		},
	}
}

func vehiclesCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "Lattice of the graded 10×11 vehicle context",
		Long: `Builds the lattice of the vehicle context at --pivot.
Cells hold vote degrees in {0, 0.25, 0.5, 0.75, 1}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("semiring")
			s, err := parseSemiring(name)
			if err != nil {
				return err
			}
			ctx, err := builder.Vehicles(s)
			if err != nil {
				return err
			}
			return graded(cmd, st, ctx)
		},
	}
	cmd.Flags().String("semiring", "maxplus", "value semiring: maxplus, minplus or fuzzy")
	return cmd
}

func randomCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Lattice of a seeded random context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			n, _ := f.GetInt("objects")
			p, _ := f.GetInt("attributes")
			seed, _ := f.GetInt64("seed")
			density, _ := f.GetFloat64("density")
			name, _ := f.GetString("semiring")
			if density < 0 || density > 1 {
				return fmt.Errorf("%w: density=%g", ErrInvalidSetting, density)
			}

			if name == "boolean" {
				ctx, err := builder.RandomBoolean(n, p, builder.WithSeed(seed), builder.WithDensity(density))
				if err != nil {
					return err
				}
				return boolean(cmd, st, ctx)
			}
			s, err := parseSemiring(name)
			if err != nil {
				return err
			}
			ctx, err := builder.RandomValued(n, p, s, builder.WithSeed(seed))
			if err != nil {
				return err
			}
			return graded(cmd, st, ctx)
		},
	}
	f := cmd.Flags()
	f.Int("objects", 8, "number of objects")
	f.Int("attributes", 6, "number of attributes")
	f.Int64("seed", builder.DefaultSeed, "random seed")
	f.Float64("density", builder.DefaultDensity, "probability of a cross (boolean only)")
	f.String("semiring", "boolean", "boolean, maxplus, minplus or fuzzy")
	return cmd
}

func scaleCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Lattices of conceptual scales",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "nominal <value>...",
		Short: "Nominal scale on the given values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := builder.Nominal(args)
			if err != nil {
				return err
			}
			return boolean(cmd, st, ctx)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "ordinal <k>",
		Short: "Ordinal scale on 1..k",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: k=%q", ErrInvalidSetting, args[0])
			}
			ctx, err := builder.Ordinal(k)
			if err != nil {
				return err
			}
			return boolean(cmd, st, ctx)
		},
	})
	return cmd
}
