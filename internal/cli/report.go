// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kfca/galois"
	"github.com/katalvlaran/kfca/hasse"
	"github.com/katalvlaran/kfca/lattice"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// report builds the lattice of conn, prints the context and the lattice to
// stdout and writes the requested diagram files.
func report[T any](cmd *cobra.Command, s Settings, conn *galois.Connection[T]) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts := []lattice.Option{
		lattice.WithContext(ctx),
		lattice.WithLogger(newLogger(cmd.ErrOrStderr(), s.Verbose)),
		lattice.WithWorkers(s.Workers),
		lattice.WithMaxConcepts(s.MaxConcepts),
		lattice.WithMethod(s.Method),
	}
	var reg *prometheus.Registry
	if s.Metrics {
		reg = prometheus.NewRegistry()
		opts = append(opts, lattice.WithMetrics(lattice.NewMetrics(reg)))
	}

	l, err := lattice.Build(conn.Context(), conn, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, conn.Context())
	fmt.Fprint(out, l)

	if err := writeDiagrams(s, l); err != nil {
		return err
	}
	if reg != nil {
		return writeMetrics(cmd.ErrOrStderr(), reg)
	}
	return nil
}

func writeDiagrams(s Settings, l hasse.Lattice) error {
	if s.DOTPath == "" && s.SVGPath == "" && s.PNGPath == "" {
		return nil
	}
	var dot bytes.Buffer
	if err := hasse.WriteDOT(&dot, l, hasse.WithRankDir(s.RankDir)); err != nil {
		return err
	}
	if s.DOTPath != "" {
		if err := os.WriteFile(s.DOTPath, dot.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
	}
	for _, img := range []struct {
		path   string
		format hasse.Format
	}{{s.SVGPath, hasse.FormatSVG}, {s.PNGPath, hasse.FormatPNG}} {
		if img.path == "" {
			continue
		}
		if err := renderFile(img.path, dot.Bytes(), img.format); err != nil {
			return err
		}
	}
	return nil
}

func renderFile(path string, dot []byte, format hasse.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return hasse.Render(f, dot, format)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
