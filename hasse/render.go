// SPDX-License-Identifier: MIT

package hasse

import (
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
)

// Format is an output format understood by Render.
type Format = graphviz.Format

// Supported formats.
const (
	FormatSVG Format = graphviz.SVG
	FormatPNG Format = graphviz.PNG
)

// Render lays out a DOT document with the embedded Graphviz engine and
// writes the image to w.
func Render(w io.Writer, dot []byte, format Format) (err error) {
	g := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		_ = g.Close()
		return fmt.Errorf("hasse.Render: parse: %w", err)
	}
	defer func() {
		if cerr := graph.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if cerr := g.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := g.Render(graph, format, w); err != nil {
		return fmt.Errorf("hasse.Render: %w", err)
	}

	return nil
}
