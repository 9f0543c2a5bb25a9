// SPDX-License-Identifier: MIT

package hasse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/kfca/lattice"
)

// ErrNilLattice is returned when WriteDOT receives a nil lattice.
var ErrNilLattice = errors.New("hasse: nil lattice")

// Lattice is the read-only view WriteDOT needs; *lattice.Lattice[T]
// satisfies it for every T.
type Lattice interface {
	Concepts() []lattice.Concept
	ObjectsOf(c lattice.Concept) ([]string, error)
	AttributesOf(c lattice.Concept) ([]string, error)
	UpperNeighbors(c lattice.Concept) ([]lattice.Concept, error)
}

// Defaults for WriteDOT.
const (
	DefaultGraphName = "ConceptLattice"
	DefaultRankDir   = "BT"
)

// Option configures WriteDOT.
type Option func(*options)

type options struct {
	name    string
	rankDir string
}

// WithGraphName sets the digraph identifier.
func WithGraphName(name string) Option {
	if name == "" {
		panic("hasse: WithGraphName: name must be non-empty")
	}

	return func(o *options) { o.name = name }
}

// WithRankDir sets the Graphviz rankdir attribute ("BT", "TB", "LR", "RL").
func WithRankDir(dir string) Option {
	switch dir {
	case "BT", "TB", "LR", "RL":
	default:
		panic("hasse: WithRankDir: unknown direction " + dir)
	}

	return func(o *options) { o.rankDir = dir }
}

// WriteDOT writes l as a Graphviz digraph.
// Implementation:
//   - Stage 1: header with rankdir and the rounded-box node style.
//   - Stage 2: one node per concept in lattice order.
//   - Stage 3: one edge i -> j per upper neighbor j of i.
//
// The document is assembled in memory and written with a single Write.
func WriteDOT(w io.Writer, l Lattice, opts ...Option) error {
	if l == nil {
		return ErrNilLattice
	}
	o := options{name: DefaultGraphName, rankDir: DefaultRankDir}
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", o.name)
	fmt.Fprintf(&sb, "    rankdir=%s;\n", o.rankDir)
	sb.WriteString("    node [shape=box, style=rounded];\n")

	concepts := l.Concepts()
	for _, c := range concepts {
		objs, err := l.ObjectsOf(c)
		if err != nil {
			return err
		}
		attrs, err := l.AttributesOf(c)
		if err != nil {
			return err
		}
		label := fmt.Sprintf(`%d\n(%s)\n[%s]`, c.Index(), joinEscaped(objs), joinEscaped(attrs))
		fmt.Fprintf(&sb, "    %d [label=\"%s\"];\n", c.Index(), label)
	}
	for _, c := range concepts {
		ups, err := l.UpperNeighbors(c)
		if err != nil {
			return err
		}
		for _, u := range ups {
			fmt.Fprintf(&sb, "    %d -> %d;\n", c.Index(), u.Index())
		}
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func joinEscaped(labels []string) string {
	return labelEscaper.Replace(strings.Join(labels, ", "))
}
