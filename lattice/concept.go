// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/kfca/bitvec"
)

// Concept is a φ-concept (extent, intent) together with its position in
// the lattice that produced it. Concepts are values; copying is cheap and
// the vectors are immutable.
type Concept struct {
	index  int
	extent bitvec.Vector
	intent bitvec.Vector
}

// Index returns the position of the concept in its lattice.
// The top is 0 and the bottom is ConceptCount()-1.
func (c Concept) Index() int { return c.index }

// Extent returns the object indicator vector.
func (c Concept) Extent() bitvec.Vector { return c.extent }

// Intent returns the attribute indicator vector.
func (c Concept) Intent() bitvec.Vector { return c.intent }

// String renders "#i {extent} {intent}" with indices.
func (c Concept) String() string {
	return fmt.Sprintf("#%d %s %s", c.index, c.extent, c.intent)
}

// Edge is one pair of the covering relation: Lower ≺ Upper.
type Edge struct {
	Lower, Upper int
}
