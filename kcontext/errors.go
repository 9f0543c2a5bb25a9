// SPDX-License-Identifier: MIT

package kcontext

import "errors"

var (
	// ErrDimension indicates that the incidence matrix shape does not match
	// the label counts.
	ErrDimension = errors.New("kcontext: dimension mismatch")

	// ErrDuplicateLabel indicates a repeated object or attribute label.
	ErrDuplicateLabel = errors.New("kcontext: duplicate label")

	// ErrOutOfRange indicates an object or attribute index outside the context.
	ErrOutOfRange = errors.New("kcontext: index out of range")

	// ErrUnknownLabel indicates a label lookup that matched nothing.
	ErrUnknownLabel = errors.New("kcontext: unknown label")
)
