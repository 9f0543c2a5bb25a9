// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a requested dimension is out of range.
var ErrInvalidSize = errors.New("builder: invalid size")

// builderErrorf tags err with the constructor name, preserving the sentinel.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("builder.%s: %w", method, err)
}
