// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalArgument is returned when a map is constructed with an invalid
	// capacity, load factor or entry limit.
	ErrIllegalArgument = errors.New("hashmap: illegal argument")

	// ErrConcurrentModification is returned (or, from range functions, panicked
	// with) when the map was structurally modified during an iteration by
	// anything other than the iterator itself.
	ErrConcurrentModification = errors.New("hashmap: concurrent modification")

	// ErrIllegalState is returned by Iterator.Remove when there is no element
	// to remove: Next was never called, or Remove was already called for the
	// element Next returned.
	ErrIllegalState = errors.New("hashmap: illegal iterator state")

	// ErrNoSuchElement is returned by Iterator.Next once the iteration is
	// exhausted.
	ErrNoSuchElement = errors.New("hashmap: no such element")
)

func illegalArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, fmt.Sprintf(format, args...))
}

func unsupported(view, op string) error {
	return fmt.Errorf("hashmap: %s on %s: %w", op, view, errors.ErrUnsupported)
}
