// SPDX-License-Identifier: MIT

package group

import (
	"errors"
	"fmt"
)

// Sentinel errors for group data.
var (
	// ErrUnknownIrrep indicates a lookup of an irrep label not in the store.
	ErrUnknownIrrep = errors.New("group: unknown irrep")

	// ErrUnknownElement indicates a lookup of an element label not in the group.
	ErrUnknownElement = errors.New("group: unknown element")

	// ErrEmptyGroup indicates a Spec without elements.
	ErrEmptyGroup = errors.New("group: no elements")

	// ErrNoIrreps indicates a Spec without irreps.
	ErrNoIrreps = errors.New("group: no irreps")

	// ErrDuplicateElement indicates an element label listed twice.
	ErrDuplicateElement = errors.New("group: duplicate element")

	// ErrDuplicateIrrep indicates an irrep label listed twice.
	ErrDuplicateIrrep = errors.New("group: duplicate irrep")

	// ErrIncompleteIrrep indicates an irrep whose matrices do not cover exactly the element list.
	ErrIncompleteIrrep = errors.New("group: irrep does not cover the element list")

	// ErrIrrepDimension indicates a non-positive dimension or a matrix of the wrong shape.
	ErrIrrepDimension = errors.New("group: irrep dimension mismatch")

	// ErrCharacterTable indicates a malformed or inconsistent character table.
	ErrCharacterTable = errors.New("group: character table mismatch")

	// ErrNotFaithful indicates that the irrep chosen to derive the multiplication
	// table maps two elements to the same matrix or is not closed.
	ErrNotFaithful = errors.New("group: irrep is not faithful")

	// ErrNotHomomorphic indicates that an irrep violates D(g)·D(h) = D(gh).
	ErrNotHomomorphic = errors.New("group: irrep is not a homomorphism")

	// ErrNoFiniteOrder indicates that no power up to the bound returned to the identity.
	ErrNoFiniteOrder = errors.New("group: no finite order within bound")

	// ErrMalformed indicates an unreadable group description.
	ErrMalformed = errors.New("group: malformed description")
)

// LookupError reports a failed lookup together with the operation attempted
// and the offending label. Err is ErrUnknownIrrep or ErrUnknownElement.
type LookupError struct {
	Op    string // accessor that failed, e.g. "IrrepMatrix"
	Label string // label that was not found
	Err   error  // sentinel cause
}

// Error implements error.
func (e *LookupError) Error() string {
	return fmt.Sprintf("%s(%q): %v", e.Op, e.Label, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *LookupError) Unwrap() error { return e.Err }

func unknownIrrep(op, label string) error {
	return &LookupError{Op: op, Label: label, Err: ErrUnknownIrrep}
}

func unknownElement(op, label string) error {
	return &LookupError{Op: op, Label: label, Err: ErrUnknownElement}
}
