// Package group holds the representation-theoretic data of one finite group.
//
// A Representation is an immutable bundle of:
//
//   - the ordered list of group elements (the canonical iteration order of
//     every group-averaged sum),
//   - for each irrep label, one square complex matrix per element,
//   - the dimension of each irrep,
//   - the character table (one value per conjugacy class).
//
// Representations are populated once, either from constant tables (see the
// pointgroups package) or from a YAML description (Decode, LoadFile), and are
// never mutated afterwards. Every accessor returns a copy, so a Representation
// can be shared freely between goroutines.
//
// New validates structure only: coverage of the element list and matrix
// shapes. Whether the matrices really form a representation is an assumption
// of the supplied data; VerifyHomomorphism and VerifyCharacters check it on
// demand.
//
// Lookup failures are reported as *LookupError, which wraps ErrUnknownIrrep or
// ErrUnknownElement:
//
//	m, err := rep.IrrepMatrix("E", "C+4")
//	if errors.Is(err, group.ErrUnknownIrrep) { ... }
package group
