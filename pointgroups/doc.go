// Package pointgroups supplies hand-curated representation tables for a few
// finite point groups, ready to feed the clebsch engine:
//
//	D3  dihedral group of order 6   (A1, A2, E)
//	D4  dihedral group of order 8   (A1, A2, B1, B2, E)
//	O   rotational octahedral group of order 24 (A1, A2, E, T1, T2)
//
// The tables are constants: elements, irrep matrices and character tables are
// written out, not derived. Every table passes group.VerifyHomomorphism and
// group.VerifyCharacters (see the package tests).
//
// Lookup resolves a group by name or alias ("D4", "D_4", "Dihedral 4", ...).
package pointgroups
