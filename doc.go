// Package pointgroup computes Clebsch-Gordan coefficients for finite point
// groups: given irreps Γ1, Γ2 and a target Γt, it finds an orthonormal basis
// of the copies of Γt inside the tensor product Γ1⊗Γ2.
//
// What is in the box?
//
//	• Complex dense matrices: Kronecker product, trace, adjoint, Hermitian eigen solvers
//	• A representation store: elements, irrep matrices, dimensions, character table
//	• Built-in tables for D3, D4 and the octahedral rotation group O
//	• YAML ingestion for any other finite group
//	• The Clebsch-Gordan engine: group-averaged projector, eigen filter, decomposition
//	• cgcalc, a command line front end
//
// Layout:
//
//	cmatrix/      complex Dense, Kron, Trace, EigenHermitian (Jacobi) and EigenHermitianRealified (gonum)
//	group/        Representation store, characters, homomorphism checks, YAML codec
//	pointgroups/  constant tables D3, D4, O and a name registry
//	clebsch/      Engine: TensorRep, Projector, CalcClebschGordan, Decompose
//	cmd/cgcalc/   cobra/viper CLI with zap logging
//
// Quick example (D4, B1 ⊗ E → E):
//
//	eng, _ := clebsch.New(pointgroups.D4())
//	res, _ := eng.CalcClebschGordan("B1", "E", "E")
//	// res.Vectors: [1, 0] and [0, 1]
//
// A target that does not occur in the product yields an empty result, not an
// error; Result.Ambiguous separates that case from a numerically suspect one.
//
//	go install github.com/katalvlaran/pointgroup/cmd/cgcalc@latest
package pointgroup
