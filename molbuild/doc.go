// SPDX-License-Identifier: MIT
// Package: chemgraph/molbuild

// Package molbuild provides deterministic molecule fixtures: linear chains,
// rings, and the named species the search packages are exercised against
// (butadiene, benzene in both aromatic and Kekulé form, the allyl radical
// and cation, and the N5dd nitrogen tautomer substrate).
//
// Two generic constructors cover arbitrary topologies:
//
//	m, err := molbuild.Chain("C", molecule.Double, molecule.Single, molecule.Double)
//	m, err := molbuild.Ring("C", molecule.Benzene, ...)
//
// Atom IDs follow the "<element><n>" scheme in construction order, so tests
// can address atoms positionally ("C1", "C4", ...). Same inputs always yield
// identical molecules.
//
// Errors: constructors return sentinel errors (ErrTooFewAtoms) or wrapped
// molecule errors; they never panic.
package molbuild
