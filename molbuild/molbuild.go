// SPDX-License-Identifier: MIT
// Package: chemgraph/molbuild
//
// molbuild.go - deterministic molecule fixture constructors.
//
// Design contract (strict):
//   - Constructors validate parameters early and return sentinel errors; no panics.
//   - Determinism: same inputs produce identical molecules (IDs, insertion order).
//   - Atom IDs follow the "<element><n>" scheme, 1-based, in chain/ring order.
//   - Named species constructors are thin wrappers over Chain/Ring plus
//     electronic-state options, matching the textbook structures they name.

package molbuild

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chemgraph/molecule"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewAtoms indicates the requested topology has fewer atoms than
	// the constructor supports (chains need one bond, rings need three atoms).
	ErrTooFewAtoms = errors.New("molbuild: too few atoms")
)

// Chain builds a linear chain of len(orders)+1 atoms of the given element,
// bonded in sequence with the given orders. IDs are "<element>1",
// "<element>2", ... in chain order.
// Returns ErrTooFewAtoms when no orders are given.
// Complexity: O(n).
func Chain(element string, orders ...molecule.BondOrder) (*molecule.Molecule, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("Chain(%q): %w", element, ErrTooFewAtoms)
	}

	m := molecule.NewMolecule()
	n := len(orders) + 1
	for i := 1; i <= n; i++ {
		if _, err := m.AddAtom(atomID(element, i), element); err != nil {
			return nil, fmt.Errorf("Chain(%q): %w", element, err)
		}
	}
	for i, ord := range orders {
		if _, err := m.AddBond(atomID(element, i+1), atomID(element, i+2), ord); err != nil {
			return nil, fmt.Errorf("Chain(%q): %w", element, err)
		}
	}

	return m, nil
}

// Ring builds a cycle of len(orders) atoms of the given element; orders[i]
// bonds atom i+1 to atom i+2, the last order closing the ring back to atom 1.
// Returns ErrTooFewAtoms for fewer than three orders.
// Complexity: O(n).
func Ring(element string, orders ...molecule.BondOrder) (*molecule.Molecule, error) {
	if len(orders) < 3 {
		return nil, fmt.Errorf("Ring(%q): %w", element, ErrTooFewAtoms)
	}

	m := molecule.NewMolecule()
	n := len(orders)
	for i := 1; i <= n; i++ {
		if _, err := m.AddAtom(atomID(element, i), element); err != nil {
			return nil, fmt.Errorf("Ring(%q): %w", element, err)
		}
	}
	for i, ord := range orders {
		next := i + 2
		if next > n {
			next = 1 // close the ring
		}
		if _, err := m.AddBond(atomID(element, i+1), atomID(element, next), ord); err != nil {
			return nil, fmt.Errorf("Ring(%q): %w", element, err)
		}
	}

	return m, nil
}

// Butadiene builds the canonical diene skeleton C1=C2-C3=C4.
func Butadiene() (*molecule.Molecule, error) {
	return Chain("C", molecule.Double, molecule.Single, molecule.Double)
}

// Benzene builds a six-membered ring of aromatic (benzene-order) bonds.
func Benzene() (*molecule.Molecule, error) {
	return Ring("C",
		molecule.Benzene, molecule.Benzene, molecule.Benzene,
		molecule.Benzene, molecule.Benzene, molecule.Benzene,
	)
}

// KekuleBenzene builds a six-membered ring with explicitly alternating
// double/single bonds, the localized Kekulé form of benzene.
func KekuleBenzene() (*molecule.Molecule, error) {
	return Ring("C",
		molecule.Double, molecule.Single, molecule.Double,
		molecule.Single, molecule.Double, molecule.Single,
	)
}

// AllylRadical builds C1(u1)-C2=C3: a radical site single-bonded to a vinyl
// group, the smallest allylic delocalization substrate.
func AllylRadical() (*molecule.Molecule, error) {
	m, err := Chain("C", molecule.Single, molecule.Double)
	if err != nil {
		return nil, err
	}
	a, err := m.Atom("C1")
	if err != nil {
		return nil, err
	}
	a.Radicals = 1

	return m, nil
}

// AllylCation builds C1=C2-C3(+): a double bond, a single bond, and a
// positive formal charge on the far terminal atom.
func AllylCation() (*molecule.Molecule, error) {
	m, err := Chain("C", molecule.Double, molecule.Single)
	if err != nil {
		return nil, err
	}
	a, err := m.Atom("C3")
	if err != nil {
		return nil, err
	}
	a.Charge = +1

	return m, nil
}

// NitrogenN5dd builds N1=N2=N3 with the high-valence N5dd center on N2 and
// lone pairs on both terminal nitrogens, the substrate of the N5dd/N5ts
// tautomer swap.
func NitrogenN5dd() (*molecule.Molecule, error) {
	m := molecule.NewMolecule()
	if _, err := m.AddAtom("N1", "N", molecule.WithLonePairs(1)); err != nil {
		return nil, err
	}
	if _, err := m.AddAtom("N2", "N"); err != nil {
		return nil, err
	}
	if _, err := m.AddAtom("N3", "N", molecule.WithLonePairs(1)); err != nil {
		return nil, err
	}
	if _, err := m.AddBond("N2", "N1", molecule.Double); err != nil {
		return nil, err
	}
	if _, err := m.AddBond("N2", "N3", molecule.Double); err != nil {
		return nil, err
	}

	return m, nil
}

// atomID renders the deterministic "<element><n>" atom ID.
func atomID(element string, n int) string {
	return fmt.Sprintf("%s%d", element, n)
}
