// Package molecule: Molecule construction and lookup methods.
//
// A Molecule stores atoms in a map keyed by ID plus an insertion-order slice,
// so lookups are O(1) while Atoms() stays deterministic. Bonds live both in a
// flat slice (for Bonds()) and on each endpoint's incident list (for the
// accessor surface the search packages walk).
package molecule

import (
	"fmt"
	"sort"
)

// Molecule is the full atom/bond graph. Assemble it with AddAtom and AddBond,
// then hand it to the search packages; they never mutate it.
//
// Molecule is not safe for concurrent mutation. Concurrent read-only use
// (any number of simultaneous searches) is safe once construction is done,
// since searches allocate their own visited sets and path state.
type Molecule struct {
	atoms map[string]*Atom // atom ID → Atom
	order []string         // atom IDs in insertion order
	bonds []*Bond          // all bonds in insertion order
}

// NewMolecule creates an empty Molecule.
// Complexity: O(1).
func NewMolecule() *Molecule {
	return &Molecule{atoms: make(map[string]*Atom)}
}

// AddAtom inserts a new atom with the given ID and element tag.
// Returns ErrEmptyAtomID for an empty ID, ErrDuplicateAtom if the ID is
// already present, and ErrNegativeCount if an option set a negative
// radical or lone-pair count.
// Complexity: O(1) amortized.
func (m *Molecule) AddAtom(id, element string, opts ...AtomOption) (*Atom, error) {
	// 1. Validate the ID
	if id == "" {
		return nil, ErrEmptyAtomID
	}
	if _, exists := m.atoms[id]; exists {
		return nil, fmt.Errorf("AddAtom(%q): %w", id, ErrDuplicateAtom)
	}

	// 2. Build the atom and apply electronic-state options
	a := &Atom{ID: id, Element: element, mol: m}
	for _, opt := range opts {
		opt(a)
	}
	if a.Radicals < 0 || a.LonePairs < 0 {
		return nil, fmt.Errorf("AddAtom(%q): %w", id, ErrNegativeCount)
	}

	// 3. Register
	m.atoms[id] = a
	m.order = append(m.order, id)

	return a, nil
}

// AddBond connects the atoms with IDs id1 and id2 by a bond of the given
// order. Bonds are undirected; the (id1, id2) ordering carries no meaning.
// Returns ErrAtomNotFound if either endpoint is missing, ErrSelfBond for
// id1 == id2, ErrDuplicateBond if the atoms are already bonded, and
// ErrBadOrder for an order outside the enumeration.
// Complexity: O(deg(id1)).
func (m *Molecule) AddBond(id1, id2 string, order BondOrder) (*Bond, error) {
	// 1. Validate order and endpoints
	if !order.valid() {
		return nil, fmt.Errorf("AddBond(%q, %q): %w", id1, id2, ErrBadOrder)
	}
	if id1 == id2 {
		return nil, fmt.Errorf("AddBond(%q, %q): %w", id1, id2, ErrSelfBond)
	}
	a1, ok := m.atoms[id1]
	if !ok {
		return nil, fmt.Errorf("AddBond(%q, %q): %w", id1, id2, ErrAtomNotFound)
	}
	a2, ok := m.atoms[id2]
	if !ok {
		return nil, fmt.Errorf("AddBond(%q, %q): %w", id1, id2, ErrAtomNotFound)
	}

	// 2. Reject parallel bonds: molecular graphs are simple
	if _, bonded := a1.BondTo(a2); bonded {
		return nil, fmt.Errorf("AddBond(%q, %q): %w", id1, id2, ErrDuplicateBond)
	}

	// 3. Create and wire the bond on both endpoints
	b := &Bond{order: order, a1: a1, a2: a2}
	a1.bonds = append(a1.bonds, b)
	a2.bonds = append(a2.bonds, b)
	m.bonds = append(m.bonds, b)

	return b, nil
}

// Atom returns the atom with the given ID, or ErrAtomNotFound.
// Complexity: O(1).
func (m *Molecule) Atom(id string) (*Atom, error) {
	a, ok := m.atoms[id]
	if !ok {
		return nil, fmt.Errorf("Atom(%q): %w", id, ErrAtomNotFound)
	}

	return a, nil
}

// HasAtom reports whether an atom with the given ID exists.
// Complexity: O(1).
func (m *Molecule) HasAtom(id string) bool {
	_, ok := m.atoms[id]

	return ok
}

// Atoms returns all atoms in insertion order.
// Complexity: O(V).
func (m *Molecule) Atoms() []*Atom {
	out := make([]*Atom, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.atoms[id])
	}

	return out
}

// AtomIDs returns all atom IDs in lexicographic order.
// Complexity: O(V log V).
func (m *Molecule) AtomIDs() []string {
	ids := make([]string, len(m.order))
	copy(ids, m.order)
	sort.Strings(ids)

	return ids
}

// Bonds returns all bonds in insertion order.
// The returned slice is shared with the Molecule and must not be mutated.
// Complexity: O(1).
func (m *Molecule) Bonds() []*Bond { return m.bonds }

// NumAtoms returns the number of atoms.
func (m *Molecule) NumAtoms() int { return len(m.atoms) }

// NumBonds returns the number of bonds.
func (m *Molecule) NumBonds() int { return len(m.bonds) }
