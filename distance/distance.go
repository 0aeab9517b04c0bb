// Package distance builds pairwise bond-distance tables over a molecule
// graph via breadth-first search.
//
// For every atom in a caller-supplied subset, a BFS over the whole molecule
// (not restricted to the subset) yields true minimum bond counts, because the
// frontier queue explores in non-decreasing distance order under a global
// visited set. Pairs with no connecting walk are omitted from the table,
// never defaulted to zero.
//
// Errors:
//
//	ErrMoleculeNil  - nil molecule supplied.
//	ErrEmptySubset  - empty atom subset supplied.
//	ErrAtomNotFound - a subset ID does not exist in the molecule.
package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chemgraph/molecule"
)

// Sentinel errors for distance computation preconditions.
var (
	// ErrMoleculeNil is returned if a nil molecule pointer is passed.
	ErrMoleculeNil = errors.New("distance: molecule is nil")

	// ErrEmptySubset is returned when the atom subset is empty.
	ErrEmptySubset = errors.New("distance: empty atom subset")

	// ErrAtomNotFound is returned when a subset ID is absent from the molecule.
	ErrAtomNotFound = errors.New("distance: atom not found in molecule")
)

// Pair is an unordered pair of atom IDs, stored normalized (A <= B) so that
// Table lookups are symmetric by construction.
type Pair struct {
	A string
	B string
}

// MakePair normalizes two atom IDs into a Pair.
func MakePair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// Table maps unordered atom-ID pairs to their bond distance (minimum number
// of bonds on any connecting walk). Unreachable pairs are absent.
type Table map[Pair]int

// Distance returns the bond distance between atoms a and b, in either order.
// ok is false for unreachable pairs and IDs outside the computed subset.
func (t Table) Distance(a, b string) (int, bool) {
	d, ok := t[MakePair(a, b)]

	return d, ok
}

// Compute builds the pairwise distance table for the given atom subset.
// Duplicate IDs in the subset are collapsed; a single-atom subset yields an
// empty table. The table is built fresh per call and never cached.
//
// Complexity: O(k * (V + E)) time for k distinct subset atoms, O(V) space.
func Compute(mol *molecule.Molecule, ids []string) (Table, error) {
	// 1. Validate preconditions
	if mol == nil {
		return nil, ErrMoleculeNil
	}
	if len(ids) == 0 {
		return nil, ErrEmptySubset
	}

	// 2. Collapse duplicates, resolve every subset atom up front
	subset := make([]*molecule.Atom, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		a, err := mol.Atom(id)
		if err != nil {
			return nil, fmt.Errorf("Compute(%q): %w", id, ErrAtomNotFound)
		}
		subset = append(subset, a)
	}

	// 3. One BFS per subset atom; record each unordered pair exactly once
	table := make(Table, len(subset)*(len(subset)-1)/2)
	for i, start := range subset {
		dist := bfsDistances(start, mol.NumAtoms())
		for _, other := range subset[i+1:] {
			if d, reachable := dist[other]; reachable {
				table[MakePair(start.ID, other.ID)] = d
			}
		}
	}

	return table, nil
}

// bfsDistances runs a frontier-queue BFS from start over the full molecule,
// returning bond distances to every reachable atom. The visited set doubles
// as the distance map, guaranteeing termination on rings.
func bfsDistances(start *molecule.Atom, capacity int) map[*molecule.Atom]int {
	dist := make(map[*molecule.Atom]int, capacity)
	dist[start] = 0

	queue := make([]*molecule.Atom, 0, capacity)
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, b := range cur.Bonds() {
			nb := b.Other(cur)
			if _, visited := dist[nb]; visited {
				continue
			}
			dist[nb] = dist[cur] + 1
			queue = append(queue, nb)
		}
	}

	return dist
}
