// Package pathfind: depth-first path engine with explicit backtracking.
package pathfind

import "github.com/katalvlaran/chemgraph/molecule"

// FindShortestPath returns a simple path from start to end, both inclusive,
// or (nil, nil) when no connecting walk exists. start == end yields the
// single-atom path [start].
//
// The engine runs depth-first with backtracking: the path-so-far doubles as
// the visited set, so no atom repeats and termination is guaranteed on any
// finite graph, rings included. The first discovered path is returned; on
// the locally tree-like graphs this package targets it is typically the only
// simple path at the relevant radius, but no global length minimality is
// promised (use the distance package for true bond-count distances).
//
// Errors (caller misuse, distinct from not-found):
//
//   - ErrNilAtom         - start or end is nil.
//   - ErrDetachedAtom    - start or end belongs to no molecule.
//   - ErrCrossMolecule   - start and end come from different molecules.
//
// Complexity: O(V + E) time, O(V) space.
func FindShortestPath(start, end *molecule.Atom) (Path, error) {
	// 1. Validate preconditions
	if err := validatePair(start, end); err != nil {
		return nil, err
	}

	// 2. Search; not-found propagates as a nil path with no error
	return searchPath(start, end, Path{}), nil
}

// searchPath recurses from cur toward end, carrying the accumulated path.
// It returns the full path on success and nil when this branch is exhausted;
// the nil return is the explicit backtracking signal.
func searchPath(cur, end *molecule.Atom, sofar Path) Path {
	// 1. Take cur onto the path (fresh copy: sofar stays valid for siblings)
	path := sofar.extend(cur)

	// 2. Accept as soon as the target is reached
	if cur == end {
		return path
	}

	// 3. Recurse into every bonded neighbor not yet on the path
	for _, b := range cur.Bonds() {
		nb := b.Other(cur)
		if path.Contains(nb) {
			continue // simple-path invariant
		}
		if found := searchPath(nb, end, path); found != nil {
			return found
		}
	}

	// 4. All neighbors exhausted: report failure for this branch
	return nil
}
