// Package pathfind implements pattern-directed graph search over a
// molecule.Molecule: a backtracking path engine, bond-order extension rules,
// and the motif finders that drive resonance-structure generation.
//
// Key features:
//   - FindShortestPath(start, end): depth-first simple path between two atoms
//   - Extenders: AddUnsaturatedBonds, AddAllyls, AddInverseAllyls - pure,
//     one-step path extensions under bond-order alternation rules
//   - Motif finders: FindButadiene, FindButadieneEndWithCharge,
//     FindAllylEndWithCharge - diene / allylic patterns with terminal tests
//   - Delocalization finders: FindAllylDelocalizationPaths,
//     FindLonePairRadicalPaths, FindN5ddN5tsPaths - fixed electronic
//     rearrangement templates reported as typed shifts
//
// The package never mutates the molecule. Every search allocates its own
// path and visited state, so concurrent calls on the same (fully built)
// molecule are safe without locking.
//
// Failure semantics: a motif that does not exist yields a nil path or an
// empty slice with a nil error - the expected common case. Errors are
// reserved for caller misuse (nil or detached atoms, atoms from different
// molecules, invalid options).
//
// Complexity:
//
//   - FindShortestPath: O(V + E) with the simple-path visited constraint.
//   - Extenders: O(deg(terminal)) per call.
//   - Queue-driven finders: bounded by the number of simple alternating
//     paths from the start atom; molecular graphs are locally tree-like at
//     the relevant radius, so expansion stays small in practice.
package pathfind
