// Package chemgraph is a toolkit for pattern-directed search over molecular
// structure graphs — the traversal core behind resonance-structure generation
// and conjugated-path detection.
//
// 🚀 What is chemgraph?
//
//	A small, pure-Go library that brings together:
//		• Molecule model: atoms, bonds, a closed bond-order enumeration
//		• Path engine: backtracking depth-first simple-path search
//		• Pattern extenders: unsaturated / allylic / inverse-allylic steps
//		• Motif finders: diene paths, charge-terminated allylic paths,
//		  radical, lone-pair and N5dd/N5ts delocalization templates
//		• Distance tables: all-pairs bond distances over an atom subset (BFS)
//		• Interop: export to dominikbraun/graph for DOT rendering and reuse
//
// ✨ Why choose chemgraph?
//
//   - Read-only core – searches never mutate the molecule, so concurrent
//     motif finding is safe without locks
//   - Structural failure model – "no such path" is an empty result, never
//     an error; errors are reserved for caller misuse
//   - Deterministic fixtures – molbuild assembles reproducible test molecules
//
// Everything is organized under five subpackages:
//
//	molecule/ — Molecule, Atom, Bond, BondOrder and the accessor surface
//	pathfind/ — path engine, extension rules, motif and delocalization finders
//	distance/ — pairwise bond-distance tables via breadth-first search
//	molbuild/ — deterministic molecule constructors (chains, rings, species)
//	convert/  — export to dominikbraun/graph (DOT, adjacency reuse)
//
// Quick ASCII example:
//
//	    C1═C2─C3═C4
//
//	is 1,3-butadiene; pathfind.FindButadiene(C1, C4) returns [C1 C2 C3 C4].
//
//	go get github.com/katalvlaran/chemgraph
package chemgraph
