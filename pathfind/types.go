// Package pathfind: types, options, and error definitions for
// pattern-directed path search over a molecule graph.
package pathfind

import (
	"errors"

	"github.com/katalvlaran/chemgraph/molecule"
)

// Sentinel errors for path search preconditions.
// Absence of a motif is never an error: finders report it as an empty result.
var (
	// ErrNilAtom is returned when a nil *molecule.Atom is passed.
	ErrNilAtom = errors.New("pathfind: atom is nil")

	// ErrDetachedAtom is returned for an atom that belongs to no molecule.
	ErrDetachedAtom = errors.New("pathfind: atom is not part of a molecule")

	// ErrCrossMolecule is returned when the given atoms belong to
	// different molecules.
	ErrCrossMolecule = errors.New("pathfind: atoms belong to different molecules")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Path is an ordered sequence of atoms with no repeats, where every
// consecutive pair is bond-connected in the molecule. A Path of length 1 is
// just its start atom. Paths are ephemeral: created during search, returned
// to the caller, never retained by this package.
type Path []*molecule.Atom

// Terminal returns the last atom of the path, or nil for an empty path.
func (p Path) Terminal() *molecule.Atom {
	if len(p) == 0 {
		return nil
	}

	return p[len(p)-1]
}

// Contains reports whether a is already on the path.
// Complexity: O(len(p)); paths stay short (bounded by the motif templates),
// so a linear scan beats any set allocation here.
func (p Path) Contains(a *molecule.Atom) bool {
	for _, x := range p {
		if x == a {
			return true
		}
	}

	return false
}

// extend returns a fresh copy of p with a appended. The input is never
// mutated: callers hold many branches of one shared prefix.
func (p Path) extend(a *molecule.Atom) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, a)
}

// lastOrder returns the order of the edge between the last two atoms of p.
// ok is false when p holds fewer than two atoms.
func (p Path) lastOrder() (molecule.BondOrder, bool) {
	if len(p) < 2 {
		return 0, false
	}
	b, ok := p[len(p)-1].BondTo(p[len(p)-2])
	if !ok {
		return 0, false
	}

	return b.Order(), true
}

// AllylShift describes one allylic electron-pushing move: a radical on Atom1
// single-bonded (Bond12) to Atom2, which holds a multiple bond (Bond23) to
// Atom3. Shifting the radical to Atom3 yields a new resonance structure.
type AllylShift struct {
	Atom1  *molecule.Atom
	Atom2  *molecule.Atom
	Atom3  *molecule.Atom
	Bond12 *molecule.Bond
	Bond23 *molecule.Bond
}

// LonePairShift describes a lone-pair / radical swap across a single bond:
// Radical is the radical site, Donor the neighbor with a spare lone pair.
type LonePairShift struct {
	Radical *molecule.Atom
	Donor   *molecule.Atom
	Bond    *molecule.Bond
}

// NitrogenShift describes the N5dd/N5ts tautomer swap on a high-valence
// nitrogen Center: GainBond (Center-Gainer) increases its order while
// LoseBond (Center-Loser) decreases it.
type NitrogenShift struct {
	Center   *molecule.Atom
	Gainer   *molecule.Atom
	Loser    *molecule.Atom
	GainBond *molecule.Bond
	LoseBond *molecule.Bond
}

// Option configures the queue-driven motif finders via functional arguments.
// An invalid Option is recorded internally and surfaced as ErrOptionViolation
// when the finder is invoked.
type Option func(*Options)

// Options holds parameters for the queue-driven motif finders.
type Options struct {
	// MaxPathAtoms caps the number of atoms a candidate path may reach
	// during frontier expansion. 0 means "the whole molecule" (the simple-path
	// invariant already bounds every search by the atom count).
	MaxPathAtoms int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no explicit path cap.
func DefaultOptions() Options {
	return Options{MaxPathAtoms: 0}
}

// WithMaxPathAtoms limits candidate paths to at most n atoms.
// n must be at least 2 (a path of one bond); smaller values surface as
// ErrOptionViolation.
func WithMaxPathAtoms(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = ErrOptionViolation

			return
		}
		o.MaxPathAtoms = n
	}
}

// validateAtom rejects nil and detached atoms.
func validateAtom(a *molecule.Atom) error {
	if a == nil {
		return ErrNilAtom
	}
	if a.Molecule() == nil {
		return ErrDetachedAtom
	}

	return nil
}

// validatePair rejects nil/detached atoms and atoms from different molecules.
func validatePair(start, end *molecule.Atom) error {
	if err := validateAtom(start); err != nil {
		return err
	}
	if err := validateAtom(end); err != nil {
		return err
	}
	if start.Molecule() != end.Molecule() {
		return ErrCrossMolecule
	}

	return nil
}
