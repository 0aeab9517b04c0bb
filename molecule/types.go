// Package molecule defines the central Molecule, Atom, and Bond types, the
// read-only accessor surface the search packages traverse, and the BondOrder
// enumeration with its pure predicates.
//
// A Molecule is mutable only while it is being assembled (AddAtom / AddBond);
// every search package treats it as an immutable snapshot. The graph may
// contain rings, so all traversals over it must carry their own visited sets.
//
// This file declares BondOrder, Atom, Bond, AtomOption, and sentinel errors.
//
// Errors:
//
//	ErrEmptyAtomID   - atom ID is the empty string.
//	ErrDuplicateAtom - atom ID already present in the molecule.
//	ErrAtomNotFound  - requested atom does not exist.
//	ErrSelfBond      - bond connecting an atom to itself.
//	ErrDuplicateBond - a bond between the two atoms already exists.
//	ErrNegativeCount - negative radical or lone-pair count.
//	ErrBadOrder      - bond order outside the closed enumeration.
package molecule

import "errors"

// Sentinel errors for molecule construction and lookup.
var (
	// ErrEmptyAtomID indicates that the provided atom ID is empty.
	ErrEmptyAtomID = errors.New("molecule: atom ID is empty")

	// ErrDuplicateAtom indicates the atom ID is already present.
	ErrDuplicateAtom = errors.New("molecule: duplicate atom ID")

	// ErrAtomNotFound indicates an operation referenced a non-existent atom.
	ErrAtomNotFound = errors.New("molecule: atom not found")

	// ErrSelfBond indicates a bond from an atom to itself was attempted.
	ErrSelfBond = errors.New("molecule: self-bond not allowed")

	// ErrDuplicateBond indicates a parallel bond between the same atoms.
	ErrDuplicateBond = errors.New("molecule: bond already exists")

	// ErrNegativeCount indicates a negative radical or lone-pair count.
	ErrNegativeCount = errors.New("molecule: negative electron count")

	// ErrBadOrder indicates a bond order outside the closed enumeration.
	ErrBadOrder = errors.New("molecule: unknown bond order")
)

// BondOrder is the closed enumeration of covalent bond orders.
// Extension predicates in the search packages dispatch on these values only;
// there is no dynamic inspection of bond kinds anywhere in the module.
type BondOrder uint8

const (
	// Single is a single bond (order 1).
	Single BondOrder = iota + 1

	// Double is a double bond (order 2).
	Double

	// Triple is a triple bond (order 3).
	Triple

	// Benzene is an aromatic bond (order 1.5, benzene-like ring bond).
	Benzene
)

// IsSingle reports whether o is a single bond.
func (o BondOrder) IsSingle() bool { return o == Single }

// IsDouble reports whether o is a double bond.
func (o BondOrder) IsDouble() bool { return o == Double }

// IsTriple reports whether o is a triple bond.
func (o BondOrder) IsTriple() bool { return o == Triple }

// IsBenzene reports whether o is an aromatic (benzene) bond.
func (o BondOrder) IsBenzene() bool { return o == Benzene }

// IsUnsaturated reports whether o carries pi electrons
// (anything other than a plain single bond).
func (o BondOrder) IsUnsaturated() bool {
	return o == Double || o == Triple || o == Benzene
}

// valid reports whether o is a member of the enumeration.
func (o BondOrder) valid() bool { return o >= Single && o <= Benzene }

// String implements fmt.Stringer for diagnostics and DOT export.
func (o BondOrder) String() string {
	switch o {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Benzene:
		return "benzene"
	default:
		return "unknown"
	}
}

// Hydrogen is the element tag the extension rules skip: resonance paths never
// route through a hydrogen atom.
const Hydrogen = "H"

// Atom represents a node in the molecular graph.
//
// ID uniquely identifies the Atom within its Molecule. Element is the species
// tag ("C", "N", "O", ...). Charge, Radicals, and LonePairs describe the
// electronic state the motif finders test against. Incident bonds are owned
// and maintained by the Molecule; Atom exposes them read-only.
type Atom struct {
	// ID is the unique identifier of this Atom within its Molecule.
	ID string

	// Element is the chemical species tag, e.g. "C", "N", "O", "H".
	Element string

	// Charge is the formal charge of the atom.
	Charge int

	// Radicals is the number of unpaired (radical) electrons. Never negative.
	Radicals int

	// LonePairs is the number of non-bonding electron pairs. Never negative.
	LonePairs int

	bonds []*Bond   // incident bonds, appended by Molecule.AddBond
	mol   *Molecule // owning molecule, set by Molecule.AddAtom
}

// Bonds returns the incident bonds of a in insertion order.
// The returned slice is shared with the Molecule and must not be mutated.
// Complexity: O(1).
func (a *Atom) Bonds() []*Bond { return a.bonds }

// BondTo returns the bond connecting a to other, if one exists.
// Complexity: O(deg(a)).
func (a *Atom) BondTo(other *Atom) (*Bond, bool) {
	for _, b := range a.bonds {
		if b.Other(a) == other {
			return b, true
		}
	}

	return nil, false
}

// Molecule returns the molecule that owns a, or nil for a detached atom.
func (a *Atom) Molecule() *Molecule { return a.mol }

// IsHydrogen reports whether a is a hydrogen atom.
func (a *Atom) IsHydrogen() bool { return a.Element == Hydrogen }

// IsCharged reports whether a carries a nonzero formal charge.
func (a *Atom) IsCharged() bool { return a.Charge != 0 }

// IsRadical reports whether a carries at least one unpaired electron.
func (a *Atom) IsRadical() bool { return a.Radicals > 0 }

// Bond represents an undirected connection between exactly two atoms,
// carrying a BondOrder. Bonds are owned by the Molecule.
type Bond struct {
	order BondOrder
	a1    *Atom
	a2    *Atom
}

// Order returns the bond order.
func (b *Bond) Order() BondOrder { return b.order }

// Atoms returns both endpoints of the bond.
func (b *Bond) Atoms() (*Atom, *Atom) { return b.a1, b.a2 }

// Other returns the endpoint of b that is not origin.
// Returns nil if origin is not an endpoint of b.
// Complexity: O(1).
func (b *Bond) Other(origin *Atom) *Atom {
	switch origin {
	case b.a1:
		return b.a2
	case b.a2:
		return b.a1
	default:
		return nil
	}
}

// AtomOption configures the electronic state of an atom when added.
type AtomOption func(*Atom)

// WithCharge sets the formal charge of the new atom.
func WithCharge(c int) AtomOption {
	return func(a *Atom) { a.Charge = c }
}

// WithRadicals sets the radical electron count of the new atom.
func WithRadicals(n int) AtomOption {
	return func(a *Atom) { a.Radicals = n }
}

// WithLonePairs sets the lone-pair count of the new atom.
func WithLonePairs(n int) AtomOption {
	return func(a *Atom) { a.LonePairs = n }
}
