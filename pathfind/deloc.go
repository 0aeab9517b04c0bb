// Package pathfind: delocalization templates. Each finder matches one fixed
// electronic rearrangement pattern around a given atom and reports every
// match as a typed shift. An atom whose valence/charge state fits no rule,
// including states the rule set does not recognize, simply yields an empty
// slice: callers iterate candidate rules and expect a graceful skip.
package pathfind

import "github.com/katalvlaran/chemgraph/molecule"

// Element tags the valence-specific rules dispatch on.
const (
	nitrogen = "N"
	oxygen   = "O"
)

// FindAllylDelocalizationPaths finds every allylic shift available to the
// radical center a: a single bond to a neighbor that itself holds a double
// or triple bond to a third atom. A non-radical atom yields no paths.
//
// Errors: ErrNilAtom, ErrDetachedAtom.
// Complexity: O(deg(a) * max-deg).
func FindAllylDelocalizationPaths(a *molecule.Atom) ([]AllylShift, error) {
	if err := validateAtom(a); err != nil {
		return nil, err
	}
	if !a.IsRadical() {
		return nil, nil
	}

	var shifts []AllylShift
	for _, b12 := range a.Bonds() {
		if !b12.Order().IsSingle() {
			continue
		}
		a2 := b12.Other(a)
		for _, b23 := range a2.Bonds() {
			a3 := b23.Other(a2)
			if a3 == a {
				continue
			}
			if b23.Order().IsDouble() || b23.Order().IsTriple() {
				shifts = append(shifts, AllylShift{
					Atom1:  a,
					Atom2:  a2,
					Atom3:  a3,
					Bond12: b12,
					Bond23: b23,
				})
			}
		}
	}

	return shifts, nil
}

// FindLonePairRadicalPaths finds every lone-pair / radical swap available to
// the radical site a across a single bond. The site must be either a
// nitrogen with no lone pair or an oxygen with two; the donor neighbor must
// carry no radical and a spare pair (nitrogen with one, oxygen with three).
// Any other valence state yields no paths.
//
// Errors: ErrNilAtom, ErrDetachedAtom.
// Complexity: O(deg(a)).
func FindLonePairRadicalPaths(a *molecule.Atom) ([]LonePairShift, error) {
	if err := validateAtom(a); err != nil {
		return nil, err
	}
	if !a.IsRadical() {
		return nil, nil
	}
	radicalSite := (a.Element == nitrogen && a.LonePairs == 0) ||
		(a.Element == oxygen && a.LonePairs == 2)
	if !radicalSite {
		return nil, nil
	}

	var shifts []LonePairShift
	for _, b := range a.Bonds() {
		if !b.Order().IsSingle() {
			continue
		}
		nb := b.Other(a)
		if nb.Radicals != 0 {
			continue
		}
		donor := (nb.Element == nitrogen && nb.LonePairs == 1) ||
			(nb.Element == oxygen && nb.LonePairs == 3)
		if donor {
			shifts = append(shifts, LonePairShift{Radical: a, Donor: nb, Bond: b})
		}
	}

	return shifts, nil
}

// FindN5ddN5tsPaths finds every tautomer swap available to the high-valence
// nitrogen a: either two double bonds (N5dd - one gains an order toward the
// triple form while the other drops to single), or a triple plus a single
// bond (N5ts - the single bond gains while the triple drops to double).
// The order-losing neighbor must hold a lone pair to absorb the electrons;
// in the double-double form it must also be radical-free and not oxygen.
// A non-nitrogen or radical-bearing atom yields no paths.
//
// Errors: ErrNilAtom, ErrDetachedAtom.
// Complexity: O(deg(a)^2), deg is tiny for any real nitrogen.
func FindN5ddN5tsPaths(a *molecule.Atom) ([]NitrogenShift, error) {
	if err := validateAtom(a); err != nil {
		return nil, err
	}
	if a.Element != nitrogen || a.Radicals != 0 {
		return nil, nil
	}

	var shifts []NitrogenShift

	// 1. N5dd form: double + double, shift toward triple + single
	for _, gain := range a.Bonds() {
		if !gain.Order().IsDouble() {
			continue
		}
		gainer := gain.Other(a)
		for _, lose := range a.Bonds() {
			loser := lose.Other(a)
			if loser == gainer || !lose.Order().IsDouble() {
				continue
			}
			if loser.Radicals != 0 || loser.LonePairs == 0 || loser.Element == oxygen {
				continue
			}
			shifts = append(shifts, NitrogenShift{
				Center:   a,
				Gainer:   gainer,
				Loser:    loser,
				GainBond: gain,
				LoseBond: lose,
			})
		}
	}

	// 2. N5ts form: triple + single, shift toward double + double
	for _, lose := range a.Bonds() {
		if !lose.Order().IsTriple() {
			continue
		}
		loser := lose.Other(a)
		for _, gain := range a.Bonds() {
			gainer := gain.Other(a)
			if gainer == loser || !gain.Order().IsSingle() {
				continue
			}
			if gainer.LonePairs == 0 {
				continue
			}
			shifts = append(shifts, NitrogenShift{
				Center:   a,
				Gainer:   gainer,
				Loser:    loser,
				GainBond: gain,
				LoseBond: lose,
			})
		}
	}

	return shifts, nil
}
