// Package pathfind: motif finders composing the path engine and the
// extension rules. Each finder is a bounded search whose states are partial
// alternating paths and whose accepting states satisfy a terminal condition
// (a specific closing bond order, a formal charge). "No such motif" is a
// normal outcome and is reported as an empty result, never as an error.
package pathfind

import "github.com/katalvlaran/chemgraph/molecule"

// FindButadiene searches for an alternating resonance path from start to end:
// bond orders non-single, single, ..., non-single, closing on end. The
// canonical match is the 4-atom diene start=a-b=end; longer alternating
// chains (6, 8, ... atoms) and the degenerate 2-atom case (start directly
// multiple-bonded to end) follow the same acceptance rule. The first path
// found in breadth-first order is returned; (nil, nil) means not found.
//
// Errors: ErrNilAtom, ErrDetachedAtom, ErrCrossMolecule, ErrOptionViolation.
func FindButadiene(start, end *molecule.Atom, opts ...Option) (Path, error) {
	// 1. Validate preconditions and options
	if err := validatePair(start, end); err != nil {
		return nil, err
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2. Frontier-queue search over alternating extensions
	queue := []Path{{start}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		// Acceptance only on odd-length paths: their last edge (if any) is
		// single, so a non-single closing bond preserves the alternation.
		if len(p)%2 == 1 {
			term := p.Terminal()
			for _, b := range term.Bonds() {
				if b.Order().IsUnsaturated() && b.Other(term) == end && !p.Contains(end) {
					return p.extend(end), nil
				}
			}
		}

		// Grow the frontier, honoring the path cap
		if o.MaxPathAtoms > 0 && len(p)+1 > o.MaxPathAtoms {
			continue
		}
		queue = append(queue, AddAllyls(p)...)
	}

	// 3. No accepting state reachable
	return nil, nil
}

// FindButadieneEndWithCharge searches from start (typically a charged atom)
// along alternating extensions for every path whose closing non-single bond
// lands on an atom carrying a nonzero formal charge, enabling a charge-shift
// resonance move. All accepting paths are returned in breadth-first order;
// an empty slice means not found.
//
// Errors: ErrNilAtom, ErrDetachedAtom, ErrOptionViolation.
func FindButadieneEndWithCharge(start *molecule.Atom, opts ...Option) ([]Path, error) {
	// 1. Validate preconditions and options
	if err := validateAtom(start); err != nil {
		return nil, err
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2. Frontier-queue search, collecting every accepting terminal
	var found []Path
	queue := []Path{{start}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if len(p)%2 == 1 {
			term := p.Terminal()
			for _, b := range term.Bonds() {
				nb := b.Other(term)
				if b.Order().IsUnsaturated() && nb.IsCharged() && !p.Contains(nb) {
					found = append(found, p.extend(nb))
				}
			}
		}

		if o.MaxPathAtoms > 0 && len(p)+1 > o.MaxPathAtoms {
			continue
		}
		queue = append(queue, AddAllyls(p)...)
	}

	return found, nil
}

// FindAllylEndWithCharge finds every 3-atom allylic pattern
// start =(non-single)= a -(single)- b where b carries a nonzero formal
// charge. Built by composing the two extension rules; an empty slice means
// not found.
//
// Errors: ErrNilAtom, ErrDetachedAtom.
func FindAllylEndWithCharge(start *molecule.Atom) ([]Path, error) {
	if err := validateAtom(start); err != nil {
		return nil, err
	}

	var found []Path
	for _, p2 := range AddUnsaturatedBonds(Path{start}) {
		for _, p3 := range AddAllyls(p2) {
			if p3.Terminal().IsCharged() {
				found = append(found, p3)
			}
		}
	}

	return found, nil
}

// resolveOptions applies functional options over the defaults and surfaces
// any recorded violation.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
