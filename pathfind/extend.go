// Package pathfind: one-step path extension rules under bond-order
// constraints. Every extender is pure - the input path is never mutated and
// each returned path is a fresh copy one atom longer. Extensions that would
// revisit an atom, or that route through hydrogen, are discarded.
package pathfind

// AddUnsaturatedBonds returns every one-atom extension of p through a bond
// carrying pi electrons (double, triple, or benzene) from the terminal atom.
// Used to walk a conjugated chain through successive multiple bonds.
// Complexity: O(deg(terminal)).
func AddUnsaturatedBonds(p Path) []Path {
	term := p.Terminal()
	if term == nil {
		return nil
	}

	var out []Path
	for _, b := range term.Bonds() {
		if !b.Order().IsUnsaturated() {
			continue
		}
		nb := b.Other(term)
		if nb.IsHydrogen() || p.Contains(nb) {
			continue
		}
		out = append(out, p.extend(nb))
	}

	return out
}

// AddAllyls returns every one-atom extension of p that continues a strict
// single / non-single alternation, modeling allylic conjugation. On a seed
// path (one atom, no edges yet) the first edge must be non-single; after
// that each new edge must flip relative to the edge before it.
// Complexity: O(deg(terminal)).
func AddAllyls(p Path) []Path {
	return addAlternating(p, true)
}

// AddInverseAllyls is the mirror of AddAllyls with the alternation phase
// inverted: a seed path extends through a single bond first. Used when the
// search starts from the opposite electronic polarity.
// Complexity: O(deg(terminal)).
func AddInverseAllyls(p Path) []Path {
	return addAlternating(p, false)
}

// addAlternating implements both allylic extenders. firstUnsaturated fixes
// the phase for seed paths; once the path carries an edge, the previous
// edge's order dictates the next one (strict alternation).
func addAlternating(p Path, firstUnsaturated bool) []Path {
	term := p.Terminal()
	if term == nil {
		return nil
	}

	// 1. Decide which bond class continues the alternation
	wantUnsaturated := firstUnsaturated
	if ord, ok := p.lastOrder(); ok {
		wantUnsaturated = ord.IsSingle()
	}

	// 2. Collect every admissible one-atom extension
	var out []Path
	for _, b := range term.Bonds() {
		if b.Order().IsUnsaturated() != wantUnsaturated {
			continue
		}
		nb := b.Other(term)
		if nb.IsHydrogen() || p.Contains(nb) {
			continue
		}
		out = append(out, p.extend(nb))
	}

	return out
}
