package pathfind_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemgraph/molbuild"
	"github.com/katalvlaran/chemgraph/molecule"
	"github.com/katalvlaran/chemgraph/pathfind"
)

// atomIDs projects a path onto its atom IDs.
func atomIDs(p pathfind.Path) []string {
	out := make([]string, 0, len(p))
	for _, a := range p {
		out = append(out, a.ID)
	}

	return out
}

// TestFindButadiene_Canonical: A=B-C=D matches as [A B C D].
func TestFindButadiene_Canonical(t *testing.T) {
	m, err := molbuild.Butadiene()
	require.NoError(t, err)

	p, err := pathfind.FindButadiene(mustAtom(t, m, "C1"), mustAtom(t, m, "C4"))
	require.NoError(t, err)
	require.Equal(t, []string{"C1", "C2", "C3", "C4"}, atomIDs(p))
	requireSimpleBondedPath(t, p)
}

// TestFindButadiene_Degenerate: a direct multiple bond to end is accepted.
func TestFindButadiene_Degenerate(t *testing.T) {
	m, err := molbuild.Butadiene()
	require.NoError(t, err)

	p, err := pathfind.FindButadiene(mustAtom(t, m, "C1"), mustAtom(t, m, "C2"))
	require.NoError(t, err)
	require.Equal(t, []string{"C1", "C2"}, atomIDs(p))
}

// TestFindButadiene_Hexatriene: longer alternating chains match too.
func TestFindButadiene_Hexatriene(t *testing.T) {
	m, err := molbuild.Chain("C",
		molecule.Double, molecule.Single, molecule.Double,
		molecule.Single, molecule.Double)
	require.NoError(t, err)

	p, err := pathfind.FindButadiene(mustAtom(t, m, "C1"), mustAtom(t, m, "C6"))
	require.NoError(t, err)
	require.Equal(t, []string{"C1", "C2", "C3", "C4", "C5", "C6"}, atomIDs(p))
}

// TestFindButadiene_NotFound: saturated chains and broken alternation
// yield (nil, nil), never an error.
func TestFindButadiene_NotFound(t *testing.T) {
	// fully saturated chain
	m, err := molbuild.Chain("C", molecule.Single, molecule.Single, molecule.Single)
	require.NoError(t, err)
	p, err := pathfind.FindButadiene(mustAtom(t, m, "C1"), mustAtom(t, m, "C4"))
	require.NoError(t, err)
	require.Nil(t, p)

	// alternation broken in the middle: C1=C2-C3-C4=C5
	m, err = molbuild.Chain("C",
		molecule.Double, molecule.Single, molecule.Single, molecule.Double)
	require.NoError(t, err)
	p, err = pathfind.FindButadiene(mustAtom(t, m, "C1"), mustAtom(t, m, "C5"))
	require.NoError(t, err)
	require.Nil(t, p)
}

// TestFindButadiene_Ring terminates on cycles and finds the in-ring diene.
func TestFindButadiene_Ring(t *testing.T) {
	m, err := molbuild.KekuleBenzene()
	require.NoError(t, err)

	p, err := pathfind.FindButadiene(mustAtom(t, m, "C1"), mustAtom(t, m, "C4"))
	require.NoError(t, err)
	require.Equal(t, []string{"C1", "C2", "C3", "C4"}, atomIDs(p))
}

// TestFindButadiene_PathCap: WithMaxPathAtoms bounds frontier expansion.
func TestFindButadiene_PathCap(t *testing.T) {
	m, err := molbuild.Chain("C",
		molecule.Double, molecule.Single, molecule.Double,
		molecule.Single, molecule.Double)
	require.NoError(t, err)
	start, end := mustAtom(t, m, "C1"), mustAtom(t, m, "C6")

	// The 6-atom match requires a 5-atom partial path; cap at 4 blocks it
	p, err := pathfind.FindButadiene(start, end, pathfind.WithMaxPathAtoms(4))
	require.NoError(t, err)
	require.Nil(t, p)

	// invalid cap surfaces as ErrOptionViolation
	if _, err = pathfind.FindButadiene(start, end, pathfind.WithMaxPathAtoms(1)); !errors.Is(err, pathfind.ErrOptionViolation) {
		t.Errorf("cap 1: want ErrOptionViolation, got %v", err)
	}
}

// TestFindButadieneEndWithCharge_Chain: charged terminal reached through an
// alternating path.
func TestFindButadieneEndWithCharge_Chain(t *testing.T) {
	m, err := molbuild.Butadiene()
	require.NoError(t, err)
	mustAtom(t, m, "C4").Charge = -1

	paths, err := pathfind.FindButadieneEndWithCharge(mustAtom(t, m, "C1"))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, []string{"C1", "C2", "C3", "C4"}, atomIDs(paths[0]))
}

// TestFindButadieneEndWithCharge_Multiple: every qualifying terminal is
// reported, not just the first.
func TestFindButadieneEndWithCharge_Multiple(t *testing.T) {
	m := molecule.NewMolecule()
	_, err := m.AddAtom("C0", "C")
	require.NoError(t, err)
	_, err = m.AddAtom("C1", "C", molecule.WithCharge(+1))
	require.NoError(t, err)
	_, err = m.AddAtom("C2", "C", molecule.WithCharge(-1))
	require.NoError(t, err)
	_, err = m.AddBond("C0", "C1", molecule.Double)
	require.NoError(t, err)
	_, err = m.AddBond("C0", "C2", molecule.Double)
	require.NoError(t, err)

	paths, err := pathfind.FindButadieneEndWithCharge(mustAtom(t, m, "C0"))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	terminals := []string{paths[0].Terminal().ID, paths[1].Terminal().ID}
	require.ElementsMatch(t, []string{"C1", "C2"}, terminals)
}

// TestFindButadieneEndWithCharge_NotFound: uncharged molecules yield nothing.
func TestFindButadieneEndWithCharge_NotFound(t *testing.T) {
	m, err := molbuild.Butadiene()
	require.NoError(t, err)
	paths, err := pathfind.FindButadieneEndWithCharge(mustAtom(t, m, "C1"))
	require.NoError(t, err)
	require.Empty(t, paths)
}

// TestFindAllylEndWithCharge_Cation: A=B-C(+) matches ending at C.
func TestFindAllylEndWithCharge_Cation(t *testing.T) {
	m, err := molbuild.AllylCation()
	require.NoError(t, err)

	paths, err := pathfind.FindAllylEndWithCharge(mustAtom(t, m, "C1"))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, []string{"C1", "C2", "C3"}, atomIDs(paths[0]))
}

// TestFindAllylEndWithCharge_NotFound covers missing charge and wrong phase.
func TestFindAllylEndWithCharge_NotFound(t *testing.T) {
	m, err := molbuild.AllylCation()
	require.NoError(t, err)

	// From the charged end the first bond is single: no unsaturated start
	paths, err := pathfind.FindAllylEndWithCharge(mustAtom(t, m, "C3"))
	require.NoError(t, err)
	require.Empty(t, paths)

	// Same topology without the charge
	m2, err := molbuild.Chain("C", molecule.Double, molecule.Single)
	require.NoError(t, err)
	paths, err = pathfind.FindAllylEndWithCharge(mustAtom(t, m2, "C1"))
	require.NoError(t, err)
	require.Empty(t, paths)
}

// TestMotifFinders_IsolatedAtom: an atom with no bonds matches nothing.
func TestMotifFinders_IsolatedAtom(t *testing.T) {
	m := molecule.NewMolecule()
	lone, err := m.AddAtom("A", "C", molecule.WithCharge(+1), molecule.WithRadicals(1))
	require.NoError(t, err)
	other, err := m.AddAtom("B", "C")
	require.NoError(t, err)

	p, err := pathfind.FindButadiene(lone, other)
	require.NoError(t, err)
	require.Nil(t, p)

	charged, err := pathfind.FindButadieneEndWithCharge(lone)
	require.NoError(t, err)
	require.Empty(t, charged)

	allyl, err := pathfind.FindAllylEndWithCharge(lone)
	require.NoError(t, err)
	require.Empty(t, allyl)

	shifts, err := pathfind.FindAllylDelocalizationPaths(lone)
	require.NoError(t, err)
	require.Empty(t, shifts)
}

// BenchmarkFindButadiene measures the queue search on a long conjugated chain.
func BenchmarkFindButadiene(b *testing.B) {
	orders := make([]molecule.BondOrder, 31)
	for i := range orders {
		if i%2 == 0 {
			orders[i] = molecule.Double
		} else {
			orders[i] = molecule.Single
		}
	}
	m, err := molbuild.Chain("C", orders...)
	if err != nil {
		b.Fatal(err)
	}
	start, _ := m.Atom("C1")
	end, _ := m.Atom("C32")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = pathfind.FindButadiene(start, end); err != nil {
			b.Fatal(err)
		}
	}
}
