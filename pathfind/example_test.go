package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/chemgraph/molbuild"
	"github.com/katalvlaran/chemgraph/molecule"
	"github.com/katalvlaran/chemgraph/pathfind"
)

// ExampleFindButadiene locates the canonical diene path in 1,3-butadiene.
func ExampleFindButadiene() {
	m, err := molbuild.Butadiene() // C1=C2-C3=C4
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := m.Atom("C1")
	end, _ := m.Atom("C4")

	path, err := pathfind.FindButadiene(start, end)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, a := range path {
		fmt.Print(a.ID, " ")
	}
	fmt.Println()
	// Output:
	// C1 C2 C3 C4
}

// ExampleFindAllylEndWithCharge finds the charge-shift path in the allyl cation.
func ExampleFindAllylEndWithCharge() {
	m, err := molbuild.AllylCation() // C1=C2-C3(+)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := m.Atom("C1")

	paths, err := pathfind.FindAllylEndWithCharge(start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		fmt.Printf("%s -> %s -> %s (charge %+d)\n",
			p[0].ID, p[1].ID, p[2].ID, p.Terminal().Charge)
	}
	// Output:
	// C1 -> C2 -> C3 (charge +1)
}

// ExampleFindShortestPath walks a branched molecule between two atoms.
func ExampleFindShortestPath() {
	m := molecule.NewMolecule()
	for _, id := range []string{"A", "B", "C", "D"} {
		if _, err := m.AddAtom(id, "C"); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	// A-B-C with a branch B-D
	_, _ = m.AddBond("A", "B", molecule.Single)
	_, _ = m.AddBond("B", "C", molecule.Single)
	_, _ = m.AddBond("B", "D", molecule.Single)

	a, _ := m.Atom("A")
	d, _ := m.Atom("D")
	path, err := pathfind.FindShortestPath(a, d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, atom := range path {
		fmt.Print(atom.ID, " ")
	}
	fmt.Println()
	// Output:
	// A B D
}
