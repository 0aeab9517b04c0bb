// Package convert exports a molecule.Molecule into a dominikbraun/graph
// graph, so callers can reuse that ecosystem directly: DOT rendering,
// adjacency maps, or their own traversals over the same topology.
//
// The export is undirected (bonds have no direction), with atom IDs as both
// vertex hash and value. Electronic state travels as vertex attributes
// (element, charge, radicals, lonePairs) and bond orders as edge weights plus
// an "order" attribute, which DOT rendering picks up as edge labels.
//
// Errors:
//
//	ErrMoleculeNil - nil molecule supplied.
package convert

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/katalvlaran/chemgraph/molecule"
)

// ErrMoleculeNil is returned if a nil molecule pointer is passed.
var ErrMoleculeNil = errors.New("convert: molecule is nil")

// ToGraph converts mol into an undirected dominikbraun graph keyed by atom ID.
// Complexity: O(V + E).
func ToGraph(mol *molecule.Molecule) (graph.Graph[string, string], error) {
	// 1. Validate input
	if mol == nil {
		return nil, ErrMoleculeNil
	}

	// 2. Vertices carry the electronic state as string attributes
	g := graph.New(graph.StringHash)
	for _, a := range mol.Atoms() {
		err := g.AddVertex(a.ID,
			graph.VertexAttribute("element", a.Element),
			graph.VertexAttribute("charge", strconv.Itoa(a.Charge)),
			graph.VertexAttribute("radicals", strconv.Itoa(a.Radicals)),
			graph.VertexAttribute("lonePairs", strconv.Itoa(a.LonePairs)),
		)
		if err != nil {
			return nil, fmt.Errorf("convert: add atom %q: %w", a.ID, err)
		}
	}

	// 3. Edges carry the bond order as weight and label
	for _, b := range mol.Bonds() {
		a1, a2 := b.Atoms()
		err := g.AddEdge(a1.ID, a2.ID,
			graph.EdgeWeight(int(b.Order())),
			graph.EdgeAttribute("order", b.Order().String()),
		)
		if err != nil {
			return nil, fmt.Errorf("convert: add bond %q-%q: %w", a1.ID, a2.ID, err)
		}
	}

	return g, nil
}

// DOT renders mol in Graphviz DOT format to w, via ToGraph.
func DOT(mol *molecule.Molecule, w io.Writer) error {
	g, err := ToGraph(mol)
	if err != nil {
		return err
	}

	return draw.DOT(g, w)
}
