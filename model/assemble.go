package model

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/ETH-WindMil/benchmarktu1402/element"
)

// elementContribution computes one element's local 2n×2n matrix (stiffness
// or consistent mass), n = element.Kind.NumNodes().
type elementContribution func(e *Element) ([][]float64, error)

// cooEntry is one scattered (global row, global col, value) triple recorded
// during assembly. Partitioning is done against this slice directly rather
// than against gosl's la.Triplet/la.CCMatrix, whose internal storage is not
// meant to be re-filtered after the fact.
type cooEntry struct {
	Row, Col int
	Val      float64
}

// assembleEntries scatters every element's local contribution into global
// COO form, visiting the elements in batches of batchSize. All batches
// append to one slice that is returned whole, so peak memory grows with the
// number of elements; the batching does not bound it.
func (m *Model) assembleEntries(contrib elementContribution) ([]cooEntry, error) {
	const batchSize = 5000
	maxNodes := 0
	for _, e := range m.Elements {
		if n := e.Kind.NumNodes(); n > maxNodes {
			maxNodes = n
		}
	}
	entries := make([]cooEntry, 0, len(m.Elements)*(2*maxNodes)*(2*maxNodes))

	for start := 0; start < len(m.Elements); start += batchSize {
		end := start + batchSize
		if end > len(m.Elements) {
			end = len(m.Elements)
		}
		for _, e := range m.Elements[start:end] {
			local, err := contrib(e)
			if err != nil {
				return nil, err
			}
			gdofs, err := m.elementGlobalDofs(e)
			if err != nil {
				return nil, err
			}
			for i, gi := range gdofs {
				for j, gj := range gdofs {
					if local[i][j] == 0 {
						continue
					}
					entries = append(entries, cooEntry{gi, gj, local[i][j]})
				}
			}
		}
	}
	return entries, nil
}

// toMatrix builds the n×n CCMatrix for entries plus a diagonal addend list
// (springs or lumped masses).
func toMatrix(n int, entries []cooEntry, diagonal []lumpedEntry, globalNumber map[dofKey]int) *la.CCMatrix {
	trip := new(la.Triplet)
	trip.Init(n, n, len(entries)+len(diagonal))
	for _, e := range entries {
		trip.Put(e.Row, e.Col, e.Val)
	}
	for _, d := range diagonal {
		g := globalNumber[d.Key]
		trip.Put(g, g, d.Value)
	}
	return trip.ToMatrix(nil)
}

// Full returns the complete ndof×ndof stiffness or mass matrix (no
// partitioning), used for golden-test assembly checks. The modal
// eigenproblem does not use it: it runs on the free-DOF block returned by
// DenseBlocks.
func (m *Model) Full(contrib elementContribution, diagonal []lumpedEntry) (*la.CCMatrix, error) {
	entries, err := m.assembleEntries(contrib)
	if err != nil {
		return nil, err
	}
	return toMatrix(m.ndof.len(), entries, diagonal, m.globalNumber), nil
}

// Partitioned holds the four blocks of a global matrix split by the
// free/restrained DOF partition, each addressed by local free/restrained
// row and column indices (spec.md §4.3's Kff/Kfr/Krf/Krr).
type Partitioned struct {
	Ff, Fr, Rf, Rr *la.CCMatrix
}

// rowSplit reports whether global DOF g is currently free, and its position
// within fdof or rdof.
func (m *Model) rowSplit(g int) (free bool, idx int) {
	key := m.globalToKey[g]
	if i, ok := m.fdof.index(key); ok {
		return true, i
	}
	i, _ := m.rdof.index(key)
	return false, i
}

// PartitionedTriplets is the Triplet-valued counterpart of Partitioned, used
// where a caller needs to hand a block to a gosl LinSol (which takes
// *la.Triplet, not *la.CCMatrix) rather than to re-convert it.
type PartitionedTriplets struct {
	Ff, Fr, Rf, Rr *la.Triplet
}

// partitionTriplets assembles contrib/diagonal and splits the result into
// the four free/restrained Triplets, computed fresh each call per spec.md
// §4.3's "on demand, not cached" note (cheap: a single pass over the
// recorded COO entries, see cooEntry's doc comment).
func (m *Model) partitionTriplets(contrib elementContribution, diagonal []lumpedEntry) (*PartitionedTriplets, error) {
	entries, err := m.assembleEntries(contrib)
	if err != nil {
		return nil, err
	}

	nf, nr := m.fdof.len(), m.rdof.len()
	ff := new(la.Triplet)
	fr := new(la.Triplet)
	rf := new(la.Triplet)
	rr := new(la.Triplet)
	ff.Init(nf, nf, len(entries))
	fr.Init(nf, nr, len(entries))
	rf.Init(nr, nf, len(entries))
	rr.Init(nr, nr, len(entries))

	for _, e := range entries {
		rowFree, ri := m.rowSplit(e.Row)
		colFree, ci := m.rowSplit(e.Col)
		switch {
		case rowFree && colFree:
			ff.Put(ri, ci, e.Val)
		case rowFree && !colFree:
			fr.Put(ri, ci, e.Val)
		case !rowFree && colFree:
			rf.Put(ri, ci, e.Val)
		default:
			rr.Put(ri, ci, e.Val)
		}
	}
	for _, d := range diagonal {
		g, ok := m.globalNumber[d.Key]
		if !ok {
			return nil, chk.Err("model: InvalidConfig: lumped entry references unknown dof %v", d.Key)
		}
		free, i := m.rowSplit(g)
		if free {
			ff.Put(i, i, d.Value)
		} else {
			rr.Put(i, i, d.Value)
		}
	}

	return &PartitionedTriplets{Ff: ff, Fr: fr, Rf: rf, Rr: rr}, nil
}

// Partition assembles contrib/diagonal and splits the result into the four
// free/restrained CCMatrix blocks.
func (m *Model) Partition(contrib elementContribution, diagonal []lumpedEntry) (*Partitioned, error) {
	t, err := m.partitionTriplets(contrib, diagonal)
	if err != nil {
		return nil, err
	}
	return &Partitioned{Ff: t.Ff.ToMatrix(nil), Fr: t.Fr.ToMatrix(nil), Rf: t.Rf.ToMatrix(nil), Rr: t.Rr.ToMatrix(nil)}, nil
}

// FreeStiffnessTriplet returns only the K_ff block as a *la.Triplet, ready
// to hand to a gosl LinSol for the static solve (spec.md §4.5 Static).
func (m *Model) FreeStiffnessTriplet() (*la.Triplet, error) {
	t, err := m.partitionTriplets(m.StiffnessContribution, m.Springs())
	if err != nil {
		return nil, err
	}
	return t.Ff, nil
}

// DenseBlocks assembles contrib/diagonal and returns only the free-free
// block as a dense matrix (row-major [][]float64); entries in restrained
// rows or columns are dropped. It serves the
// small reduced systems consumed by the modal eigensolver — gonum's dense
// eigensolver needs a dense input regardless of how sparse the assembly
// was, so this bypasses the CCMatrix/Triplet path entirely rather than
// build a sparse matrix only to immediately densify it through an
// unconfirmed API.
func (m *Model) DenseBlocks(contrib elementContribution, diagonal []lumpedEntry) (ff [][]float64, err error) {
	entries, err := m.assembleEntries(contrib)
	if err != nil {
		return nil, err
	}
	nf := m.fdof.len()
	ff = la.MatAlloc(nf, nf)
	for _, e := range entries {
		rowFree, ri := m.rowSplit(e.Row)
		colFree, ci := m.rowSplit(e.Col)
		if rowFree && colFree {
			ff[ri][ci] += e.Val
		}
	}
	for _, d := range diagonal {
		g, ok := m.globalNumber[d.Key]
		if !ok {
			return nil, chk.Err("model: InvalidConfig: lumped entry references unknown dof %v", d.Key)
		}
		if free, i := m.rowSplit(g); free {
			ff[i][i] += d.Value
		}
	}
	return ff, nil
}

// elemCoords gathers an element's node coordinates in NodeLabels order.
func (m *Model) elemCoords(e *Element) [][]float64 {
	X := make([][]float64, len(e.NodeLabels))
	for i, nl := range e.NodeLabels {
		c := m.Nodes[nl].Coords
		X[i] = []float64{c[0], c[1]}
	}
	return X
}

// StiffnessContribution and MassContribution adapt the element package's
// integration routines to the elementContribution signature.
func (m *Model) StiffnessContribution(e *Element) ([][]float64, error) {
	C := make([][][]float64, e.Rule.NumPoints())
	for i, mat := range e.Material {
		C[i] = mat.CMatrix()
	}
	return element.Stiffness(e.Kind, m.elemCoords(e), C, e.Thickness, e.Rule)
}

func (m *Model) MassContribution(e *Element) ([][]float64, error) {
	rho := make([]float64, len(e.Material))
	for i, mat := range e.Material {
		rho[i] = mat.Rho
	}
	return element.Mass(e.Kind, m.elemCoords(e), rho, e.Thickness, e.Rule)
}
