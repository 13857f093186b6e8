package analysis

import (
	"github.com/cpmech/gosl/chk"

	"github.com/ETH-WindMil/benchmarktu1402/element"
	"github.com/ETH-WindMil/benchmarktu1402/model"
)

// NodalStrain recovers strain at nodeLabel by extrapolating from each
// incident element's integration points to the natural coordinate that
// maps to that node within the element (spec.md §4.5 Strain recovery),
// then averaging arithmetically across incident elements. dispFull is the
// full-length (ndof) displacement matrix, one column per time step; the
// returned 3xT matrix holds (εxx, εyy, εxy) rows.
func NodalStrain(m *model.Model, nodeLabel int, dispFull [][]float64) ([][]float64, error) {
	if nodeLabel < 0 || nodeLabel >= len(m.Nodes) {
		return nil, chk.Err("analysis: InvalidConfig: NodalStrain references out-of-range node %d", nodeLabel)
	}
	node := m.Nodes[nodeLabel]
	if len(node.Links) == 0 {
		return nil, chk.Err("analysis: InvalidConfig: node %d has no incident elements", nodeLabel)
	}

	T := 0
	if len(dispFull) > 0 {
		T = len(dispFull[0])
	}
	sum := make([][]float64, 3)
	for i := range sum {
		sum[i] = make([]float64, T)
	}

	for _, elabel := range node.Links {
		e := m.Elements[elabel]
		localIdx := -1
		for i, nl := range e.NodeLabels {
			if nl == nodeLabel {
				localIdx = i
				break
			}
		}
		if localIdx < 0 {
			return nil, chk.Err("analysis: InvalidConfig: node %d link to element %d is inconsistent", nodeLabel, elabel)
		}
		r1, r2, err := element.NodeCoord(e.Kind, localIdx)
		if err != nil {
			return nil, err
		}

		X := make([][]float64, len(e.NodeLabels))
		U := make([][]float64, 2*len(e.NodeLabels))
		for i, nl := range e.NodeLabels {
			c := m.Nodes[nl].Coords
			X[i] = []float64{c[0], c[1]}
			gx := m.GlobalNumber(nl, model.DofX)
			gy := m.GlobalNumber(nl, model.DofY)
			U[2*i] = dispFull[gx]
			U[2*i+1] = dispFull[gy]
		}

		eps, err := element.ExtrapolateStrain(e.Kind, X, U, e.Rule, r1, r2)
		if err != nil {
			return nil, err
		}
		for i := 0; i < 3; i++ {
			for t := 0; t < T; t++ {
				sum[i][t] += eps[i][t]
			}
		}
	}

	n := float64(len(node.Links))
	for i := range sum {
		for t := range sum[i] {
			sum[i][t] /= n
		}
	}
	return sum, nil
}
