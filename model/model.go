package model

import "github.com/cpmech/gosl/chk"

// lumpedEntry is one row of the spring or mass lumped-contribution tables
// (node, dof, global number, value) — spec.md §3.
type lumpedEntry struct {
	Key   dofKey
	Value float64
}

// Model owns the node and element lists and the four ordered DOF maps
// (ndof/fdof/rdof/ldof), the lumped spring/mass tables, the time-force load
// list, and the Rayleigh damping coefficients. No Sp selection matrix is
// stored; LoadVector scatters the loads into the free-dof space directly.
type Model struct {
	Nodes    []*Node
	Elements []*Element

	ndof *orderedDofSet // all active DOFs, fixed numbering, never mutated post-construction
	fdof *orderedDofSet
	rdof *orderedDofSet
	ldof *orderedDofSet

	globalNumber map[dofKey]int
	globalToKey  []dofKey

	springs []lumpedEntry
	masses  []lumpedEntry
	loads   []*Load // parallel to ldof.order

	AlphaRayleigh, BetaRayleigh float64
}

// New builds a Model from nodes and elements supplied in final input order:
// a node's label is its index in nodes, and Element.NodeLabels must
// reference those same indices. Element labels are assigned in input order
// and node.Links are populated before DOF numbering, matching the
// lifecycle in spec.md §3/§4.3.
func New(nodes []*Node, elements []*Element) (*Model, error) {
	m := &Model{}

	for i, e := range elements {
		e.Label = i
		for _, nl := range e.NodeLabels {
			if nl < 0 || nl >= len(nodes) {
				return nil, chk.Err("model: InvalidElement: element %d references out-of-range node %d", i, nl)
			}
			nodes[nl].Links = append(nodes[nl].Links, e.Label)
		}
	}
	m.Elements = elements

	for i, n := range nodes {
		n.Label = i
	}
	m.Nodes = nodes

	m.ndof = newOrderedDofSet()
	m.fdof = newOrderedDofSet()
	m.rdof = newOrderedDofSet()
	m.ldof = newOrderedDofSet()
	m.globalNumber = make(map[dofKey]int)

	for _, n := range nodes {
		for d := 0; d < numDofKinds; d++ {
			if !n.ActiveDOF[d] {
				continue
			}
			key := dofKey{n.Label, d}
			g := m.ndof.len()
			m.globalNumber[key] = g
			m.ndof.add(key)
			m.globalToKey = append(m.globalToKey, key)
			n.DofNumber[d] = g
			if n.ConstrainedDOF[d] {
				m.rdof.add(key)
			} else {
				m.fdof.add(key)
			}
		}
	}

	return m, nil
}

// NumDof, NumFree, NumFixed, NumLoaded report the current sizes of the four
// DOF partitions (free/fixed/loaded change as Constraint/Load operators
// run; NumDof is fixed at construction).
func (m *Model) NumDof() int    { return m.ndof.len() }
func (m *Model) NumFree() int   { return m.fdof.len() }
func (m *Model) NumFixed() int  { return m.rdof.len() }
func (m *Model) NumLoaded() int { return m.ldof.len() }

// FreeDofNumbers returns, in fdof order, the global equation number of each
// free dof — used to scatter a reduced free-dof vector/matrix back to full
// dof numbering (spec.md §4.5 mode-shape reassembly).
func (m *Model) FreeDofNumbers() []int {
	out := make([]int, m.fdof.len())
	for i, key := range m.fdof.order {
		out[i] = m.globalNumber[key]
	}
	return out
}

// GlobalNumber returns the global equation number of (nodeLabel, dof), or
// -1 if that dof is inactive.
func (m *Model) GlobalNumber(nodeLabel, dof int) int {
	if g, ok := m.globalNumber[dofKey{nodeLabel, dof}]; ok {
		return g
	}
	return -1
}

// FreeIndex returns the index of (nodeLabel, dof) within the free-dof
// ordering (the indexing PhiFree/UFree/modal time-history series use), or
// -1 if that dof is restrained or inactive.
func (m *Model) FreeIndex(nodeLabel, dof int) int {
	if i, ok := m.fdof.index(dofKey{nodeLabel, dof}); ok {
		return i
	}
	return -1
}

// ScatterFree expands a free-dof vector to full dof-numbering length,
// leaving restrained entries zero.
func (m *Model) ScatterFree(uFree []float64) []float64 {
	out := make([]float64, m.ndof.len())
	for i, g := range m.FreeDofNumbers() {
		out[g] = uFree[i]
	}
	return out
}

// elementGlobalDofs returns, for element e, the global equation number of
// each local DOF in node-major (u then v per node) order.
func (m *Model) elementGlobalDofs(e *Element) ([]int, error) {
	g := make([]int, 0, 2*len(e.NodeLabels))
	for _, nl := range e.NodeLabels {
		for _, d := range [2]int{DofX, DofY} {
			key := dofKey{nl, d}
			num, ok := m.globalNumber[key]
			if !ok {
				return nil, chk.Err("model: InvalidElement: node %d dof %d is inactive but referenced by element %d", nl, d, e.Label)
			}
			g = append(g, num)
		}
	}
	return g, nil
}
