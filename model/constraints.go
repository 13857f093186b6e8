package model

import "github.com/cpmech/gosl/chk"

// Fix moves the given (node, dof) pairs from the free to the restrained
// partition (spec.md §4.4's Constraint operator). A dof already restrained
// is left alone.
func (m *Model) Fix(nodeLabels []int, dofs []int) error {
	for _, nl := range nodeLabels {
		if nl < 0 || nl >= len(m.Nodes) {
			return chk.Err("model: InvalidConfig: Fix references out-of-range node %d", nl)
		}
		for _, d := range dofs {
			key := dofKey{nl, d}
			if _, ok := m.globalNumber[key]; !ok {
				return chk.Err("model: InvalidConfig: Fix references inactive dof (node %d, dof %d)", nl, d)
			}
			if !m.fdof.has(key) {
				continue
			}
			m.fdof.remove(key)
			m.rdof.add(key)
			m.Nodes[nl].ConstrainedDOF[d] = true
		}
	}
	return nil
}

// Free reverses Fix, moving (node, dof) pairs back to the free partition.
func (m *Model) Free(nodeLabels []int, dofs []int) error {
	for _, nl := range nodeLabels {
		if nl < 0 || nl >= len(m.Nodes) {
			return chk.Err("model: InvalidConfig: Free references out-of-range node %d", nl)
		}
		for _, d := range dofs {
			key := dofKey{nl, d}
			if _, ok := m.globalNumber[key]; !ok {
				return chk.Err("model: InvalidConfig: Free references inactive dof (node %d, dof %d)", nl, d)
			}
			if !m.rdof.has(key) {
				continue
			}
			m.rdof.remove(key)
			m.fdof.add(key)
			m.Nodes[nl].ConstrainedDOF[d] = false
		}
	}
	return nil
}

// AddSprings appends diagonal spring stiffness entries, one per
// (nodeLabels[i], dofs[i]) pair, with the matching kValues[i] coefficient
// (spec.md §4.4 spring operator).
func (m *Model) AddSprings(nodeLabels, dofs []int, kValues []float64) error {
	if len(nodeLabels) != len(dofs) || len(dofs) != len(kValues) {
		return chk.Err("model: InvalidConfig: AddSprings arrays must have equal length, got %d/%d/%d", len(nodeLabels), len(dofs), len(kValues))
	}
	for i, nl := range nodeLabels {
		key := dofKey{nl, dofs[i]}
		if _, ok := m.globalNumber[key]; !ok {
			return chk.Err("model: InvalidConfig: AddSprings references inactive dof (node %d, dof %d)", nl, dofs[i])
		}
		m.springs = append(m.springs, lumpedEntry{key, kValues[i]})
	}
	return nil
}

// AddLumpedMasses appends diagonal lumped-mass entries, one per
// (nodeLabels[i], dofs[i]) pair (spec.md §4.4 mass operator).
func (m *Model) AddLumpedMasses(nodeLabels, dofs []int, mValues []float64) error {
	if len(nodeLabels) != len(dofs) || len(dofs) != len(mValues) {
		return chk.Err("model: InvalidConfig: AddLumpedMasses arrays must have equal length, got %d/%d/%d", len(nodeLabels), len(dofs), len(mValues))
	}
	for i, nl := range nodeLabels {
		key := dofKey{nl, dofs[i]}
		if _, ok := m.globalNumber[key]; !ok {
			return chk.Err("model: InvalidConfig: AddLumpedMasses references inactive dof (node %d, dof %d)", nl, dofs[i])
		}
		m.masses = append(m.masses, lumpedEntry{key, mValues[i]})
	}
	return nil
}

// Springs and Masses expose the accumulated diagonal tables for Full/Partition.
func (m *Model) Springs() []lumpedEntry { return m.springs }
func (m *Model) Masses() []lumpedEntry  { return m.masses }
