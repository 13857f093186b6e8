// Package model implements the node/element entities, the DOF-numbering and
// sparse-assembly engine, and the Constraint/Load operators that mutate a
// Model (spec.md §3, §4.3, §4.4).
package model

// DOF bit indices, fixed order per spec.md §3/§4.3: {x, y, z, rx, ry, rz}.
const (
	DofX = iota
	DofY
	DofZ
	DofRX
	DofRY
	DofRZ
	numDofKinds
)

// Node is a point in 3-space (only x,y used by the plane element library)
// carrying DOF activation/restraint bitsets, the assigned global equation
// numbers, incident-element links, and per-analysis scratch state.
type Node struct {
	Label int

	Coords [3]float64

	ActiveDOF      [numDofKinds]bool
	ConstrainedDOF [numDofKinds]bool
	DofNumber      [numDofKinds]int // -1 when inactive

	// Links holds the labels of elements referencing this node, in the
	// order those elements were added to the Model (needed for strain
	// averaging, spec.md §4.5).
	Links []int

	// Dsp/Vlc/Acl/Strain are per-analysis scratch, keyed the same way as
	// ActiveDOF (index 0=x, 1=y); Strain is (εxx, εyy, εxy).
	Dsp, Vlc, Acl [2]float64
	Strain        [3]float64
}

// NewNode creates a node at (x,y) with the given DOFs marked active. Label
// is assigned later by Model construction.
func NewNode(x, y float64, activeDOF ...int) *Node {
	n := &Node{Coords: [3]float64{x, y, 0}}
	for i := range n.DofNumber {
		n.DofNumber[i] = -1
	}
	for _, d := range activeDOF {
		n.ActiveDOF[d] = true
	}
	return n
}
