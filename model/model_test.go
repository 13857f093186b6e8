package model

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/ETH-WindMil/benchmarktu1402/element"
	"github.com/ETH-WindMil/benchmarktu1402/material"
	"github.com/ETH-WindMil/benchmarktu1402/quadrature"
)

// unitVec returns the i-th canonical basis vector in R^n.
func unitVec(n, i int) []float64 {
	v := make([]float64, n)
	v[i] = 1
	return v
}

// bilinear computes x^T A y for a sparse CCMatrix A via two matvecs.
func bilinear(A *la.CCMatrix, x, y []float64) float64 {
	Ay := make([]float64, len(x))
	la.SpMatVecMulAdd(Ay, 1, A, y)
	sum := 0.0
	for i := range x {
		sum += x[i] * Ay[i]
	}
	return sum
}

func oneQuad4(tst *testing.T) *Model {
	nodes := []*Node{
		NewNode(0, 0, DofX, DofY),
		NewNode(2, 0, DofX, DofY),
		NewNode(2, 1, DofX, DofY),
		NewNode(0, 1, DofX, DofY),
	}
	mat, err := material.New(1.8e11, 0.3, 2000)
	if err != nil {
		tst.Fatal(err)
	}
	rule, err := quadrature.Get(quadrature.Quadrilateral, 2)
	if err != nil {
		tst.Fatal(err)
	}
	C := make([]*material.LinearElastic, rule.NumPoints())
	th := make([]float64, rule.NumPoints())
	for i := range C {
		C[i] = mat
		th[i] = 0.2
	}
	e, err := NewElement(element.Quad4, []int{0, 1, 2, 3}, C, th, rule)
	if err != nil {
		tst.Fatal(err)
	}
	m, err := New(nodes, []*Element{e})
	if err != nil {
		tst.Fatal(err)
	}
	return m
}

// Test_model01 checks DOF numbering: 4 nodes * 2 dofs = 8 total, all free
// until a fixation runs.
func Test_model01(tst *testing.T) {
	chk.PrintTitle("dof numbering")
	m := oneQuad4(tst)
	if m.NumDof() != 8 {
		tst.Fatalf("expected 8 dof, got %d", m.NumDof())
	}
	if m.NumFree() != 8 || m.NumFixed() != 0 {
		tst.Fatalf("expected all-free before fixation, got free=%d fixed=%d", m.NumFree(), m.NumFixed())
	}
}

// Test_model02 checks that Fix moves dofs from fdof to rdof and Free
// reverses it.
func Test_model02(tst *testing.T) {
	chk.PrintTitle("fixation moves dofs between partitions")
	m := oneQuad4(tst)
	if err := m.Fix([]int{0, 3}, []int{DofX, DofY}); err != nil {
		tst.Fatal(err)
	}
	if m.NumFixed() != 4 || m.NumFree() != 4 {
		tst.Fatalf("expected 4 fixed / 4 free, got fixed=%d free=%d", m.NumFixed(), m.NumFree())
	}
	if err := m.Free([]int{0}, []int{DofX, DofY}); err != nil {
		tst.Fatal(err)
	}
	if m.NumFixed() != 2 || m.NumFree() != 6 {
		tst.Fatalf("expected 2 fixed / 6 free after Free, got fixed=%d free=%d", m.NumFixed(), m.NumFree())
	}
}

// Test_model03 checks that Partition's free-free block Kff is symmetric and
// that the free/fixed split is 4/4, for the global stiffness matrix of a
// single, unconstrained-then-partially-fixed element (invariant 5).
func Test_model03(tst *testing.T) {
	chk.PrintTitle("partitioned stiffness symmetry")
	m := oneQuad4(tst)
	if err := m.Fix([]int{0, 1}, []int{DofX, DofY}); err != nil {
		tst.Fatal(err)
	}
	p, err := m.Partition(m.StiffnessContribution, m.Springs())
	if err != nil {
		tst.Fatal(err)
	}
	nf := m.NumFree()
	for i := 0; i < nf; i++ {
		for j := 0; j < nf; j++ {
			ei, ej := unitVec(nf, i), unitVec(nf, j)
			chk.Float64(tst, "Kff sym", 1e-8, bilinear(p.Ff, ei, ej), bilinear(p.Ff, ej, ei))
		}
	}
	if m.NumFree() != 4 || m.NumFixed() != 4 {
		tst.Fatalf("expected 4/4 split, got free=%d fixed=%d", m.NumFree(), m.NumFixed())
	}
}

// Test_model04 checks that a spring added on a free dof shows up on the Kff
// diagonal.
func Test_model04(tst *testing.T) {
	chk.PrintTitle("spring contributes to Kff diagonal")
	m := oneQuad4(tst)
	if err := m.AddSprings([]int{2}, []int{DofX}, []float64{1e6}); err != nil {
		tst.Fatal(err)
	}
	withSpring, err := m.Full(m.StiffnessContribution, m.Springs())
	if err != nil {
		tst.Fatal(err)
	}
	without, err := m.Full(m.StiffnessContribution, nil)
	if err != nil {
		tst.Fatal(err)
	}
	g := m.globalNumber[dofKey{2, DofX}]
	eg := unitVec(m.NumDof(), g)
	withDiag := bilinear(withSpring, eg, eg)
	withoutDiag := bilinear(without, eg, eg)
	if withDiag-withoutDiag < 1e6-1e-6 {
		tst.Fatalf("spring did not add to diagonal: with=%v without=%v", withDiag, withoutDiag)
	}
}
