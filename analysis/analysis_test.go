package analysis

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ETH-WindMil/benchmarktu1402/element"
	"github.com/ETH-WindMil/benchmarktu1402/material"
	"github.com/ETH-WindMil/benchmarktu1402/model"
	"github.com/ETH-WindMil/benchmarktu1402/quadrature"
)

// cantileverStrip builds an n-element-long, 1-element-tall Quad4 strip of
// unit square elements, pinned at the left end, used as a small but
// non-trivial fixture for the analyses below.
func cantileverStrip(tst *testing.T, n int) *model.Model {
	mat, err := material.New(2.0e11, 0.3, 7800)
	if err != nil {
		tst.Fatal(err)
	}
	rule, err := quadrature.Get(quadrature.Quadrilateral, 2)
	if err != nil {
		tst.Fatal(err)
	}

	var nodes []*model.Node
	for i := 0; i <= n; i++ {
		nodes = append(nodes, model.NewNode(float64(i), 0, model.DofX, model.DofY))
		nodes = append(nodes, model.NewNode(float64(i), 1, model.DofX, model.DofY))
	}
	var elems []*model.Element
	for i := 0; i < n; i++ {
		bl, tl := 2*i, 2*i+1
		br, tr := 2*(i+1), 2*(i+1)+1
		C := make([]*material.LinearElastic, rule.NumPoints())
		th := make([]float64, rule.NumPoints())
		for p := range C {
			C[p] = mat
			th[p] = 0.1
		}
		e, err := model.NewElement(element.Quad4, []int{tr, tl, bl, br}, C, th, rule)
		if err != nil {
			tst.Fatal(err)
		}
		elems = append(elems, e)
	}
	m, err := model.New(nodes, elems)
	if err != nil {
		tst.Fatal(err)
	}
	if err := m.Fix([]int{0, 1}, []int{model.DofX, model.DofY}); err != nil {
		tst.Fatal(err)
	}
	return m
}

// Test_analysis01 checks modal orthogonality (invariant 6): with mass
// normalization, φᵢᵀ M_ff φⱼ = δᵢⱼ and φᵢᵀ K_ff φⱼ = ωᵢ² δᵢⱼ.
func Test_analysis01(tst *testing.T) {
	chk.PrintTitle("modal orthogonality")
	m := cantileverStrip(tst, 6)
	res, err := Modal(m, ModalConfig{NumModes: 4, Normalization: NormalizeMass})
	if err != nil {
		tst.Fatal(err)
	}
	if len(res.Omega) == 0 {
		tst.Fatal("expected at least one mode")
	}

	Mff, err := m.DenseBlocks(m.MassContribution, m.Masses())
	if err != nil {
		tst.Fatal(err)
	}
	Kff, err := m.DenseBlocks(m.StiffnessContribution, m.Springs())
	if err != nil {
		tst.Fatal(err)
	}
	nf := m.NumFree()
	nm := len(res.Omega)
	for a := 0; a < nm; a++ {
		for b := 0; b < nm; b++ {
			mab, kab := 0.0, 0.0
			for i := 0; i < nf; i++ {
				mv, kv := 0.0, 0.0
				for k := 0; k < nf; k++ {
					mv += Mff[i][k] * res.PhiFree[k][b]
					kv += Kff[i][k] * res.PhiFree[k][b]
				}
				mab += res.PhiFree[i][a] * mv
				kab += res.PhiFree[i][a] * kv
			}
			wantM := 0.0
			wantK := 0.0
			if a == b {
				wantM = 1
				wantK = res.Omega[a] * res.Omega[a]
			}
			chk.Float64(tst, "phi^T M phi", 1e-6, mab, wantM)
			chk.Float64(tst, "phi^T K phi", 1e-2, kab, wantK)
		}
	}
}

// Test_analysis02 is the Newmark stability property (invariant 7): a
// ζ=0, ω=1 oscillator released from q0=1 reproduces cos(t) to 1e-3 RMS
// over [0,10] with Δt=0.1.
func Test_analysis02(tst *testing.T) {
	chk.PrintTitle("newmark free vibration")
	dt := 0.1
	n := int(10/dt) + 1
	f := make([]float64, n)
	q, _, _ := newmarkRecursion(1, 0, dt, f, 1, 0)

	sumSq := 0.0
	for i, qi := range q {
		t := float64(i) * dt
		d := qi - math.Cos(t)
		sumSq += d * d
	}
	rms := math.Sqrt(sumSq / float64(n))
	if rms > 1e-3 {
		tst.Fatalf("RMS error %v exceeds 1e-3", rms)
	}
}

// Test_analysis03 is the static-modal consistency property (invariant 8):
// the modal sum over all modes reproduces the direct-solve static
// displacement under a constant load.
func Test_analysis03(tst *testing.T) {
	chk.PrintTitle("static/modal consistency")
	m := cantileverStrip(tst, 6)
	lastNode := len(m.Nodes) - 1
	if err := m.AddLoad(lastNode, model.DofY, []float64{0}, []float64{-1000}); err != nil {
		tst.Fatal(err)
	}

	direct, err := Static(m)
	if err != nil {
		tst.Fatal(err)
	}
	gY := m.GlobalNumber(lastNode, model.DofY)
	_ = gY

	res, err := Modal(m, ModalConfig{NumModes: m.NumFree(), Normalization: NormalizeMass})
	if err != nil {
		tst.Fatal(err)
	}
	f := m.LoadVector(0)
	nf := m.NumFree()
	uModal := make([]float64, nf)
	for j := range res.Omega {
		proj := 0.0
		for i := 0; i < nf; i++ {
			proj += res.PhiFree[i][j] * f[i]
		}
		coeff := proj / (res.Omega[j] * res.Omega[j])
		for i := 0; i < nf; i++ {
			uModal[i] += coeff * res.PhiFree[i][j]
		}
	}

	maxDiff := 0.0
	for i := 0; i < nf; i++ {
		if d := math.Abs(uModal[i] - direct.UFree[i]); d > maxDiff {
			maxDiff = d
		}
	}
	maxAbs := 0.0
	for i := 0; i < nf; i++ {
		if a := math.Abs(direct.UFree[i]); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs > 0 && maxDiff/maxAbs > 1e-6 {
		tst.Fatalf("modal sum over all modes should match direct solve closely: relative diff %v", maxDiff/maxAbs)
	}
}

// Test_analysis04 checks strain recovery's round-trip property (invariant
// 9) through the full nodal-averaging driver.
func Test_analysis04(tst *testing.T) {
	chk.PrintTitle("nodal strain round trip")
	m := cantileverStrip(tst, 3)

	b, d := 0.002, -0.0011
	full := make([][]float64, m.NumDof())
	for i := range full {
		full[i] = []float64{0}
	}
	for _, n := range m.Nodes {
		gx := m.GlobalNumber(n.Label, model.DofX)
		gy := m.GlobalNumber(n.Label, model.DofY)
		full[gx] = []float64{b * n.Coords[0]}
		full[gy] = []float64{d * n.Coords[1]}
	}

	for _, n := range m.Nodes {
		eps, err := NodalStrain(m, n.Label, full)
		if err != nil {
			tst.Fatal(err)
		}
		chk.Float64(tst, "exx", 1e-8, eps[0][0], b)
		chk.Float64(tst, "eyy", 1e-8, eps[1][0], d)
		chk.Float64(tst, "exy", 1e-8, eps[2][0], 0)
	}
}
