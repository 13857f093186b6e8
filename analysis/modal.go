// Package analysis implements the Modal, Transient, and Static solvers and
// the shared strain-recovery driver (spec.md §4.5).
package analysis

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"

	"github.com/ETH-WindMil/benchmarktu1402/model"
)

// Normalization selects how mode shapes are scaled.
type Normalization int

const (
	NormalizeMass Normalization = iota
	NormalizeDisplacement
)

// ModalConfig configures Modal (spec.md §4.5).
type ModalConfig struct {
	NumModes      int
	Tolerance     float64
	Shift         float64
	Normalization Normalization
	ReturnModes   bool
}

// ModalResult holds the extracted natural frequencies and, optionally, the
// full-vector mode shapes.
type ModalResult struct {
	Frequencies []float64   // Hz, ascending
	Omega       []float64   // rad/s, ascending
	PhiFree     [][]float64 // [free dof][mode]
	PhiFull     [][]float64 // [global dof][mode], nil unless ReturnModes
}

// Modal solves K_ff φ = λ M_ff φ for the cfg.NumModes smallest non-negative
// eigenvalues, using a dense Cholesky reduction to a standard symmetric
// eigenproblem (spec.md §4.5, §9 Eigensolver dependency decision).
func Modal(m *model.Model, cfg ModalConfig) (*ModalResult, error) {
	if cfg.NumModes < 1 {
		return nil, chk.Err("analysis: InvalidConfig: NumModes must be >= 1, got %d", cfg.NumModes)
	}
	if cfg.Shift < 0 {
		return nil, chk.Err("analysis: InvalidConfig: Shift must be >= 0, got %v", cfg.Shift)
	}
	nf := m.NumFree()
	if nf == 0 {
		return nil, chk.Err("analysis: InvalidConfig: model has no free dofs")
	}

	Kff, err := m.DenseBlocks(m.StiffnessContribution, m.Springs())
	if err != nil {
		return nil, err
	}
	Mff, err := m.DenseBlocks(m.MassContribution, m.Masses())
	if err != nil {
		return nil, err
	}

	K := mat.NewSymDense(nf, nil)
	M := mat.NewSymDense(nf, nil)
	for i := 0; i < nf; i++ {
		for j := i; j < nf; j++ {
			K.SetSym(i, j, Kff[i][j])
			M.SetSym(i, j, Mff[i][j])
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(M); !ok {
		return nil, chk.Err("analysis: SingularSystem: M_ff is not positive definite")
	}
	var L mat.TriDense
	chol.LTo(&L)
	var Lt mat.Dense
	Lt.CloneFrom(L.T())

	// Reduce the generalized problem K φ = λ M φ to the standard symmetric
	// problem A y = λ y with A = L⁻¹ K L⁻ᵀ, M = L Lᵀ.
	var Y, Z mat.Dense
	if err := Y.Solve(&L, K); err != nil {
		return nil, chk.Err("analysis: SingularSystem: %v", err)
	}
	if err := Z.Solve(&L, Y.T()); err != nil {
		return nil, chk.Err("analysis: SingularSystem: %v", err)
	}
	A := mat.NewSymDense(nf, nil)
	for i := 0; i < nf; i++ {
		for j := i; j < nf; j++ {
			A.SetSym(i, j, 0.5*(Z.At(i, j)+Z.At(j, i)))
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(A, true); !ok {
		return nil, chk.Err("analysis: EigenSolveFailure: symmetric eigendecomposition did not converge")
	}
	lambdas := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	type pair struct {
		lambda float64
		col    int
	}
	kept := make([]pair, 0, len(lambdas))
	for i, lam := range lambdas {
		if lam < 0 {
			continue
		}
		kept = append(kept, pair{lam, i})
	}
	if n := len(lambdas) - len(kept); n > 0 {
		utl.Pf("analysis: warning: filtered %d negative eigenvalue(s) near the rigid-body range\n", n)
	}
	if len(kept) > cfg.NumModes {
		kept = kept[:cfg.NumModes]
	}
	if len(kept) == 0 {
		return nil, chk.Err("analysis: EigenSolveFailure: no non-negative eigenvalues found")
	}

	res := &ModalResult{}
	for _, p := range kept {
		res.Omega = append(res.Omega, math.Sqrt(p.lambda))
		res.Frequencies = append(res.Frequencies, math.Sqrt(p.lambda)/(2*math.Pi))
	}

	Y2 := mat.NewDense(nf, len(kept), nil)
	for col, p := range kept {
		for i := 0; i < nf; i++ {
			Y2.Set(i, col, vecs.At(i, p.col))
		}
	}
	var Phi mat.Dense
	if err := Phi.Solve(&Lt, Y2); err != nil {
		return nil, chk.Err("analysis: SingularSystem: %v", err)
	}

	res.PhiFree = make([][]float64, nf)
	for i := 0; i < nf; i++ {
		res.PhiFree[i] = make([]float64, len(kept))
		for j := range kept {
			res.PhiFree[i][j] = Phi.At(i, j)
		}
	}

	for j := range kept {
		switch cfg.Normalization {
		case NormalizeMass:
			normalizeMass(res.PhiFree, Mff, j)
		case NormalizeDisplacement:
			normalizeDisplacement(res.PhiFree, j)
		default:
			return nil, chk.Err("analysis: InvalidConfig: unknown normalization %v", cfg.Normalization)
		}
	}

	if cfg.ReturnModes {
		res.PhiFull = scatterModes(m, res.PhiFree)
	}

	return res, nil
}

func normalizeMass(phi [][]float64, Mff [][]float64, col int) {
	nf := len(phi)
	v := make([]float64, nf)
	for i := range v {
		v[i] = phi[i][col]
	}
	s := 0.0
	for i := 0; i < nf; i++ {
		mv := 0.0
		for k := 0; k < nf; k++ {
			mv += Mff[i][k] * v[k]
		}
		s += v[i] * mv
	}
	if s <= 0 {
		return
	}
	scale := 1 / math.Sqrt(s)
	for i := range phi {
		phi[i][col] *= scale
	}
}

func normalizeDisplacement(phi [][]float64, col int) {
	maxAbs := 0.0
	for i := range phi {
		if a := math.Abs(phi[i][col]); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return
	}
	for i := range phi {
		phi[i][col] /= maxAbs
	}
}

// scatterModes expands a free-dof mode-shape matrix to full dof numbering,
// leaving restrained rows zero (spec.md §4.5).
func scatterModes(m *model.Model, phiFree [][]float64) [][]float64 {
	nModes := 0
	if len(phiFree) > 0 {
		nModes = len(phiFree[0])
	}
	full := make([][]float64, m.NumDof())
	for i := range full {
		full[i] = make([]float64, nModes)
	}
	for localIdx, g := range m.FreeDofNumbers() {
		full[g] = phiFree[localIdx]
	}
	return full
}
