package element

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/ETH-WindMil/benchmarktu1402/quadrature"
)

// Stiffness integrates K_e = sum_p w1*w2 * B^T C_p B * |det J| * t_p over the
// supplied rule. C (one per integration point) and t (thickness per
// integration point) must have length equal to rule.NumPoints().
func Stiffness(k Kind, X [][]float64, C [][][]float64, t []float64, rule *quadrature.Rule) ([][]float64, error) {
	n := k.NumNodes()
	if len(X) != n {
		return nil, chk.Err("element: InvalidElement: expected %d nodes, got %d", n, len(X))
	}
	np := rule.NumPoints()
	if len(C) != np || len(t) != np {
		return nil, chk.Err("element: InvalidElement: material/thickness length %d/%d must match rule points %d", len(C), len(t), np)
	}

	Ke := la.MatAlloc(2*n, 2*n)
	scratch := la.MatAlloc(2*n, 2*n)
	for p, ip := range rule.Points {
		B, _, detJ, err := BMatrix(k, X, ip.R1, ip.R2)
		if err != nil {
			return nil, err
		}
		if math.Abs(detJ) < MinDet {
			return nil, chk.Err("element: InvalidElement: singular Jacobian at integration point %d", p)
		}
		w := ip.W1 * ip.W2 * math.Abs(detJ) * t[p]

		// scratch := w * B^T . C_p . B
		la.MatTrMul3(scratch, w, B, C[p], B)
		for i := 0; i < 2*n; i++ {
			for j := 0; j < 2*n; j++ {
				Ke[i][j] += scratch[i][j]
			}
		}
	}
	return Ke, nil
}

// Mass integrates M_e = sum_p w1*w2 * N^T N * rho_p * |det J| * t_p, where N
// is the 2x(2n) shape-function matrix (row-replicated over u,v DOFs).
func Mass(k Kind, X [][]float64, rho []float64, t []float64, rule *quadrature.Rule) ([][]float64, error) {
	n := k.NumNodes()
	if len(X) != n {
		return nil, chk.Err("element: InvalidElement: expected %d nodes, got %d", n, len(X))
	}
	np := rule.NumPoints()
	if len(rho) != np || len(t) != np {
		return nil, chk.Err("element: InvalidElement: density/thickness length %d/%d must match rule points %d", len(rho), len(t), np)
	}

	Me := la.MatAlloc(2*n, 2*n)
	for p, ip := range rule.Points {
		Nmat, err := NMatrix(k, ip.R1, ip.R2)
		if err != nil {
			return nil, err
		}
		_, _, detJ, err := BMatrix(k, X, ip.R1, ip.R2)
		if err != nil {
			return nil, err
		}
		w := ip.W1 * ip.W2 * math.Abs(detJ) * rho[p] * t[p]

		for i := 0; i < 2*n; i++ {
			for j := 0; j < 2*n; j++ {
				sum := 0.0
				sum += Nmat[0][i] * Nmat[0][j]
				sum += Nmat[1][i] * Nmat[1][j]
				Me[i][j] += w * sum
			}
		}
	}
	return Me, nil
}

// StrainAtPoint returns epsilon = B.u at natural coordinates (r1,r2), for a
// displacement matrix U with 2n rows (one per element DOF) and T columns
// (one per time step; T=1 for a single static/modal snapshot).
func StrainAtPoint(k Kind, X [][]float64, r1, r2 float64, U [][]float64) ([][]float64, error) {
	B, _, _, err := BMatrix(k, X, r1, r2)
	if err != nil {
		return nil, err
	}
	out := la.MatAlloc(3, len(U[0]))
	la.MatMul(out, 1, B, U)
	return out, nil
}
