package element

import "github.com/cpmech/gosl/la"

// Jacobian computes J = dN . X, the 2x2 mapping from natural to physical
// coordinates, given the n x 2 nodal coordinate matrix X.
func Jacobian(dNdr1, dNdr2 []float64, X [][]float64) (J [][]float64) {
	J = la.MatAlloc(2, 2)
	n := len(dNdr1)
	for i := 0; i < n; i++ {
		J[0][0] += dNdr1[i] * X[i][0]
		J[0][1] += dNdr1[i] * X[i][1]
		J[1][0] += dNdr2[i] * X[i][0]
		J[1][1] += dNdr2[i] * X[i][1]
	}
	return
}

// BMatrix builds the 3x(2n) strain-displacement matrix at (r1,r2): rows
// [εxx, εyy, γxy] over the interleaved (u,v) DOF ordering, plus the
// Jacobian used to get there and its determinant.
func BMatrix(k Kind, X [][]float64, r1, r2 float64) (B [][]float64, J [][]float64, detJ float64, err error) {
	dNdr1, dNdr2, err := DN(k, r1, r2)
	if err != nil {
		return
	}
	J = Jacobian(dNdr1, dNdr2, X)

	Jinv := la.MatAlloc(2, 2)
	detJ, err = la.MatInv(Jinv, J, MinDet)
	if err != nil {
		return
	}

	n := k.NumNodes()
	// data[i] = [du/dx_i, du/dy_i] = Jinv . [dN_i/dr1; dN_i/dr2]
	dudx := make([]float64, n)
	dudy := make([]float64, n)
	for i := 0; i < n; i++ {
		dudx[i] = Jinv[0][0]*dNdr1[i] + Jinv[0][1]*dNdr2[i]
		dudy[i] = Jinv[1][0]*dNdr1[i] + Jinv[1][1]*dNdr2[i]
	}

	B = la.MatAlloc(3, 2*n)
	for i := 0; i < n; i++ {
		// εxx = u,x  -> row 0, u-dof of node i
		B[0][2*i] = dudx[i]
		// εyy = v,y  -> row 1, v-dof of node i
		B[1][2*i+1] = dudy[i]
		// γxy = u,y + v,x -> row 2
		B[2][2*i] = dudy[i]
		B[2][2*i+1] = dudx[i]
	}
	return
}

// NMatrix expands the scalar shape functions into the 2x(2n) shape-function
// matrix used by the mass integral, by row-replicating over the u,v DOFs.
func NMatrix(k Kind, r1, r2 float64) (Nmat [][]float64, err error) {
	Ns, err := N(k, r1, r2)
	if err != nil {
		return nil, err
	}
	n := len(Ns)
	Nmat = la.MatAlloc(2, 2*n)
	for i := 0; i < n; i++ {
		Nmat[0][2*i] = Ns[i]
		Nmat[1][2*i+1] = Ns[i]
	}
	return
}
