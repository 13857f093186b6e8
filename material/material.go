// Package material implements the linear-elastic plane-stress constitutive
// model used by the element library.
package material

import "github.com/cpmech/gosl/chk"

// LinearElastic holds Young's modulus, Poisson's ratio, density and the
// derived shear modulus and plane-stress constitutive matrix C. Immutable
// after construction.
type LinearElastic struct {
	E, Nu, Rho float64
	G          float64
	C          [3][3]float64
}

// New builds a LinearElastic material, deriving G and C. Returns
// InvalidConfig if E<=0 or |ν|>=1.
func New(E, nu, rho float64) (*LinearElastic, error) {
	if E <= 0 {
		return nil, chk.Err("material: InvalidConfig: E must be positive, got %v", E)
	}
	if nu <= -1 || nu >= 1 {
		return nil, chk.Err("material: InvalidConfig: nu must be in (-1,1), got %v", nu)
	}
	m := &LinearElastic{E: E, Nu: nu, Rho: rho}
	m.G = E / (2 * (1 + nu))
	ct := E / (1 - nu*nu)
	m.C[0][0] = ct
	m.C[0][1] = ct * nu
	m.C[1][0] = ct * nu
	m.C[1][1] = ct
	m.C[2][2] = ct * 0.5 * (1 - nu)
	return m, nil
}

// CMatrix returns C as a dense [][]float64, the shape the element package's
// gosl/la-based integration expects.
func (m *LinearElastic) CMatrix() [][]float64 {
	out := make([][]float64, 3)
	for i := range out {
		out[i] = []float64{m.C[i][0], m.C[i][1], m.C[i][2]}
	}
	return out
}

// Scaled returns a copy of m with E multiplied by factor, leaving ν and ρ
// unchanged. jobio.BuildModel does not call it: it scales E for damage
// itself and applies corrosion to thickness, not to E.
func (m *LinearElastic) Scaled(factor float64) *LinearElastic {
	scaled, _ := New(m.E*factor, m.Nu, m.Rho)
	return scaled
}
