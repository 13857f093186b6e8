// Package element implements the isoparametric Quad4/Quad8/Quad9
// plane-stress/plane-strain elements: shape functions and derivatives,
// Jacobian, strain-displacement matrix, and element stiffness/mass
// integration, plus strain recovery by extrapolation from Gauss points.
package element

import "github.com/cpmech/gosl/chk"

// Kind identifies one of the three supported element topologies.
type Kind int

const (
	Quad4 Kind = iota
	Quad8
	Quad9
)

// NumNodes returns the node count for a Kind.
func (k Kind) NumNodes() int {
	switch k {
	case Quad4:
		return 4
	case Quad8:
		return 8
	case Quad9:
		return 9
	}
	return 0
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Quad4:
		return "quad4"
	case Quad8:
		return "quad8"
	case Quad9:
		return "quad9"
	}
	return "invalid"
}

// shapeFunc is the per-kind scalar shape function evaluator, N_i(r1,r2) for
// i in [0,nnodes). Keeping this a function-pointer field (set once per Kind,
// looked up by a small switch below) rather than a method on an interface
// value avoids virtual dispatch in the inner Gauss-point loop, per the
// element library's monomorphize-by-kind design.
type shapeFunc func(r1, r2 float64) []float64

// derivFunc is the per-kind derivative evaluator, returning dN/dr1 and
// dN/dr2 as two n-length slices.
type derivFunc func(r1, r2 float64) (dNdr1, dNdr2 []float64)

func funcsFor(k Kind) (shapeFunc, derivFunc, error) {
	switch k {
	case Quad4:
		return quad4N, quad4dN, nil
	case Quad8:
		return quad8N, quad8dN, nil
	case Quad9:
		return quad9N, quad9dN, nil
	}
	return nil, nil, chk.Err("element: InvalidElement: unknown kind %v", k)
}

// N evaluates the scalar shape functions of kind k at (r1,r2).
func N(k Kind, r1, r2 float64) ([]float64, error) {
	f, _, err := funcsFor(k)
	if err != nil {
		return nil, err
	}
	return f(r1, r2), nil
}

// DN evaluates the 2 x n derivative matrix (rows r1, r2) of kind k at
// (r1,r2).
func DN(k Kind, r1, r2 float64) (dNdr1, dNdr2 []float64, err error) {
	_, d, err := funcsFor(k)
	if err != nil {
		return nil, nil, err
	}
	dNdr1, dNdr2 = d(r1, r2)
	return
}

func quad4N(r1, r2 float64) []float64 {
	return []float64{
		0.25 * (1 + r1) * (1 + r2),
		0.25 * (1 - r1) * (1 + r2),
		0.25 * (1 - r1) * (1 - r2),
		0.25 * (1 + r1) * (1 - r2),
	}
}

func quad4dN(r1, r2 float64) (dr1, dr2 []float64) {
	dr1 = []float64{
		(1 + r2) / 4,
		-(1 + r2) / 4,
		-(1 - r2) / 4,
		(1 - r2) / 4,
	}
	dr2 = []float64{
		(1 + r1) / 4,
		(1 - r1) / 4,
		-(1 - r1) / 4,
		-(1 + r1) / 4,
	}
	return
}

func quad8N(r1, r2 float64) []float64 {
	return []float64{
		0.25 * (1 + r1) * (1 + r2) * (r1 + r2 - 1),
		0.25 * (1 - r1) * (1 + r2) * (-r1 + r2 - 1),
		0.25 * (1 - r1) * (1 - r2) * (-r1 - r2 - 1),
		0.25 * (1 + r1) * (1 - r2) * (r1 - r2 - 1),
		0.5 * (1 - r1*r1) * (1 + r2),
		0.5 * (1 - r1) * (1 - r2*r2),
		0.5 * (1 - r1*r1) * (1 - r2),
		0.5 * (1 + r1) * (1 - r2*r2),
	}
}

func quad8dN(r1, r2 float64) (dr1, dr2 []float64) {
	dr1 = make([]float64, 8)
	dr2 = make([]float64, 8)

	dr1[0] = (1 + r2) * (2*r1 + r2) / 4
	dr1[1] = -(1 + r2) * (-2*r1 + r2) / 4
	dr1[2] = (1 - r2) * (2*r1 + r2) / 4
	dr1[3] = (1 - r2) * (2*r1 - r2) / 4
	dr1[4] = -2 * r1 * (1 + r2) / 2
	dr1[5] = -(1 - r2*r2) / 2
	dr1[6] = -2 * r1 * (1 - r2) / 2
	dr1[7] = (1 - r2*r2) / 2

	dr2[0] = (1 + r1) * (2*r2 + r1) / 4
	dr2[1] = (1 - r1) * (2*r2 - r1) / 4
	dr2[2] = (1 - r1) * (2*r2 + r1) / 4
	dr2[3] = (1 + r1) * (2*r2 - r1) / 4
	dr2[4] = (1 - r1*r1) / 2
	dr2[5] = -2 * r2 * (1 - r1) / 2
	dr2[6] = -(1 - r1*r1) / 2
	dr2[7] = -2 * r2 * (1 + r1) / 2

	return
}

func quad9N(r1, r2 float64) []float64 {
	return []float64{
		(1 + r1) * (1 + r2) * r1 * r2 / 4,
		-(1 - r1) * (1 + r2) * r1 * r2 / 4,
		(1 - r1) * (1 - r2) * r1 * r2 / 4,
		-(1 + r1) * (1 - r2) * r1 * r2 / 4,
		(1 - r1*r1) * (1 + r2) * r2 / 2,
		-(1 - r1) * r1 * (1 - r2*r2) / 2,
		-(1 - r1*r1) * (1 - r2) * r2 / 2,
		(1 + r1) * r1 * (1 - r2*r2) / 2,
		(1 - r1*r1) * (1 - r2*r2),
	}
}

func quad9dN(r1, r2 float64) (dr1, dr2 []float64) {
	dr1 = make([]float64, 9)
	dr2 = make([]float64, 9)

	dr1[0] = (1 + r2) * (2*r1*r2 + r2) / 4
	dr1[1] = (1 + r2) * (2*r1*r2 - r2) / 4
	dr1[2] = -(1 - r2) * (2*r1*r2 - r2) / 4
	dr1[3] = -(1 - r2) * (2*r1*r2 + r2) / 4
	dr1[4] = -2 * r1 * r2 * (1 + r2) / 2
	dr1[5] = -(1 - 2*r1) * (1 - r2*r2) / 2
	dr1[6] = 2 * r1 * r2 * (1 - r2) / 2
	dr1[7] = (1 + 2*r1) * (1 - r2*r2) / 2
	dr1[8] = -2 * r1 * (1 - r2*r2)

	dr2[0] = (1 + r1) * (2*r1*r2 + r1) / 4
	dr2[1] = -(1 - r1) * (2*r1*r2 + r1) / 4
	dr2[2] = -(1 - r1) * (2*r1*r2 - r1) / 4
	dr2[3] = (1 + r1) * (2*r1*r2 - r1) / 4
	dr2[4] = (1 - r1*r1) * (1 + 2*r2) / 2
	dr2[5] = (1 - r1) * 2 * r1 * r2 / 2
	dr2[6] = -(1 - r1*r1) * (1 - 2*r2) / 2
	dr2[7] = -(1 + r1) * 2 * r1 * r2 / 2
	dr2[8] = -2 * r2 * (1 - r1*r1)

	return
}
