package element

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/ETH-WindMil/benchmarktu1402/quadrature"
)

// lagrange1 is the 1-D Lagrange basis function for a node at natural
// coordinate xi, evaluated at x. hasCenter selects which node layout xi is
// drawn from: true for the 3-node quadratic basis {-1, 0, +1} (an
// odd-points-per-axis rule samples its own centroid, e.g. rule 3), false
// for the 2-node linear basis {-1, +1} (an even-points-per-axis rule never
// samples a centroid, e.g. rule 2 — the only rule this engine ever
// constructs). Applying the quadratic basis to a rule with no centroid
// sample silently drops that basis function's weight and breaks partition
// of unity; the caller picks the matching basis from the rule's
// points-per-axis count.
func lagrange1(xi, x float64, hasCenter bool) (float64, error) {
	if hasCenter {
		switch {
		case xi < -0.5:
			return x * (x - 1) / 2, nil
		case xi > 0.5:
			return x * (x + 1) / 2, nil
		case math.Abs(xi) <= 0.5:
			return 1 - x*x, nil
		}
		return 0, chk.Err("element: InvalidConfig: unsupported extrapolation node coordinate %v", xi)
	}
	switch {
	case xi < 0:
		return (1 - x) / 2, nil
	case xi > 0:
		return (1 + x) / 2, nil
	}
	return 0, chk.Err("element: InvalidConfig: unsupported extrapolation node coordinate %v", xi)
}

// ExtrapolateStrain computes epsilon = B.U at every integration point of
// rule, then extrapolates those values to the natural coordinate (r1,r2)
// using the shape functions of the virtual element whose "nodes" are the
// Gauss points themselves, evaluated at (r1/s, r2/s) with s = max|ip.R1|
// (spec.md §4.2, §9). U is the 2n x T element-local displacement matrix (T
// time columns); the result is a 3 x T strain matrix.
//
// A 1-point rule has s=0 and is rejected with InvalidConfig (spec.md §9,
// Open Question 3): the division that inverts the Gauss sample placement is
// undefined for a centroid-only rule.
func ExtrapolateStrain(k Kind, X [][]float64, U [][]float64, rule *quadrature.Rule, r1, r2 float64) ([][]float64, error) {
	np := rule.NumPoints()
	if np <= 1 {
		return nil, chk.Err("element: InvalidConfig: strain recovery requires more than one integration point, got %d", np)
	}

	s := 0.0
	for _, ip := range rule.Points {
		if math.Abs(ip.R1) > s {
			s = math.Abs(ip.R1)
		}
	}
	if s == 0 {
		return nil, chk.Err("element: InvalidConfig: strain recovery rule has no off-centroid point (max|r1|=0)")
	}

	T := len(U[0])
	out := la.MatAlloc(3, T)
	x, y := r1/s, r2/s
	hasCenter := rule.Number%2 == 1

	for _, ip := range rule.Points {
		eps, err := StrainAtPoint(k, X, ip.R1, ip.R2, U)
		if err != nil {
			return nil, err
		}
		lx, err := lagrange1(ip.R1/s, x, hasCenter)
		if err != nil {
			return nil, err
		}
		ly, err := lagrange1(ip.R2/s, y, hasCenter)
		if err != nil {
			return nil, err
		}
		w := lx * ly
		for i := 0; i < 3; i++ {
			for j := 0; j < T; j++ {
				out[i][j] += w * eps[i][j]
			}
		}
	}
	return out, nil
}

// CornerCoords are the spec.md §4.5 "Strain recovery" corner natural
// coordinates, in the element library's fixed corner-node order (++, −+,
// −−, +−ᵀ — matching quad4N/quad8N/quad9N's own node 0..3 ordering).
var CornerCoords = [4][2]float64{
	{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
}

// NodeCoord returns the canonical natural coordinate of local node index i
// of kind k (corners 0..3, then midside nodes for Quad8/Quad9, then the
// center node for Quad9). spec.md §4.5 describes strain recovery at the
// four corner natural coordinates; this generalizes that to every local
// node so the same driver also serves Quad8/Quad9 midside/center nodes.
func NodeCoord(k Kind, i int) (r1, r2 float64, err error) {
	if i < 0 || i >= k.NumNodes() {
		return 0, 0, chk.Err("element: InvalidElement: node index %d out of range for %s", i, k)
	}
	if i < 4 {
		return CornerCoords[i][0], CornerCoords[i][1], nil
	}
	midsides := [4][2]float64{{0, 1}, {-1, 0}, {0, -1}, {1, 0}}
	if i < 8 {
		return midsides[i-4][0], midsides[i-4][1], nil
	}
	return 0, 0, nil // Quad9 center
}
