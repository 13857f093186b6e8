package quadrature

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_quad01 checks S6: integrating (r1^2+r2^2) over the reference square
// returns 8/3 for rule 2 and above, and 0 for the 1-point rule.
func Test_quad01(tst *testing.T) {
	chk.PrintTitle("quadrilateral rule degree")

	f := func(r1, r2 float64) float64 { return r1*r1 + r2*r2 }

	rule1, err := Get(Quadrilateral, 1)
	if err != nil {
		tst.Fatal(err)
	}
	sum := 0.0
	for _, p := range rule1.Points {
		sum += f(p.R1, p.R2) * p.W1 * p.W2
	}
	chk.Float64(tst, "rule 1", 1e-15, sum, 0)

	for _, n := range []int{2, 3, 4, 5} {
		rule, err := Get(Quadrilateral, n)
		if err != nil {
			tst.Fatal(err)
		}
		sum := 0.0
		for _, p := range rule.Points {
			sum += f(p.R1, p.R2) * p.W1 * p.W2
		}
		chk.Float64(tst, "rule", 1e-12, sum, 8.0/3.0)
	}
}

// Test_quad02 checks InvalidRule is reported for unknown (domain, rule)
// pairs.
func Test_quad02(tst *testing.T) {
	chk.PrintTitle("invalid rule")

	if _, err := Get(Quadrilateral, 99); err == nil {
		tst.Fatal("expected InvalidRule error")
	}
	if _, err := Get(Tetrahedron, 14); err == nil {
		tst.Fatal("expected InvalidRule error for unsupported rule 14")
	}
}

// Test_quad03 checks triangle rule weights sum to 1 (area-normalized, same
// convention as the tetrahedron table: weights are fractions of the
// reference domain rather than its literal area; the quadrilateral and
// hexahedron tables instead carry the 1-D Gauss weights, whose products sum
// to the literal area 4 and volume 8).
func Test_quad03(tst *testing.T) {
	chk.PrintTitle("triangle constant integral")

	for _, n := range []int{1, 3, -3, 7} {
		rule, err := Get(Triangle, n)
		if err != nil {
			tst.Fatal(err)
		}
		sum := 0.0
		for _, p := range rule.Points {
			sum += p.W1
		}
		chk.Float64(tst, "triangle weight sum", 1e-12, sum, 1)
	}
}

// Test_quad04 checks tetrahedron rule weights sum to 1 (volume-normalized).
func Test_quad04(tst *testing.T) {
	chk.PrintTitle("tetrahedron weight sum")

	for _, n := range []int{1, 4, 8, -8, 15, -15} {
		rule, err := Get(Tetrahedron, n)
		if err != nil {
			tst.Fatal(err)
		}
		sum := 0.0
		for _, p := range rule.Points {
			sum += p.W1
		}
		chk.Float64(tst, "tet weight sum", 1e-12, sum, 1)
	}
}
