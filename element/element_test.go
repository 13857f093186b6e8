package element

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ETH-WindMil/benchmarktu1402/material"
	"github.com/ETH-WindMil/benchmarktu1402/quadrature"
)

func unitSquare(n int) [][]float64 {
	switch n {
	case 4:
		return [][]float64{{2, 1}, {0, 1}, {0, 0}, {2, 0}}
	case 8:
		return [][]float64{
			{2, 2}, {0, 2}, {0, 0}, {2, 0},
			{1, 2}, {0, 1}, {1, 0}, {2, 1},
		}
	case 9:
		return [][]float64{
			{2, 2}, {0, 2}, {0, 0}, {2, 0},
			{1, 2}, {0, 1}, {1, 0}, {2, 1}, {1, 1},
		}
	}
	return nil
}

// Test_elem01 checks the shape-function partition of unity at a handful of
// natural coordinates for every element kind.
func Test_elem01(tst *testing.T) {
	chk.PrintTitle("partition of unity")
	for _, k := range []Kind{Quad4, Quad8, Quad9} {
		for _, pt := range [][2]float64{{0, 0}, {0.5, -0.3}, {-1, 1}} {
			Ns, err := N(k, pt[0], pt[1])
			if err != nil {
				tst.Fatal(err)
			}
			sum := 0.0
			for _, v := range Ns {
				sum += v
			}
			chk.Float64(tst, "sum N", 1e-12, sum, 1)
		}
	}
}

// Test_elem02 is the element patch test (invariant 2): a constant-strain
// displacement field produces the same strain at every integration point.
func Test_elem02(tst *testing.T) {
	chk.PrintTitle("constant strain patch test")

	a, b, c, d := 0.001, 0.002, -0.0005, 0.0015
	for _, k := range []Kind{Quad4, Quad8, Quad9} {
		X := unitSquare(k.NumNodes())
		n := k.NumNodes()
		U := make([]float64, 2*n)
		for i := 0; i < n; i++ {
			x, y := X[i][0], X[i][1]
			U[2*i] = a + b*x     // u = a + b x
			U[2*i+1] = c + d*y   // v = c + d y
		}
		Umat := [][]float64{}
		for i := range U {
			Umat = append(Umat, []float64{U[i]})
		}
		rule, err := quadrature.Get(quadrature.Quadrilateral, 3)
		if err != nil {
			tst.Fatal(err)
		}
		for _, ip := range rule.Points {
			eps, err := StrainAtPoint(k, X, ip.R1, ip.R2, Umat)
			if err != nil {
				tst.Fatal(err)
			}
			chk.Float64(tst, "exx", 1e-10, eps[0][0], b)
			chk.Float64(tst, "eyy", 1e-10, eps[1][0], d)
			chk.Float64(tst, "exy", 1e-10, eps[2][0], 0)
		}
	}
}

// Test_elem03 checks K_e and M_e symmetry (invariant 4/5) and that every
// diagonal entry of M_e is positive for a well-shaped Quad4.
func Test_elem03(tst *testing.T) {
	chk.PrintTitle("stiffness/mass symmetry")

	mat, err := material.New(1.8e11, 0.3, 2000)
	if err != nil {
		tst.Fatal(err)
	}
	X := unitSquare(4)
	rule, err := quadrature.Get(quadrature.Quadrilateral, 2)
	if err != nil {
		tst.Fatal(err)
	}
	C := make([][][]float64, rule.NumPoints())
	rho := make([]float64, rule.NumPoints())
	t := make([]float64, rule.NumPoints())
	for i := range C {
		C[i] = mat.CMatrix()
		rho[i] = mat.Rho
		t[i] = 0.2
	}
	Ke, err := Stiffness(Quad4, X, C, t, rule)
	if err != nil {
		tst.Fatal(err)
	}
	Me, err := Mass(Quad4, X, rho, t, rule)
	if err != nil {
		tst.Fatal(err)
	}
	n := len(Ke)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			chk.Float64(tst, "Ke sym", 1e-8, Ke[i][j], Ke[j][i])
			chk.Float64(tst, "Me sym", 1e-8, Me[i][j], Me[j][i])
		}
		if Me[i][i] <= 0 {
			tst.Fatalf("M_e diagonal entry %d is not positive: %v", i, Me[i][i])
		}
	}
}

// Test_elem04 is the strain round-trip property (invariant 9).
func Test_elem04(tst *testing.T) {
	chk.PrintTitle("strain recovery round trip")

	b, d := 0.0021, -0.0013
	X := unitSquare(4)
	n := 4
	Umat := make([][]float64, 2*n)
	for i := 0; i < n; i++ {
		Umat[2*i] = []float64{b * X[i][0]}
		Umat[2*i+1] = []float64{d * X[i][1]}
	}
	rule, err := quadrature.Get(quadrature.Quadrilateral, 2)
	if err != nil {
		tst.Fatal(err)
	}
	for _, corner := range CornerCoords {
		eps, err := ExtrapolateStrain(Quad4, X, Umat, rule, corner[0], corner[1])
		if err != nil {
			tst.Fatal(err)
		}
		chk.Float64(tst, "exx", 1e-10, eps[0][0], b)
		chk.Float64(tst, "eyy", 1e-10, eps[1][0], d)
		chk.Float64(tst, "exy", 1e-10, eps[2][0], 0)
	}

	// rule 1 (centroid only) must be rejected
	rule1, err := quadrature.Get(quadrature.Quadrilateral, 1)
	if err != nil {
		tst.Fatal(err)
	}
	if _, err := ExtrapolateStrain(Quad4, X, Umat, rule1, 1, 1); err == nil {
		tst.Fatal("expected InvalidConfig for 1-point rule")
	}
}
