package quadrature

import "math"

// linePoint is one 1-D Gauss point used both directly (Line domain) and as
// the building block for the tensor-product quadrilateral/hexahedron rules.
type linePoint struct {
	R, W float64
}

func lineRule1D(number int) []linePoint {
	switch number {
	case 1:
		return []linePoint{{0, 2}}

	case 2:
		p := math.Sqrt(3) / 3
		return []linePoint{{+p, 1}, {-p, 1}}

	case 3:
		p := math.Sqrt(3.0 / 5.0)
		return []linePoint{{-p, 5.0 / 9.0}, {0, 8.0 / 9.0}, {+p, 5.0 / 9.0}}

	case 4:
		p1 := math.Sqrt(525+70*math.Sqrt(30)) / 35
		p2 := math.Sqrt(525-70*math.Sqrt(30)) / 35
		w1 := (18 - math.Sqrt(30)) / 36
		w2 := (18 + math.Sqrt(30)) / 36
		return []linePoint{{-p1, w1}, {-p2, w2}, {+p2, w2}, {+p1, w1}}

	case 5:
		p1 := math.Sqrt(5+2*math.Sqrt(10.0/7.0)) / 3
		p2 := math.Sqrt(5-2*math.Sqrt(10.0/7.0)) / 3
		w1 := (322 - 13*math.Sqrt(70)) / 900
		w2 := (322 + 13*math.Sqrt(70)) / 900
		return []linePoint{{-p1, w1}, {-p2, w2}, {0, 128.0 / 225.0}, {+p2, w2}, {+p1, w1}}

	default:
		return nil
	}
}

func lineRule(number int) []Point {
	ps := lineRule1D(number)
	if ps == nil {
		return nil
	}
	pts := make([]Point, len(ps))
	for i, p := range ps {
		pts[i] = Point{R1: p.R, W1: p.W}
	}
	return pts
}

// quadrilateralRule and hexahedronRule are the tensor products of the 1-D
// Gauss rule with itself: rows are ordered with the first natural axis
// varying fastest, matching the teacher's row-major scratchpad conventions
// and spec.md §4.1's "w1*w2(*w3)" multiplication rule.
func quadrilateralRule(number int) []Point {
	ps := lineRule1D(number)
	if ps == nil {
		return nil
	}
	pts := make([]Point, 0, len(ps)*len(ps))
	for _, p2 := range ps {
		for _, p1 := range ps {
			pts = append(pts, Point{R1: p1.R, R2: p2.R, W1: p1.W, W2: p2.W})
		}
	}
	return pts
}

func hexahedronRule(number int) []Point {
	ps := lineRule1D(number)
	if ps == nil {
		return nil
	}
	pts := make([]Point, 0, len(ps)*len(ps)*len(ps))
	for _, p3 := range ps {
		for _, p2 := range ps {
			for _, p1 := range ps {
				pts = append(pts, Point{R1: p1.R, R2: p2.R, R3: p3.R, W1: p1.W, W2: p2.W, W3: p3.W})
			}
		}
	}
	return pts
}
