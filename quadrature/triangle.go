package quadrature

import "math"

// triangleRule returns the area-coordinate Gauss points for the reference
// triangle. Only R1, R2 and W1 are meaningful for this domain (the third
// area coordinate is 1-R1-R2, and there is one weight per point, not a
// per-axis tensor-product weight).
func triangleRule(number int) []Point {
	switch number {
	case 1:
		return []Point{{R1: 1.0 / 3.0, R2: 1.0 / 3.0, W1: 1}}

	case 3:
		p1, p2 := 1.0/6.0, 2.0/3.0
		w := 1.0 / 3.0
		return []Point{
			{R1: p2, R2: p1, W1: w},
			{R1: p1, R2: p2, W1: w},
			{R1: p1, R2: p1, W1: w},
		}

	case -3:
		w := 1.0 / 3.0
		return []Point{
			{R1: 0, R2: 0.5, W1: w},
			{R1: 0.5, R2: 0, W1: w},
			{R1: 0.5, R2: 0.5, W1: w},
		}

	case 7:
		p0 := 1.0 / 3.0
		p1 := (6 + math.Sqrt(15)) / 21
		p2 := (6 - math.Sqrt(15)) / 21
		p3 := (9 + 2*math.Sqrt(15)) / 21
		p4 := (9 - 2*math.Sqrt(15)) / 21
		w0 := 9.0 / 40.0
		w1 := (155 + math.Sqrt(15)) / 1200
		w2 := (155 - math.Sqrt(15)) / 1200
		return []Point{
			{R1: p0, R2: p0, W1: w0},
			{R1: p1, R2: p4, W1: w1},
			{R1: p1, R2: p1, W1: w1},
			{R1: p4, R2: p1, W1: w1},
			{R1: p3, R2: p2, W1: w2},
			{R1: p2, R2: p3, W1: w2},
			{R1: p2, R2: p2, W1: w2},
		}

	default:
		return nil
	}
}
