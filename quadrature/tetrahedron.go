package quadrature

import "math"

// tetrahedronRule returns Gauss points in the reference tetrahedron's
// barycentric coordinates (L1, L2, L3, L4), storing L1..L3 in R1..R3 (L4 =
// 1-R1-R2-R3) and the point weight in W1.
//
// Rules 14 and -14 are omitted: the reference implementation this table was
// transliterated from left their coordinates/weights as unfilled
// placeholders (p1=p2=p3=0, w1=w2=w3=1), which is not a rounding shortcut
// but an unfinished rule, so it is not reproduced. Rule 24 has the same
// defect (p1=p2=p3=0 with sentinel weights) and is likewise omitted rather
// than guessed; see DESIGN.md.
func tetrahedronRule(number int) []Point {
	switch number {
	case 1:
		return []Point{{R1: 0.25, R2: 0.25, R3: 0.25, W1: 1}}

	case 4:
		p1 := (5 - math.Sqrt(5)) / 20
		p2 := (5 + 3*math.Sqrt(5)) / 20
		w := 0.25
		return []Point{
			{R1: p2, R2: p1, R3: p1, W1: w},
			{R1: p1, R2: p2, R3: p1, W1: w},
			{R1: p1, R2: p1, R3: p2, W1: w},
			{R1: p1, R2: p1, R3: p1, W1: w},
		}

	case 8:
		p1 := (55 - 3*math.Sqrt(17) + math.Sqrt(1022-134*math.Sqrt(17))) / 196
		p2 := (55 - 3*math.Sqrt(17) - math.Sqrt(1022-134*math.Sqrt(17))) / 196
		w1 := 1.0/8.0 + math.Sqrt((1715161837-406006699*math.Sqrt(17))/23101)/3120
		w2 := 1.0/8.0 - math.Sqrt((1715161837-406006699*math.Sqrt(17))/23101)/3120
		return []Point{
			{R1: 1 - 3*p1, R2: p1, R3: p1, W1: w1},
			{R1: p1, R2: 1 - 3*p1, R3: p1, W1: w1},
			{R1: p1, R2: p1, R3: 1 - 3*p1, W1: w1},
			{R1: p1, R2: p1, R3: p1, W1: w1},
			{R1: 1 - 3*p2, R2: p2, R3: p2, W1: w2},
			{R1: p2, R2: 1 - 3*p2, R3: p2, W1: w2},
			{R1: p2, R2: p2, R3: 1 - 3*p2, W1: w2},
			{R1: p2, R2: p2, R3: p2, W1: w2},
		}

	case -8:
		w1, w2 := 1.0/40.0, 9.0/40.0
		return []Point{
			{R1: 1, R2: 0, R3: 0, W1: w1},
			{R1: 0, R2: 1, R3: 0, W1: w1},
			{R1: 0, R2: 0, R3: 1, W1: w1},
			{R1: 0, R2: 0, R3: 0, W1: w1}, // L4=1
			{R1: 0, R2: 1, R3: 1, W1: w2},
			{R1: 1, R2: 0, R3: 1, W1: w2},
			{R1: 1, R2: 1, R3: 0, W1: w2},
			{R1: 1, R2: 1, R3: 1, W1: w2},
		}

	case 15:
		p1 := (7 - math.Sqrt(15)) / 34
		p2 := 7.0/17.0 - p1
		p3 := (10 - 2*math.Sqrt(15)) / 40
		w1 := (2665 + 14*math.Sqrt(15)) / 37800
		w2 := (2665 - 14*math.Sqrt(15)) / 37800
		w3 := 10.0 / 189.0
		return []Point{
			{R1: 1 - 3*p1, R2: p1, R3: p1, W1: w1},
			{R1: p1, R2: 1 - 3*p1, R3: p1, W1: w1},
			{R1: p1, R2: p1, R3: 1 - 3*p1, W1: w1},
			{R1: p1, R2: p1, R3: p1, W1: w1},
			{R1: 1 - 3*p2, R2: p2, R3: p2, W1: w2},
			{R1: p2, R2: 1 - 3*p2, R3: p2, W1: w2},
			{R1: p2, R2: p2, R3: 1 - 3*p2, W1: w2},
			{R1: p2, R2: p2, R3: p2, W1: w2},
			{R1: 0.5 - p3, R2: 0.5 - p3, R3: p3, W1: w3},
			{R1: 0.5 - p3, R2: p3, R3: 0.5 - p3, W1: w3},
			{R1: 0.5 - p3, R2: p3, R3: p3, W1: w3},
			{R1: p3, R2: 0.5 - p3, R3: 0.5 - p3, W1: w3},
			{R1: p3, R2: 0.5 - p3, R3: p3, W1: w3},
			{R1: p3, R2: p3, R3: 0.5 - p3, W1: w3},
			{R1: 0.25, R2: 0.25, R3: 0.25, W1: 16.0 / 135.0},
		}

	case -15:
		p1 := (13 - math.Sqrt(91)) / 52
		p2, p3 := 1.0/3.0, 1.0/11.0
		w1 := 81.0 / 2240.0
		w2 := 161051.0 / 2304960.0
		w3 := 338.0 / 5145.0
		return []Point{
			{R1: 0, R2: p2, R3: p2, W1: w1},
			{R1: p2, R2: 0, R3: p2, W1: w1},
			{R1: p2, R2: p2, R3: 0, W1: w1},
			{R1: p2, R2: p2, R3: p2, W1: w1},
			{R1: 8.0 / 11.0, R2: p3, R3: p3, W1: w2},
			{R1: p3, R2: 8.0 / 11.0, R3: p3, W1: w2},
			{R1: p3, R2: p3, R3: 8.0 / 11.0, W1: w2},
			{R1: p3, R2: p3, R3: p3, W1: w2},
			{R1: 0.5 - p1, R2: 0.5 - p1, R3: p1, W1: w3},
			{R1: 0.5 - p1, R2: p1, R3: 0.5 - p1, W1: w3},
			{R1: 0.5 - p1, R2: p1, R3: p1, W1: w3},
			{R1: p1, R2: 0.5 - p1, R3: 0.5 - p1, W1: w3},
			{R1: p1, R2: 0.5 - p1, R3: p1, W1: w3},
			{R1: p1, R2: p1, R3: 0.5 - p1, W1: w3},
			{R1: 0.25, R2: 0.25, R3: 0.25, W1: 6544.0 / 36015.0},
		}

	default:
		return nil
	}
}
