package jobio

// InterpolateAlongSpan performs piecewise-linear interpolation of ys(xs) at
// x, holding the boundary value constant outside [xs[0], xs[len-1]] — the
// same convention as the original's np.interp calls (SPEC_FULL.md §3). xs
// must be sorted ascending. A single-row table acts as a constant.
func InterpolateAlongSpan(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	if n == 1 || x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	i := 0
	for i+1 < n && xs[i+1] < x {
		i++
	}
	frac := (x - xs[i]) / (xs[i+1] - xs[i])
	return ys[i] + frac*(ys[i+1]-ys[i])
}

// TemperatureAt interpolates Job.Temperature (rows of T, x/L) at a physical
// coordinate x, matching the original's
// `np.interp(xi, jobTemperature[:, 1]*length, jobTemperature[:, 0])`: the
// table's x/L column is scaled by length before interpolation.
func TemperatureAt(rows [][2]float64, length, x float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		ys[i], xs[i] = r[0], r[1]*length
	}
	return InterpolateAlongSpan(xs, ys, x)
}

// WastageAt interpolates Job.CorrosionWastage (rows of w, x/L) at a
// physical coordinate x, the same x/L*length convention as TemperatureAt.
func WastageAt(rows [][2]float64, length, x float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		ys[i], xs[i] = r[0], r[1]*length
	}
	return InterpolateAlongSpan(xs, ys, x)
}

// MaterialAt interpolates Job.Material (rows of E, ν, x) at a physical
// coordinate x. The original compares this table's third column directly
// against the gauss points' physical x-coordinate, not a x/L fraction (see
// DESIGN.md's Open Question resolution on the third-column units).
func MaterialAt(rows [][3]float64, x float64) (E, nu float64) {
	if len(rows) == 0 {
		return 0, 0
	}
	xs := make([]float64, len(rows))
	e := make([]float64, len(rows))
	n := make([]float64, len(rows))
	for i, r := range rows {
		e[i], n[i], xs[i] = r[0], r[1], r[2]
	}
	return InterpolateAlongSpan(xs, e, x), InterpolateAlongSpan(xs, n, x)
}

// BoundaryAt interpolates a Boundary1..3 table (rows of kx, ky, T) at a
// temperature value T — the original interpolates spring stiffness as a
// function of the temperature computed at that support's location, not of
// span position (see DESIGN.md's Open Question resolution).
func BoundaryAt(rows [][3]float64, temp float64) (kx, ky float64) {
	if len(rows) == 0 {
		return 0, 0
	}
	ts := make([]float64, len(rows))
	kxs := make([]float64, len(rows))
	kys := make([]float64, len(rows))
	for i, r := range rows {
		kxs[i], kys[i], ts[i] = r[0], r[1], r[2]
	}
	return InterpolateAlongSpan(ts, kxs, temp), InterpolateAlongSpan(ts, kys, temp)
}
