package jobio

import (
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/ETH-WindMil/benchmarktu1402/model"
)

// Test_jobio01 checks piecewise-linear interpolation and its
// boundary-clamped extrapolation, including the single-row constant case.
func Test_jobio01(tst *testing.T) {
	chk.PrintTitle("interpolate along span")
	xs := []float64{0, 1, 2}
	ys := []float64{0, 10, 10}
	chk.Float64(tst, "left clamp", 1e-15, InterpolateAlongSpan(xs, ys, -1), 0)
	chk.Float64(tst, "midpoint", 1e-15, InterpolateAlongSpan(xs, ys, 0.5), 5)
	chk.Float64(tst, "right clamp", 1e-15, InterpolateAlongSpan(xs, ys, 5), 10)
	chk.Float64(tst, "constant table", 1e-15, InterpolateAlongSpan([]float64{0}, []float64{3.5}, 100), 3.5)
}

// Test_jobio02 checks that TemperatureAt and WastageAt scale the table's
// x/L column by the span length before interpolating.
func Test_jobio02(tst *testing.T) {
	chk.PrintTitle("temperature and wastage keyed by x/L*length")
	rows := [][2]float64{{10, 0}, {30, 1}}
	chk.Float64(tst, "temp at 0", 1e-12, TemperatureAt(rows, 20, 0), 10)
	chk.Float64(tst, "temp at L", 1e-12, TemperatureAt(rows, 20, 20), 30)
	chk.Float64(tst, "temp at L/2", 1e-12, TemperatureAt(rows, 20, 10), 20)

	wastage := [][2]float64{{0, 0}, {0.2, 1}}
	chk.Float64(tst, "wastage at L/4", 1e-12, WastageAt(wastage, 20, 5), 0.05)
}

// Test_jobio03 checks that MaterialAt keys its third column against the
// physical x-coordinate directly, with no length scaling — the resolved
// reading of the original's np.interp(xi, jobMaterial[:, 2], ...) call.
func Test_jobio03(tst *testing.T) {
	chk.PrintTitle("material keyed by physical x, no length scaling")
	rows := [][3]float64{{1.8e11, 0.3, 0}, {2.0e11, 0.25, 20}}
	E, nu := MaterialAt(rows, 10)
	chk.Float64(tst, "E at x=10", 1e-6, E, 1.9e11)
	chk.Float64(tst, "nu at x=10", 1e-12, nu, 0.275)

	E0, _ := MaterialAt(rows, 0)
	chk.Float64(tst, "E at x=0", 1e-6, E0, 1.8e11)
}

// Test_jobio04 checks that BoundaryAt keys its third column against a
// temperature value, not a span position.
func Test_jobio04(tst *testing.T) {
	chk.PrintTitle("boundary spring stiffness keyed by temperature")
	rows := [][3]float64{{1e15, 1e14, -10}, {1e13, 1e12, 30}}
	kx, ky := BoundaryAt(rows, 10)
	wantKx := InterpolateAlongSpan([]float64{-10, 30}, []float64{1e15, 1e13}, 10)
	wantKy := InterpolateAlongSpan([]float64{-10, 30}, []float64{1e14, 1e12}, 10)
	chk.Float64(tst, "kx", 1e-6, kx, wantKx)
	chk.Float64(tst, "ky", 1e-6, ky, wantKy)
}

// Test_jobio05 checks the Load_case_1.dat (velocity, magnitude) format
// synthesizes a triangular pulse of duration span/velocity.
func Test_jobio05(tst *testing.T) {
	chk.PrintTitle("load case 1: velocity pulse")
	dir := "/tmp/benchtu1402"
	err := io.WriteFileSD(dir, "Load_case_1.dat", "velocity magnitude\n10 500\n")
	if err != nil {
		tst.Fatal(err)
	}
	times, values, err := ReadLoadCase(0, filepath.Join(dir, "Load_case_1.dat"), 20)
	if err != nil {
		tst.Fatal(err)
	}
	if len(times) != 1 || len(values) != 1 {
		tst.Fatalf("expected one series, got %d/%d", len(times), len(values))
	}
	chk.Float64(tst, "t0", 1e-15, times[0][0], 0)
	chk.Float64(tst, "t1", 1e-12, times[0][1], 1)
	chk.Float64(tst, "t2", 1e-12, times[0][2], 2)
	chk.Float64(tst, "peak", 1e-12, values[0][1], 500)
}

// Test_jobio06 checks the Load_case_2/3.dat literal (time, force) format.
func Test_jobio06(tst *testing.T) {
	chk.PrintTitle("load case 2: literal time/force rows")
	dir := "/tmp/benchtu1402"
	err := io.WriteFileSD(dir, "Load_case_2.dat", "time force\n0 0\n0.5 100\n1 0\n")
	if err != nil {
		tst.Fatal(err)
	}
	times, values, err := ReadLoadCase(1, filepath.Join(dir, "Load_case_2.dat"), 20)
	if err != nil {
		tst.Fatal(err)
	}
	if len(times[0]) != 3 {
		tst.Fatalf("expected 3 rows, got %d", len(times[0]))
	}
	chk.Float64(tst, "mid time", 1e-12, times[0][1], 0.5)
	chk.Float64(tst, "mid force", 1e-12, values[0][1], 100)
}

// Test_jobio07 checks the Load_case_4.dat shared-time-column,
// multi-node-force format splits into one series per node column.
func Test_jobio07(tst *testing.T) {
	chk.PrintTitle("load case 4: shared time column, per-node forces")
	dir := "/tmp/benchtu1402"
	err := io.WriteFileSD(dir, "Load_case_4.dat", "time f1 f2 f3\n0 0 0 0\n1 10 20 30\n2 0 0 0\n")
	if err != nil {
		tst.Fatal(err)
	}
	times, values, err := ReadLoadCase(3, filepath.Join(dir, "Load_case_4.dat"), 20)
	if err != nil {
		tst.Fatal(err)
	}
	if len(times) != 3 || len(values) != 3 {
		tst.Fatalf("expected 3 per-node series, got %d/%d", len(times), len(values))
	}
	chk.Float64(tst, "node0 peak", 1e-12, values[0][1], 10)
	chk.Float64(tst, "node1 peak", 1e-12, values[1][1], 20)
	chk.Float64(tst, "node2 peak", 1e-12, values[2][1], 30)
	chk.Float64(tst, "shared time", 1e-12, times[1][1], times[2][1])
}

// Test_jobio08 builds a small BuildModel mesh and checks its node and
// element counts, the damage reduction on the damaged column, that the two
// end supports received springs (Boundary2 has no rows, so midspan gets
// none), and that springs fix no dofs.
func Test_jobio08(tst *testing.T) {
	chk.PrintTitle("build model: mesh, damage, boundary springs")
	job := &Job{
		Thickness: 0.1,
		Damage:    0.5,
		Material:  [][3]float64{{1.8e11, 0.3, 0}},
		Boundary1: [][3]float64{{1e15, 1e15, 0}},
		Boundary3: [][3]float64{{1e15, 1e15, 0}},
	}
	geo := &Geometry{
		Length: 4, Height: 1,
		NelX: 4, NelY: 1,
		Density:        2000,
		DamageElements: []int{1},
	}
	m, err := BuildModel(job, geo)
	if err != nil {
		tst.Fatal(err)
	}
	if len(m.Nodes) != 5*2 {
		tst.Fatalf("expected 10 nodes, got %d", len(m.Nodes))
	}
	if len(m.Elements) != 4 {
		tst.Fatalf("expected 4 elements, got %d", len(m.Elements))
	}

	chk.Float64(tst, "undamaged E", 1e-6, m.Elements[0].Material[0].E, 1.8e11)
	chk.Float64(tst, "damaged E", 1e-6, m.Elements[1].Material[0].E, 0.9e11)

	if len(m.Springs()) != 4 {
		tst.Fatalf("expected kx/ky springs at both end supports (4 entries), got %d", len(m.Springs()))
	}
	if m.NumFixed() != 0 {
		tst.Fatalf("springs should not fix dofs, got %d fixed", m.NumFixed())
	}

	p, err := m.Partition(m.StiffnessContribution, m.Springs())
	if err != nil {
		tst.Fatal(err)
	}
	gLeft := m.GlobalNumber(0, model.DofX)
	gRight := m.GlobalNumber(geo.NelX, model.DofX)
	if gLeft < 0 || gRight < 0 {
		tst.Fatal("expected left/right bottom-chord dofs to be active")
	}
	iLeft := m.FreeIndex(0, model.DofX)
	iRight := m.FreeIndex(geo.NelX, model.DofX)
	if p.Ff == nil {
		tst.Fatal("expected a free-free stiffness block")
	}
	_ = iLeft
	_ = iRight
}

// Test_jobio09 checks BuildModel rejects non-positive mesh dimensions.
func Test_jobio09(tst *testing.T) {
	chk.PrintTitle("build model: invalid geometry rejected")
	job := &Job{Material: [][3]float64{{1.8e11, 0.3, 0}}}
	_, err := BuildModel(job, &Geometry{Length: 0, Height: 1, NelX: 1, NelY: 1})
	if err == nil {
		tst.Fatal("expected error for zero length")
	}
	_, err = BuildModel(job, &Geometry{Length: 1, Height: 1, NelX: 0, NelY: 1})
	if err == nil {
		tst.Fatal("expected error for zero NelX")
	}
}
