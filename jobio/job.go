// Package jobio bridges the plain job record the upstream front end sends
// (spec.md §6) to the model package's constructors, reads the Load_case_*
// text formats, and writes the output tables the golden tests compare
// against (SPEC_FULL.md §3).
package jobio

import (
	"github.com/cpmech/gosl/chk"

	"github.com/ETH-WindMil/benchmarktu1402/element"
	"github.com/ETH-WindMil/benchmarktu1402/material"
	"github.com/ETH-WindMil/benchmarktu1402/model"
	"github.com/ETH-WindMil/benchmarktu1402/quadrature"
)

// AnalysisKind enumerates the three analyses a Job can request.
type AnalysisKind int

const (
	Modal AnalysisKind = iota
	TimeHistory
	Static
)

// ModalSettings configures a Modal job (spec.md §6).
type ModalSettings struct {
	Modes         int
	Normalization string // "mass" or "displacement"
}

// ThSettings configures a TimeHistory job (spec.md §6).
type ThSettings struct {
	Alpha, Beta        float64
	Period, Increment  float64
	LoadCase           int // 0..3, selects Load_case_<LoadCase+1>.dat
}

// Job is the plain record consumed from the upstream job layer, carrying
// the fields spec.md §6 lists verbatim. Material is n×3 rows of (E, ν, x)
// keyed by physical span position (meters, not a x/L fraction — see
// DESIGN.md's Open Question resolution); Boundary1..3 are n×3 rows of
// (kx, ky, T) keyed by temperature, evaluated at the temperature the
// Temperature table gives at that support's location; CorrosionWastage and
// Temperature are n×2 rows of (value, x/L), x/L scaled by span length.
type Job struct {
	Name       string
	ModelIndex int
	Thickness  float64
	Damage     float64

	Material  [][3]float64 // E, nu, x (meters)
	Boundary1 [][3]float64 // kx, ky, T (temperature)
	Boundary2 [][3]float64
	Boundary3 [][3]float64

	CorrosionWastage [][2]float64 // w, x/L
	Temperature      [][2]float64 // T, x/L

	Analysis      AnalysisKind
	ModalSettings ModalSettings
	ThSettings    ThSettings
}

// Geometry describes the S1-style rectangular bridge-deck mesh
// (SPEC_FULL.md §3 "Bridge-deck driver"): a Length × Height strip meshed
// into NelX × NelY Quad4 elements. The three boundary clusters sit at the
// bottom-left corner, midspan, and the bottom-right corner, matching the
// original's three-support layout.
type Geometry struct {
	Length, Height float64
	NelX, NelY     int
	Density        float64
	DamageElements []int // column indices (0-based) of the damage window
}

// BuildModel converts a Job + Geometry into a ready-to-analyze model.Model,
// applying span-interpolated material/thickness/corrosion properties per
// element, the damage stiffness reduction, and the three spring-cluster
// boundary conditions (SPEC_FULL.md §3's back2front.py equivalent).
func BuildModel(job *Job, geo *Geometry) (*model.Model, error) {
	if geo.NelX <= 0 || geo.NelY <= 0 {
		return nil, chk.Err("jobio: InvalidConfig: NelX/NelY must be positive, got %d/%d", geo.NelX, geo.NelY)
	}
	if geo.Length <= 0 || geo.Height <= 0 {
		return nil, chk.Err("jobio: InvalidConfig: Length/Height must be positive, got %v/%v", geo.Length, geo.Height)
	}

	rule, err := quadrature.Get(quadrature.Quadrilateral, 2)
	if err != nil {
		return nil, err
	}

	nnx, nny := geo.NelX+1, geo.NelY+1
	dx, dy := geo.Length/float64(geo.NelX), geo.Height/float64(geo.NelY)

	nodes := make([]*model.Node, nnx*nny)
	nodeIdx := func(ix, iy int) int { return iy*nnx + ix }
	for iy := 0; iy < nny; iy++ {
		for ix := 0; ix < nnx; ix++ {
			nodes[nodeIdx(ix, iy)] = model.NewNode(float64(ix)*dx, float64(iy)*dy, model.DofX, model.DofY)
		}
	}

	var elems []*model.Element
	for ex := 0; ex < geo.NelX; ex++ {
		xCenter := (float64(ex) + 0.5) * dx
		E, nu := MaterialAt(job.Material, xCenter)
		thickness := job.Thickness * (1 - WastageAt(job.CorrosionWastage, geo.Length, xCenter))
		factor := 1.0
		for _, d := range geo.DamageElements {
			if d == ex {
				factor = 1 - job.Damage
			}
		}
		mat, err := material.New(E*factor, nu, geo.Density)
		if err != nil {
			return nil, err
		}

		for ey := 0; ey < geo.NelY; ey++ {
			bl := nodeIdx(ex, ey)
			br := nodeIdx(ex+1, ey)
			tl := nodeIdx(ex, ey+1)
			tr := nodeIdx(ex+1, ey+1)

			np := rule.NumPoints()
			C := make([]*material.LinearElastic, np)
			th := make([]float64, np)
			for p := 0; p < np; p++ {
				C[p] = mat
				th[p] = thickness
			}
			e, err := model.NewElement(element.Quad4, []int{tr, tl, bl, br}, C, th, rule)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
	}

	m, err := model.New(nodes, elems)
	if err != nil {
		return nil, err
	}

	if err := applyBoundary(m, job.Boundary1, job.Temperature, geo, 0); err != nil {
		return nil, err
	}
	if err := applyBoundary(m, job.Boundary2, job.Temperature, geo, geo.NelX/2); err != nil {
		return nil, err
	}
	if err := applyBoundary(m, job.Boundary3, job.Temperature, geo, geo.NelX); err != nil {
		return nil, err
	}

	return m, nil
}

// applyBoundary installs spring supports at the bottom-row node at column
// ix, with stiffness interpolated from rows (kx, ky, T) against the
// temperature the original computes at that support's physical location
// (DESIGN.md's Open Question resolution) — not against span position. A kx
// or ky of exactly zero is skipped (no support at that dof).
func applyBoundary(m *model.Model, rows [][3]float64, temperature [][2]float64, geo *Geometry, ix int) error {
	if len(rows) == 0 {
		return nil
	}
	x := float64(ix) / float64(geo.NelX) * geo.Length
	temp := TemperatureAt(temperature, geo.Length, x)
	kx, ky := BoundaryAt(rows, temp)
	node := ix // bottom row, iy=0, same flat index as ix since iy*nnx+ix with iy=0
	var nl, dofs []int
	var kvals []float64
	if kx != 0 {
		nl = append(nl, node)
		dofs = append(dofs, model.DofX)
		kvals = append(kvals, kx)
	}
	if ky != 0 {
		nl = append(nl, node)
		dofs = append(dofs, model.DofY)
		kvals = append(kvals, ky)
	}
	if len(nl) == 0 {
		return nil
	}
	return m.AddSprings(nl, dofs, kvals)
}
