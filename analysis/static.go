package analysis

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/ETH-WindMil/benchmarktu1402/model"
)

// StaticResult holds the solved displacement field.
type StaticResult struct {
	UFree []float64
	UFull []float64
}

// Static assembles K_ff, evaluates each registered load at its sole time
// sample (t=0), and solves K_ff u_f = f_f via gosl's umfpack binding — the
// same la.LinSol idiom the teacher uses for its own linear solves
// (fem/s_linimp.go's InitR/Fact/SolveR sequence) — then scatters u_f back
// to full dof numbering (spec.md §4.5 Static).
func Static(m *model.Model) (*StaticResult, error) {
	Kff, err := m.FreeStiffnessTriplet()
	if err != nil {
		return nil, err
	}
	nf := m.NumFree()
	if nf == 0 {
		return nil, chk.Err("analysis: InvalidConfig: model has no free dofs")
	}

	f := m.LoadVector(0)

	sol := la.GetSolver("umfpack")
	defer sol.Free()
	if err := sol.InitR(Kff, false, false, false); err != nil {
		return nil, chk.Err("analysis: SingularSystem: %v", err)
	}
	if err := sol.Fact(); err != nil {
		return nil, chk.Err("analysis: SingularSystem: %v", err)
	}
	u := make([]float64, nf)
	if err := sol.SolveR(u, f, false); err != nil {
		return nil, chk.Err("analysis: SingularSystem: %v", err)
	}

	return &StaticResult{UFree: u, UFull: m.ScatterFree(u)}, nil
}
