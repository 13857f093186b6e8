package analysis

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/ETH-WindMil/benchmarktu1402/model"
)

const (
	newmarkBeta  = 1.0 / 6.0
	newmarkGamma = 1.0 / 2.0
)

// TransientConfig configures Transient (spec.md §4.5).
type TransientConfig struct {
	Period        float64
	Increment     float64
	Alpha, Beta   float64 // Rayleigh coefficients
	NumModes      int
	Normalization Normalization
}

// TransientResult holds the modal time histories and the mode data needed
// to expand them back to physical dofs.
type TransientResult struct {
	Modal *ModalResult
	Times []float64   // solver grid, seconds
	Q     [][]float64 // [step][mode] modal displacement
	Qd    [][]float64 // [step][mode] modal velocity
	Qdd   [][]float64 // [step][mode] modal acceleration
}

// Transient runs modal-superposition Newmark-β integration (spec.md §4.5).
// Because M̂=I and Ĉ, K̂ are diagonal in the modal basis, the m×m Newmark
// system decouples into m independent single-dof recursions — the "dense
// factorization of a small m×m matrix" spec.md §9 anticipates degenerates
// to a per-mode scalar division here, which is mathematically the same
// factorization applied to a diagonal matrix.
func Transient(m *model.Model, cfg TransientConfig) (*TransientResult, error) {
	if cfg.Period <= 0 {
		return nil, chk.Err("analysis: InvalidConfig: Period must be > 0, got %v", cfg.Period)
	}
	if cfg.Increment <= 0 {
		return nil, chk.Err("analysis: InvalidConfig: Increment must be > 0, got %v", cfg.Increment)
	}
	if cfg.Normalization != NormalizeMass {
		return nil, chk.Err("analysis: InvalidConfig: Transient needs mass-normalized modes, got normalization %v", cfg.Normalization)
	}

	modal, err := Modal(m, ModalConfig{NumModes: cfg.NumModes, Normalization: cfg.Normalization, ReturnModes: false})
	if err != nil {
		return nil, err
	}
	nm := len(modal.Omega)

	fMax := 0.0
	for _, f := range modal.Frequencies {
		if f > fMax {
			fMax = f
		}
	}
	dt := cfg.Increment
	if fMax > 0 {
		if cap := 0.1 / fMax; dt > cap {
			utl.Pf("analysis: warning: clamping time increment %v to stability bound %v\n", dt, cap)
			dt = cap
		}
	}

	nSteps := int(math.Ceil(cfg.Period/dt)) + 1
	times := make([]float64, nSteps)
	for i := range times {
		times[i] = float64(i) * dt
	}

	zeta := make([]float64, nm)
	for i, w := range modal.Omega {
		zeta[i] = cfg.Alpha/(2*w) + cfg.Beta*w/2
	}

	q := make([][]float64, nSteps)
	qd := make([][]float64, nSteps)
	qdd := make([][]float64, nSteps)
	for i := range q {
		q[i] = make([]float64, nm)
		qd[i] = make([]float64, nm)
		qdd[i] = make([]float64, nm)
	}

	fhat := make([][]float64, nSteps)
	for n := 0; n < nSteps; n++ {
		fhat[n] = modalForce(m, modal.PhiFree, times[n])
	}

	for j := 0; j < nm; j++ {
		w := modal.Omega[j]
		k := w * w
		c := 2 * zeta[j] * w
		force := make([]float64, nSteps)
		for n := range force {
			force[n] = fhat[n][j]
		}
		qj, qdj, qddj := newmarkRecursion(k, c, dt, force, 0, 0)
		for n := 0; n < nSteps; n++ {
			q[n][j], qd[n][j], qdd[n][j] = qj[n], qdj[n], qddj[n]
		}
	}

	return &TransientResult{Modal: modal, Times: times, Q: q, Qd: qd, Qdd: qdd}, nil
}

// newmarkRecursion runs the linear-acceleration Newmark-β update for a
// single decoupled modal dof q̈ + c q̇ + k q = f(t), starting from (q0, qd0),
// over len(f) samples of f spaced dt apart (spec.md §4.5 steps 3-5).
func newmarkRecursion(k, c, dt float64, f []float64, q0, qd0 float64) (q, qd, qdd []float64) {
	n := len(f)
	q = make([]float64, n)
	qd = make([]float64, n)
	qdd = make([]float64, n)
	q[0], qd[0] = q0, qd0
	qdd[0] = f[0] - c*qd[0] - k*q[0]

	a1 := 1/(newmarkBeta*dt*dt) + newmarkGamma*c/(newmarkBeta*dt)
	a2 := 1/(newmarkBeta*dt) + (newmarkGamma/newmarkBeta-1)*c
	a3 := (1/(2*newmarkBeta)-1) + dt*(newmarkGamma/(2*newmarkBeta)-1)*c
	keff := k + a1

	for i := 0; i+1 < n; i++ {
		rhs := f[i+1] + a1*q[i] + a2*qd[i] + a3*qdd[i]
		q[i+1] = rhs / keff
		qdd[i+1] = (q[i+1]-q[i])/(newmarkBeta*dt*dt) - qd[i]/(newmarkBeta*dt) - (1/(2*newmarkBeta)-1)*qdd[i]
		qd[i+1] = qd[i] + dt*(1-newmarkGamma)*qdd[i] + dt*newmarkGamma*qdd[i+1]
	}
	return q, qd, qdd
}

// modalForce computes F̂(t) = Φᵀ · Sp · f(t). Sp · f(t) is exactly the
// scattered free-dof load vector model.LoadVector already builds (it
// places each registered load's value at its own free-dof position and
// zero elsewhere), so Sp is never materialized as a separate matrix.
func modalForce(m *model.Model, phiFree [][]float64, t float64) []float64 {
	f := m.LoadVector(t)
	nm := 0
	if len(phiFree) > 0 {
		nm = len(phiFree[0])
	}
	out := make([]float64, nm)
	for i, fi := range f {
		if fi == 0 {
			continue
		}
		for j := 0; j < nm; j++ {
			out[j] += phiFree[i][j] * fi
		}
	}
	return out
}

// ResampleOnto linearly interpolates a [step][mode] series from src.Times
// onto grid, per spec.md §4.5's "interpolate the solver's internal grid if
// it differs" output note.
func ResampleOnto(srcTimes []float64, series [][]float64, grid []float64) [][]float64 {
	nm := 0
	if len(series) > 0 {
		nm = len(series[0])
	}
	out := make([][]float64, len(grid))
	for i, t := range grid {
		out[i] = make([]float64, nm)
		switch {
		case t <= srcTimes[0]:
			copy(out[i], series[0])
		case t >= srcTimes[len(srcTimes)-1]:
			copy(out[i], series[len(series)-1])
		default:
			k := 0
			for k+1 < len(srcTimes) && srcTimes[k+1] < t {
				k++
			}
			frac := (t - srcTimes[k]) / (srcTimes[k+1] - srcTimes[k])
			for j := 0; j < nm; j++ {
				out[i][j] = series[k][j] + frac*(series[k+1][j]-series[k][j])
			}
		}
	}
	return out
}

// Displacement/Acceleration expand a modal time history back to a physical
// free dof, u(t) = Σ_j φ_j(dof)·q_j(t).
func (r *TransientResult) Displacement(freeDof int) []float64 { return r.expand(freeDof, r.Q) }
func (r *TransientResult) Acceleration(freeDof int) []float64 { return r.expand(freeDof, r.Qdd) }

func (r *TransientResult) expand(freeDof int, series [][]float64) []float64 {
	out := make([]float64, len(series))
	row := r.Modal.PhiFree[freeDof]
	for n, qn := range series {
		s := 0.0
		for j, q := range qn {
			s += row[j] * q
		}
		out[n] = s
	}
	return out
}
