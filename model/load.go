package model

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Load is a piecewise-linear time-history applied at one (node, dof) pair,
// matching the fun.Func convention used throughout the pack (F(t, x) with x
// unused here): Times must be strictly increasing (spec.md §9 load time
// functions). Times/Values are exported for jobio to populate directly from
// a load-case file.
type Load struct {
	Key   dofKey
	Times []float64
	Values []float64
}

// F evaluates the load at time t by linear interpolation, holding the first
// or last value constant outside [Times[0], Times[len-1]].
func (l *Load) F(t float64, x []float64) float64 {
	n := len(l.Times)
	if n == 0 {
		return 0
	}
	if t <= l.Times[0] {
		return l.Values[0]
	}
	if t >= l.Times[n-1] {
		return l.Values[n-1]
	}
	i := sort.SearchFloat64s(l.Times, t)
	if l.Times[i] == t {
		return l.Values[i]
	}
	t0, t1 := l.Times[i-1], l.Times[i]
	v0, v1 := l.Values[i-1], l.Values[i]
	frac := (t - t0) / (t1 - t0)
	return v0 + frac*(v1-v0)
}

// AddLoad registers a time-history force at (nodeLabel, dof), moving that
// dof into the loaded partition ldof (spec.md §4.4 load operator). A
// restrained dof is skipped, matching Fix/Free's "already in that state"
// no-op convention — a force on a restrained dof has no effect on the
// free-dof system this engine solves.
func (m *Model) AddLoad(nodeLabel, dof int, times, values []float64) error {
	if len(times) != len(values) {
		return chk.Err("model: InvalidConfig: AddLoad times/values length mismatch %d/%d", len(times), len(values))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return chk.Err("model: InvalidConfig: AddLoad times must be strictly increasing at index %d", i)
		}
	}
	key := dofKey{nodeLabel, dof}
	if _, ok := m.globalNumber[key]; !ok {
		return chk.Err("model: InvalidConfig: AddLoad references inactive dof (node %d, dof %d)", nodeLabel, dof)
	}
	if m.rdof.has(key) {
		return nil
	}
	m.ldof.add(key)
	m.loads = append(m.loads, &Load{Key: key, Times: times, Values: values})
	return nil
}

// LoadVector evaluates every registered load at time t and returns the
// dense free-DOF force vector f_f (length NumFree), for use by the static
// and transient analyses.
func (m *Model) LoadVector(t float64) []float64 {
	f := make([]float64, m.fdof.len())
	for _, l := range m.loads {
		if i, ok := m.fdof.index(l.Key); ok {
			f[i] += l.F(t, nil)
		}
	}
	return f
}

// Loads exposes the registered load list, in registration order. The
// transient analysis does not call it; it reads loads through LoadVector.
func (m *Model) Loads() []*Load { return m.loads }

// LoadedDofs returns, in ldof order, the global equation number of each
// loaded dof — the column space of the Sp selection matrix (spec.md §4.5).
func (m *Model) LoadedDofs() []int {
	out := make([]int, m.ldof.len())
	for i, key := range m.ldof.order {
		out[i] = m.globalNumber[key]
	}
	return out
}
