// Command benchtu1402 runs one modal, transient or static analysis of the
// TU1402 bridge-deck benchmark's S1-geometry mesh and writes the golden-test
// output files (spec.md §6). Single-threaded and synchronous per spec.md §5
// — no gosl/mpi, unlike the teacher's root command.
package main

import (
	"flag"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/ETH-WindMil/benchmarktu1402/analysis"
	"github.com/ETH-WindMil/benchmarktu1402/jobio"
	"github.com/ETH-WindMil/benchmarktu1402/model"
)

// bottomChordSensors names the Ux/Uy dof at every bottom-row node, used as
// the sensor set for mode shapes and time-history outputs — the node
// labels match jobio's S1-geometry mesh, where the bottom row is nodes
// 0..NelX in x order.
func bottomChordSensors(nelX int) (ux, uy []jobio.SensorSpec) {
	for ix := 0; ix <= nelX; ix++ {
		ux = append(ux, jobio.SensorSpec{NodeLabel: ix, Quantity: "Ux"})
		uy = append(uy, jobio.SensorSpec{NodeLabel: ix, Quantity: "Uy"})
	}
	return ux, uy
}

// bottomChordStrainSensors names the Exx/Eyy/Exy strain quantities at every
// bottom-row node, the sensor set for the <job>_strains.dat output.
func bottomChordStrainSensors(nelX int) []jobio.SensorSpec {
	var sensors []jobio.SensorSpec
	for ix := 0; ix <= nelX; ix++ {
		sensors = append(sensors,
			jobio.SensorSpec{NodeLabel: ix, Quantity: "Exx"},
			jobio.SensorSpec{NodeLabel: ix, Quantity: "Eyy"},
			jobio.SensorSpec{NodeLabel: ix, Quantity: "Exy"},
		)
	}
	return sensors
}

// strainTimeSeries recovers (Exx, Eyy, Exy) at every bottom-chord node
// across every column of dispFull (one column per time step, full dof
// numbering) and lays the result out row-major by time step to match
// jobio.WriteTimeSeries's [time][sensor] convention.
func strainTimeSeries(m *model.Model, nelX int, dispFull [][]float64) ([][]float64, error) {
	T := 0
	if len(dispFull) > 0 {
		T = len(dispFull[0])
	}
	perNode := make([][][]float64, nelX+1)
	for ix := 0; ix <= nelX; ix++ {
		eps, err := analysis.NodalStrain(m, ix, dispFull)
		if err != nil {
			return nil, err
		}
		perNode[ix] = eps
	}
	rows := make([][]float64, T)
	for t := 0; t < T; t++ {
		row := make([]float64, 0, 3*(nelX+1))
		for ix := 0; ix <= nelX; ix++ {
			row = append(row, perNode[ix][0][t], perNode[ix][1][t], perNode[ix][2][t])
		}
		rows[t] = row
	}
	return rows, nil
}

// s1Geometry builds the SPEC_FULL.md §3 default: a 20m x 0.6m strip meshed
// 200x6, matching spec.md S1's golden scenario.
func s1Geometry() *jobio.Geometry {
	return &jobio.Geometry{
		Length: 20, Height: 0.6,
		NelX: 200, NelY: 6,
		Density: 2000,
	}
}

func defaultJob(name string) *jobio.Job {
	return &jobio.Job{
		Name:       name,
		ModelIndex: 1,
		Thickness:  0.1,
		Damage:     0,
		// uniform material across the 20m span: a single row acts as a
		// constant regardless of the query position.
		Material:  [][3]float64{{1.8e11, 0.3, 0}},
		Boundary1: [][3]float64{{1e15, 1e15, 0}},
		Boundary3: [][3]float64{{1e15, 1e15, 0}},
		Analysis:  jobio.Modal,
		ModalSettings: jobio.ModalSettings{
			Modes:         4,
			Normalization: "mass",
		},
		ThSettings: jobio.ThSettings{LoadCase: -1},
	}
}

// applyLoadCase reads the configured Load_case_<n>.dat file and registers
// it against the model via model.AddLoad (spec.md §4.4's load operator,
// §3's Load-file reading supplement), ahead of the Static/Transient
// dispatch that consumes m.LoadVector. A negative LoadCase disables it — no
// S1/S2/S4 golden scenario (free vibration/modal) needs an applied force.
// loadNode is the bottom-chord node the load is applied at (kinds 0-2, a
// single series); kind 3 carries one series per node and is applied to
// loadNode, loadNode+1, ... in file column order.
func applyLoadCase(m *model.Model, job *jobio.Job, geo *jobio.Geometry, loadFile string, loadNode, dof int) error {
	if job.ThSettings.LoadCase < 0 {
		return nil
	}
	times, values, err := jobio.ReadLoadCase(job.ThSettings.LoadCase, loadFile, geo.Length)
	if err != nil {
		return err
	}
	for j := range times {
		if err := m.AddLoad(loadNode+j, dof, times[j], values[j]); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	utl.PfWhite("\nbenchtu1402 -- TU1402 bridge-deck benchmark\n\n")

	var (
		jobName    = flag.String("job", "bridgedeck", "job name, used as output file prefix")
		dirOut     = flag.String("out", ".", "output directory")
		kind       = flag.String("analysis", "modal", "modal | transient | static")
		modes      = flag.Int("modes", 4, "number of modes")
		period     = flag.Float64("period", 1.0, "transient analysis period, seconds")
		incr       = flag.Float64("increment", 1e-3, "transient analysis time increment, seconds")
		alpha      = flag.Float64("alpha", 0, "Rayleigh mass-proportional coefficient")
		beta       = flag.Float64("beta", 0, "Rayleigh stiffness-proportional coefficient")
		loadCase   = flag.Int("loadcase", -1, "Load_case_<n+1>.dat kind, 0..3; -1 disables (modal scenarios)")
		loadFile   = flag.String("loadfile", "", "path to the Load_case file; defaults to Load_case_<loadcase+1>.dat in -out")
		loadNode   = flag.Int("loadnode", -1, "bottom-chord node label the load is applied at; defaults to midspan")
		loadDofArg = flag.String("loaddof", "y", "x | y, the dof the load case is applied to")
	)
	flag.Parse()

	job := defaultJob(*jobName)
	job.ModalSettings.Modes = *modes
	switch *kind {
	case "modal":
		job.Analysis = jobio.Modal
	case "transient":
		job.Analysis = jobio.TimeHistory
		job.ThSettings = jobio.ThSettings{Alpha: *alpha, Beta: *beta, Period: *period, Increment: *incr, LoadCase: *loadCase}
	case "static":
		job.Analysis = jobio.Static
		job.ThSettings.LoadCase = *loadCase
	default:
		utl.Panic("unknown -analysis value %q\n", *kind)
	}

	geo := s1Geometry()
	m, err := jobio.BuildModel(job, geo)
	if err != nil {
		utl.Panic("%v\n", err)
	}
	if err := jobio.WriteNodes(*dirOut, m); err != nil {
		utl.Panic("%v\n", err)
	}

	if job.Analysis != jobio.Modal {
		dof := model.DofY
		if *loadDofArg == "x" {
			dof = model.DofX
		}
		node := *loadNode
		if node < 0 {
			node = geo.NelX / 2
		}
		file := *loadFile
		if file == "" {
			file = io.Sf("%s/Load_case_%d.dat", *dirOut, job.ThSettings.LoadCase+1)
		}
		if err := applyLoadCase(m, job, geo, file, node, dof); err != nil {
			utl.Panic("%v\n", err)
		}
	}

	switch job.Analysis {
	case jobio.Modal:
		norm := analysis.NormalizeMass
		if job.ModalSettings.Normalization == "displacement" {
			norm = analysis.NormalizeDisplacement
		}
		res, err := analysis.Modal(m, analysis.ModalConfig{
			NumModes:      job.ModalSettings.Modes,
			Normalization: norm,
			ReturnModes:   true,
		})
		if err != nil {
			utl.Panic("%v\n", err)
		}
		if err := jobio.WriteFrequencies(*dirOut, job.Name, res.Frequencies); err != nil {
			utl.Panic("%v\n", err)
		}

		_, uySensors := bottomChordSensors(geo.NelX)
		phi := make([][]float64, len(uySensors))
		for i, s := range uySensors {
			g := m.GlobalNumber(s.NodeLabel, model.DofY)
			phi[i] = res.PhiFull[g]
		}
		if err := jobio.WriteModes(*dirOut, job.Name, uySensors, phi); err != nil {
			utl.Panic("%v\n", err)
		}

	case jobio.Static:
		res, err := analysis.Static(m)
		if err != nil {
			utl.Panic("%v\n", err)
		}
		uxSensors, uySensors := bottomChordSensors(geo.NelX)
		sensors := append(append([]jobio.SensorSpec{}, uxSensors...), uySensors...)
		row := make([]float64, len(sensors))
		for i, s := range uxSensors {
			row[i] = res.UFull[m.GlobalNumber(s.NodeLabel, model.DofX)]
		}
		for i, s := range uySensors {
			row[len(uxSensors)+i] = res.UFull[m.GlobalNumber(s.NodeLabel, model.DofY)]
		}
		if err := jobio.WriteTimeSeries(*dirOut, job.Name, "displacements", sensors, [][]float64{row}); err != nil {
			utl.Panic("%v\n", err)
		}

		dispFull := make([][]float64, m.NumDof())
		for g := range dispFull {
			dispFull[g] = []float64{res.UFull[g]}
		}
		strainRows, err := strainTimeSeries(m, geo.NelX, dispFull)
		if err != nil {
			utl.Panic("%v\n", err)
		}
		if err := jobio.WriteTimeSeries(*dirOut, job.Name, "strains", bottomChordStrainSensors(geo.NelX), strainRows); err != nil {
			utl.Panic("%v\n", err)
		}

	case jobio.TimeHistory:
		res, err := analysis.Transient(m, analysis.TransientConfig{
			Period:    job.ThSettings.Period,
			Increment: job.ThSettings.Increment,
			Alpha:     job.ThSettings.Alpha,
			Beta:      job.ThSettings.Beta,
			NumModes:  job.ModalSettings.Modes,
		})
		if err != nil {
			utl.Panic("%v\n", err)
		}

		uxSensors, uySensors := bottomChordSensors(geo.NelX)
		sensors := append(append([]jobio.SensorSpec{}, uxSensors...), uySensors...)
		disp := make([][]float64, len(res.Times))
		accel := make([][]float64, len(res.Times))
		uxDofs := make([]int, len(uxSensors))
		uyDofs := make([]int, len(uySensors))
		for i, s := range uxSensors {
			uxDofs[i] = m.FreeIndex(s.NodeLabel, model.DofX)
		}
		for i, s := range uySensors {
			uyDofs[i] = m.FreeIndex(s.NodeLabel, model.DofY)
		}
		uxSeries := make([][]float64, len(uxDofs))
		uySeries := make([][]float64, len(uyDofs))
		axSeries := make([][]float64, len(uxDofs))
		aySeries := make([][]float64, len(uyDofs))
		for i, d := range uxDofs {
			uxSeries[i] = res.Displacement(d)
			axSeries[i] = res.Acceleration(d)
		}
		for i, d := range uyDofs {
			uySeries[i] = res.Displacement(d)
			aySeries[i] = res.Acceleration(d)
		}
		for n := range res.Times {
			row := make([]float64, len(sensors))
			for i := range uxDofs {
				row[i] = uxSeries[i][n]
			}
			for i := range uyDofs {
				row[len(uxDofs)+i] = uySeries[i][n]
			}
			disp[n] = row

			arow := make([]float64, len(sensors))
			for i := range uxDofs {
				arow[i] = axSeries[i][n]
			}
			for i := range uyDofs {
				arow[len(uxDofs)+i] = aySeries[i][n]
			}
			accel[n] = arow
		}
		if err := jobio.WriteTimeSeries(*dirOut, job.Name, "displacements", sensors, disp); err != nil {
			utl.Panic("%v\n", err)
		}
		if err := jobio.WriteTimeSeries(*dirOut, job.Name, "accelerations", sensors, accel); err != nil {
			utl.Panic("%v\n", err)
		}

		dispFull := make([][]float64, m.NumDof())
		freeDofs := m.FreeDofNumbers()
		for g := range dispFull {
			dispFull[g] = make([]float64, len(res.Times))
		}
		for i, g := range freeDofs {
			dispFull[g] = res.Displacement(i)
		}
		strainRows, err := strainTimeSeries(m, geo.NelX, dispFull)
		if err != nil {
			utl.Panic("%v\n", err)
		}
		if err := jobio.WriteTimeSeries(*dirOut, job.Name, "strains", bottomChordStrainSensors(geo.NelX), strainRows); err != nil {
			utl.Panic("%v\n", err)
		}
	}

	utl.Pf("done: %s\n", job.Name)
}
