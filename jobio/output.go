package jobio

import (
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/ETH-WindMil/benchmarktu1402/model"
)

// sensorHeader formats the 24-char-wide "Node-<label>-<quantity>" column
// header spec.md §6 requires for the displacement/acceleration/strain
// output files.
func sensorHeader(label int, quantity string) string {
	name := io.Sf("Node-%d-%s", label, quantity)
	return io.Sf("%24s", name)
}

// WriteNodes writes Output_nodes.dat: columns label, x, y (spec.md §6).
func WriteNodes(dirOut string, m *model.Model) error {
	var b strings.Builder
	b.WriteString("# label x y\n")
	for _, n := range m.Nodes {
		b.WriteString(io.Sf("%8d % .16e % .16e\n", n.Label, n.Coords[0], n.Coords[1]))
	}
	return io.WriteFileSD(dirOut, "Output_nodes.dat", b.String())
}

// WriteFrequencies writes <job>_frequencies.dat: one frequency (Hz) per
// line (spec.md §6).
func WriteFrequencies(dirOut, jobName string, freqs []float64) error {
	var b strings.Builder
	b.WriteString("# frequency_Hz\n")
	for _, f := range freqs {
		b.WriteString(io.Sf("% .16e\n", f))
	}
	return io.WriteFileSD(dirOut, jobName+"_frequencies.dat", b.String())
}

// SensorSpec names one output column: the node the quantity is sampled at
// and the quantity's label (Ux, Uy, Ax, Ay, Exx, Eyy, Exy).
type SensorSpec struct {
	NodeLabel int
	Quantity  string
}

func writeHeader(b *strings.Builder, sensors []SensorSpec) {
	b.WriteString("#")
	for _, s := range sensors {
		b.WriteString(sensorHeader(s.NodeLabel, s.Quantity))
	}
	b.WriteString("\n")
}

func writeRows(b *strings.Builder, rows [][]float64) {
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(io.Sf("% .16e", v))
		}
		b.WriteString("\n")
	}
}

// WriteModes writes <job>_modes.dat: rows = sensor DOFs, cols = modes
// (spec.md §6). phi is indexed [sensor][mode]: phi[i] is the mode-shape row
// of sensors[i], which names that row by its (node, dof-quantity) pair.
func WriteModes(dirOut, jobName string, sensors []SensorSpec, phi [][]float64) error {
	var b strings.Builder
	b.WriteString("#")
	for j := range phi[0] {
		b.WriteString(io.Sf("%24s", io.Sf("mode-%d", j+1)))
	}
	b.WriteString("\n")
	for i := range sensors {
		for j := range phi[i] {
			if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(io.Sf("% .16e", phi[i][j]))
		}
		b.WriteString("\n")
	}
	return io.WriteFileSD(dirOut, jobName+"_modes.dat", b.String())
}

// WriteTimeSeries writes one of <job>_displacements.dat,
// <job>_accelerations.dat, <job>_strains.dat: rows = time steps, cols =
// sensor DOFs/nodes (spec.md §6). rows[t][col] must already be ordered to
// match sensors.
func WriteTimeSeries(dirOut, jobName, kind string, sensors []SensorSpec, rows [][]float64) error {
	var b strings.Builder
	writeHeader(&b, sensors)
	writeRows(&b, rows)
	return io.WriteFileSD(dirOut, jobName+"_"+kind+".dat", b.String())
}
