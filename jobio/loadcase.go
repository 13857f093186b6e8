package jobio

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// readFields reads fn and splits it into whitespace-separated tokens per
// non-empty line, skipping the first (header) line, matching the "one
// header line" convention spec.md §6 documents for every Load_case file.
func readFields(fn string) ([][]string, error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(b), "\n")
	var rows [][]string
	skippedHeader := false
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if !skippedHeader {
			skippedHeader = true
			continue
		}
		rows = append(rows, fields)
	}
	return rows, nil
}

// ReadLoadCase reads one of the four Load_case_<kind+1>.dat formats
// (spec.md §6) and returns parallel (times, values) series ready for
// model.AddLoad. kind selects the format: 0 → velocity+magnitude
// (synthesizes a triangular pulse of duration span/velocity), 1/2 →
// literal (time, force) rows, 3 → a shared time column against nx
// per-node force columns (one (times, values) series per node, in file
// column order).
func ReadLoadCase(kind int, path string, span float64) ([][]float64, [][]float64, error) {
	rows, err := readFields(path)
	if err != nil {
		return nil, nil, err
	}

	switch kind {
	case 0:
		if len(rows) == 0 || len(rows[0]) < 2 {
			return nil, nil, chk.Err("jobio: InvalidConfig: Load_case_1.dat needs one (velocity, magnitude) line")
		}
		velocity := utl.Atof(rows[0][0])
		magnitude := utl.Atof(rows[0][1])
		if velocity <= 0 {
			return nil, nil, chk.Err("jobio: InvalidConfig: Load_case_1.dat velocity must be positive, got %v", velocity)
		}
		duration := span / velocity
		times := []float64{0, duration / 2, duration}
		values := []float64{0, magnitude, 0}
		return [][]float64{times}, [][]float64{values}, nil

	case 1, 2:
		times := make([]float64, len(rows))
		values := make([]float64, len(rows))
		for i, f := range rows {
			if len(f) < 2 {
				return nil, nil, chk.Err("jobio: InvalidConfig: Load_case_%d.dat row %d needs 2 columns", kind+1, i)
			}
			times[i] = utl.Atof(f[0])
			values[i] = utl.Atof(f[1])
		}
		return [][]float64{times}, [][]float64{values}, nil

	case 3:
		if len(rows) == 0 || len(rows[0]) < 2 {
			return nil, nil, chk.Err("jobio: InvalidConfig: Load_case_4.dat needs at least 2 columns")
		}
		nx := len(rows[0]) - 1
		times := make([]float64, len(rows))
		series := make([][]float64, nx)
		for j := range series {
			series[j] = make([]float64, len(rows))
		}
		for i, f := range rows {
			if len(f) != nx+1 {
				return nil, nil, chk.Err("jobio: InvalidConfig: Load_case_4.dat row %d has %d columns, want %d", i, len(f), nx+1)
			}
			times[i] = utl.Atof(f[0])
			for j := 0; j < nx; j++ {
				series[j][i] = utl.Atof(f[j+1])
			}
		}
		timesPerNode := make([][]float64, nx)
		for j := range timesPerNode {
			timesPerNode[j] = times
		}
		return timesPerNode, series, nil
	}
	return nil, nil, chk.Err("jobio: InvalidConfig: unknown load case kind %d", kind)
}
