package model

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/podium-cli/internal/comp"
)

// Column names expected in the results table.
var resultColumns = []string{
	"solver", "division", "logic", "track", "disagreements", "answer",
	"cpu_time", "wallclock_time",
	"error_score", "correctly_solved_score", "cpu_time_score", "wallclock_time_score",
}

// Column names expected in the selection table.
var selectionColumns = []string{"division", "logic", "selected"}

// ReadResultsCSV parses a results table. Every column must be present and
// every cell must parse; a malformed table aborts the run.
func ReadResultsCSV(path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "model: open results csv")
	}
	defer f.Close()
	return DecodeResults(f)
}

// DecodeResults parses results rows from r.
func DecodeResults(r io.Reader) ([]Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrap(err, "model: read results header")
	}
	cols, err := mapColumns(header, resultColumns)
	if err != nil {
		return nil, err
	}

	var rows []Result
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "model: results row %d", line)
		}

		row, err := decodeResult(record, cols)
		if err != nil {
			return nil, eris.Wrapf(err, "model: results row %d", line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadSelectionCSV parses a benchmark selection table.
func ReadSelectionCSV(path string) ([]Selection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "model: open selection csv")
	}
	defer f.Close()
	return DecodeSelection(f)
}

// DecodeSelection parses selection rows from r.
func DecodeSelection(r io.Reader) ([]Selection, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrap(err, "model: read selection header")
	}
	cols, err := mapColumns(header, selectionColumns)
	if err != nil {
		return nil, err
	}

	var rows []Selection
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "model: selection row %d", line)
		}

		sel, err := parseBoolCell(getCol(record, cols, "selected"))
		if err != nil {
			return nil, eris.Wrapf(err, "model: selection row %d", line)
		}
		rows = append(rows, Selection{
			Division: comp.Division(getCol(record, cols, "division")),
			Logic:    comp.Logic(getCol(record, cols, "logic")),
			Selected: sel,
		})
	}
	return rows, nil
}

func decodeResult(record []string, cols map[string]int) (Result, error) {
	answer, err := comp.ParseAnswer(getCol(record, cols, "answer"))
	if err != nil {
		return Result{}, err
	}
	disagreement, err := parseBoolCell(getCol(record, cols, "disagreements"))
	if err != nil {
		return Result{}, err
	}

	row := Result{
		Solver:       comp.Solver(getCol(record, cols, "solver")),
		Division:     comp.Division(getCol(record, cols, "division")),
		Logic:        comp.Logic(getCol(record, cols, "logic")),
		Track:        comp.Track(getCol(record, cols, "track")),
		Disagreement: disagreement,
		Answer:       answer,
	}

	for _, c := range []struct {
		name string
		dst  *float64
	}{
		{"cpu_time", &row.CPUTimeS},
		{"wallclock_time", &row.WallTimeS},
		{"error_score", &row.ErrorScore},
		{"correctly_solved_score", &row.CorrectScore},
		{"cpu_time_score", &row.CPUScore},
		{"wallclock_time_score", &row.WallScore},
	} {
		v, err := strconv.ParseFloat(strings.TrimSpace(getCol(record, cols, c.name)), 64)
		if err != nil {
			return Result{}, eris.Wrapf(err, "parse %s", c.name)
		}
		*c.dst = v
	}
	return row, nil
}

// mapColumns builds a column name → index map and verifies every required
// column is present.
func mapColumns(header, required []string) (map[string]int, error) {
	m := make(map[string]int, len(header))
	for i, col := range header {
		m[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range required {
		if _, ok := m[col]; !ok {
			return nil, eris.Errorf("model: missing column %q", col)
		}
	}
	return m, nil
}

func getCol(record []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseBoolCell(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, eris.Errorf("parse bool %q", s)
	}
}
