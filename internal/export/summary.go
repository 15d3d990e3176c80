// Package export writes human-facing summaries of assembled ranking records.
package export

import (
	"sort"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/podium-cli/internal/podium"
)

var summaryHeader = []string{
	"group", "benchmarks",
	"winner_seq", "winner_par", "winner_sat", "winner_unsat", "winner_24s",
}

// WriteSummary writes one workbook with a sheet per grouping key. Each sheet
// lists every group with its benchmark total and the five variant winners,
// sorted by group name.
func WriteSummary(path string, perKey map[string]map[string]*podium.PodiumDivision) error {
	f := xlsx.NewFile()

	keys := make([]string, 0, len(perKey))
	for key := range perKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		sheet, err := f.AddSheet(key)
		if err != nil {
			return eris.Wrapf(err, "export: add sheet %s", key)
		}

		header := sheet.AddRow()
		for _, col := range summaryHeader {
			header.AddCell().SetString(col)
		}

		records := perKey[key]
		names := make([]string, 0, len(records))
		for name := range records {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			rec := records[name]
			row := sheet.AddRow()
			row.AddCell().SetString(rec.Division)
			row.AddCell().SetInt(rec.NBenchmarks)
			for _, w := range []string{
				rec.WinnerSeq, rec.WinnerPar, rec.WinnerSat, rec.WinnerUnsat, rec.Winner24s,
			} {
				row.AddCell().SetString(w)
			}
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}
