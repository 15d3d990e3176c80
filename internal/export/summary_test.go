package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/podium-cli/internal/podium"
)

func rec(division string, total int, winner string) *podium.PodiumDivision {
	return &podium.PodiumDivision{
		Division:    division,
		NBenchmarks: total,
		WinnerSeq:   winner,
		WinnerPar:   winner,
		WinnerSat:   podium.NoWinner,
		WinnerUnsat: winner,
		Winner24s:   winner,
	}
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")

	perKey := map[string]map[string]*podium.PodiumDivision{
		"division": {
			"bitvec": rec("Bitvec", 10, "bitwuzla"),
			"arith":  rec("Arith", 5, "z3"),
		},
		"logic": {
			"lia": rec("LIA", 3, "z3"),
		},
	}

	require.NoError(t, WriteSummary(path, perKey))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 2)

	div := f.Sheet["division"]
	require.NotNil(t, div)
	require.Len(t, div.Rows, 3)

	assert.Equal(t, "group", div.Rows[0].Cells[0].String())
	assert.Equal(t, "winner_24s", div.Rows[0].Cells[6].String())

	// Groups sorted by name: Arith before Bitvec.
	assert.Equal(t, "Arith", div.Rows[1].Cells[0].String())
	assert.Equal(t, "5", div.Rows[1].Cells[1].String())
	assert.Equal(t, "z3", div.Rows[1].Cells[2].String())
	assert.Equal(t, podium.NoWinner, div.Rows[1].Cells[4].String())
	assert.Equal(t, "Bitvec", div.Rows[2].Cells[0].String())

	logic := f.Sheet["logic"]
	require.NotNil(t, logic)
	require.Len(t, logic.Rows, 2)
	assert.Equal(t, "LIA", logic.Rows[1].Cells[0].String())
}

func TestWriteSummaryEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	require.NoError(t, WriteSummary(path, map[string]map[string]*podium.PodiumDivision{
		"division": {},
		"logic":    {},
	}))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 2)
	require.Len(t, f.Sheet["division"].Rows, 1)
}
