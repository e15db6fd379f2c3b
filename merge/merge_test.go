package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/nulvox/TabConverter/model"
	"github.com/nulvox/TabConverter/pitch"
	"github.com/nulvox/TabConverter/trace"
)

var testLimits = model.Limits{
	MaxFret:        24,
	BassMaxFret:    12,
	MelodyMinFret:  7,
	HandSeparation: 4,
}

func mustTuning(t *testing.T, labels ...string) model.Tuning {
	t.Helper()
	tuning, err := pitch.ParseTuning(labels)
	assert.NoError(t, err)
	return tuning
}

func onePart(t *testing.T, role model.Role, tuning model.Tuning, sections ...model.Section) model.Part {
	t.Helper()
	return model.Part{Role: role, Tuning: tuning, Sections: sections}
}

func section(maxCol int, events map[model.Cell]int) model.Section {
	return model.Section{Events: events, MaxCol: maxCol}
}

func TestPartsTwoSingleStringParts(t *testing.T) {
	bass := onePart(t, model.Bass, mustTuning(t, "E1"),
		section(0, map[model.Cell]int{{String: 0, Col: 0}: 0}))
	melody := onePart(t, model.Melody, mustTuning(t, "E4"),
		section(0, map[model.Cell]int{{String: 0, Col: 0}: 0}))
	target := mustTuning(t, "E1", "E4")

	merged, err := Parts([]model.Part{bass, melody}, target, testLimits, trace.Nop)
	assert.NoError(t, err)
	assert.Len(t, merged, 1)

	want := map[model.Cell]model.CellValue{
		{String: 0, Col: 0}: {Fret: 0},
		{String: 1, Col: 0}: {Fret: 0},
	}
	if diff := cmp.Diff(want, merged[0].Cells); diff != "" {
		t.Errorf("merged cells mismatch (-want +got):\n%s", diff)
	}
}

func TestPartsOccupancyExclusive(t *testing.T) {
	// Two bass notes in the same column must land on different strings.
	bass := onePart(t, model.Bass, mustTuning(t, "E1", "A1"),
		section(2, map[model.Cell]int{
			{String: 0, Col: 0}: 3,
			{String: 1, Col: 0}: 3,
		}))
	target := mustTuning(t, "E1", "A1", "D2", "G2")

	merged, err := Parts([]model.Part{bass}, target, testLimits, trace.Nop)
	assert.NoError(t, err)

	seen := make(map[int]bool)
	for cell := range merged[0].Cells {
		assert.False(t, seen[cell.String], "string %d placed twice", cell.String)
		seen[cell.String] = true
	}
	assert.Len(t, merged[0].Cells, 2)
}

func TestPartsHandSeparation(t *testing.T) {
	bass := onePart(t, model.Bass, mustTuning(t, "E2"),
		section(0, map[model.Cell]int{{String: 0, Col: 0}: 9}))
	melody := onePart(t, model.Melody, mustTuning(t, "E3"),
		section(0, map[model.Cell]int{{String: 0, Col: 0}: 10}))
	target := mustTuning(t, "E2", "A2", "D3", "G3", "B3", "E4")

	merged, err := Parts([]model.Part{bass, melody}, target, testLimits, trace.Nop)
	assert.NoError(t, err)

	var frets []int
	for _, v := range merged[0].Cells {
		assert.False(t, v.Unplayable)
		frets = append(frets, v.Fret)
	}
	assert.Len(t, frets, 2)
	gap := frets[0] - frets[1]
	if gap < 0 {
		gap = -gap
	}
	assert.GreaterOrEqual(t, gap, testLimits.HandSeparation)
}

func TestPartsUnplayableSentinel(t *testing.T) {
	// E6 on a lone E1 string needs fret 60, past any octave shift's
	// reach; the note must survive as the sentinel, not vanish.
	melody := onePart(t, model.Melody, mustTuning(t, "E6"),
		section(0, map[model.Cell]int{{String: 0, Col: 0}: 0}))
	target := mustTuning(t, "E1")

	merged, err := Parts([]model.Part{melody}, target, testLimits, trace.Nop)
	assert.NoError(t, err)
	assert.Equal(t, model.CellValue{Unplayable: true},
		merged[0].Cells[model.Cell{String: 0, Col: 0}])
}

func TestPartsColumnFullDropsWithDiagnostic(t *testing.T) {
	melody := onePart(t, model.Melody, mustTuning(t, "E6", "E6"),
		section(0, map[model.Cell]int{
			{String: 0, Col: 0}: 0,
			{String: 1, Col: 0}: 0,
		}))
	target := mustTuning(t, "E1")

	var collector trace.Collector
	merged, err := Parts([]model.Part{melody}, target, testLimits, &collector)
	assert.NoError(t, err)
	assert.Len(t, merged[0].Cells, 1)

	kinds := make(map[trace.Kind]int)
	for _, e := range collector.Events {
		kinds[e.Kind]++
	}
	assert.Equal(t, 1, kinds[trace.ColumnFull])
}

func TestPartsUnevenSectionCounts(t *testing.T) {
	bass := onePart(t, model.Bass, mustTuning(t, "E1"),
		section(0, map[model.Cell]int{{String: 0, Col: 0}: 0}),
		section(0, map[model.Cell]int{{String: 0, Col: 0}: 2}))
	melody := onePart(t, model.Melody, mustTuning(t, "E4"),
		section(0, map[model.Cell]int{{String: 0, Col: 0}: 0}))
	target := mustTuning(t, "E1", "E4")

	merged, err := Parts([]model.Part{bass, melody}, target, testLimits, trace.Nop)
	assert.NoError(t, err)
	assert.Len(t, merged, 2)

	// The second section holds only the bass contribution.
	assert.Len(t, merged[1].Cells, 1)
	assert.Equal(t, model.CellValue{Fret: 2},
		merged[1].Cells[model.Cell{String: 0, Col: 0}])
}

func TestPartsMaxColFollowsWidestContribution(t *testing.T) {
	bass := onePart(t, model.Bass, mustTuning(t, "E1"),
		section(7, map[model.Cell]int{{String: 0, Col: 2}: 0}))
	melody := onePart(t, model.Melody, mustTuning(t, "E4"),
		section(15, map[model.Cell]int{{String: 0, Col: 4}: 0}))
	target := mustTuning(t, "E1", "E4")

	merged, err := Parts([]model.Part{bass, melody}, target, testLimits, trace.Nop)
	assert.NoError(t, err)
	assert.Equal(t, 15, merged[0].MaxCol)
}

func TestPartsNoSections(t *testing.T) {
	part := onePart(t, model.Bass, mustTuning(t, "E1"))
	_, err := Parts([]model.Part{part}, mustTuning(t, "E2"), testLimits, trace.Nop)
	assert.ErrorIs(t, err, ErrNoSectionsFound)
}
