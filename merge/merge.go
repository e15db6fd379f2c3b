// Package merge aligns the sections of several parts in time and reassigns
// every note to a string of the target tuning.
package merge

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nulvox/TabConverter/alloc"
	"github.com/nulvox/TabConverter/model"
	"github.com/nulvox/TabConverter/pitch"
	"github.com/nulvox/TabConverter/trace"
	"github.com/nulvox/TabConverter/util"
)

var ErrNoSectionsFound = errors.New("no tab sections found in input files")

// event is one note to place: which hand plays it and the absolute pitch it
// had on its source instrument.
type event struct {
	role  model.Role
	pitch model.Pitch
	fret  int
}

// Parts merges all parts onto the target tuning, section by ordinal index.
// Parts with fewer sections contribute nothing at the indices they lack.
func Parts(parts []model.Part, target model.Tuning, lim model.Limits, sink trace.Sink) ([]model.MergedSection, error) {
	count := 0
	for _, p := range parts {
		if len(p.Sections) > count {
			count = len(p.Sections)
		}
	}
	if count == 0 {
		return nil, ErrNoSectionsFound
	}

	merged := make([]model.MergedSection, 0, count)
	for idx := 0; idx < count; idx++ {
		merged = append(merged, mergeSection(parts, idx, target, lim, sink))
	}
	return merged, nil
}

func mergeSection(parts []model.Part, idx int, target model.Tuning, lim model.Limits, sink trace.Sink) model.MergedSection {
	sec := model.MergedSection{Cells: make(map[model.Cell]model.CellValue), MaxCol: -1}

	byCol := make(map[int][]event)
	for _, p := range parts {
		if idx >= len(p.Sections) {
			continue
		}
		src := p.Sections[idx]
		if src.MaxCol > sec.MaxCol {
			sec.MaxCol = src.MaxCol
		}
		cells := make([]model.Cell, 0, len(src.Events))
		for c := range src.Events {
			cells = append(cells, c)
		}
		sort.Slice(cells, func(i, j int) bool {
			if cells[i].Col != cells[j].Col {
				return cells[i].Col < cells[j].Col
			}
			return cells[i].String < cells[j].String
		})
		for _, c := range cells {
			fret := src.Events[c]
			byCol[c.Col] = append(byCol[c.Col], event{
				role:  p.Role,
				pitch: p.Tuning[c.String] + model.Pitch(fret),
				fret:  fret,
			})
		}
	}

	for _, col := range util.SortedKeys(byCol) {
		placeColumn(&sec, idx, col, byCol[col], target, lim, sink)
	}

	sink.Emit(trace.Event{
		Kind:      trace.SectionMerged,
		Verbosity: 2,
		Section:   idx,
		Column:    -1,
		Detail:    fmt.Sprintf("%d cells over %d columns", len(sec.Cells), sec.MaxCol+1),
	})
	return sec
}

// placeColumn allocates every event of one column, bass events before
// melody so the bass hand claims the low strings first. Frets placed by one
// role constrain the other through the hand-separation rule.
func placeColumn(sec *model.MergedSection, idx, col int, events []event, target model.Tuning, lim model.Limits, sink trace.Sink) {
	occupied := make(map[int]bool)
	frets := map[model.Role][]int{}

	for _, role := range []model.Role{model.Bass, model.Melody} {
		for _, ev := range events {
			if ev.role != role {
				continue
			}
			opposing := frets[otherRole(role)]
			pl, ok := alloc.Place(ev.pitch, role, target, occupied, opposing, lim)
			if !ok {
				placeSentinel(sec, idx, col, ev, len(target), occupied, sink)
				continue
			}
			if placed := target[pl.String] + model.Pitch(pl.Fret); placed != ev.pitch {
				sink.Emit(trace.Event{
					Kind:      trace.OctaveShift,
					Verbosity: 3,
					Section:   idx,
					Column:    col,
					Detail: fmt.Sprintf("%s %s moved to %s", role,
						pitch.PitchToNoteLabel(ev.pitch), pitch.PitchToNoteLabel(placed)),
				})
			}
			sec.Cells[model.Cell{String: pl.String, Col: col}] = model.CellValue{Fret: pl.Fret}
			occupied[pl.String] = true
			frets[role] = append(frets[role], pl.Fret)
			if col > sec.MaxCol {
				sec.MaxCol = col
			}
		}
	}
}

// placeSentinel parks an unplaceable note on the lowest free string as the
// unplayable marker so the event is never silently lost. Sentinels take the
// string but never join the hand-separation bookkeeping.
func placeSentinel(sec *model.MergedSection, idx, col int, ev event, strings int, occupied map[int]bool, sink trace.Sink) {
	for s := 0; s < strings; s++ {
		if occupied[s] {
			continue
		}
		sink.Emit(trace.Event{
			Kind:      trace.PlacementFailed,
			Verbosity: 2,
			Section:   idx,
			Column:    col,
			Detail:    fmt.Sprintf("%s %s (source fret %d) has no playable position", ev.role, pitch.PitchToNoteLabel(ev.pitch), ev.fret),
		})
		sec.Cells[model.Cell{String: s, Col: col}] = model.CellValue{Unplayable: true}
		occupied[s] = true
		if col > sec.MaxCol {
			sec.MaxCol = col
		}
		return
	}
	sink.Emit(trace.Event{
		Kind:      trace.ColumnFull,
		Verbosity: 1,
		Section:   idx,
		Column:    col,
		Detail:    fmt.Sprintf("dropped %s %s, no free string", ev.role, pitch.PitchToNoteLabel(ev.pitch)),
	})
}

func otherRole(r model.Role) model.Role {
	if r == model.Bass {
		return model.Melody
	}
	return model.Bass
}
