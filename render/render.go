// Package render turns merged sparse grids back into aligned ASCII tab.
package render

import (
	"strconv"
	"strings"

	"github.com/nulvox/TabConverter/constants"
	"github.com/nulvox/TabConverter/model"
)

// Sections renders every merged section as tab lines, sections separated by
// one blank line. labels are the target tuning's note labels, index-aligned
// with the grid's string indices.
func Sections(secs []model.MergedSection, labels []string) []string {
	var out []string
	for i, sec := range secs {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, Section(sec, labels)...)
	}
	return out
}

// Section renders one merged grid, top line = highest string index. Every
// column is padded to the widest cell it holds so the string lines stay
// aligned; vacant cells render as dashes.
func Section(sec model.MergedSection, labels []string) []string {
	widths := columnWidths(sec, len(labels))
	labelWidth := 0
	for _, l := range labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	lines := make([]string, 0, len(labels))
	for s := len(labels) - 1; s >= 0; s-- {
		var b strings.Builder
		b.WriteString(labels[s])
		b.WriteString(strings.Repeat(" ", labelWidth-len(labels[s])))
		b.WriteByte('|')
		for col := 0; col <= sec.MaxCol; col++ {
			cell, ok := sec.Cells[model.Cell{String: s, Col: col}]
			if ok {
				text := cellText(cell)
				b.WriteString(text)
				b.WriteString(strings.Repeat("-", widths[col]-len(text)))
			} else {
				b.WriteString(strings.Repeat("-", widths[col]))
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

func cellText(v model.CellValue) string {
	if v.Unplayable {
		return constants.UnplayableMark
	}
	return strconv.Itoa(v.Fret)
}

// columnWidths computes each column's rendered width: at least one
// character, wide enough for every cell placed there.
func columnWidths(sec model.MergedSection, stringCount int) []int {
	widths := make([]int, sec.MaxCol+1)
	for i := range widths {
		widths[i] = 1
	}
	for cell, v := range sec.Cells {
		if cell.Col >= len(widths) {
			continue
		}
		if w := len(cellText(v)); w > widths[cell.Col] {
			widths[cell.Col] = w
		}
	}
	return widths
}
