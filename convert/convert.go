// Package convert is the legacy single-file path: transpose a tab between
// two tunings with the same string count, no merge involved.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nulvox/TabConverter/constants"
	"github.com/nulvox/TabConverter/model"
	"github.com/nulvox/TabConverter/pitch"
	"github.com/nulvox/TabConverter/tab"
)

var ErrTuningLengthMismatch = errors.New("source and target tunings must have the same number of strings")

// Lines converts every tab line of the file to the target tuning, passing
// all other lines through untouched. Tab lines map to strings in file
// order; the running string index resets after a blank line or a line with
// neither pipe nor dash, mirroring how tab blocks restart.
func Lines(lines []string, source, target model.Tuning) ([]string, error) {
	if len(source) != len(target) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrTuningLengthMismatch, len(source), len(target))
	}

	out := make([]string, 0, len(lines))
	stringIdx := 0
	for _, line := range lines {
		if tab.IsTabLine(line) {
			out = append(out, convertLine(line, source, target, stringIdx))
			stringIdx++
			continue
		}
		out = append(out, line)
		if strings.TrimSpace(line) == "" || !strings.ContainsAny(line, "|-") {
			stringIdx = 0
		}
	}
	return out, nil
}

// convertLine shifts every digit run of one tab line by the open-pitch
// delta of its string and rewrites the label to the target note, octave
// digits dropped for display. Lines past the end of either tuning cannot
// convert and pass through as-is.
func convertLine(line string, source, target model.Tuning, stringIdx int) string {
	if stringIdx >= len(source) || stringIdx >= len(target) {
		return line
	}
	diff := int(target[stringIdx]) - int(source[stringIdx])
	label := stripDigits(pitch.PitchToNoteLabel(target[stringIdx]))

	body := tab.Body(line)
	var b strings.Builder
	b.WriteString(label)
	b.WriteByte('|')
	i := 0
	for i < len(body) {
		if body[i] < '0' || body[i] > '9' {
			b.WriteByte(body[i])
			i++
			continue
		}
		j := i + 1
		for j < len(body) && body[j] >= '0' && body[j] <= '9' {
			j++
		}
		fret, _ := strconv.Atoi(body[i:j])
		if shifted := fret + diff; shifted < 0 {
			b.WriteString(constants.UnplayableMark)
		} else {
			b.WriteString(strconv.Itoa(shifted))
		}
		i = j
	}
	return b.String()
}

func stripDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
