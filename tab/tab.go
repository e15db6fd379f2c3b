package tab

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nulvox/TabConverter/constants"
	"github.com/nulvox/TabConverter/model"
	"github.com/nulvox/TabConverter/trace"
)

// A tab line is `label|body`. Tuning lines carry the octave; mid-file lines
// may drop it.
var (
	tuningLineRe = regexp.MustCompile(`^([A-G][#b]?\d+)\|`)
	tabLineRe    = regexp.MustCompile(`^([A-G][#b]?\d*)\|`)
)

// LineLabel returns the note label of a tab line, octave included when the
// file carries one.
func LineLabel(line string) (string, bool) {
	m := tabLineRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsTabLine reports whether the line is part of a tab block.
func IsTabLine(line string) bool {
	_, ok := LineLabel(line)
	return ok
}

// Body returns everything after the first pipe of a tab line. Columns are
// counted from 0 at the first body character.
func Body(line string) string {
	_, body, found := strings.Cut(line, "|")
	if !found {
		return ""
	}
	return body
}

// DetectTuning scans the first 50 lines for tuning-labeled tab lines
// (octave required) and returns the distinct labels in order of first
// appearance, or nil when the file declares none.
func DetectTuning(lines []string) []string {
	var labels []string
	seen := make(map[string]bool)

	limit := len(lines)
	if limit > constants.TuningScanLines {
		limit = constants.TuningScanLines
	}
	for _, line := range lines[:limit] {
		m := tuningLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		if !seen[m[1]] {
			seen[m[1]] = true
			labels = append(labels, m[1])
		}
	}
	return labels
}

// ExtractSections splits the file into maximal runs of consecutive tab
// lines. Any non-tab line ends the current run.
func ExtractSections(lines []string) [][]string {
	var sections [][]string
	var current []string

	for _, line := range lines {
		if IsTabLine(line) {
			current = append(current, line)
		} else if len(current) > 0 {
			sections = append(sections, current)
			current = nil
		}
	}
	if len(current) > 0 {
		sections = append(sections, current)
	}
	return sections
}

// BuildSection extracts the sparse fret events of one run of tab lines.
// Lines match tuning strings by exact label first, then letter-only; a line
// matching no unclaimed string is skipped with a diagnostic. Digit runs
// above maxFret do not represent frets and are dropped.
func BuildSection(run []string, labels []string, maxFret, secIdx int, sink trace.Sink) model.Section {
	sec := model.Section{Events: make(map[model.Cell]int), MaxCol: -1}
	claimed := make(map[int]bool)

	for _, line := range run {
		label, ok := LineLabel(line)
		if !ok {
			continue
		}
		idx := matchString(label, labels, claimed)
		if idx < 0 {
			sink.Emit(trace.Event{
				Kind:      trace.UnmatchedLabel,
				Verbosity: 1,
				Section:   secIdx,
				Column:    -1,
				Detail:    "no tuning string for label " + label,
			})
			continue
		}
		claimed[idx] = true

		body := Body(line)
		if len(body)-1 > sec.MaxCol {
			sec.MaxCol = len(body) - 1
		}
		scanFrets(body, idx, maxFret, sec.Events)
	}
	return sec
}

// matchString resolves a line label to an unclaimed tuning string index, or
// -1. Exact matches win over octave-stripped letter matches.
func matchString(label string, labels []string, claimed map[int]bool) int {
	for i, l := range labels {
		if !claimed[i] && l == label {
			return i
		}
	}
	letter := stripDigits(label)
	for i, l := range labels {
		if !claimed[i] && stripDigits(l) == letter {
			return i
		}
	}
	return -1
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

// scanFrets records each maximal digit run as a fret event at the column of
// its first digit.
func scanFrets(body string, stringIdx, maxFret int, events map[model.Cell]int) {
	i := 0
	for i < len(body) {
		if body[i] < '0' || body[i] > '9' {
			i++
			continue
		}
		j := i + 1
		for j < len(body) && body[j] >= '0' && body[j] <= '9' {
			j++
		}
		if fret, err := strconv.Atoi(body[i:j]); err == nil && fret <= maxFret {
			events[model.Cell{String: stringIdx, Col: i}] = fret
		}
		i = j
	}
}
