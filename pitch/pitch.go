package pitch

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nulvox/TabConverter/model"
)

var (
	ErrInvalidNoteFormat = errors.New("invalid note format")
	ErrInvalidNoteName   = errors.New("invalid note")
)

// chromatic is the fixed sharp-spelled pitch-class table; index = semitones
// above C within the octave.
var chromatic = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var noteRe = regexp.MustCompile(`^([A-Ga-g])([#b]?)(\d+)$`)

func classOf(name string) int {
	for i, n := range chromatic {
		if n == name {
			return i
		}
	}
	return -1
}

// NoteToPitch parses a label like "E2", "F#1" or "Bb3" into semitones above
// C0. The letter is case-insensitive; a "b" accidental steps the base letter
// down one semitone, wrapping within the chromatic table, so Cb1 lands on B0.
func NoteToPitch(label string) (model.Pitch, error) {
	m := noteRe.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteFormat, label)
	}
	letter := strings.ToUpper(m[1])
	octave, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteFormat, label)
	}

	var class int
	if m[2] == "b" {
		// A flat steps the base letter down one semitone before the octave
		// is applied, so Cb crosses the octave boundary and lands on B of
		// the octave below.
		class = classOf(letter) - 1
	} else {
		name := letter + m[2]
		class = classOf(name)
		if class < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
		}
	}
	return model.Pitch(class + octave*12), nil
}

// PitchToNoteLabel renders a pitch as its sharp-spelled name plus octave.
func PitchToNoteLabel(p model.Pitch) string {
	return chromatic[int(p)%12] + strconv.Itoa(int(p)/12)
}

// ParseTuning converts note labels to open-string pitches, in order.
func ParseTuning(labels []string) (model.Tuning, error) {
	tuning := make(model.Tuning, 0, len(labels))
	for _, label := range labels {
		p, err := NoteToPitch(label)
		if err != nil {
			return nil, err
		}
		tuning = append(tuning, p)
	}
	return tuning, nil
}
