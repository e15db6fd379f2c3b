package pitch

import (
	"fmt"
	"testing"

	"github.com/nulvox/TabConverter/model"
	"github.com/stretchr/testify/assert"
)

func TestNoteToPitch(t *testing.T) {
	cases := []struct {
		label string
		want  model.Pitch
	}{
		{"C0", 0},
		{"C#0", 1},
		{"B0", 11},
		{"C1", 12},
		{"E1", 16},
		{"E2", 28},
		{"e2", 28},
		{"A2", 33},
		{"E4", 52},
		{"Bb2", 34},
		{"Db1", 13},
		{" G3 ", 43},
	}

	for _, c := range cases {
		t.Run(c.label, func(t *testing.T) {
			got, err := NoteToPitch(c.label)
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestFlatWrapsAcrossOctave(t *testing.T) {
	cb, err := NoteToPitch("Cb1")
	assert.NoError(t, err)
	b, err := NoteToPitch("B0")
	assert.NoError(t, err)
	assert.Equal(t, b, cb)
	assert.Equal(t, model.Pitch(11), cb)

	// The wrap is octave-relative: Cb2 is B1, not B0.
	cb2, err := NoteToPitch("Cb2")
	assert.NoError(t, err)
	assert.Equal(t, model.Pitch(23), cb2)
}

func TestNoteToPitchFormatErrors(t *testing.T) {
	for _, label := range []string{"", "E", "H2", "E-1", "CB1", "2E", "E#b2", "E2x"} {
		t.Run(fmt.Sprintf("label=%q", label), func(t *testing.T) {
			_, err := NoteToPitch(label)
			assert.ErrorIs(t, err, ErrInvalidNoteFormat)
		})
	}
}

func TestNoteToPitchNameErrors(t *testing.T) {
	// E# and B# are not in the sharp-spelled table.
	for _, label := range []string{"E#2", "B#0"} {
		_, err := NoteToPitch(label)
		assert.ErrorIs(t, err, ErrInvalidNoteName)
	}
}

func TestPitchLabelRoundTrip(t *testing.T) {
	for p := model.Pitch(0); p < 120; p++ {
		got, err := NoteToPitch(PitchToNoteLabel(p))
		assert.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestParseTuning(t *testing.T) {
	tuning, err := ParseTuning([]string{"E2", "A2", "D3", "G3", "B3", "E4"})
	assert.NoError(t, err)
	assert.Equal(t, model.Tuning{28, 33, 38, 43, 47, 52}, tuning)
}

func TestParseTuningPropagatesError(t *testing.T) {
	_, err := ParseTuning([]string{"E2", "bogus", "D3"})
	assert.ErrorIs(t, err, ErrInvalidNoteFormat)
}
