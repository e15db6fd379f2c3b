package model

// Pitch is an absolute pitch in semitones above C0.
type Pitch int

// Tuning holds the open-string pitch of every string of an instrument,
// index 0 = the first string as written in the file.
type Tuning []Pitch

// Role tags a part as the bass or melody voice of the merge.
type Role int

const (
	Bass Role = iota
	Melody
)

func (r Role) String() string {
	if r == Bass {
		return "bass"
	}
	return "melody"
}

// Limits carries the allocator constraints from the config file.
type Limits struct {
	MaxFret        int
	BassMaxFret    int
	MelodyMinFret  int
	HandSeparation int
}
