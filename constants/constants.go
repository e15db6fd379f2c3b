package constants

// Allocator limits, overridable through the config file.
const (
	DefaultMaxFret        = 24
	DefaultBassMaxFret    = 12
	DefaultMelodyMinFret  = 7
	DefaultHandSeparation = 4
)

// TuningScanLines bounds how far into a file tuning detection looks.
const TuningScanLines = 50

// RolePitchThreshold splits bass from melody parts: a part whose average
// open-string pitch (semitones above C0) is below this counts as bass.
const RolePitchThreshold = 30

// UnplayableMark replaces a fret that has no legal position on the target.
const UnplayableMark = "X"
