// Package trace carries diagnostic events out of the engine. The parser,
// allocator and merge stages stay pure: they emit events through a Sink and
// the caller decides how (or whether) to render them.
package trace

import "fmt"

type Kind string

const (
	UnmatchedLabel  Kind = "unmatched_label"
	DetectedTuning  Kind = "detected_tuning"
	ExtraOverride   Kind = "extra_override"
	SectionMerged   Kind = "section_merged"
	OctaveShift     Kind = "octave_shift"
	PlacementFailed Kind = "placement_failed"
	ColumnFull      Kind = "column_full"
)

// Event is one diagnostic. Verbosity is the minimum CLI verbosity level
// (0-3) at which the event should be shown; it never affects behavior.
type Event struct {
	Kind      Kind
	Verbosity int
	Section   int
	Column    int
	Detail    string
}

func (e Event) String() string {
	if e.Section < 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	if e.Column < 0 {
		return fmt.Sprintf("%s: section %d: %s", e.Kind, e.Section, e.Detail)
	}
	return fmt.Sprintf("%s: section %d col %d: %s", e.Kind, e.Section, e.Column, e.Detail)
}

type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// Nop discards every event.
var Nop Sink = SinkFunc(func(Event) {})

// Collector gathers events in order, for tests and for the HTTP handlers.
type Collector struct {
	Events []Event
}

func (c *Collector) Emit(e Event) {
	c.Events = append(c.Events, e)
}

// Strings renders collected events at or below the given verbosity.
func (c *Collector) Strings(verbosity int) []string {
	var out []string
	for _, e := range c.Events {
		if e.Verbosity <= verbosity {
			out = append(out, e.String())
		}
	}
	return out
}
