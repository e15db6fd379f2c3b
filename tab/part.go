package tab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nulvox/TabConverter/constants"
	"github.com/nulvox/TabConverter/model"
	"github.com/nulvox/TabConverter/pitch"
	"github.com/nulvox/TabConverter/trace"
)

var ErrNoTuningDetected = errors.New("could not detect source tuning; specify one with -s")

// ClassifyRole tags a tuning as bass or melody by its average open-string
// pitch.
func ClassifyRole(tuning model.Tuning) model.Role {
	if len(tuning) == 0 {
		return model.Melody
	}
	var sum int
	for _, p := range tuning {
		sum += int(p)
	}
	if float64(sum)/float64(len(tuning)) < constants.RolePitchThreshold {
		return model.Bass
	}
	return model.Melody
}

// ParsePart builds one input file's Part: tuning from the override labels
// when given, else detected from the file; role from the tuning; sections
// from the tab runs.
func ParsePart(name string, lines []string, override []string, maxFret int, sink trace.Sink) (model.Part, error) {
	labels := override
	if len(labels) == 0 {
		labels = DetectTuning(lines)
		if labels == nil {
			return model.Part{}, fmt.Errorf("%s: %w", name, ErrNoTuningDetected)
		}
		sink.Emit(trace.Event{
			Kind:      trace.DetectedTuning,
			Verbosity: 1,
			Section:   -1,
			Column:    -1,
			Detail:    name + ": " + strings.Join(labels, " "),
		})
	}

	tuning, err := pitch.ParseTuning(labels)
	if err != nil {
		return model.Part{}, fmt.Errorf("%s: %w", name, err)
	}

	part := model.Part{
		Name:   name,
		Role:   ClassifyRole(tuning),
		Labels: labels,
		Tuning: tuning,
	}
	for i, run := range ExtractSections(lines) {
		part.Sections = append(part.Sections, BuildSection(run, labels, maxFret, i, sink))
	}
	return part, nil
}
