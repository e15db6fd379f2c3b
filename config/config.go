package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nulvox/TabConverter/constants"
	"github.com/nulvox/TabConverter/model"
)

var ErrConfigMissingKey = errors.New("config must contain 'target_tuning' key")

// Settings holds the target tuning plus allocator limits. JSON is the
// canonical format; files named *.yaml or *.yml parse as YAML.
type Settings struct {
	TargetTuning   []string `json:"target_tuning" yaml:"target_tuning"`
	MaxFret        int      `json:"max_fret" yaml:"max_fret"`
	BassMaxFret    int      `json:"bass_max_fret" yaml:"bass_max_fret"`
	MelodyMinFret  int      `json:"melody_min_fret" yaml:"melody_min_fret"`
	HandSeparation int      `json:"hand_separation" yaml:"hand_separation"`
}

// Default returns settings with stock limits and no target tuning.
func Default() *Settings {
	return &Settings{
		MaxFret:        constants.DefaultMaxFret,
		BassMaxFret:    constants.DefaultBassMaxFret,
		MelodyMinFret:  constants.DefaultMelodyMinFret,
		HandSeparation: constants.DefaultHandSeparation,
	}
}

// Load reads settings from path, overlaying the file onto Default.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	settings := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, settings)
	default:
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	if len(settings.TargetTuning) == 0 {
		return nil, ErrConfigMissingKey
	}
	return settings, nil
}

// Limits converts settings to the allocator's limit set.
func (s *Settings) Limits() model.Limits {
	return model.Limits{
		MaxFret:        s.MaxFret,
		BassMaxFret:    s.BassMaxFret,
		MelodyMinFret:  s.MelodyMinFret,
		HandSeparation: s.HandSeparation,
	}
}
