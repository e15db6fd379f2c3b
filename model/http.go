package model

type ConvertRequest struct {
	Lines        []string `json:"lines"`
	SourceTuning []string `json:"source_tuning,omitempty"`
	TargetTuning []string `json:"target_tuning"`
}

type MergeInput struct {
	Name         string   `json:"name,omitempty"`
	Lines        []string `json:"lines"`
	SourceTuning []string `json:"source_tuning,omitempty"`
}

type MergeRequest struct {
	Inputs       []MergeInput `json:"inputs"`
	TargetTuning []string     `json:"target_tuning"`

	// Optional allocator limits; defaults apply when absent.
	MaxFret        *int `json:"max_fret,omitempty"`
	BassMaxFret    *int `json:"bass_max_fret,omitempty"`
	MelodyMinFret  *int `json:"melody_min_fret,omitempty"`
	HandSeparation *int `json:"hand_separation,omitempty"`
}

type TabResponse struct {
	Lines       []string `json:"lines"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
