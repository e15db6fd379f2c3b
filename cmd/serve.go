package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nulvox/TabConverter/config"
	"github.com/nulvox/TabConverter/convert"
	"github.com/nulvox/TabConverter/merge"
	"github.com/nulvox/TabConverter/model"
	"github.com/nulvox/TabConverter/pitch"
	"github.com/nulvox/TabConverter/render"
	"github.com/nulvox/TabConverter/tab"
	"github.com/nulvox/TabConverter/trace"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the converter over HTTP",
	Long:  `Exposes POST /convert and POST /merge running the same engine as the CLI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		router := NewRouter()
		logger.Info("listening", zap.String("addr", serveAddr))
		return http.ListenAndServe(serveAddr, cors.Default().Handler(router))
	},
}

// NewRouter builds the HTTP API. Split out so the e2e tests can drive the
// handlers without binding a socket.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	router.HandleFunc("/merge", HandleMerge).Methods("POST")
	return router
}

func HandleConvert(w http.ResponseWriter, r *http.Request) {
	var req model.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request body: %w", err))
		return
	}
	if len(req.TargetTuning) == 0 {
		writeError(w, http.StatusBadRequest, config.ErrConfigMissingKey)
		return
	}

	labels := req.SourceTuning
	var diagnostics []string
	if len(labels) == 0 {
		labels = tab.DetectTuning(req.Lines)
		if labels == nil {
			writeError(w, http.StatusBadRequest, tab.ErrNoTuningDetected)
			return
		}
		diagnostics = append(diagnostics, "detected source tuning")
	}

	source, err := pitch.ParseTuning(labels)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	target, err := pitch.ParseTuning(req.TargetTuning)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	lines, err := convert.Lines(req.Lines, source, target)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	json.NewEncoder(w).Encode(model.TabResponse{Lines: lines, Diagnostics: diagnostics})
}

func HandleMerge(w http.ResponseWriter, r *http.Request) {
	var req model.MergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request body: %w", err))
		return
	}
	if len(req.TargetTuning) == 0 {
		writeError(w, http.StatusBadRequest, config.ErrConfigMissingKey)
		return
	}

	settings := config.Default()
	settings.TargetTuning = req.TargetTuning
	if req.MaxFret != nil {
		settings.MaxFret = *req.MaxFret
	}
	if req.BassMaxFret != nil {
		settings.BassMaxFret = *req.BassMaxFret
	}
	if req.MelodyMinFret != nil {
		settings.MelodyMinFret = *req.MelodyMinFret
	}
	if req.HandSeparation != nil {
		settings.HandSeparation = *req.HandSeparation
	}

	target, err := pitch.ParseTuning(settings.TargetTuning)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var collector trace.Collector
	parts := make([]model.Part, 0, len(req.Inputs))
	for i, in := range req.Inputs {
		name := in.Name
		if name == "" {
			name = fmt.Sprintf("input %d", i)
		}
		part, err := tab.ParsePart(name, in.Lines, in.SourceTuning, settings.MaxFret, &collector)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		parts = append(parts, part)
	}

	merged, err := merge.Parts(parts, target, settings.Limits(), &collector)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	json.NewEncoder(w).Encode(model.TabResponse{
		Lines:       render.Sections(merged, settings.TargetTuning),
		Diagnostics: collector.Strings(1),
	})
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}
