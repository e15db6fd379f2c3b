package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nulvox/TabConverter/config"
	"github.com/nulvox/TabConverter/file"
	"github.com/nulvox/TabConverter/merge"
	"github.com/nulvox/TabConverter/model"
	"github.com/nulvox/TabConverter/pitch"
	"github.com/nulvox/TabConverter/render"
	"github.com/nulvox/TabConverter/tab"
	"github.com/nulvox/TabConverter/trace"
)

var (
	mergeOutputPath      string
	mergeConfigPath      string
	mergeSourceOverrides []string
	mergeWatch           bool
)

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutputPath, "output", "o", "", "output merged tab file")
	mergeCmd.Flags().StringVarP(&mergeConfigPath, "config", "c", "", "config file with target_tuning")
	mergeCmd.Flags().StringArrayVarP(&mergeSourceOverrides, "source-tuning", "s", nil,
		"comma-separated source tuning for one input file, repeatable in input order")
	mergeCmd.Flags().BoolVar(&mergeWatch, "watch", false, "re-run whenever an input or the config changes")
	mergeCmd.MarkFlagRequired("output")
	mergeCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(mergeCmd)
}

var mergeCmd = &cobra.Command{
	Use:   "merge <inputs...>",
	Short: "Merge multiple tab files onto one target instrument",
	Long: `Aligns the sections of every input part in time and reassigns each note
to a playable string and fret of the target tuning. Bass parts claim the low
strings first; notes with no legal position render as X.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		run := func() error { return runMerge(args) }
		if err := run(); err != nil {
			return err
		}
		if mergeWatch {
			return watchAndRerun(append(args, mergeConfigPath), run)
		}
		return nil
	},
}

func runMerge(inputs []string) error {
	settings, err := config.Load(mergeConfigPath)
	if err != nil {
		return err
	}
	target, err := pitch.ParseTuning(settings.TargetTuning)
	if err != nil {
		return err
	}

	sink := logSink()
	if len(mergeSourceOverrides) > len(inputs) {
		sink.Emit(trace.Event{
			Kind:      trace.ExtraOverride,
			Verbosity: 1,
			Section:   -1,
			Column:    -1,
			Detail:    "more -s overrides than input files, extras ignored",
		})
	}

	parts := make([]model.Part, 0, len(inputs))
	for i, path := range inputs {
		lines, err := file.ReadLines(path)
		if err != nil {
			return err
		}
		var override []string
		if i < len(mergeSourceOverrides) {
			override = splitTuningList(mergeSourceOverrides[i])
		}
		part, err := tab.ParsePart(path, lines, override, settings.MaxFret, sink)
		if err != nil {
			return err
		}
		logger.Debug("parsed part",
			zap.String("file", path),
			zap.Stringer("role", part.Role),
			zap.Int("sections", len(part.Sections)))
		parts = append(parts, part)
	}

	merged, err := merge.Parts(parts, target, settings.Limits(), sink)
	if err != nil {
		return err
	}

	out := render.Sections(merged, settings.TargetTuning)
	if err := file.WriteLines(mergeOutputPath, out); err != nil {
		return err
	}
	logger.Info("merged tabs written",
		zap.String("output", mergeOutputPath),
		zap.Int("files", len(inputs)),
		zap.Int("sections", len(merged)))
	return nil
}
