package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nulvox/TabConverter/config"
	"github.com/nulvox/TabConverter/convert"
	"github.com/nulvox/TabConverter/file"
	"github.com/nulvox/TabConverter/pitch"
	"github.com/nulvox/TabConverter/tab"
)

var (
	convertConfigPath   string
	convertSourceTuning string
	convertWatch        bool
)

func init() {
	convertCmd.Flags().StringVarP(&convertConfigPath, "config", "c", "", "config file with target_tuning")
	convertCmd.Flags().StringVarP(&convertSourceTuning, "source-tuning", "s", "",
		"comma-separated source tuning, e.g. E2,A2,D3,G3,B3,E4 (detected from the file when omitted)")
	convertCmd.Flags().BoolVar(&convertWatch, "watch", false, "re-run whenever the input or config changes")
	convertCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a tab file to a new tuning",
	Long:  `Transposes every tab line of a single file to the target tuning, string for string.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		run := func() error { return runConvert(args[0], args[1]) }
		if err := run(); err != nil {
			return err
		}
		if convertWatch {
			return watchAndRerun([]string{args[0], convertConfigPath}, run)
		}
		return nil
	},
}

func runConvert(input, output string) error {
	settings, err := config.Load(convertConfigPath)
	if err != nil {
		return err
	}
	lines, err := file.ReadLines(input)
	if err != nil {
		return err
	}

	labels := splitTuningList(convertSourceTuning)
	if len(labels) == 0 {
		labels = tab.DetectTuning(lines)
		if labels == nil {
			return fmt.Errorf("%s: %w", input, tab.ErrNoTuningDetected)
		}
		logger.Info("detected source tuning",
			zap.String("file", input), zap.String("tuning", strings.Join(labels, " ")))
	}

	source, err := pitch.ParseTuning(labels)
	if err != nil {
		return err
	}
	target, err := pitch.ParseTuning(settings.TargetTuning)
	if err != nil {
		return err
	}

	converted, err := convert.Lines(lines, source, target)
	if err != nil {
		return err
	}
	if err := file.WriteLines(output, converted); err != nil {
		return err
	}
	logger.Info("converted tabs written", zap.String("output", output))
	return nil
}

// splitTuningList parses a comma-separated note list, tolerating spaces.
func splitTuningList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}
