package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nulvox/TabConverter/constants"
	"github.com/nulvox/TabConverter/file"
	"github.com/nulvox/TabConverter/pitch"
	"github.com/nulvox/TabConverter/tab"
	"github.com/nulvox/TabConverter/trace"
)

var inspectSourceOverrides []string

func init() {
	inspectCmd.Flags().StringArrayVarP(&inspectSourceOverrides, "source-tuning", "s", nil,
		"comma-separated source tuning for one input file, repeatable in input order")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <inputs...>",
	Short: "Show what the parser sees in each tab file",
	Long:  `Prints the detected tuning, inferred role and per-section shape of each input.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, path := range args {
			var override []string
			if i < len(inspectSourceOverrides) {
				override = splitTuningList(inspectSourceOverrides[i])
			}
			if err := inspect(path, override); err != nil {
				return err
			}
		}
		return nil
	},
}

func inspect(path string, override []string) error {
	lines, err := file.ReadLines(path)
	if err != nil {
		return err
	}
	part, err := tab.ParsePart(path, lines, override, constants.DefaultMaxFret, trace.Nop)
	if err != nil {
		return err
	}

	pitches := make([]string, len(part.Tuning))
	for i, p := range part.Tuning {
		pitches[i] = pitch.PitchToNoteLabel(p)
	}

	fmt.Printf("%s:\n", path)
	fmt.Printf("  tuning: %s (%s)\n", strings.Join(part.Labels, " "), strings.Join(pitches, " "))
	fmt.Printf("  role: %s\n", part.Role)
	fmt.Printf("  sections: %d\n", len(part.Sections))
	for i, sec := range part.Sections {
		fmt.Printf("    section %d: %d columns, %d notes\n", i, sec.MaxCol+1, len(sec.Events))
	}
	return nil
}
