package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nulvox/TabConverter/trace"
)

var (
	verbosity int
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tabconv",
	Short: "Convert and merge guitar tabs between tunings",
	Long: `tabconv rewrites guitar tablature for a different tuning.

convert transposes a single tab file string-for-string. merge takes several
independently-tabbed parts, lines their sections up in time and reassigns
every note to a playable position on one target instrument.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		switch {
		case verbosity <= 0:
			config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		case verbosity == 1:
			config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		default:
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 1,
		"diagnostic detail, 0 (errors only) to 3 (per-note tracing)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// logSink renders engine diagnostics through the CLI logger. Verbosity
// gates what gets shown, never what the engine does.
func logSink() trace.Sink {
	return trace.SinkFunc(func(e trace.Event) {
		if e.Verbosity > verbosity {
			return
		}
		fields := []zap.Field{zap.String("kind", string(e.Kind))}
		if e.Section >= 0 {
			fields = append(fields, zap.Int("section", e.Section))
		}
		if e.Column >= 0 {
			fields = append(fields, zap.Int("column", e.Column))
		}
		logger.Info(e.Detail, fields...)
	})
}
