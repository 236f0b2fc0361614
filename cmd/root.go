package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:   "venuegen [command]",
	Short: "Generate sample venue-booking datasets (venues, bookings, reviews)",
	Long:  `Generates randomized but plausible venues, bookings, and reviews for a venue-booking domain, as CSV files or loaded straight into a PostgreSQL database. Bookings and reviews always reference generated venues.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger returns a console logger on stderr, keeping stdout free for
// the sample record output.
func newLogger() *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stderr),
		zapcore.InfoLevel,
	)
	return zap.New(core).Sugar()
}
