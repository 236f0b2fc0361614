package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nisakhantalib/booking-system/internal/dataset"
)

type genConfig struct {
	outDir    string
	bookings  int
	reviews   int
	seed      int64
	noSamples bool
}

var genCfg genConfig

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate venues, bookings, and reviews as CSV files",
	Long: `Generates the three related tables and writes venues.csv, bookings.csv,
and reviews.csv (plus a manifest.json run summary) to the output directory.
Every booking and review references a venue generated in the same run.
One sample record per table is printed for spot-checking.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(genCfg)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genCfg.outDir, "out-dir", "o", ".", "Directory for output files (overwritten if present)")
	generateCmd.Flags().IntVar(&genCfg.bookings, "bookings", 200, "Number of bookings to generate")
	generateCmd.Flags().IntVar(&genCfg.reviews, "reviews", 150, "Number of reviews to generate")
	generateCmd.Flags().Int64Var(&genCfg.seed, "seed", 0, "Random seed (0 = seed from current time)")
	generateCmd.Flags().BoolVar(&genCfg.noSamples, "no-samples", false, "Skip printing one sample record per table")
}

func runGenerate(cfg genConfig) error {
	if cfg.bookings < 0 || cfg.reviews < 0 {
		return fmt.Errorf("record counts cannot be negative (bookings=%d, reviews=%d)", cfg.bookings, cfg.reviews)
	}

	logger := newLogger()
	defer logger.Sync()

	start := time.Now()
	gen := dataset.New(cfg.seed)
	ds := gen.Generate(cfg.bookings, cfg.reviews)
	logger.Infow("dataset generated",
		"venues", len(ds.Venues),
		"bookings", len(ds.Bookings),
		"reviews", len(ds.Reviews),
	)

	if err := os.MkdirAll(cfg.outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := ds.WriteFiles(cfg.outDir); err != nil {
		return err
	}
	logger.Infow("csv files written", "dir", cfg.outDir)

	manifest := dataset.NewManifest(ds, cfg.seed, time.Since(start))
	if err := manifest.Write(filepath.Join(cfg.outDir, dataset.ManifestFile)); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	logger.Infow("run recorded", "run_id", manifest.RunID, "manifest", dataset.ManifestFile)

	if !cfg.noSamples {
		if len(ds.Venues) > 0 {
			printSample("Sample Venue", dataset.VenueHeader, ds.Venues[0].Row())
		}
		if len(ds.Bookings) > 0 {
			printSample("Sample Booking", dataset.BookingHeader, ds.Bookings[0].Row())
		}
		if len(ds.Reviews) > 0 {
			printSample("Sample Review", dataset.ReviewHeader, ds.Reviews[0].Row())
		}
	}

	return nil
}

// printSample dumps one record to stdout as field: value lines.
func printSample(label string, header, row []string) {
	fmt.Printf("%s:\n", label)
	for i, name := range header {
		fmt.Printf("  %s: %s\n", name, row[i])
	}
	fmt.Println()
}
