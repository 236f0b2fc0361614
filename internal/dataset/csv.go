package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Output file names, written into the target directory and overwritten
// when already present.
const (
	VenuesFile   = "venues.csv"
	BookingsFile = "bookings.csv"
	ReviewsFile  = "reviews.csv"
)

// WriteTable writes one header row followed by the given rows to path.
// With zero rows the file still gets its header, so downstream tooling
// always sees a valid table.
func WriteTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// WriteFiles serializes the dataset's three tables into dir. Files are
// written sequentially and independently: a failure on a later file leaves
// earlier files committed.
func (d *Dataset) WriteFiles(dir string) error {
	venueRows := make([][]string, len(d.Venues))
	for i, v := range d.Venues {
		venueRows[i] = v.Row()
	}
	if err := WriteTable(filepath.Join(dir, VenuesFile), VenueHeader, venueRows); err != nil {
		return err
	}

	bookingRows := make([][]string, len(d.Bookings))
	for i, b := range d.Bookings {
		bookingRows[i] = b.Row()
	}
	if err := WriteTable(filepath.Join(dir, BookingsFile), BookingHeader, bookingRows); err != nil {
		return err
	}

	reviewRows := make([][]string, len(d.Reviews))
	for i, r := range d.Reviews {
		reviewRows[i] = r.Row()
	}
	return WriteTable(filepath.Join(dir, ReviewsFile), ReviewHeader, reviewRows)
}
