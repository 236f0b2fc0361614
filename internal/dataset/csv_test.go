package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTable(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteTableEmptyStillHasHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteTable(path, VenueHeader, nil))

	records := readTable(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, VenueHeader, records[0])
}

func TestWriteTableQuotesDelimiters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quoted.csv")
	row := []string{"VEN1234", "WiFi, Parking, Stage"}
	require.NoError(t, WriteTable(path, []string{"venue_id", "facilities"}, [][]string{row}))

	records := readTable(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, row, records[1], "comma-joined field must survive a round trip")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	ds := New(21).Generate(25, 10)
	require.NoError(t, ds.WriteFiles(dir))

	venues := readTable(t, filepath.Join(dir, VenuesFile))
	require.Len(t, venues, len(ds.Venues)+1)
	assert.Equal(t, VenueHeader, venues[0])

	bookings := readTable(t, filepath.Join(dir, BookingsFile))
	require.Len(t, bookings, len(ds.Bookings)+1)
	assert.Equal(t, BookingHeader, bookings[0])

	reviews := readTable(t, filepath.Join(dir, ReviewsFile))
	require.Len(t, reviews, len(ds.Reviews)+1)
	assert.Equal(t, ReviewHeader, reviews[0])

	assert.Equal(t, ds.Venues[0].Row(), venues[1])
}

func TestWriteFilesZeroBookingsAndReviews(t *testing.T) {
	dir := t.TempDir()
	ds := New(22).Generate(0, 0)
	require.NoError(t, ds.WriteFiles(dir))

	bookings := readTable(t, filepath.Join(dir, BookingsFile))
	require.Len(t, bookings, 1, "zero records still writes a header line")
	assert.Equal(t, BookingHeader, bookings[0])

	reviews := readTable(t, filepath.Join(dir, ReviewsFile))
	require.Len(t, reviews, 1)
	assert.Equal(t, ReviewHeader, reviews[0])
}
