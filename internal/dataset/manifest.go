package dataset

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
)

// ManifestFile is written next to the CSV files.
const ManifestFile = "manifest.json"

type fileEntry struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
}

// Manifest records what a run produced: which files, how many records,
// the seed (when one was given), and how long generation took.
type Manifest struct {
	RunID        string      `json:"run_id"`
	GeneratedAt  time.Time   `json:"generated_at"`
	Seed         int64       `json:"seed,omitempty"`
	DurationSecs float64     `json:"duration_secs"`
	Files        []fileEntry `json:"files"`
}

// NewManifest builds a manifest for the dataset. The seed is recorded as
// given; zero means the run was time-seeded and is not reproducible.
func NewManifest(d *Dataset, seed int64, duration time.Duration) Manifest {
	return Manifest{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Seed:         seed,
		DurationSecs: duration.Seconds(),
		Files: []fileEntry{
			{Name: VenuesFile, Records: len(d.Venues)},
			{Name: BookingsFile, Records: len(d.Bookings)},
			{Name: ReviewsFile, Records: len(d.Reviews)},
		},
	}
}

// Write writes the manifest as indented JSON.
func (m Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
