package dataset

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDTokenFormats(t *testing.T) {
	g := New(1)

	cases := []struct {
		name   string
		gen    func() string
		prefix string
		min    int
		max    int
	}{
		{"venue", g.venueID, "VEN", 1000, 9999},
		{"booking", g.bookingID, "BKG", 10000, 99999},
		{"user", g.userID, "USER", 100, 999},
		{"review", g.reviewID, "REV", 1000, 9999},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				token := tc.gen()
				require.True(t, strings.HasPrefix(token, tc.prefix), "token %q missing prefix %s", token, tc.prefix)
				n, err := strconv.Atoi(strings.TrimPrefix(token, tc.prefix))
				require.NoError(t, err, "token %q has non-numeric suffix", token)
				assert.GreaterOrEqual(t, n, tc.min)
				assert.LessOrEqual(t, n, tc.max)
			}
		})
	}
}

func TestPriceRanges(t *testing.T) {
	g := New(2)
	for i := 0; i < 500; i++ {
		p := g.price()
		assert.GreaterOrEqual(t, p, 500.0)
		assert.LessOrEqual(t, p, 5000.0)
		assert.InDelta(t, math.Round(p*100), p*100, 1e-9, "price %v not rounded to 2 places", p)

		c := g.totalCost()
		assert.GreaterOrEqual(t, c, 1000.0)
		assert.LessOrEqual(t, c, 10000.0)
		assert.InDelta(t, math.Round(c*100), c*100, 1e-9, "cost %v not rounded to 2 places", c)
	}
}

func TestRatingRange(t *testing.T) {
	g := New(3)
	for i := 0; i < 500; i++ {
		r := g.rating()
		assert.GreaterOrEqual(t, r, 3.5)
		assert.LessOrEqual(t, r, 5.0)
		assert.InDelta(t, math.Round(r*10), r*10, 1e-9, "rating %v not rounded to 1 place", r)
	}
}

func TestCapacityFromFixedSet(t *testing.T) {
	g := New(4)
	for i := 0; i < 200; i++ {
		assert.Contains(t, capacities, g.capacity())
	}
}

func TestDateWindows(t *testing.T) {
	g := New(5)
	now := time.Now()

	for i := 0; i < 300; i++ {
		past, err := time.Parse("2006-01-02", g.date(false))
		require.NoError(t, err)
		assert.True(t, past.After(now.AddDate(0, 0, -367)), "past date %v too old", past)
		assert.True(t, past.Before(now.AddDate(0, 0, 2)), "past date %v beyond today", past)

		future, err := time.Parse("2006-01-02", g.date(true))
		require.NoError(t, err)
		assert.True(t, future.After(now.AddDate(0, 0, -2)), "future date %v before today", future)
		assert.True(t, future.Before(now.AddDate(0, 0, 367)), "future date %v too far out", future)
	}
}

var timeSlotPattern = regexp.MustCompile(`^(\d{2}):00-(\d{2}):00$`)

func TestTimeSlotBounds(t *testing.T) {
	g := New(6)
	for i := 0; i < 500; i++ {
		slot := g.timeSlot()
		m := timeSlotPattern.FindStringSubmatch(slot)
		require.NotNil(t, m, "slot %q has wrong format", slot)

		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		assert.GreaterOrEqual(t, start, 8)
		assert.LessOrEqual(t, start, 20)
		assert.LessOrEqual(t, end, 22, "slot %q runs past closing", slot)
		assert.GreaterOrEqual(t, end, start+2, "slot %q shorter than minimum duration", slot)
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	g := New(7)
	for i := 0; i < 100; i++ {
		picked := g.sample(facilityNames, 6)
		require.Len(t, picked, 6)

		seen := make(map[string]bool, len(picked))
		for _, f := range picked {
			assert.Contains(t, facilityNames, f)
			assert.False(t, seen[f], "facility %q picked twice", f)
			seen[f] = true
		}
	}
}

func TestSameSeedSameDataset(t *testing.T) {
	a := New(42).Generate(20, 10)
	b := New(42).Generate(20, 10)
	require.Equal(t, a, b)
}
