package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Generator produces randomized field values from a dedicated random source.
// Passing the source in explicitly keeps runs seedable for tests; production
// runs use a time seed and make no reproducibility promises.
type Generator struct {
	rand *rand.Rand
}

// New returns a Generator seeded with the given value.
// A zero seed falls back to the current time.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rand: rand.New(rand.NewSource(seed))}
}

// ── Random helpers (non-crypto, fine for test data) ──

// intRange returns a random int in [min, max] inclusive.
func (g *Generator) intRange(min, max int) int {
	return min + g.rand.Intn(max-min+1)
}

func (g *Generator) floatRange(min, max float64) float64 {
	return min + g.rand.Float64()*(max-min)
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rand.Intn(len(pool))]
}

// sample draws n distinct entries from pool, in random order.
func (g *Generator) sample(pool []string, n int) []string {
	picked := make([]string, n)
	for i, j := range g.rand.Perm(len(pool))[:n] {
		picked[i] = pool[j]
	}
	return picked
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ── ID tokens ──
//
// Tokens are a fixed prefix plus a random number from a fixed range.
// No uniqueness check: collisions are possible and accepted at the
// volumes this tool generates.

func (g *Generator) venueID() string {
	return fmt.Sprintf("VEN%d", g.intRange(1000, 9999))
}

func (g *Generator) bookingID() string {
	return fmt.Sprintf("BKG%d", g.intRange(10000, 99999))
}

func (g *Generator) userID() string {
	return fmt.Sprintf("USER%d", g.intRange(100, 999))
}

func (g *Generator) reviewID() string {
	return fmt.Sprintf("REV%d", g.intRange(1000, 9999))
}

// ── Field generators ──

// price is a venue's hourly rate, 500–5000, two decimal places.
func (g *Generator) price() float64 {
	return round2(g.floatRange(500, 5000))
}

func (g *Generator) totalCost() float64 {
	return round2(g.floatRange(1000, 10000))
}

func (g *Generator) capacity() int {
	return capacities[g.rand.Intn(len(capacities))]
}

// rating is 3.5–5.0, one decimal place.
func (g *Generator) rating() float64 {
	return round1(g.floatRange(3.5, 5.0))
}

// date returns a YYYY-MM-DD date sampled from a 365-day window: the past
// year ending today, or the coming year starting today when future is set.
// The random offset is added to the window start, matching the historical
// behavior of this tool.
func (g *Generator) date(future bool) string {
	start := time.Now()
	if !future {
		start = start.AddDate(0, 0, -365)
	}
	return start.AddDate(0, 0, g.rand.Intn(366)).Format("2006-01-02")
}

// timeSlot returns an "HH:00-HH:00" slot. Start hour is 8–20, duration is
// drawn from slotDurations, and the end hour is clamped to 22: long events
// starting late are silently shortened rather than rejected.
func (g *Generator) timeSlot() string {
	start := g.intRange(8, 20)
	end := start + slotDurations[g.rand.Intn(len(slotDurations))]
	if end > 22 {
		end = 22
	}
	return fmt.Sprintf("%02d:00-%02d:00", start, end)
}
