package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Venue is a bookable space with fixed attributes.
type Venue struct {
	ID           string
	Name         string
	Type         string
	Capacity     int
	PricePerHour float64
	City         string
	Facilities   string
	Rating       float64
	IsActive     bool
	CreatedDate  string
}

// Booking reserves a venue for an event. VenueID always references a
// generated venue; everything else is independent per booking.
type Booking struct {
	ID             string
	VenueID        string
	UserID         string
	EventType      string
	BookingDate    string
	TimeSlot       string
	Attendees      int
	Status         string
	TotalCost      float64
	BookingCreated string
}

// Review is user feedback tied to one generated venue.
type Review struct {
	ID        string
	VenueID   string
	UserID    string
	Rating    float64
	Date      string
	EventType string
	Comment   string
}

// CSV column orders. Headers are fixed here rather than derived from the
// records so that an empty table still serializes with a valid header row.
var (
	VenueHeader = []string{
		"venue_id", "name", "type", "capacity", "price_per_hour",
		"city", "facilities", "rating", "is_active", "created_date",
	}
	BookingHeader = []string{
		"booking_id", "venue_id", "user_id", "event_type", "booking_date",
		"time_slot", "attendees", "status", "total_cost", "booking_created",
	}
	ReviewHeader = []string{
		"review_id", "venue_id", "user_id", "rating", "review_date",
		"event_type", "comment",
	}
)

// Row returns the venue's CSV fields in VenueHeader order.
func (v Venue) Row() []string {
	return []string{
		v.ID,
		v.Name,
		v.Type,
		strconv.Itoa(v.Capacity),
		formatMoney(v.PricePerHour),
		v.City,
		v.Facilities,
		formatRating(v.Rating),
		strconv.FormatBool(v.IsActive),
		v.CreatedDate,
	}
}

// Row returns the booking's CSV fields in BookingHeader order.
func (b Booking) Row() []string {
	return []string{
		b.ID,
		b.VenueID,
		b.UserID,
		b.EventType,
		b.BookingDate,
		b.TimeSlot,
		strconv.Itoa(b.Attendees),
		b.Status,
		formatMoney(b.TotalCost),
		b.BookingCreated,
	}
}

// Row returns the review's CSV fields in ReviewHeader order.
func (r Review) Row() []string {
	return []string{
		r.ID,
		r.VenueID,
		r.UserID,
		formatRating(r.Rating),
		r.Date,
		r.EventType,
		r.Comment,
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Dataset holds one full generated run.
type Dataset struct {
	Venues   []Venue
	Bookings []Booking
	Reviews  []Review
}

// Generate builds a complete dataset: venues first, then bookings and
// reviews sampling venue IDs from the already-built pool so every
// reference resolves by construction.
func (g *Generator) Generate(bookingCount, reviewCount int) *Dataset {
	venues := g.Venues()
	return &Dataset{
		Venues:   venues,
		Bookings: g.Bookings(bookingCount, venues),
		Reviews:  g.Reviews(reviewCount, venues),
	}
}

// Venues generates one venue per entry in the name pool.
func (g *Generator) Venues() []Venue {
	venues := make([]Venue, 0, len(venueNames))
	for _, name := range venueNames {
		venues = append(venues, Venue{
			ID:           g.venueID(),
			Name:         name,
			Type:         g.pick(venueTypes),
			Capacity:     g.capacity(),
			PricePerHour: g.price(),
			City:         g.pick(cities),
			Facilities:   strings.Join(g.sample(facilityNames, g.intRange(3, 6)), ", "),
			Rating:       g.rating(),
			IsActive:     activeBias[g.rand.Intn(len(activeBias))],
			CreatedDate:  g.date(false),
		})
	}
	return venues
}

// Bookings generates count bookings, each assigned to a random venue from
// the pool (with replacement — a venue may get zero or many bookings).
// Booking dates land in the past or coming year on a per-booking coin flip.
func (g *Generator) Bookings(count int, venues []Venue) []Booking {
	bookings := make([]Booking, 0, count)
	for i := 0; i < count; i++ {
		bookings = append(bookings, Booking{
			ID:             g.bookingID(),
			VenueID:        venues[g.rand.Intn(len(venues))].ID,
			UserID:         g.userID(),
			EventType:      g.pick(eventTypes),
			BookingDate:    g.date(g.rand.Intn(2) == 0),
			TimeSlot:       g.timeSlot(),
			Attendees:      g.intRange(10, 1000),
			Status:         g.pick(bookingStatuses),
			TotalCost:      g.totalCost(),
			BookingCreated: g.date(false),
		})
	}
	return bookings
}

// Reviews generates count reviews. Each review picks a whole venue record
// so the comment can mention that venue's type; the event type in the
// comment is drawn independently and need not match any actual booking.
func (g *Generator) Reviews(count int, venues []Venue) []Review {
	reviews := make([]Review, 0, count)
	for i := 0; i < count; i++ {
		venue := venues[g.rand.Intn(len(venues))]
		comment := fmt.Sprintf("Great %s for our %s. %s",
			venue.Type,
			strings.ToLower(g.pick(eventTypes)),
			g.pick(praisePhrases),
		)
		reviews = append(reviews, Review{
			ID:        g.reviewID(),
			VenueID:   venue.ID,
			UserID:    g.userID(),
			Rating:    g.rating(),
			Date:      g.date(false),
			EventType: g.pick(eventTypes),
			Comment:   comment,
		})
	}
	return reviews
}
