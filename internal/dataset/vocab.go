package dataset

// ── Word pools ──

var venueTypes = []string{
	"Conference Room", "Wedding Hall", "Concert Venue", "Meeting Room",
	"Exhibition Space", "Outdoor Garden", "Rooftop Terrace", "Auditorium",
	"Sports Hall", "Theater", "Banquet Hall", "Training Room",
}

// venueNames drives the venue count: one venue is generated per name.
var venueNames = []string{
	"Crystal Palace", "The Grand Hall", "Innovation Hub", "Sunset Gardens",
	"Metropolitan Center", "Skyline View", "Ocean Breeze", "Tech Space",
	"Heritage Hall", "Green Valley", "Royal Court", "Business Hub",
	"Urban Loft", "Lighthouse Point", "Downtown Arena",
}

var facilityNames = []string{
	"WiFi", "Projector", "Sound System", "Catering Services",
	"Parking", "Air Conditioning", "Stage", "Lighting System",
	"Security Service", "Wheelchair Access", "Breakout Rooms",
}

var cities = []string{
	"New York", "London", "Tokyo", "Paris", "Sydney", "Singapore", "Dubai", "Toronto",
}

var eventTypes = []string{
	"Wedding", "Conference", "Meeting", "Concert", "Exhibition", "Training", "Party", "Seminar",
}

var bookingStatuses = []string{"Confirmed", "Pending", "Cancelled", "Completed"}

var praisePhrases = []string{
	"Excellent facilities and staff.",
	"Perfect location and amenities.",
	"Would highly recommend.",
	"Will book again.",
	"Exceeded our expectations.",
}

var capacities = []int{50, 100, 150, 200, 300, 500, 1000}

var slotDurations = []int{2, 3, 4, 6, 8}

// Three true to one false gives venues a ~75% chance of being active.
var activeBias = []bool{true, true, true, false}
