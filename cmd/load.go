package cmd

import (
	"bufio"
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nisakhantalib/booking-system/internal/dataset"
)

const defaultPort = 5432

type loadConfig struct {
	host           string
	port           int
	user           string
	password       string
	dbname         string
	bookings       int
	reviews        int
	seed           int64
	nonInteractive bool
}

var loadCfg loadConfig

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate a dataset and load it into a PostgreSQL database",
	Long: `Generates venues, bookings, and reviews in memory, then recreates the three
tables in the target database and bulk-inserts the rows. Connection settings
come from flags, VENUEGEN_* environment variables, or a .env file.`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(&loadCfg.host, "host", "", "PostgreSQL host (or VENUEGEN_HOST env)")
	loadCmd.Flags().IntVar(&loadCfg.port, "port", 0, "PostgreSQL port (default 5432, or VENUEGEN_PORT env)")
	loadCmd.Flags().StringVar(&loadCfg.user, "user", "", "PostgreSQL username (or VENUEGEN_USER env)")
	loadCmd.Flags().StringVar(&loadCfg.dbname, "dbname", "", "Target database name (or VENUEGEN_DBNAME env)")
	loadCmd.Flags().IntVar(&loadCfg.bookings, "bookings", 200, "Number of bookings to generate")
	loadCmd.Flags().IntVar(&loadCfg.reviews, "reviews", 150, "Number of reviews to generate")
	loadCmd.Flags().Int64Var(&loadCfg.seed, "seed", 0, "Random seed (0 = seed from current time)")
	loadCmd.Flags().BoolVar(&loadCfg.nonInteractive, "non-interactive", false, "Never prompt; fail if any required value is missing")
}

func resolveLoadEnv() {
	if loadCfg.host == "" {
		loadCfg.host = os.Getenv("VENUEGEN_HOST")
	}
	if loadCfg.port == 0 {
		if p := os.Getenv("VENUEGEN_PORT"); p != "" {
			if port, err := strconv.Atoi(p); err == nil {
				loadCfg.port = port
			}
		}
	}
	if loadCfg.user == "" {
		loadCfg.user = os.Getenv("VENUEGEN_USER")
	}
	if loadCfg.dbname == "" {
		loadCfg.dbname = os.Getenv("VENUEGEN_DBNAME")
	}
	if loadCfg.password == "" {
		loadCfg.password = os.Getenv("VENUEGEN_PGPASSWORD")
		if loadCfg.password == "" {
			loadCfg.password = os.Getenv("PGPASSWORD")
		}
	}
}

func promptPassword(prompt string) string {
	fmt.Print(prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}
	return string(pass)
}

func buildConnStr(host string, port int, user, password, db string) string {
	hostPort := host
	if port > 0 {
		hostPort = fmt.Sprintf("%s:%d", host, port)
	}
	u := &url.URL{
		Scheme:   "postgres",
		Host:     hostPort,
		Path:     "/" + db,
		RawQuery: "sslmode=prefer",
	}
	if password != "" {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

func runLoad(cmd *cobra.Command, args []string) error {
	// .env is optional; flags and env still win when set.
	_ = godotenv.Load()
	resolveLoadEnv()

	if loadCfg.port == 0 {
		loadCfg.port = defaultPort
	}
	if loadCfg.password == "" && !loadCfg.nonInteractive {
		loadCfg.password = promptPassword("Password: ")
	}
	if loadCfg.host == "" || loadCfg.user == "" || loadCfg.dbname == "" {
		return fmt.Errorf("missing required config: set --host/--user/--dbname, env, or .env (see --help)")
	}
	if loadCfg.bookings < 0 || loadCfg.reviews < 0 {
		return fmt.Errorf("record counts cannot be negative (bookings=%d, reviews=%d)", loadCfg.bookings, loadCfg.reviews)
	}

	logger := newLogger()
	defer logger.Sync()

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, buildConnStr(loadCfg.host, loadCfg.port, loadCfg.user, loadCfg.password, loadCfg.dbname))
	if err != nil {
		return fmt.Errorf("connect to %s: %w", loadCfg.dbname, err)
	}
	defer conn.Close(ctx)
	logger.Infow("connected", "host", loadCfg.host, "port", loadCfg.port, "dbname", loadCfg.dbname)

	gen := dataset.New(loadCfg.seed)
	ds := gen.Generate(loadCfg.bookings, loadCfg.reviews)
	logger.Infow("dataset generated",
		"venues", len(ds.Venues),
		"bookings", len(ds.Bookings),
		"reviews", len(ds.Reviews),
	)

	start := time.Now()
	for _, stmt := range createTableStatements() {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("execute DDL: %w", err)
		}
	}

	// Venues first: bookings and reviews reference them.
	if err := copyTable(ctx, conn, "venues", venueColumns, venueValues(ds.Venues)); err != nil {
		return err
	}
	if err := copyTable(ctx, conn, "bookings", bookingColumns, bookingValues(ds.Bookings)); err != nil {
		return err
	}
	if err := copyTable(ctx, conn, "reviews", reviewColumns, reviewValues(ds.Reviews)); err != nil {
		return err
	}

	logger.Infow("load complete",
		"rows", len(ds.Venues)+len(ds.Bookings)+len(ds.Reviews),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

func copyTable(ctx context.Context, conn *pgx.Conn, table string, columns []string, rows [][]interface{}) error {
	if _, err := conn.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("copy into %s: %w", table, err)
	}
	return nil
}

var venueColumns = []string{
	"venue_id", "name", "type", "capacity", "price_per_hour",
	"city", "facilities", "rating", "is_active", "created_date",
}

var bookingColumns = []string{
	"booking_id", "venue_id", "user_id", "event_type", "booking_date",
	"time_slot", "attendees", "status", "total_cost", "booking_created",
}

var reviewColumns = []string{
	"review_id", "venue_id", "user_id", "rating", "review_date",
	"event_type", "comment",
}

// createTableStatements returns DROP/CREATE DDL for the three tables.
// ID columns are not primary keys: generated tokens may collide, and the
// tool does not pretend otherwise.
func createTableStatements() []string {
	return []string{
		`DROP TABLE IF EXISTS reviews`,
		`DROP TABLE IF EXISTS bookings`,
		`DROP TABLE IF EXISTS venues`,
		`CREATE TABLE venues (
  venue_id VARCHAR(10) NOT NULL,
  name VARCHAR(100) NOT NULL,
  type VARCHAR(50) NOT NULL,
  capacity INTEGER NOT NULL,
  price_per_hour NUMERIC(10,2) NOT NULL,
  city VARCHAR(100) NOT NULL,
  facilities TEXT NOT NULL,
  rating NUMERIC(3,1) NOT NULL,
  is_active BOOLEAN NOT NULL,
  created_date DATE NOT NULL
)`,
		`CREATE TABLE bookings (
  booking_id VARCHAR(10) NOT NULL,
  venue_id VARCHAR(10) NOT NULL,
  user_id VARCHAR(10) NOT NULL,
  event_type VARCHAR(50) NOT NULL,
  booking_date DATE NOT NULL,
  time_slot VARCHAR(15) NOT NULL,
  attendees INTEGER NOT NULL,
  status VARCHAR(20) NOT NULL,
  total_cost NUMERIC(10,2) NOT NULL,
  booking_created DATE NOT NULL
)`,
		`CREATE TABLE reviews (
  review_id VARCHAR(10) NOT NULL,
  venue_id VARCHAR(10) NOT NULL,
  user_id VARCHAR(10) NOT NULL,
  rating NUMERIC(3,1) NOT NULL,
  review_date DATE NOT NULL,
  event_type VARCHAR(50) NOT NULL,
  comment TEXT NOT NULL
)`,
	}
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		// Dates come from our own generator; a parse failure is a bug.
		panic(fmt.Sprintf("invalid generated date %q: %v", s, err))
	}
	return t
}

func venueValues(venues []dataset.Venue) [][]interface{} {
	rows := make([][]interface{}, len(venues))
	for i, v := range venues {
		rows[i] = []interface{}{
			v.ID, v.Name, v.Type, v.Capacity, v.PricePerHour,
			v.City, v.Facilities, v.Rating, v.IsActive, mustDate(v.CreatedDate),
		}
	}
	return rows
}

func bookingValues(bookings []dataset.Booking) [][]interface{} {
	rows := make([][]interface{}, len(bookings))
	for i, b := range bookings {
		rows[i] = []interface{}{
			b.ID, b.VenueID, b.UserID, b.EventType, mustDate(b.BookingDate),
			b.TimeSlot, b.Attendees, b.Status, b.TotalCost, mustDate(b.BookingCreated),
		}
	}
	return rows
}

func reviewValues(reviews []dataset.Review) [][]interface{} {
	rows := make([][]interface{}, len(reviews))
	for i, r := range reviews {
		rows[i] = []interface{}{
			r.ID, r.VenueID, r.UserID, r.Rating, mustDate(r.Date),
			r.EventType, r.Comment,
		}
	}
	return rows
}
