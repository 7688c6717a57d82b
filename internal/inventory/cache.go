// Package inventory holds the single in-memory snapshot of all tables for
// a process lifetime. The cache is rebuilt wholesale from the record store
// at startup and mutated only through the persistence methods below, which
// flush each change to its table before returning. Structurally invalid
// rows are skipped at load, never fatal.
package inventory

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"skyledger/pkg/db/flatfile"
	"skyledger/pkg/logger"
	"skyledger/pkg/model"
)

var refPattern = regexp.MustCompile(`^PNR-(\d+)$`)

type Cache struct {
	store *flatfile.Store
	log   *logger.Logger

	users     map[string]*model.User
	userOrder []string

	flights     []*model.Flight
	flightIndex map[string]*model.Flight

	bookings []*model.Booking

	nextRef int
}

func NewCache(store *flatfile.Store, log *logger.Logger) *Cache {
	return &Cache{
		store:       store,
		log:         log,
		users:       map[string]*model.User{},
		flightIndex: map[string]*model.Flight{},
		nextRef:     1,
	}
}

// EnsureTables creates any missing table files with their headers.
func (c *Cache) EnsureTables() error {
	for _, t := range []struct {
		name   string
		header []string
	}{
		{TableUsers, HeaderUsers},
		{TableFlights, HeaderFlights},
		{TableBookings, HeaderBookings},
	} {
		if err := c.store.EnsureTable(t.name, t.header); err != nil {
			return err
		}
	}
	return nil
}

// Hydrate rebuilds the cache from the record store: users, flights, then
// bookings. A booking row referencing a missing flight, or whose seat
// cannot be replayed, is dropped with a warning. Replayed bookings leave
// the seat maps agreeing with the on-disk ledger.
func (c *Cache) Hydrate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.users = map[string]*model.User{}
	c.userOrder = nil
	c.flights = nil
	c.flightIndex = map[string]*model.Flight{}
	c.bookings = nil
	c.nextRef = 1

	userRows, err := c.store.LoadAll(TableUsers)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	for _, row := range userRows {
		u, err := decodeUser(row)
		if err != nil {
			c.log.Warn("Skipping invalid user row", "error", err)
			continue
		}
		if _, exists := c.users[u.Username]; exists {
			c.log.Warn("Skipping duplicate user row", "username", u.Username)
			continue
		}
		c.users[u.Username] = u
		c.userOrder = append(c.userOrder, u.Username)
	}

	flightRows, err := c.store.LoadAll(TableFlights)
	if err != nil {
		return fmt.Errorf("failed to load flights: %w", err)
	}
	for _, row := range flightRows {
		f, err := decodeFlight(row)
		if err != nil {
			c.log.Warn("Skipping invalid flight row", "error", err)
			continue
		}
		if _, exists := c.flightIndex[f.ID]; exists {
			c.log.Warn("Skipping duplicate flight row", "flight", f.ID)
			continue
		}
		c.flights = append(c.flights, f)
		c.flightIndex[f.ID] = f
	}

	bookingRows, err := c.store.LoadAll(TableBookings)
	if err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}
	for _, row := range bookingRows {
		b, err := decodeBooking(row)
		if err != nil {
			c.log.Warn("Skipping invalid booking row", "error", err)
			continue
		}
		flight, ok := c.flightIndex[b.FlightID]
		if !ok {
			c.log.Warn("Dropping orphan booking row", "ref", b.Ref, "flight", b.FlightID)
			continue
		}
		if err := flight.Seats.Reserve(b.Seat); err != nil {
			c.log.Warn("Dropping booking row with unreplayable seat",
				"ref", b.Ref, "flight", b.FlightID, "seat", b.Seat.Label(), "error", err)
			continue
		}
		c.bookings = append(c.bookings, b)
		c.advanceRefCounter(b.Ref)
	}

	c.log.Info("Inventory hydrated",
		"users", len(c.users),
		"flights", len(c.flights),
		"bookings", len(c.bookings),
	)
	return nil
}

func (c *Cache) advanceRefCounter(ref string) {
	m := refPattern.FindStringSubmatch(ref)
	if m == nil {
		return
	}
	if n, err := strconv.Atoi(m[1]); err == nil && n >= c.nextRef {
		c.nextRef = n + 1
	}
}

// NextRef allocates the next booking reference from the monotonic
// counter, skipping any value already present in the table.
func (c *Cache) NextRef() string {
	for {
		ref := fmt.Sprintf("PNR-%06d", c.nextRef)
		c.nextRef++
		if _, taken := c.Booking(ref); !taken {
			return ref
		}
	}
}

// --- Reads ---

func (c *Cache) User(username string) (*model.User, bool) {
	u, ok := c.users[username]
	return u, ok
}

// Users returns all users in table insertion order.
func (c *Cache) Users() []*model.User {
	out := make([]*model.User, 0, len(c.userOrder))
	for _, name := range c.userOrder {
		out = append(out, c.users[name])
	}
	return out
}

func (c *Cache) Flight(id string) (*model.Flight, bool) {
	f, ok := c.flightIndex[id]
	return f, ok
}

func (c *Cache) Flights() []*model.Flight {
	return c.flights
}

func (c *Cache) Booking(ref string) (*model.Booking, bool) {
	for _, b := range c.bookings {
		if b.Ref == ref {
			return b, true
		}
	}
	return nil, false
}

func (c *Cache) Bookings() []*model.Booking {
	return c.bookings
}

// --- Writes: each mutates the cache and flushes to the store ---

func (c *Cache) SaveUser(u *model.User) error {
	if err := c.store.Append(TableUsers, encodeUser(u)); err != nil {
		return err
	}
	c.users[u.Username] = u
	c.userOrder = append(c.userOrder, u.Username)
	return nil
}

// UpdateUserWallet persists the user's current row, replacing the stored
// one. The in-memory user is the source of truth; callers mutate it first.
func (c *Cache) UpdateUserWallet(u *model.User) error {
	return c.store.RewriteMatching(TableUsers,
		func(key string) bool { return key == u.Username },
		encodeUser(u))
}

func (c *Cache) SaveFlight(f *model.Flight) error {
	if err := c.store.Append(TableFlights, encodeFlight(f)); err != nil {
		return err
	}
	c.flights = append(c.flights, f)
	c.flightIndex[f.ID] = f
	return nil
}

func (c *Cache) DeleteFlight(id string) error {
	if err := c.store.RewriteMatching(TableFlights,
		func(key string) bool { return key == id }, nil); err != nil {
		return err
	}
	delete(c.flightIndex, id)
	for i, f := range c.flights {
		if f.ID == id {
			c.flights = append(c.flights[:i], c.flights[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Cache) SaveBooking(b *model.Booking) error {
	if err := c.store.Append(TableBookings, encodeBooking(b)); err != nil {
		return err
	}
	c.bookings = append(c.bookings, b)
	return nil
}

func (c *Cache) DeleteBooking(ref string) error {
	if err := c.store.RewriteMatching(TableBookings,
		func(key string) bool { return key == ref }, nil); err != nil {
		return err
	}
	for i, b := range c.bookings {
		if b.Ref == ref {
			c.bookings = append(c.bookings[:i], c.bookings[i+1:]...)
			break
		}
	}
	return nil
}
