// Package search provides read-only queries over the inventory cache.
// Results follow table insertion order; nothing here mutates state or
// touches the record store.
package search

import (
	"strings"

	"skyledger/internal/inventory"
	"skyledger/pkg/model"
	"skyledger/pkg/sanitizer"
)

type Engine struct {
	cache *inventory.Cache
}

func NewEngine(cache *inventory.Cache) *Engine {
	return &Engine{cache: cache}
}

// ByRoute returns flights whose origin or destination contains the
// query. An empty query matches every flight.
func (e *Engine) ByRoute(query string) []*model.Flight {
	query = sanitizer.NormalizeCode(query)
	if query == "" {
		return e.cache.Flights()
	}
	var out []*model.Flight
	for _, f := range e.cache.Flights() {
		if strings.Contains(f.Origin, query) || strings.Contains(f.Destination, query) {
			out = append(out, f)
		}
	}
	return out
}

// ManifestFor returns the bookings on a flight.
func (e *Engine) ManifestFor(flightKey string) []*model.Booking {
	flightKey = sanitizer.NormalizeCode(flightKey)
	var out []*model.Booking
	for _, b := range e.cache.Bookings() {
		if b.FlightID == flightKey {
			out = append(out, b)
		}
	}
	return out
}

// ByOwner returns the bookings held by a passenger.
func (e *Engine) ByOwner(ownerKey string) []*model.Booking {
	var out []*model.Booking
	for _, b := range e.cache.Bookings() {
		if b.Owner == ownerKey {
			out = append(out, b)
		}
	}
	return out
}

// Analytics is the admin dashboard summary.
type Analytics struct {
	TotalRevenue float64
	BookingCount int
	UserCount    int
	FlightCount  int
}

func (e *Engine) Analytics() Analytics {
	a := Analytics{
		BookingCount: len(e.cache.Bookings()),
		UserCount:    len(e.cache.Users()),
		FlightCount:  len(e.cache.Flights()),
	}
	for _, b := range e.cache.Bookings() {
		a.TotalRevenue += b.Paid
	}
	return a
}
