package model

import "skyledger/pkg/seatmap"

// Booking is a committed reservation. Paid is frozen at booking time and
// never recomputed; cancellation refunds exactly this amount.
type Booking struct {
	Ref      string
	FlightID string
	Seat     seatmap.Seat
	Owner    string
	Band     string
	AddOn    string
	Paid     float64
}
