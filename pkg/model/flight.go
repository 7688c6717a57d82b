package model

import "skyledger/pkg/seatmap"

// Flight is a scheduled route with its seat inventory. ID doubles as the
// route code and the table row key.
type Flight struct {
	ID          string
	Origin      string
	Destination string
	Departure   string
	Fare        float64
	Seats       *seatmap.Grid
}

// FlightSpec is the admin input for creating a flight. Departure is
// checked against the HH:MM shape by the fleet validator.
type FlightSpec struct {
	ID          string  `validate:"required,min=2,max=10"`
	Origin      string  `validate:"required,len=3,alpha"`
	Destination string  `validate:"required,len=3,alpha"`
	Departure   string  `validate:"required"`
	Fare        float64 `validate:"required,gt=0"`
}
