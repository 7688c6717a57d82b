package inventory

import (
	"fmt"
	"strconv"

	"skyledger/pkg/model"
	"skyledger/pkg/seatmap"
)

// Table schemas. The header order is the row field order; encode and
// decode below must stay in lockstep with these.
const (
	TableUsers    = "users"
	TableFlights  = "flights"
	TableBookings = "bookings"
)

var (
	HeaderUsers    = []string{"username", "secret", "name", "admin", "wallet"}
	HeaderFlights  = []string{"id", "origin", "destination", "time", "fare"}
	HeaderBookings = []string{"ref", "flight", "seat", "owner", "band", "addon", "paid"}
)

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func encodeUser(u *model.User) []string {
	return []string{
		u.Username,
		u.Secret,
		u.Name,
		strconv.FormatBool(u.Admin),
		formatAmount(u.Wallet),
	}
}

func decodeUser(row []string) (*model.User, error) {
	if len(row) != len(HeaderUsers) {
		return nil, fmt.Errorf("user row has %d fields, expected %d", len(row), len(HeaderUsers))
	}
	admin, err := strconv.ParseBool(row[3])
	if err != nil {
		return nil, fmt.Errorf("user row has invalid admin flag %q", row[3])
	}
	wallet, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return nil, fmt.Errorf("user row has invalid wallet %q", row[4])
	}
	if wallet < 0 {
		return nil, fmt.Errorf("user row has negative wallet %q", row[4])
	}
	return &model.User{
		Username: row[0],
		Secret:   row[1],
		Name:     row[2],
		Admin:    admin,
		Wallet:   wallet,
	}, nil
}

func encodeFlight(f *model.Flight) []string {
	return []string{
		f.ID,
		f.Origin,
		f.Destination,
		f.Departure,
		formatAmount(f.Fare),
	}
}

func decodeFlight(row []string) (*model.Flight, error) {
	if len(row) != len(HeaderFlights) {
		return nil, fmt.Errorf("flight row has %d fields, expected %d", len(row), len(HeaderFlights))
	}
	fare, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return nil, fmt.Errorf("flight row has invalid fare %q", row[4])
	}
	return &model.Flight{
		ID:          row[0],
		Origin:      row[1],
		Destination: row[2],
		Departure:   row[3],
		Fare:        fare,
		Seats:       seatmap.NewGrid(),
	}, nil
}

func encodeBooking(b *model.Booking) []string {
	return []string{
		b.Ref,
		b.FlightID,
		b.Seat.Label(),
		b.Owner,
		b.Band,
		b.AddOn,
		formatAmount(b.Paid),
	}
}

func decodeBooking(row []string) (*model.Booking, error) {
	if len(row) != len(HeaderBookings) {
		return nil, fmt.Errorf("booking row has %d fields, expected %d", len(row), len(HeaderBookings))
	}
	seat, err := seatmap.ParseLabel(row[2])
	if err != nil {
		return nil, fmt.Errorf("booking row has invalid seat %q: %w", row[2], err)
	}
	if _, ok := seatmap.BandByName(row[4]); !ok {
		return nil, fmt.Errorf("booking row has unknown band %q", row[4])
	}
	if _, ok := model.AddOnByName(row[5]); !ok {
		return nil, fmt.Errorf("booking row has unknown add-on %q", row[5])
	}
	paid, err := strconv.ParseFloat(row[6], 64)
	if err != nil {
		return nil, fmt.Errorf("booking row has invalid paid amount %q", row[6])
	}
	return &model.Booking{
		Ref:      row[0],
		FlightID: row[1],
		Seat:     seat,
		Owner:    row[3],
		Band:     row[4],
		AddOn:    row[5],
		Paid:     paid,
	}, nil
}
