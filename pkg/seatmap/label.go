package seatmap

import (
	"fmt"
	"strconv"
	"strings"
)

// Seat is a 0-based grid coordinate. The human-facing label uses a
// 1-based row number and a column letter, e.g. Seat{Row: 2, Col: 2}
// displays as "3C".
type Seat struct {
	Row int
	Col int
}

// ParseLabel parses a seat label of the shape <row-number><column-letter>.
// Input is uppercased and trimmed first. Any non-matching shape,
// non-numeric row, or out-of-range coordinate fails with ErrMalformedLabel.
func ParseLabel(label string) (Seat, error) {
	label = strings.ToUpper(strings.TrimSpace(label))
	if len(label) < 2 {
		return Seat{}, fmt.Errorf("%w: %q", ErrMalformedLabel, label)
	}

	colLetter := label[len(label)-1]
	if colLetter < 'A' || colLetter >= 'A'+Cols {
		return Seat{}, fmt.Errorf("%w: column %q", ErrMalformedLabel, string(colLetter))
	}

	row, err := strconv.Atoi(label[:len(label)-1])
	if err != nil {
		return Seat{}, fmt.Errorf("%w: %q", ErrMalformedLabel, label)
	}
	if row < 1 || row > Rows {
		return Seat{}, fmt.Errorf("%w: row %d", ErrMalformedLabel, row)
	}

	return Seat{Row: row - 1, Col: int(colLetter - 'A')}, nil
}

// Label renders the display form of the seat.
func (s Seat) Label() string {
	return fmt.Sprintf("%d%c", s.Row+1, 'A'+byte(s.Col))
}
