package seatmap

// Band is a contiguous row range [StartRow, EndRow) of the seat grid with
// a fare multiplier. Band boundaries are immutable and the declared bands
// partition the full grid with no gaps or overlaps.
type Band struct {
	Name       string
	Label      string
	Multiplier float64
	StartRow   int
	EndRow     int
}

// Bands lists the cabin bands in catalog order.
var Bands = []Band{
	{Name: "ECONOMY", Label: "Economy Class", Multiplier: 1.0, StartRow: 4, EndRow: 8},
	{Name: "BUSINESS", Label: "Business Class", Multiplier: 2.5, StartRow: 2, EndRow: 4},
	{Name: "FIRST", Label: "First Class", Multiplier: 5.0, StartRow: 0, EndRow: 2},
}

// BandByName looks up a band by its catalog name.
func BandByName(name string) (Band, bool) {
	for _, b := range Bands {
		if b.Name == name {
			return b, true
		}
	}
	return Band{}, false
}

// BandFor returns the band covering the given row. The lookup is total
// over the grid's row range; rows outside it fail with ErrRowOutOfRange.
func BandFor(row int) (Band, error) {
	if row < 0 || row >= Rows {
		return Band{}, ErrRowOutOfRange
	}
	for _, b := range Bands {
		if row >= b.StartRow && row < b.EndRow {
			return b, nil
		}
	}
	// Unreachable while the bands cover every row, kept so the lookup
	// stays total if the catalog ever changes.
	return Band{}, ErrRowOutOfRange
}

// Contains reports whether the row falls inside the band.
func (b Band) Contains(row int) bool {
	return row >= b.StartRow && row < b.EndRow
}
