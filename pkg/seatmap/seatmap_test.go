package seatmap

import (
	"errors"
	"testing"
)

func TestGrid_ReserveAndRelease(t *testing.T) {
	g := NewGrid()
	s := Seat{Row: 2, Col: 2}

	if g.Occupied(s) {
		t.Fatalf("new grid should have %s free", s.Label())
	}
	if err := g.Reserve(s); err != nil {
		t.Fatalf("unexpected reserve error: %v", err)
	}
	if !g.Occupied(s) {
		t.Errorf("expected %s occupied after reserve", s.Label())
	}
	if err := g.Release(s); err != nil {
		t.Fatalf("unexpected release error: %v", err)
	}
	if g.Occupied(s) {
		t.Errorf("expected %s free after release", s.Label())
	}
}

func TestGrid_ReserveConflict(t *testing.T) {
	g := NewGrid()
	s := Seat{Row: 0, Col: 0}

	if err := g.Reserve(s); err != nil {
		t.Fatalf("first reserve failed: %v", err)
	}
	err := g.Reserve(s)
	if !errors.Is(err, ErrSeatTaken) {
		t.Errorf("expected ErrSeatTaken, got %v", err)
	}
	if !g.Occupied(s) {
		t.Errorf("conflicting reserve must not free the seat")
	}
}

func TestGrid_ReleaseFree(t *testing.T) {
	g := NewGrid()
	err := g.Release(Seat{Row: 1, Col: 1})
	if !errors.Is(err, ErrSeatFree) {
		t.Errorf("expected ErrSeatFree, got %v", err)
	}
}

func TestGrid_OutOfRange(t *testing.T) {
	g := NewGrid()
	tests := []Seat{
		{Row: -1, Col: 0},
		{Row: Rows, Col: 0},
		{Row: 0, Col: Cols},
		{Row: 0, Col: -1},
	}
	for _, s := range tests {
		if err := g.Reserve(s); !errors.Is(err, ErrRowOutOfRange) {
			t.Errorf("Reserve(%+v): expected ErrRowOutOfRange, got %v", s, err)
		}
		if g.Occupied(s) {
			t.Errorf("Occupied(%+v): out-of-range seat reported occupied", s)
		}
	}
}

func TestGrid_OccupiedCount(t *testing.T) {
	g := NewGrid()
	seats := []Seat{{0, 0}, {3, 1}, {7, 3}}
	for _, s := range seats {
		if err := g.Reserve(s); err != nil {
			t.Fatalf("reserve %s: %v", s.Label(), err)
		}
	}
	if got := g.OccupiedCount(); got != len(seats) {
		t.Errorf("expected %d occupied seats, got %d", len(seats), got)
	}
}

func TestBandFor_CoversEveryRow(t *testing.T) {
	for row := 0; row < Rows; row++ {
		band, err := BandFor(row)
		if err != nil {
			t.Errorf("row %d: unexpected error %v", row, err)
			continue
		}
		if !band.Contains(row) {
			t.Errorf("row %d: returned band %s does not contain it", row, band.Name)
		}
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		row      int
		expected string
	}{
		{0, "FIRST"},
		{1, "FIRST"},
		{2, "BUSINESS"},
		{3, "BUSINESS"},
		{4, "ECONOMY"},
		{7, "ECONOMY"},
	}
	for _, tt := range tests {
		band, err := BandFor(tt.row)
		if err != nil {
			t.Errorf("row %d: unexpected error %v", tt.row, err)
			continue
		}
		if band.Name != tt.expected {
			t.Errorf("row %d: expected %s, got %s", tt.row, tt.expected, band.Name)
		}
	}
}

func TestBandFor_OutOfRange(t *testing.T) {
	for _, row := range []int{-1, Rows, 100} {
		if _, err := BandFor(row); !errors.Is(err, ErrRowOutOfRange) {
			t.Errorf("row %d: expected ErrRowOutOfRange, got %v", row, err)
		}
	}
}

func TestBandByName(t *testing.T) {
	band, ok := BandByName("BUSINESS")
	if !ok {
		t.Fatal("expected BUSINESS band to exist")
	}
	if band.Multiplier != 2.5 {
		t.Errorf("expected multiplier 2.5, got %v", band.Multiplier)
	}
	if _, ok := BandByName("CARGO"); ok {
		t.Error("expected CARGO lookup to fail")
	}
}

func TestBands_PartitionGrid(t *testing.T) {
	covered := make([]int, Rows)
	for _, b := range Bands {
		if b.StartRow < 0 || b.EndRow > Rows || b.StartRow >= b.EndRow {
			t.Errorf("band %s has invalid range [%d, %d)", b.Name, b.StartRow, b.EndRow)
			continue
		}
		for r := b.StartRow; r < b.EndRow; r++ {
			covered[r]++
		}
	}
	for r, n := range covered {
		if n != 1 {
			t.Errorf("row %d covered by %d bands, expected exactly 1", r, n)
		}
	}
}
