// Package seatmap holds the per-flight occupancy grid, its cabin band
// partition, and the seat label codec. It is pure state: no I/O, no
// persistence. Occupancy is derived from the booking table at hydration
// and mutated only through Reserve and Release.
package seatmap

import "errors"

const (
	Rows = 8
	Cols = 4
)

var (
	ErrSeatTaken      = errors.New("seat already occupied")
	ErrSeatFree       = errors.New("seat already free")
	ErrRowOutOfRange  = errors.New("row outside seat grid")
	ErrMalformedLabel = errors.New("malformed seat label")
)

// Grid is the occupancy state of one flight.
type Grid struct {
	occupied [Rows][Cols]bool
}

func NewGrid() *Grid {
	return &Grid{}
}

func (g *Grid) inRange(s Seat) bool {
	return s.Row >= 0 && s.Row < Rows && s.Col >= 0 && s.Col < Cols
}

// Occupied reports whether the seat is taken. Out-of-range seats are
// reported as free; callers are expected to have parsed labels through
// ParseLabel, which bounds-checks.
func (g *Grid) Occupied(s Seat) bool {
	if !g.inRange(s) {
		return false
	}
	return g.occupied[s.Row][s.Col]
}

// Reserve marks the seat occupied. Reserving an occupied seat fails with
// ErrSeatTaken and leaves the grid unchanged.
func (g *Grid) Reserve(s Seat) error {
	if !g.inRange(s) {
		return ErrRowOutOfRange
	}
	if g.occupied[s.Row][s.Col] {
		return ErrSeatTaken
	}
	g.occupied[s.Row][s.Col] = true
	return nil
}

// Release marks the seat free. Releasing a free seat should never be
// attempted by a correct caller, but the operation is defensive and
// fails with ErrSeatFree rather than silently succeeding.
func (g *Grid) Release(s Seat) error {
	if !g.inRange(s) {
		return ErrRowOutOfRange
	}
	if !g.occupied[s.Row][s.Col] {
		return ErrSeatFree
	}
	g.occupied[s.Row][s.Col] = false
	return nil
}

// OccupiedCount returns the number of taken seats across the grid.
func (g *Grid) OccupiedCount() int {
	var n int
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if g.occupied[r][c] {
				n++
			}
		}
	}
	return n
}
