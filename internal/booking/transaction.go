package booking

import (
	"skyledger/pkg/model"
	"skyledger/pkg/seatmap"
)

// Stage is the position of a booking attempt in its state machine.
// Committed and Aborted are terminal.
type Stage int

const (
	StageSelectingBand Stage = iota
	StageSelectingSeat
	StageSelectingAddOn
	StageAwaitingConfirmation
	StageCommitted
	StageAborted
)

func (s Stage) String() string {
	switch s {
	case StageSelectingBand:
		return "selecting_band"
	case StageSelectingSeat:
		return "selecting_seat"
	case StageSelectingAddOn:
		return "selecting_addon"
	case StageAwaitingConfirmation:
		return "awaiting_confirmation"
	case StageCommitted:
		return "committed"
	case StageAborted:
		return "aborted"
	}
	return "unknown"
}

// Transaction is the handle for one booking attempt. It is advanced only
// through the Service methods; all transaction steps run to completion
// before control returns to the caller, so the cache is never observed
// mid-mutation.
type Transaction struct {
	stage  Stage
	payer  *model.User
	flight *model.Flight
	band   seatmap.Band
	seat   seatmap.Seat
	addOn  model.AddOn
	total  float64
}

func (t *Transaction) Stage() Stage {
	return t.stage
}

func (t *Transaction) Flight() *model.Flight {
	return t.flight
}

func (t *Transaction) Band() seatmap.Band {
	return t.band
}

func (t *Transaction) Seat() seatmap.Seat {
	return t.seat
}

func (t *Transaction) AddOn() model.AddOn {
	return t.addOn
}

// Total is the frozen price. Zero until the add-on stage completes.
func (t *Transaction) Total() float64 {
	return t.total
}
