// Package booking implements the seat-reservation and cancellation
// protocol. A booking debits the payer's wallet, occupies a seat, and
// appends a ledger row; each mutation is flushed to the record store
// before the next begins. The three writes are not atomic as a unit: a
// crash between them leaves the tables inconsistent, which is a known
// and documented limitation of the flat-file store, not something this
// layer papers over.
package booking

import (
	"context"
	"fmt"

	bkerrors "skyledger/internal/booking/errors"
	"skyledger/internal/inventory"
	"skyledger/pkg/config"
	apperrors "skyledger/pkg/errors"
	"skyledger/pkg/model"
	"skyledger/pkg/sanitizer"
	"skyledger/pkg/seatmap"
)

type Service struct {
	cache *inventory.Cache
	cfg   *config.Config
}

func NewService(cache *inventory.Cache, cfg *config.Config) *Service {
	return &Service{cache: cache, cfg: cfg}
}

// Start opens a booking attempt for the payer on the given flight.
func (s *Service) Start(payer *model.User, flightKey string) (*Transaction, error) {
	if payer == nil {
		return nil, apperrors.MalformedInput("Payer is required")
	}
	flightKey = sanitizer.NormalizeCode(flightKey)
	flight, ok := s.cache.Flight(flightKey)
	if !ok {
		return nil, apperrors.NotFoundWithKey("Flight", flightKey)
	}
	return &Transaction{
		stage:  StageSelectingBand,
		payer:  payer,
		flight: flight,
	}, nil
}

func requireStage(tx *Transaction, want Stage) error {
	if tx.stage != want {
		return apperrors.Wrap(bkerrors.ErrInvalidStage, apperrors.CodeConflict,
			fmt.Sprintf("Transaction is %s, expected %s", tx.stage, want))
	}
	return nil
}

// SelectBand picks one of the fixed cabin bands.
func (s *Service) SelectBand(tx *Transaction, bandName string) error {
	if err := requireStage(tx, StageSelectingBand); err != nil {
		return err
	}
	band, ok := seatmap.BandByName(sanitizer.NormalizeCode(bandName))
	if !ok {
		return apperrors.MalformedInput(fmt.Sprintf("Unknown cabin band %q", bandName))
	}
	tx.band = band
	tx.stage = StageSelectingSeat
	return nil
}

// SelectSeat parses the seat label and checks it against the chosen band
// and the flight's occupancy. Nothing is reserved yet; the seat is only
// taken at commit.
func (s *Service) SelectSeat(tx *Transaction, label string) error {
	if err := requireStage(tx, StageSelectingSeat); err != nil {
		return err
	}
	seat, err := seatmap.ParseLabel(label)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeMalformedInput,
			fmt.Sprintf("Invalid seat label %q", label))
	}
	if !tx.band.Contains(seat.Row) {
		return apperrors.Wrap(bkerrors.ErrBandMismatch, apperrors.CodeValidation,
			fmt.Sprintf("Seat %s is outside %s", seat.Label(), tx.band.Label)).
			WithDetails(map[string]any{
				"seat": seat.Label(),
				"band": tx.band.Name,
			})
	}
	if tx.flight.Seats.Occupied(seat) {
		return apperrors.Wrap(seatmap.ErrSeatTaken, apperrors.CodeConflict,
			fmt.Sprintf("Seat %s is unavailable", seat.Label()))
	}
	tx.seat = seat
	tx.stage = StageSelectingAddOn
	return nil
}

// SelectAddOn picks an add-on from the fixed catalog and freezes the
// total: fare x band multiplier + add-on surcharge. The frozen total is
// what a later cancellation refunds, never a recomputed value.
func (s *Service) SelectAddOn(tx *Transaction, name string) error {
	if err := requireStage(tx, StageSelectingAddOn); err != nil {
		return err
	}
	addOn, ok := model.AddOnByName(sanitizer.NormalizeCode(name))
	if !ok {
		return apperrors.MalformedInput(fmt.Sprintf("Unknown add-on %q", name))
	}
	tx.addOn = addOn
	tx.total = tx.flight.Fare*tx.band.Multiplier + addOn.Surcharge
	tx.stage = StageAwaitingConfirmation
	return nil
}

// Confirm settles the transaction. Declining aborts with no mutation and
// no error. Confirming requires wallet >= total, then commits in order:
// debit wallet and persist the user row, mark the seat occupied, append
// the booking row under a freshly allocated reference. Each step is
// flushed before the next to bound the crash-inconsistency window.
func (s *Service) Confirm(ctx context.Context, tx *Transaction, confirmed bool) (*model.Booking, error) {
	if err := requireStage(tx, StageAwaitingConfirmation); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !confirmed {
		tx.stage = StageAborted
		s.cfg.Log.Info("Booking declined by payer",
			"flight", tx.flight.ID, "seat", tx.seat.Label())
		return nil, nil
	}

	if tx.payer.Wallet < tx.total {
		tx.stage = StageAborted
		return nil, apperrors.InsufficientFunds(tx.total, tx.payer.Wallet)
	}

	// Re-check occupancy at commit; the seat was only inspected, not
	// held, at selection time.
	if tx.flight.Seats.Occupied(tx.seat) {
		tx.stage = StageAborted
		return nil, apperrors.Wrap(seatmap.ErrSeatTaken, apperrors.CodeConflict,
			fmt.Sprintf("Seat %s is unavailable", tx.seat.Label()))
	}

	tx.payer.Wallet -= tx.total
	if err := s.cache.UpdateUserWallet(tx.payer); err != nil {
		tx.payer.Wallet += tx.total
		tx.stage = StageAborted
		s.cfg.Log.Error("Failed to persist wallet debit", "user", tx.payer.Username, "error", err)
		return nil, apperrors.Internal("Failed to debit wallet", err)
	}

	if err := tx.flight.Seats.Reserve(tx.seat); err != nil {
		tx.payer.Wallet += tx.total
		if restoreErr := s.cache.UpdateUserWallet(tx.payer); restoreErr != nil {
			s.cfg.Log.Error("Failed to restore wallet after seat conflict",
				"user", tx.payer.Username, "error", restoreErr)
		}
		tx.stage = StageAborted
		return nil, apperrors.Wrap(err, apperrors.CodeConflict,
			fmt.Sprintf("Seat %s is unavailable", tx.seat.Label()))
	}

	b := &model.Booking{
		Ref:      s.cache.NextRef(),
		FlightID: tx.flight.ID,
		Seat:     tx.seat,
		Owner:    tx.payer.Username,
		Band:     tx.band.Name,
		AddOn:    tx.addOn.Name,
		Paid:     tx.total,
	}
	if err := s.cache.SaveBooking(b); err != nil {
		// Wallet row is already rewritten; this is the inconsistency
		// window the flat-file store cannot close.
		s.cfg.Log.Error("Failed to persist booking row after wallet debit",
			"ref", b.Ref, "user", tx.payer.Username, "error", err)
		return nil, apperrors.Internal("Failed to persist booking", err)
	}

	tx.stage = StageCommitted
	s.cfg.Log.Info("Booking committed",
		"ref", b.Ref,
		"flight", b.FlightID,
		"seat", b.Seat.Label(),
		"owner", b.Owner,
		"band", b.Band,
		"total", b.Paid,
	)
	return b, nil
}

// Cancel reverses a committed booking: release the seat, credit the
// frozen total back to the owner's wallet, persist the wallet, delete
// the booking row. Only the owner (or an admin) may cancel.
func (s *Service) Cancel(ctx context.Context, ref string, requester *model.User) (float64, error) {
	if requester == nil {
		return 0, apperrors.MalformedInput("Requester is required")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	ref = sanitizer.NormalizeCode(ref)

	b, ok := s.cache.Booking(ref)
	if !ok {
		return 0, apperrors.NotFoundWithKey("Booking", ref)
	}
	if b.Owner != requester.Username && !requester.Admin {
		return 0, apperrors.Wrap(bkerrors.ErrNotOwner, apperrors.CodeUnauthorized,
			"Booking belongs to another passenger")
	}
	flight, ok := s.cache.Flight(b.FlightID)
	if !ok {
		return 0, apperrors.NotFoundWithKey("Flight", b.FlightID)
	}
	owner, ok := s.cache.User(b.Owner)
	if !ok {
		return 0, apperrors.NotFoundWithKey("User", b.Owner)
	}

	if err := flight.Seats.Release(b.Seat); err != nil {
		// Occupancy disagreeing with the ledger means a seeded block or
		// an earlier partial failure; the cancellation still proceeds.
		s.cfg.Log.Warn("Seat already free during cancellation",
			"ref", ref, "seat", b.Seat.Label(), "error", err)
	}

	owner.Wallet += b.Paid
	if err := s.cache.UpdateUserWallet(owner); err != nil {
		owner.Wallet -= b.Paid
		if reserveErr := flight.Seats.Reserve(b.Seat); reserveErr != nil {
			s.cfg.Log.Error("Failed to re-occupy seat after refund failure",
				"ref", ref, "error", reserveErr)
		}
		return 0, apperrors.Internal("Failed to credit refund", err)
	}

	if err := s.cache.DeleteBooking(ref); err != nil {
		s.cfg.Log.Error("Failed to delete booking row after refund",
			"ref", ref, "error", err)
		return 0, apperrors.Internal("Failed to delete booking", err)
	}

	s.cfg.Log.Info("Booking cancelled",
		"ref", ref,
		"flight", b.FlightID,
		"seat", b.Seat.Label(),
		"refund", b.Paid,
	)
	return b.Paid, nil
}
