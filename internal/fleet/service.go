// Package fleet manages the flight catalog: admin route creation and
// removal. Removing a flight leaves its booking rows behind as orphans;
// they are dropped at the next hydration, matching the skip-invalid
// policy of the record store.
package fleet

import (
	"context"
	"fmt"

	"skyledger/internal/fleet/validator"
	"skyledger/internal/inventory"
	"skyledger/pkg/config"
	apperrors "skyledger/pkg/errors"
	"skyledger/pkg/model"
	"skyledger/pkg/sanitizer"
	"skyledger/pkg/seatmap"
)

type Service struct {
	cache     *inventory.Cache
	validator *validator.FlightValidator
	cfg       *config.Config
}

func NewService(cache *inventory.Cache, v *validator.FlightValidator, cfg *config.Config) *Service {
	return &Service{cache: cache, validator: v, cfg: cfg}
}

// AddFlight creates a route with an empty seat grid.
func (s *Service) AddFlight(ctx context.Context, spec *model.FlightSpec) (*model.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spec.ID = sanitizer.NormalizeCode(spec.ID)
	spec.Origin = sanitizer.NormalizeCode(spec.Origin)
	spec.Destination = sanitizer.NormalizeCode(spec.Destination)
	if err := s.validator.Validate(spec); err != nil {
		s.cfg.Log.Warn("Flight validation failed", "error", err)
		return nil, apperrors.Validation("Invalid flight input", map[string]any{"error": err.Error()})
	}

	if _, exists := s.cache.Flight(spec.ID); exists {
		return nil, apperrors.Conflict(fmt.Sprintf("Flight %q already exists", spec.ID))
	}

	f := &model.Flight{
		ID:          spec.ID,
		Origin:      spec.Origin,
		Destination: spec.Destination,
		Departure:   spec.Departure,
		Fare:        spec.Fare,
		Seats:       seatmap.NewGrid(),
	}
	if err := s.cache.SaveFlight(f); err != nil {
		s.cfg.Log.Error("Failed to persist flight", "flight", f.ID, "error", err)
		return nil, apperrors.Internal("Failed to add flight", err)
	}

	s.cfg.Log.Info("Flight added", "flight", f.ID, "origin", f.Origin, "destination", f.Destination, "fare", f.Fare)
	return f, nil
}

// RemoveFlight deletes the route from catalog and store.
func (s *Service) RemoveFlight(ctx context.Context, flightKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	flightKey = sanitizer.NormalizeCode(flightKey)
	if _, ok := s.cache.Flight(flightKey); !ok {
		return apperrors.NotFoundWithKey("Flight", flightKey)
	}

	if err := s.cache.DeleteFlight(flightKey); err != nil {
		s.cfg.Log.Error("Failed to delete flight", "flight", flightKey, "error", err)
		return apperrors.Internal("Failed to remove flight", err)
	}

	s.cfg.Log.Info("Flight removed", "flight", flightKey)
	return nil
}
