// Package seed bootstraps an empty ledger from a YAML catalog: default
// flights, bootstrap users, and blocked seat inventory. Flights and
// users are only written when their tables are empty, so an existing
// ledger is never overwritten. Blocked seats are in-memory occupancy
// with no booking row behind them, reapplied after every hydration;
// they model held inventory, not data corruption.
package seed

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"skyledger/internal/inventory"
	"skyledger/pkg/config"
	"skyledger/pkg/model"
	"skyledger/pkg/sanitizer"
	"skyledger/pkg/seatmap"
)

type catalog struct {
	Users   []seedUser   `yaml:"users"`
	Flights []seedFlight `yaml:"flights"`
}

type seedUser struct {
	Username string `yaml:"username"`
	Secret   string `yaml:"secret"`
	Name     string `yaml:"name"`
	Admin    bool   `yaml:"admin"`
	Wallet   float64
}

type seedFlight struct {
	ID           string   `yaml:"id"`
	Origin       string   `yaml:"origin"`
	Destination  string   `yaml:"destination"`
	Time         string   `yaml:"time"`
	Fare         float64  `yaml:"fare"`
	BlockedSeats []string `yaml:"blocked_seats"`
}

type Seeder struct {
	cache *inventory.Cache
	cfg   *config.Config

	blocked map[string][]string
}

func NewSeeder(cache *inventory.Cache, cfg *config.Config) *Seeder {
	return &Seeder{cache: cache, cfg: cfg, blocked: map[string][]string{}}
}

func (s *Seeder) load() (*catalog, error) {
	data, err := os.ReadFile(s.cfg.SeedFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.cfg.Log.Info("No seed file, skipping bootstrap", "path", s.cfg.SeedFile)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &cat, nil
}

// Run persists seed users and flights into empty tables and remembers
// the blocked-seat declarations for ApplyBlockedSeats. Call after
// hydration: the emptiness checks read the hydrated cache, and seeded
// rows land in both the cache and the store.
func (s *Seeder) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cat, err := s.load()
	if err != nil || cat == nil {
		return err
	}

	for _, f := range cat.Flights {
		id := sanitizer.NormalizeCode(f.ID)
		if len(f.BlockedSeats) > 0 {
			s.blocked[id] = f.BlockedSeats
		}
	}

	if len(s.cache.Users()) == 0 {
		if err := s.seedUsers(cat.Users); err != nil {
			return err
		}
	}
	if len(s.cache.Flights()) == 0 {
		if err := s.seedFlights(cat.Flights); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedUsers(users []seedUser) error {
	for _, su := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Secret), s.cfg.BcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed credential for %q: %w", su.Username, err)
		}
		u := &model.User{
			Username: sanitizer.NormalizeUsername(su.Username),
			Secret:   string(hash),
			Name:     sanitizer.NormalizeName(su.Name),
			Admin:    su.Admin,
			Wallet:   s.cfg.InitialWallet,
		}
		if err := s.cache.SaveUser(u); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", u.Username, err)
		}
	}
	if len(users) > 0 {
		s.cfg.Log.Info("Seeded bootstrap users", "count", len(users))
	}
	return nil
}

func (s *Seeder) seedFlights(flights []seedFlight) error {
	for _, sf := range flights {
		f := &model.Flight{
			ID:          sanitizer.NormalizeCode(sf.ID),
			Origin:      sanitizer.NormalizeCode(sf.Origin),
			Destination: sanitizer.NormalizeCode(sf.Destination),
			Departure:   sf.Time,
			Fare:        sf.Fare,
			Seats:       seatmap.NewGrid(),
		}
		if err := s.cache.SaveFlight(f); err != nil {
			return fmt.Errorf("failed to seed flight %q: %w", f.ID, err)
		}
	}
	if len(flights) > 0 {
		s.cfg.Log.Info("Seeded flight catalog", "count", len(flights))
	}
	return nil
}

// ApplyBlockedSeats marks declared seats occupied in the hydrated seat
// maps. A blocked seat already taken by a booking is left as is.
func (s *Seeder) ApplyBlockedSeats(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var applied int
	for flightID, labels := range s.blocked {
		flight, ok := s.cache.Flight(flightID)
		if !ok {
			s.cfg.Log.Warn("Blocked seats declared for unknown flight", "flight", flightID)
			continue
		}
		for _, label := range labels {
			seat, err := seatmap.ParseLabel(label)
			if err != nil {
				s.cfg.Log.Warn("Skipping malformed blocked seat",
					"flight", flightID, "seat", label, "error", err)
				continue
			}
			if err := flight.Seats.Reserve(seat); err != nil {
				s.cfg.Log.Warn("Blocked seat already occupied",
					"flight", flightID, "seat", seat.Label())
				continue
			}
			applied++
		}
	}
	if applied > 0 {
		s.cfg.Log.Info("Applied blocked seat inventory", "seats", applied)
	}
	return nil
}
