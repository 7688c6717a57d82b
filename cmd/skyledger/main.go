package main

import (
	"context"

	"skyledger/internal/account"
	accountvalidator "skyledger/internal/account/validator"
	"skyledger/internal/booking"
	"skyledger/internal/fleet"
	fleetvalidator "skyledger/internal/fleet/validator"
	"skyledger/internal/inventory"
	"skyledger/internal/search"
	"skyledger/internal/seed"
	"skyledger/pkg/config"
	"skyledger/pkg/db/flatfile"
)

const ServiceName = "skyledger"

type services struct {
	account *account.Service
	booking *booking.Service
	fleet   *fleet.Service
	search  *search.Engine
}

func main() {
	cfg := config.Load(ServiceName)
	ctx := context.Background()

	cfg.Log.Info("Starting SkyLedger")

	cache, err := openLedger(ctx, cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to open ledger", "error", err)
	}

	svc := initServices(cache, cfg)

	stats := svc.search.Analytics()
	cfg.Log.Info("Ledger ready",
		"flights", stats.FlightCount,
		"users", stats.UserCount,
		"bookings", stats.BookingCount,
		"revenue", stats.TotalRevenue,
	)
}

func openLedger(ctx context.Context, cfg *config.Config) (*inventory.Cache, error) {
	store := flatfile.New(cfg.DataDir, cfg.Log)
	cache := inventory.NewCache(store, cfg.Log)

	if err := cache.EnsureTables(); err != nil {
		return nil, err
	}
	if err := cache.Hydrate(ctx); err != nil {
		return nil, err
	}

	seeder := seed.NewSeeder(cache, cfg)
	if err := seeder.Run(ctx); err != nil {
		return nil, err
	}
	if err := seeder.ApplyBlockedSeats(ctx); err != nil {
		return nil, err
	}
	return cache, nil
}

func initServices(cache *inventory.Cache, cfg *config.Config) *services {
	svc := &services{
		account: account.NewService(cache, accountvalidator.NewAccountValidator(), cfg),
		booking: booking.NewService(cache, cfg),
		fleet:   fleet.NewService(cache, fleetvalidator.NewFlightValidator(), cfg),
		search:  search.NewEngine(cache),
	}

	cfg.Log.Info("Services initialized", "data_dir", cfg.DataDir)
	return svc
}
