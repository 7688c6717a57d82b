package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"skyledger/internal/inventory"
	"skyledger/pkg/config"
	"skyledger/pkg/db/flatfile"
	"skyledger/pkg/logger"
	"skyledger/pkg/model"
	"skyledger/pkg/seatmap"
)

const sampleCatalog = `users:
  - username: admin
    secret: root123
    name: Administrator
    admin: true
  - username: rahul
    secret: pass1234
    name: Rahul Sharma
flights:
  - id: AI-101
    origin: DEL
    destination: BOM
    time: "08:00"
    fare: 5500
    blocked_seats: [1A, 1B]
  - id: 6E-505
    origin: BOM
    destination: BLR
    time: "10:30"
    fare: 4200
`

func newTestSeeder(t *testing.T, catalog string) (*Seeder, *inventory.Cache, *config.Config) {
	t.Helper()
	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT, Output: os.Stderr})
	cfg := &config.Config{
		DataDir:       t.TempDir(),
		SeedFile:      filepath.Join(t.TempDir(), "seed.yaml"),
		InitialWallet: 75000,
		BcryptCost:    4,
		Log:           log,
	}
	if catalog != "" {
		if err := os.WriteFile(cfg.SeedFile, []byte(catalog), 0o644); err != nil {
			t.Fatalf("write seed file: %v", err)
		}
	}
	store := flatfile.New(cfg.DataDir, log)
	cache := inventory.NewCache(store, log)
	if err := cache.EnsureTables(); err != nil {
		t.Fatalf("ensure tables: %v", err)
	}
	if err := cache.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	return NewSeeder(cache, cfg), cache, cfg
}

func TestRun_PopulatesEmptyLedger(t *testing.T) {
	seeder, cache, cfg := newTestSeeder(t, sampleCatalog)
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := len(cache.Users()); got != 2 {
		t.Fatalf("expected 2 seeded users, got %d", got)
	}
	admin, ok := cache.User("admin")
	if !ok {
		t.Fatal("expected seeded admin user")
	}
	if !admin.Admin {
		t.Error("expected admin flag on seeded admin")
	}
	if admin.Wallet != cfg.InitialWallet {
		t.Errorf("expected wallet %.2f, got %.2f", cfg.InitialWallet, admin.Wallet)
	}
	if admin.Secret == "root123" {
		t.Error("expected seeded secret to be hashed")
	}

	if got := len(cache.Flights()); got != 2 {
		t.Fatalf("expected 2 seeded flights, got %d", got)
	}
	f, ok := cache.Flight("AI-101")
	if !ok {
		t.Fatal("expected seeded flight AI-101")
	}
	if f.Fare != 5500 || f.Origin != "DEL" || f.Destination != "BOM" || f.Departure != "08:00" {
		t.Errorf("unexpected seeded flight fields: %+v", f)
	}

	// Seeded rows reach the store, not just the cache.
	store := flatfile.New(cfg.DataDir, cfg.Log)
	fresh := inventory.NewCache(store, cfg.Log)
	if err := fresh.Hydrate(ctx); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	if got := len(fresh.Users()); got != 2 {
		t.Errorf("expected 2 persisted users, got %d", got)
	}
	if got := len(fresh.Flights()); got != 2 {
		t.Errorf("expected 2 persisted flights, got %d", got)
	}
}

func TestRun_SkipsPopulatedTables(t *testing.T) {
	seeder, cache, _ := newTestSeeder(t, sampleCatalog)
	ctx := context.Background()

	existing := &model.User{Username: "priya", Secret: "hash", Name: "Priya", Wallet: 100}
	if err := cache.SaveUser(existing); err != nil {
		t.Fatalf("save user: %v", err)
	}

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := len(cache.Users()); got != 1 {
		t.Fatalf("expected seeding to skip populated users table, got %d users", got)
	}
	// Flights table was still empty, so the catalog applies there.
	if got := len(cache.Flights()); got != 2 {
		t.Fatalf("expected 2 seeded flights, got %d", got)
	}
}

func TestRun_MissingSeedFile(t *testing.T) {
	seeder, cache, _ := newTestSeeder(t, "")

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("expected missing seed file to be tolerated, got %v", err)
	}
	if len(cache.Users()) != 0 || len(cache.Flights()) != 0 {
		t.Error("expected ledger to stay empty without a seed file")
	}
}

func TestRun_MalformedSeedFile(t *testing.T) {
	seeder, _, _ := newTestSeeder(t, "flights: [not, a, flight")

	if err := seeder.Run(context.Background()); err == nil {
		t.Fatal("expected error for malformed seed file")
	}
}

func TestApplyBlockedSeats(t *testing.T) {
	seeder, cache, _ := newTestSeeder(t, sampleCatalog)
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := seeder.ApplyBlockedSeats(ctx); err != nil {
		t.Fatalf("apply blocked seats: %v", err)
	}

	f, _ := cache.Flight("AI-101")
	for _, label := range []string{"1A", "1B"} {
		seat, err := seatmap.ParseLabel(label)
		if err != nil {
			t.Fatalf("parse %s: %v", label, err)
		}
		if !f.Seats.Occupied(seat) {
			t.Errorf("expected blocked seat %s to be occupied", label)
		}
	}
	if got := f.Seats.OccupiedCount(); got != 2 {
		t.Errorf("expected 2 occupied seats, got %d", got)
	}

	other, _ := cache.Flight("6E-505")
	if got := other.Seats.OccupiedCount(); got != 0 {
		t.Errorf("expected no blocked seats on 6E-505, got %d", got)
	}
}

func TestApplyBlockedSeats_AlreadyOccupied(t *testing.T) {
	seeder, cache, _ := newTestSeeder(t, sampleCatalog)
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, _ := cache.Flight("AI-101")
	seat, _ := seatmap.ParseLabel("1A")
	if err := f.Seats.Reserve(seat); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	if err := seeder.ApplyBlockedSeats(ctx); err != nil {
		t.Fatalf("apply blocked seats: %v", err)
	}
	if got := f.Seats.OccupiedCount(); got != 2 {
		t.Errorf("expected 1A kept plus 1B blocked, got %d occupied", got)
	}
}
