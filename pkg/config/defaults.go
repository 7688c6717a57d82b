package config

const (
	DefaultDataDir  = "data"
	DefaultSeedFile = "seed.yaml"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	// DefaultInitialWallet is the opening balance credited to every
	// newly registered passenger.
	DefaultInitialWallet = 75000.0

	DefaultBcryptCost = 10

	MinBcryptCost = 4
	MaxBcryptCost = 31
)
