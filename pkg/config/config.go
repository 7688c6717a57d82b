package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"skyledger/pkg/logger"
)

type Config struct {
	DataDir  string
	SeedFile string

	InitialWallet float64
	BcryptCost    int

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:  getEnvStr(EnvDataDir, DefaultDataDir),
		SeedFile: getEnvStr(EnvSeedFile, DefaultSeedFile),

		InitialWallet: getEnvFloat(EnvInitialWallet, DefaultInitialWallet),
		BcryptCost:    getEnvNum(EnvBcryptCost, DefaultBcryptCost),

		Log: logger.New(logger.Config{
			Level:   getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:  getEnvStr(EnvLogFormat, DefaultLogFormat),
			Service: serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errors []string

	if cfg.DataDir == "" {
		errors = append(errors, "DataDir cannot be empty")
	}
	if cfg.InitialWallet < 0 {
		errors = append(errors, fmt.Sprintf("InitialWallet cannot be negative, got: %.2f", cfg.InitialWallet))
	}
	if cfg.BcryptCost < MinBcryptCost || cfg.BcryptCost > MaxBcryptCost {
		errors = append(errors, fmt.Sprintf("BcryptCost must be between %d and %d, got: %d", MinBcryptCost, MaxBcryptCost, cfg.BcryptCost))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"data_dir", cfg.DataDir,
		"seed_file", cfg.SeedFile,
		"initial_wallet", cfg.InitialWallet,
		"bcrypt_cost", cfg.BcryptCost,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
