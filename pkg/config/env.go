package config

const (
	EnvDataDir  = "SKYLEDGER_DATA_DIR"
	EnvSeedFile = "SKYLEDGER_SEED_FILE"

	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvInitialWallet = "INITIAL_WALLET"
	EnvBcryptCost    = "BCRYPT_COST"
)
