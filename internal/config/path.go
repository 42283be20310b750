package config

const (
	DefaultConfigPath = "config.yaml"

	EnvConfigPath = "BOARD_CONFIG"
	EnvLogLevel   = "BOARD_LOG_LEVEL"
	EnvSeedPath   = "BOARD_SEED"
	EnvPort       = "BOARD_PORT"
)
