package config

import (
	"log"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"

	"github.com/oracular-labs/oracular/internal/api/server"
	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/metrics"
)

// trueEnvVal ... Represents the encoded string value for true (ie. 1)
const trueEnvVal = "1"

// EngineConfig ... Scheduler / processor configuration
type EngineConfig struct {
	ProcessInterval uint64
	EvmChainID      uint64
	EvmRpcEndpoint  string
}

// Config ... Application level configuration defined by `FilePath` value
type Config struct {
	Environment core.Env
	StorePath   string

	Owner            common.Address
	SignerPrivateKey string

	EngineConfig  *EngineConfig
	ServerConfig  *server.Config
	MetricsConfig *metrics.Config
}

// NewConfig ... Initializer
func NewConfig(fileName core.FilePath) *Config {
	if err := godotenv.Load(string(fileName)); err != nil {
		log.Fatalf("config file not found for file: %s", fileName)
	}

	config := &Config{
		Environment:      core.Env(getEnvStr("ENV")),
		StorePath:        getEnvStrWithDefault("STORE_PATH", "oracular.db"),
		Owner:            common.HexToAddress(getEnvStr("OWNER_ADDRESS")),
		SignerPrivateKey: getEnvStr("SIGNER_PRIVATE_KEY"),

		EngineConfig: &EngineConfig{
			ProcessInterval: uint64(getEnvInt("PROCESS_INTERVAL")),
			EvmChainID:      uint64(getEnvInt("EVM_CHAIN_ID")),
			EvmRpcEndpoint:  getEnvStr("EVM_RPC_ENDPOINT"),
		},

		MetricsConfig: &metrics.Config{
			Host:              getEnvStr("METRICS_HOST"),
			Port:              getEnvInt("METRICS_PORT"),
			Enabled:           getEnvBool("ENABLE_METRICS"),
			ReadHeaderTimeout: getEnvInt("METRICS_READ_HEADER_TIMEOUT"),
		},

		ServerConfig: &server.Config{
			Host:            getEnvStr("SERVER_HOST"),
			Port:            getEnvInt("SERVER_PORT"),
			KeepAlive:       getEnvInt("SERVER_KEEP_ALIVE_TIME"),
			ReadTimeout:     getEnvInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:    getEnvInt("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: getEnvInt("SERVER_SHUTDOWN_TIMEOUT"),
		},
	}

	return config
}

// IsProduction ... Returns true if the env is production
func (cfg *Config) IsProduction() bool {
	return cfg.Environment == core.Production
}

// IsDevelopment ... Returns true if the env is development
func (cfg *Config) IsDevelopment() bool {
	return cfg.Environment == core.Development
}

// IsLocal ... Returns true if the env is local
func (cfg *Config) IsLocal() bool {
	return cfg.Environment == core.Local
}

// getEnvStr ... Reads env var from process environment, panics if not found
func getEnvStr(key string) string {
	envVar, ok := os.LookupEnv(key)

	// Not found
	if !ok {
		log.Fatalf("could not find env var given key: %s", key)
	}

	return envVar
}

// getEnvStrWithDefault ... Reads env var and defaults when not found
func getEnvStrWithDefault(key string, defaultValue string) string {
	envVar, ok := os.LookupEnv(key)

	// Not found
	if !ok {
		return defaultValue
	}

	return envVar
}

// getEnvBool ... Reads env vars and converts to booleans
func getEnvBool(key string) bool {
	return getEnvStr(key) == trueEnvVal
}

// getEnvInt ... Reads env vars and converts to int
func getEnvInt(key string) int {
	val := getEnvStr(key)
	intRep, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("env val is not int; got: %s=%s; err: %s", key, val, err.Error())
	}

	return intRep
}
