package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// RetroArchConfig holds the connection settings for the emulator's network
// command interface.
type RetroArchConfig struct {
	Host    string        `json:"host" mapstructure:"host"`
	Port    int           `json:"port" mapstructure:"port"`
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

// SamplerConfig holds the decode/publish cadence settings.
type SamplerConfig struct {
	Cadence     int    `json:"cadence" mapstructure:"cadence"`
	Layout      string `json:"layout" mapstructure:"layout"`
	TrackDexIDs bool   `json:"trackDexIds" mapstructure:"trackDexIds"`
}

// OutputConfig holds the file artifact settings.
type OutputConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// APIConfig holds the dashboard HTTP server settings.
type APIConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Listen  string `json:"listen" mapstructure:"listen"`
}

// OTelConfig holds OpenTelemetry settings.
type OTelConfig struct {
	Enabled      bool          `json:"enabled" mapstructure:"enabled"`
	ServiceName  string        `json:"serviceName" mapstructure:"serviceName"`
	BatchTimeout time.Duration `json:"batchTimeout" mapstructure:"batchTimeout"`
	Endpoint     string        `json:"endpoint" mapstructure:"endpoint"`
	Insecure     bool          `json:"insecure" mapstructure:"insecure"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./snaplogs")

	viper.SetDefault("retroarch.host", "127.0.0.1")
	viper.SetDefault("retroarch.port", 55355)
	viper.SetDefault("retroarch.timeout", "250ms")

	viper.SetDefault("sampler.cadence", 30)
	viper.SetDefault("sampler.layout", "firered-us-rev0")
	viper.SetDefault("sampler.trackDexIds", false)

	viper.SetDefault("output.path", "./game_state.json")

	viper.SetDefault("api.enabled", true)
	viper.SetDefault("api.listen", ":8077")

	viper.SetDefault("db.enabled", true)
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "firered")

	viper.SetDefault("influx.enabled", true)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "supersecrettoken")
	viper.SetDefault("influx.org", "snapshot-metrics")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "snapshotd")
	viper.SetDefault("otel.batchTimeout", "5s")
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)

	viper.SetConfigName("snapshotd.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetRetroArchConfig returns the emulator connection settings.
func GetRetroArchConfig() RetroArchConfig {
	return RetroArchConfig{
		Host:    viper.GetString("retroarch.host"),
		Port:    viper.GetInt("retroarch.port"),
		Timeout: viper.GetDuration("retroarch.timeout"),
	}
}

// GetSamplerConfig returns the cadence settings.
func GetSamplerConfig() SamplerConfig {
	return SamplerConfig{
		Cadence:     viper.GetInt("sampler.cadence"),
		Layout:      viper.GetString("sampler.layout"),
		TrackDexIDs: viper.GetBool("sampler.trackDexIds"),
	}
}

// GetOutputConfig returns the file artifact settings.
func GetOutputConfig() OutputConfig {
	return OutputConfig{
		Path: viper.GetString("output.path"),
	}
}

// GetAPIConfig returns the dashboard server settings.
func GetAPIConfig() APIConfig {
	return APIConfig{
		Enabled: viper.GetBool("api.enabled"),
		Listen:  viper.GetString("api.listen"),
	}
}

// GetOTelConfig returns the OpenTelemetry settings.
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:      viper.GetBool("otel.enabled"),
		ServiceName:  viper.GetString("otel.serviceName"),
		BatchTimeout: viper.GetDuration("otel.batchTimeout"),
		Endpoint:     viper.GetString("otel.endpoint"),
		Insecure:     viper.GetBool("otel.insecure"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
