package config

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Static content served for paths no endpoint claims.
	StaticDir string `mapstructure:"STATIC_DIR"`

	// Upper bound for the count query parameter of /randoms; 0 means no bound.
	RandomsMaxCount int `mapstructure:"RANDOMS_MAX_COUNT"`

	// Proxies whose forwarding headers name the client. Empty trusts none.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	ShutdownTimeoutSeconds int `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
}

var AppConfig Config

// Load reads config.yaml (if any) and the environment into a Config.
func Load() (Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("STATIC_DIR", "wwwroot")
	viper.SetDefault("RANDOMS_MAX_COUNT", 0)
	viper.SetDefault("TRUSTED_PROXIES", []string{})
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 5)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig populates AppConfig and exits the process if that fails.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return AppConfig.IsProduction()
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// IsDevelopment gates the interactive API documentation.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
