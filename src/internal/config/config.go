package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const defaultHTTPAddr = ":8080"
const defaultChannelID = "BankApp"
const defaultChannelKey = "BankAppKey001"
const defaultInterestRate = "0.5"
const defaultLogLevel = "info"
const defaultLogFormat = "text"
const defaultShutdownTimeout = 10 * time.Second

type Config struct {
	HTTPAddr        string
	ChannelID       string
	ChannelKey      string
	ChannelKeyHash  string
	InterestRate    decimal.Decimal
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, falling back to defaults
// for anything unset or blank.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetDefault("http_addr", defaultHTTPAddr)
	v.SetDefault("channel_id", defaultChannelID)
	v.SetDefault("channel_key", defaultChannelKey)
	v.SetDefault("channel_key_hash", "")
	v.SetDefault("interest_rate", defaultInterestRate)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_format", defaultLogFormat)
	v.SetDefault("shutdown_timeout", defaultShutdownTimeout)
	v.AutomaticEnv()

	rawRate := stringOr(v, "interest_rate", defaultInterestRate)
	rate, err := decimal.NewFromString(rawRate)
	if err != nil {
		return Config{}, fmt.Errorf("INTEREST_RATE must be numeric: %w", err)
	}
	if rate.IsNegative() {
		return Config{}, fmt.Errorf("INTEREST_RATE must be a non-negative number")
	}

	shutdownTimeout := v.GetDuration("shutdown_timeout")
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return Config{
		HTTPAddr:        stringOr(v, "http_addr", defaultHTTPAddr),
		ChannelID:       stringOr(v, "channel_id", defaultChannelID),
		ChannelKey:      stringOr(v, "channel_key", defaultChannelKey),
		ChannelKeyHash:  strings.TrimSpace(v.GetString("channel_key_hash")),
		InterestRate:    rate,
		LogLevel:        stringOr(v, "log_level", defaultLogLevel),
		LogFormat:       stringOr(v, "log_format", defaultLogFormat),
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func stringOr(v *viper.Viper, key string, fallback string) string {
	value := strings.TrimSpace(v.GetString(key))
	if value == "" {
		return fallback
	}
	return value
}
