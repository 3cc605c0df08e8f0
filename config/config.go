package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	PreKeys    PreKeys
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

// PreKeys holds the one-time prekey pool policy. The server never generates
// prekeys itself; LowWaterMark only drives starvation reporting so clients
// know to top up.
type PreKeys struct {
	LowWaterMark int
	ClaimRetries int
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}

	if c.PreKeys.LowWaterMark <= 0 {
		c.PreKeys.LowWaterMark = 10
	}
	if c.PreKeys.ClaimRetries <= 0 {
		c.PreKeys.ClaimRetries = 3
	}
	return &c, nil
}
