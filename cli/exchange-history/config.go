package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pbrates/exchange-history/fetchers"
)

type Config struct {
	URL        string
	Timeout    time.Duration
	Currencies []string
}

func loadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	absolutePath, err := filepath.Abs(path)

	if err != nil {
		return nil, err
	}

	viper.SetConfigFile(absolutePath)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("EXCHANGE_HISTORY")
	viper.AutomaticEnv()

	viper.SetDefault("fetchers.privatbank.url", fetchers.PrivatBankArchiveURL)
	viper.SetDefault("fetchers.privatbank.timeout", "10s")

	// The config file is optional; defaults and environment cover a
	// missing one.
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error while reading in the config file: %w", err)
	}

	return &Config{
		URL:        viper.GetString("fetchers.privatbank.url"),
		Timeout:    viper.GetDuration("fetchers.privatbank.timeout"),
		Currencies: viper.GetStringSlice("currencies"),
	}, nil
}
