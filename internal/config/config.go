package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Tracker Tracker `yaml:"tracker"`
	Logger  Logger  `yaml:"logger"`
}

type Tracker struct {
	GoldURL        string        `env:"GOLD_API_URL" env-default:"https://api.gold-api.com/price/XAU" yaml:"gold-url"`
	SilverURL      string        `env:"SILVER_API_URL" env-default:"https://api.gold-api.com/price/XAG" yaml:"silver-url"`
	ExchangeURL    string        `env:"EXCHANGE_API_URL" env-default:"https://open.er-api.com/v6/latest/USD" yaml:"exchange-url"`
	Currency       string        `env:"LOCAL_CURRENCY" env-default:"EGP" yaml:"currency"`
	TableFile      string        `env:"TABLE_FILE" env-default:"prices_log.csv" yaml:"table-file"`
	LogFile        string        `env:"LOG_FILE" env-default:"prices.log" yaml:"log-file"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"10s" yaml:"request-timeout"`
	Schedule       string        `env:"TRACK_SCHEDULE" env-default:"0 * * * *" yaml:"schedule"`
}

type Logger struct {
	Level           string     `env:"LOG_LEVEL" env-default:"info" yaml:"level"`
	ParsedSlogLevel slog.Level `yaml:"-"`
}

// MustLoad loads config from a file. A missing file is not an error: the
// defaults carry the tracker's fixed constants, and every field can be
// overridden from the environment.
func MustLoad(configPath string) *Config {
	cnf := &Config{}

	var err error
	if _, statErr := os.Stat(configPath); statErr == nil {
		err = cleanenv.ReadConfig(configPath, cnf)
	} else {
		err = cleanenv.ReadEnv(cnf)
	}
	if err != nil {
		panic(fmt.Errorf("cannot read config: %w", err))
	}

	switch cnf.Logger.Level {
	case "debug":
		cnf.Logger.ParsedSlogLevel = slog.LevelDebug
	case "info":
		cnf.Logger.ParsedSlogLevel = slog.LevelInfo
	case "warn":
		cnf.Logger.ParsedSlogLevel = slog.LevelWarn
	case "error":
		cnf.Logger.ParsedSlogLevel = slog.LevelError
	default:
		cnf.Logger.ParsedSlogLevel = slog.LevelInfo
	}

	return cnf
}
