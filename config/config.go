package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	RestCountriesURL string
	OpenMeteoURL     string
	AdvisoryURL      string
	HolidaysURL      string
	HTTPTimeout      time.Duration
	RateLimitRPS     float64
	RateLimitBurst   int
	HolidayLimit     int
	ServerPort       string
	LogLevel         string
}

var defaults = map[string]interface{}{
	"RESTCOUNTRIES_URL": "https://restcountries.com/v3.1",
	"OPEN_METEO_URL":    "https://api.open-meteo.com/v1/forecast",
	"ADVISORY_URL":      "https://www.travel-advisory.info/api",
	"HOLIDAYS_URL":      "https://date.nager.at/api/v3",
	"HTTP_TIMEOUT":      "10s",
	"RATE_LIMIT_RPS":    5.0,
	"RATE_LIMIT_BURST":  5,
	"HOLIDAY_LIMIT":     5,
	"SERVER_PORT":       "8080",
	"LOG_LEVEL":         "warn",
}

// Load читает конфигурацию из .env и переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл если существует
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	timeout, err := time.ParseDuration(v.GetString("HTTP_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("неверный HTTP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		RestCountriesURL: strings.TrimRight(v.GetString("RESTCOUNTRIES_URL"), "/"),
		OpenMeteoURL:     v.GetString("OPEN_METEO_URL"),
		AdvisoryURL:      v.GetString("ADVISORY_URL"),
		HolidaysURL:      strings.TrimRight(v.GetString("HOLIDAYS_URL"), "/"),
		HTTPTimeout:      timeout,
		RateLimitRPS:     v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:   v.GetInt("RATE_LIMIT_BURST"),
		HolidayLimit:     v.GetInt("HOLIDAY_LIMIT"),
		ServerPort:       v.GetString("SERVER_PORT"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}

	if cfg.RateLimitRPS <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS должен быть больше нуля")
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 1
	}

	return cfg, nil
}

// NewLogger создает логгер zap, пишущий в stderr
func NewLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("неверный уровень логирования %q: %w", level, err)
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}

	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
