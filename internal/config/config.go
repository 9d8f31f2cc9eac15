package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

type DBConfig struct {
	DSN string
}

type QuoteConfig struct {
	DefaultUnit  string
	DefaultTerms string
	ValidMonths  int
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Quotes      QuoteConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("HTTP_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN: v.GetString("DB_DSN"),
		},
		Quotes: QuoteConfig{
			DefaultUnit:  v.GetString("OFFERT_DEFAULT_UNIT"),
			DefaultTerms: v.GetString("OFFERT_DEFAULT_TERMS"),
			ValidMonths:  v.GetInt("OFFERT_VALID_MONTHS"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "127.0.0.1"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7190
	}
	if cfg.DB.DSN == "" {
		cfg.DB.DSN = "offert.db"
	}
	if cfg.Quotes.DefaultUnit == "" {
		cfg.Quotes.DefaultUnit = "st"
	}
	if cfg.Quotes.DefaultTerms == "" {
		cfg.Quotes.DefaultTerms = "Betalningsvillkor: 30 dagar\nOfferttid: 30 dagar"
	}
	if cfg.Quotes.ValidMonths == 0 {
		cfg.Quotes.ValidMonths = 1
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Quotes.ValidMonths < 0 {
		return fmt.Errorf("OFFERT_VALID_MONTHS must not be negative")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
