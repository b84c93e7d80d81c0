package config

import (
	"log"
	"strings"

	"github.com/SscSPs/hot_settlement_app/internal/core/hot"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Upload handling
	MaxUploadBytes     int64
	RateLimit          string // ulule/limiter format, e.g. "60-M"
	CORSAllowedOrigins []string

	// Parser behaviour
	OrphanDocPolicy hot.OrphanPolicy
	DatePivotYear   int
	AmountScale     int32
	KeepRawRecords  bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MAX_UPLOAD_BYTES", 16*1024*1024)
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("ORPHAN_DOC_POLICY", string(hot.OrphanBuffer))
	viper.SetDefault("DATE_PIVOT_YEAR", 50)
	viper.SetDefault("AMOUNT_SCALE", 2)
	viper.SetDefault("KEEP_RAW_RECORDS", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 16 * 1024 * 1024
		log.Printf("Warning: Invalid MAX_UPLOAD_BYTES. Defaulting to %d.\n", cfg.MaxUploadBytes)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "60-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	cfg.CORSAllowedOrigins = splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS"))

	orphanPolicy := hot.OrphanPolicy(viper.GetString("ORPHAN_DOC_POLICY"))
	if orphanPolicy != hot.OrphanBuffer && orphanPolicy != hot.OrphanDrop {
		log.Printf("Warning: Invalid value for ORPHAN_DOC_POLICY ('%s'). Defaulting to %s.\n", orphanPolicy, hot.OrphanBuffer)
		orphanPolicy = hot.OrphanBuffer
	}
	cfg.OrphanDocPolicy = orphanPolicy

	cfg.DatePivotYear = viper.GetInt("DATE_PIVOT_YEAR")
	if cfg.DatePivotYear <= 0 || cfg.DatePivotYear > 100 {
		log.Printf("Warning: Invalid DATE_PIVOT_YEAR (%d). Defaulting to 50.\n", cfg.DatePivotYear)
		cfg.DatePivotYear = 50
	}

	cfg.AmountScale = viper.GetInt32("AMOUNT_SCALE")
	if cfg.AmountScale <= 0 {
		log.Printf("Warning: Invalid AMOUNT_SCALE (%d). Defaulting to 2.\n", cfg.AmountScale)
		cfg.AmountScale = 2
	}

	cfg.KeepRawRecords = viper.GetBool("KEEP_RAW_RECORDS")

	return cfg, nil
}

// ParserOptions maps the configured parser behaviour onto hot.Options.
func (c *Config) ParserOptions() hot.Options {
	opts := hot.DefaultOptions()
	opts.OrphanPolicy = c.OrphanDocPolicy
	opts.YearPivot = c.DatePivotYear
	opts.AmountScale = c.AmountScale
	opts.KeepRawRecords = c.KeepRawRecords
	return opts
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
