package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"farmcare/pkg/logger"
)

type AppConfig struct {
	Port              string
	Env               string
	Timezone          string
	DBPath            string
	RulesPath         string
	InferenceEndpoint string
	InferenceTimeout  time.Duration
	RequireIdentity   bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("[cfg] no .env file loaded")
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	timeout, err := strconv.Atoi(get("INFERENCE_TIMEOUT_SEC", "25"))
	if err != nil || timeout <= 0 {
		timeout = 25
	}
	cfg := AppConfig{
		Port:              get("PORT", "8080"),
		Env:               get("APP_ENV", "development"),
		Timezone:          get("TZ", "Asia/Jakarta"),
		DBPath:            get("DB_PATH", "farmcare.db"),
		RulesPath:         get("RULES_PATH", ""),
		InferenceEndpoint: get("INFERENCE_ENDPOINT", ""),
		InferenceTimeout:  time.Duration(timeout) * time.Second,
		RequireIdentity:   get("REQUIRE_IDENTITY", "false") == "true",
	}
	return cfg
}

// Location resolves Timezone, falling back to UTC when the zone is unknown.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		logger.Warn().Err(err).Str("tz", c.Timezone).Msg("[cfg] unknown timezone, using UTC")
		return time.UTC
	}
	return loc
}
