package config

import (
	"os"
	"strconv"
)

// DefaultQuality is the JPEG quality used when neither the flag nor the
// environment overrides it.
const DefaultQuality = 90

type Config struct {
	// Quality is the default JPEG quality, overridable via IMGCONV_QUALITY.
	Quality int
	// Color enables colored terminal output; NO_COLOR disables it.
	Color bool
}

func Load() Config {
	return Config{
		Quality: envInt("IMGCONV_QUALITY", DefaultQuality),
		Color:   env("NO_COLOR", "") == "",
	}
}

func env(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	value := env(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
