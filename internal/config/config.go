package config

import "os"

// DefaultTeam is the team summarized when neither the command line nor the
// environment names one.
const DefaultTeam = "The Real Donkey Killers"

// Config holds all railbird configuration.
type Config struct {
	Team      string
	LogLevel  string // "debug", "info", "warn", "error"
	LogFormat string // "text" or "json"
}

// Load reads configuration from environment variables with sensible defaults.
// A command-line team name, when present, overrides Team.
func Load() Config {
	return Config{
		Team:      getenv("RAILBIRD_TEAM", DefaultTeam),
		LogLevel:  getenv("RAILBIRD_LOG_LEVEL", "info"),
		LogFormat: getenv("RAILBIRD_LOG_FORMAT", "text"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
