package config

import "os"

// Config holds application configuration values.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// DBPath is the path to the SQLite database file.
	DBPath string
	// ApplyTransfers makes transfer completion move quantity between the
	// source and destination stock rows. When false (the default), completing
	// a transfer only flips its status and stock is reconciled separately.
	ApplyTransfers bool
	// DevRoutes mounts the /api/dev endpoints (demo data seeding).
	DevRoutes bool
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		Addr:           envOr("ADDR", ":8080"),
		DBPath:         envOr("DB_PATH", "stocktrack.sqlite3"),
		ApplyTransfers: envBool("APPLY_TRANSFERS", false),
		DevRoutes:      envBool("DEV_ROUTES", true),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return fallback
	}
}
