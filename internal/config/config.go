// README: Config loader with env defaults for HTTP, Firebase, Redis and provider keys.
package config

import (
	"os"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Firebase struct {
		ProjectID       string
		CredentialsFile string
		// WebAPIKey is the Identity Toolkit key used for password sign-in.
		// Optional: without it the login route reports itself unconfigured.
		WebAPIKey string
	}
	Redis struct {
		// Addr is optional; empty disables the in-flight lease.
		Addr string
	}
	AI struct {
		// GeminiKey is optional: an empty key puts the provider in the
		// unconfigured state instead of failing startup.
		GeminiKey string
	}
	Maps struct {
		// APIKey is optional; empty disables destination geocoding.
		APIKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIPSMITH_HTTP_ADDR", ":8080")
	cfg.Firebase.ProjectID = os.Getenv("TRIPSMITH_FIREBASE_PROJECT_ID")
	cfg.Firebase.CredentialsFile = os.Getenv("TRIPSMITH_FIREBASE_CREDENTIALS_FILE")
	cfg.Firebase.WebAPIKey = os.Getenv("TRIPSMITH_FIREBASE_WEB_API_KEY")
	cfg.Redis.Addr = os.Getenv("TRIPSMITH_REDIS_ADDR")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
