package config

import (
	"os"
	"strings"
	"time"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	DBDriver string
	DBDSN    string

	// Generative capability (OpenAI-compatible).
	OpenAIAPIKey string
	OpenAIModel  string
	ModelTimeout time.Duration

	// External collaborators.
	AdaptiveBaseURL   string
	ClassifierBaseURL string
	CollabTimeout     time.Duration

	EnableLocalAuth bool
	AuthHMACSecret  string

	CORSOrigins []string
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Mode:     mode,
		HTTPAddr: addr,
		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  envOr("OPENAI_MODEL", ""),
		ModelTimeout: envDuration("MODEL_TIMEOUT", 60*time.Second),

		AdaptiveBaseURL:   envOr("ADAPTIVE_BASE_URL", "http://127.0.0.1:8000"),
		ClassifierBaseURL: envOr("CLASSIFIER_BASE_URL", "http://127.0.0.1:8000"),
		CollabTimeout:     envDuration("COLLAB_TIMEOUT", 15*time.Second),

		EnableLocalAuth: envBool("ENABLE_LOCAL_AUTH", true),
		AuthHMACSecret:  envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
