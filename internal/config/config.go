package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string // empty = local sqlite fallback
	SQLitePath           string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret string
	TokenTTL  time.Duration

	OpenAIKey     string
	OpenAIBaseURL string
	LLMModel      string

	ExportDir string
	ExportTTL time.Duration

	// OutlinePruneRemoved controls whether replacing an outline also drops
	// content entries for sections no longer listed. History is never pruned.
	OutlinePruneRemoved bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          getenv("DATABASE_URL", ""),
		SQLitePath:           getenv("SQLITE_PATH", "database.db"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "true") == "true",

		JWTSecret: mustGetenv("JWT_SECRET"),
		TokenTTL:  time.Duration(getenvInt("TOKEN_TTL_MINUTES", 60)) * time.Minute,

		OpenAIKey:     getenv("OPENAI_API_KEY", getenv("OPENAI_KEY", "")),
		OpenAIBaseURL: getenv("OPENAI_BASE_URL", ""),
		LLMModel:      getenv("LLM_MODEL", "gpt-4o-mini"),

		ExportDir: getenv("EXPORT_DIR", "exports"),
		ExportTTL: time.Duration(getenvInt("EXPORT_TTL_MINUTES", 60)) * time.Minute,

		OutlinePruneRemoved: getenv("OUTLINE_PRUNE_REMOVED", "false") == "true",
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", "*"), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
