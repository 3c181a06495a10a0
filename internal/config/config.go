package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mgdov/eco-place/internal/i18n"
	"github.com/mgdov/eco-place/internal/model"
)

// Config holds dashboard configuration from environment.
type Config struct {
	Port            int
	UpstreamURL     string
	UpstreamTimeout time.Duration
	RedisURL        string
	SnapshotTTL     time.Duration
	StatusModel     model.StatusModel
	DefaultLang     i18n.Language
	AllowedOrigins  []string
}

// Load reads configuration from environment variables.
// Env prefix: DASHBOARD_
func Load() *Config {
	port := getEnvInt("DASHBOARD_PORT", 8080)
	upstream := getEnv("DASHBOARD_UPSTREAM_URL", "http://localhost:8081")
	timeout := getEnvInt("DASHBOARD_UPSTREAM_TIMEOUT_SECONDS", 5)
	redisURL := getEnv("DASHBOARD_REDIS_URL", "")
	snapTTL := getEnvInt("DASHBOARD_SNAPSHOT_TTL_SECONDS", 3600)
	originsRaw := getEnv("DASHBOARD_ALLOWED_ORIGINS", "*")

	sm := model.StatusModelTwo
	if getEnv("DASHBOARD_STATUS_MODEL", "two") == string(model.StatusModelThree) {
		sm = model.StatusModelThree
	}

	var origins []string
	for _, o := range strings.Split(originsRaw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		Port:            port,
		UpstreamURL:     upstream,
		UpstreamTimeout: time.Duration(timeout) * time.Second,
		RedisURL:        redisURL,
		SnapshotTTL:     time.Duration(snapTTL) * time.Second,
		StatusModel:     sm,
		DefaultLang:     i18n.Language(getEnv("DASHBOARD_DEFAULT_LANG", "ru")),
		AllowedOrigins:  origins,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
