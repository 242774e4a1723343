package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const defaultRateLimit = 10

type Config struct {
	Addr      string
	StaticDir string
	LogLevel  string
	// RateLimit is the per-client request budget for /api, in requests per
	// second. Zero or less disables limiting.
	RateLimit float64
}

func Load() Config {
	addr := os.Getenv("IGCLEAN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	staticDir := os.Getenv("IGCLEAN_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}
	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("IGCLEAN_LOG_LEVEL")))
	if logLevel == "" {
		logLevel = "info"
	}

	return Config{
		Addr:      addr,
		StaticDir: filepath.Clean(staticDir),
		LogLevel:  logLevel,
		RateLimit: parseRateLimit(os.Getenv("IGCLEAN_RATE_LIMIT")),
	}
}

func parseRateLimit(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultRateLimit
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultRateLimit
	}
	return value
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
		"./web",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
