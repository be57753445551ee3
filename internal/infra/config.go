package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv        string
	Port          string
	DefaultLocale string
	GeoIPDBPath   string
	CORSOrigins   []string

	GeminiAPIKey    string
	GeminiModel     string
	GeminiFastModel string
	GeminiBaseURL   string

	ImagenBaseURL string
	ImagenModel   string
	ImagenToken   string
	ImagenTimeout time.Duration

	ImageOutputFormat  string
	WebPQuality        float32
	ImageBatchInterval time.Duration
	ImageBatchBurst    int
	BatchConcurrency   int
	MaxUploadBytes     int64
	// ArchiveDir holds downloadable batch archives; empty disables storage.
	ArchiveDir string

	CharacterNamePlacement string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
	// TrustProxyHeaders lets X-Forwarded-For and X-Real-IP set the client
	// address used for rate limiting and geolocation.
	TrustProxyHeaders bool
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		GeoIPDBPath:   os.Getenv("GEOIP_DB_PATH"),
		CORSOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
		GeminiFastModel: getEnv("GEMINI_FAST_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL:   os.Getenv("GEMINI_BASE_URL"),

		ImagenBaseURL: getEnv("IMAGEN_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		ImagenModel:   getEnv("IMAGEN_MODEL", "imagen-3.0-generate-001"),
		ImagenToken:   os.Getenv("IMAGEN_TOKEN"),
		ImagenTimeout: time.Second * time.Duration(getEnvInt("IMAGEN_TIMEOUT_SECONDS", 60)),

		ImageOutputFormat:  strings.ToLower(getEnv("IMAGE_OUTPUT_FORMAT", "png")),
		WebPQuality:        float32(getEnvFloat("WEBP_QUALITY", 90)),
		ImageBatchInterval: time.Millisecond * time.Duration(getEnvInt("IMAGE_BATCH_INTERVAL_MS", 1000)),
		ImageBatchBurst:    getEnvInt("IMAGE_BATCH_BURST", 1),
		BatchConcurrency:   getEnvInt("BATCH_CONCURRENCY", 0),
		MaxUploadBytes:     int64(getEnvInt("MAX_UPLOAD_MB", 20)) << 20,
		ArchiveDir:         os.Getenv("ARCHIVE_DIR"),

		CharacterNamePlacement: getEnv("CHARACTER_NAME_PLACEMENT", "after_dialogue"),

		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 300)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 120)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 60),

		TrustProxyHeaders: getEnvBool("TRUST_PROXY_HEADERS", false),
	}

	switch cfg.ImageOutputFormat {
	case "png", "webp":
	default:
		return nil, fmt.Errorf("IMAGE_OUTPUT_FORMAT must be png or webp, got %q", cfg.ImageOutputFormat)
	}

	if cfg.WebPQuality <= 0 || cfg.WebPQuality > 100 {
		return nil, fmt.Errorf("WEBP_QUALITY must be within (0, 100], got %v", cfg.WebPQuality)
	}

	return cfg, nil
}

// RequireGemini reports whether the text model credentials are present. The
// API server needs them; the offline image tool does not.
func (c *Config) RequireGemini() error {
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return f
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blank entries.
func getEnvList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
