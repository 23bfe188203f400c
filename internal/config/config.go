// Package config defines service configuration structures and loading hooks.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// GeminiAPIKey is the credential for the generation API. Required; its
	// absence is a fatal configuration condition at startup.
	GeminiAPIKey string `koanf:"gemini_api_key"`

	// GeminiBaseURL points at the generation API host.
	GeminiBaseURL string `koanf:"gemini_base_url"`

	// GeminiModel names the model invoked by generateContent.
	GeminiModel string `koanf:"gemini_model"`

	// UpstreamTimeoutMS bounds the single generation API call.
	UpstreamTimeoutMS int `koanf:"upstream_timeout_ms"`

	// RedisAddr enables the daily horoscope cache when non-empty.
	RedisAddr string `koanf:"redis_addr"`

	// MaxBodyBytes caps the inbound request body size.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// New creates a Config populated with defaults. Load layers file and env
// values on top.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":8080",
		GeminiBaseURL:     "https://generativelanguage.googleapis.com",
		GeminiModel:       "gemini-1.5-flash",
		UpstreamTimeoutMS: 60_000,
		MaxBodyBytes:      1 << 20,
	}
}
