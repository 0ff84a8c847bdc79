package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Inbound auth
	APIKey         string
	AdminJWTSecret string

	// Generation providers
	PrimaryProvider    string
	GeminiAPIKey       string
	GeminiModelID      string
	OpenRouterAPIKey   string
	OpenRouterBaseURL  string
	OpenRouterModelID  string
	BedrockModelID     string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	// Generation race
	RaceEarlyAccept  time.Duration
	RaceDeadline     time.Duration
	GenMaxTokens     int
	GenTemperature   float64
	HistoryCap       int
	ReplyLengthFloor int

	// Conversation engine thresholds
	PhaseInitialTurns  int
	PhasePersistTurns  int
	PhaseFinalTurns    int
	ExtractionAskCap   int
	FingerprintWindow  int
	PersonalizeChance  float64
	UrgencyThreshold   int
	MaxReplySentences  int
	MaxReplyChars      int

	// Session state
	SessionTTL    time.Duration
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	DatabaseURL   string

	// Intelligence reporting
	ReportCallbackURL string
	ReportTimeout     time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		APIKey:         getEnv("HONEYPOT_API_KEY", ""),
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),

		PrimaryProvider:    strings.ToLower(strings.TrimSpace(getEnv("PRIMARY_PROVIDER", "openrouter"))),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModelID:      getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),
		OpenRouterAPIKey:   getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterBaseURL:  getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModelID:  getEnv("OPENROUTER_MODEL_ID", "meta-llama/llama-3.1-405b-instruct:free"),
		BedrockModelID:     getEnv("BEDROCK_MODEL_ID", ""),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),

		RaceEarlyAccept:  getEnvAsDuration("RACE_EARLY_ACCEPT", 4*time.Second),
		RaceDeadline:     getEnvAsDuration("RACE_DEADLINE", 20*time.Second),
		GenMaxTokens:     getEnvAsInt("GEN_MAX_TOKENS", 500),
		GenTemperature:   getEnvAsFloat("GEN_TEMPERATURE", 0.8),
		HistoryCap:       getEnvAsInt("HISTORY_CAP", 20),
		ReplyLengthFloor: getEnvAsInt("REPLY_LENGTH_FLOOR", 25),

		PhaseInitialTurns: getEnvAsInt("PHASE_INITIAL_TURNS", 2),
		PhasePersistTurns: getEnvAsInt("PHASE_PERSIST_TURNS", 6),
		PhaseFinalTurns:   getEnvAsInt("PHASE_FINAL_TURNS", 10),
		ExtractionAskCap:  getEnvAsInt("EXTRACTION_ASK_CAP", 2),
		FingerprintWindow: getEnvAsInt("FINGERPRINT_WINDOW", 8),
		PersonalizeChance: getEnvAsFloat("PERSONALIZE_CHANCE", 0.3),
		UrgencyThreshold:  getEnvAsInt("URGENCY_THRESHOLD", 3),
		MaxReplySentences: getEnvAsInt("MAX_REPLY_SENTENCES", 4),
		MaxReplyChars:     getEnvAsInt("MAX_REPLY_CHARS", 480),

		SessionTTL:    getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),
		DatabaseURL:   getEnv("DATABASE_URL", ""),

		ReportCallbackURL: getEnv("REPORT_CALLBACK_URL", ""),
		ReportTimeout:     getEnvAsDuration("REPORT_TIMEOUT", 10*time.Second),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
