package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Assistant behaviour.
	AssistantMode   string `mapstructure:"ASSISTANT_MODE"`    // "guided" or "freeform"
	HistoryWindow   int    `mapstructure:"HISTORY_WINDOW"`    // messages fed to extraction
	StreamChunkSize int    `mapstructure:"STREAM_CHUNK_SIZE"` // runes per SSE frame for fixed prompts

	// Session store backend: "memory", "file" or "redis".
	SessionStore      string `mapstructure:"SESSION_STORE"`
	SessionsDir       string `mapstructure:"SESSIONS_DIR"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Redis configuration (session store backend).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// MongoDB booking archive. Empty disables the archive.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Language-model provider: "openai" or "gemini".
	ModelProvider string `mapstructure:"MODEL_PROVIDER"`
	OpenAIAPIKey  string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string `mapstructure:"GEMINI_MODEL"`

	// Google integration (OAuth, Calendar, Sheets).
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string `mapstructure:"GOOGLE_REDIRECT_URI"`
	GoogleRefreshToken string `mapstructure:"GOOGLE_REFRESH_TOKEN"`
	GoogleTokensFile   string `mapstructure:"GOOGLE_TOKENS_FILE"`
	CalendarID         string `mapstructure:"CALENDAR_ID"`
	SheetID            string `mapstructure:"SHEET_ID"`
	SheetRange         string `mapstructure:"SHEET_RANGE"`
	EventTimezone      string `mapstructure:"EVENT_TIMEZONE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ASSISTANT_MODE", "guided")
	viper.SetDefault("HISTORY_WINDOW", 15)
	viper.SetDefault("STREAM_CHUNK_SIZE", 40)
	viper.SetDefault("SESSION_STORE", "memory")
	viper.SetDefault("SESSIONS_DIR", "./sessions")
	viper.SetDefault("SESSION_TTL_MINUTES", 0)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("MODEL_PROVIDER", "openai")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("GOOGLE_TOKENS_FILE", "tokens.json")
	viper.SetDefault("CALENDAR_ID", "primary")
	viper.SetDefault("SHEET_RANGE", "Bookings!A1")
	viper.SetDefault("EVENT_TIMEZONE", "America/New_York")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
