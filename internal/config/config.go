package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	RateLimitMax       int
	RateLimitWindowSec int
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret      string
	TokenExpiryHrs int
}

type AIConfig struct {
	LLMProvider       string // "gemini", "ollama" or "huggingface"
	LLMModel          string
	LLMBaseURL        string
	GoogleGeminiKey   string
	HuggingFaceKey    string
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaEmbedModel  string
	EmbedTopicName    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			RateLimitMax:       getEnvAsInt("RATE_LIMIT_MAX", 100),
			RateLimitWindowSec: getEnvAsInt("RATE_LIMIT_WINDOW_SEC", 900),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:      getEnv("JWT_SECRET", ""),
			TokenExpiryHrs: getEnvAsInt("TOKEN_EXPIRY_HOURS", 72),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:          getEnv("LLM_MODEL", ""),
			LLMBaseURL:        getEnv("LLM_BASE_URL", ""),
			GoogleGeminiKey:   getEnv("GOOGLE_GEMINI_API_KEY", ""),
			HuggingFaceKey:    getEnv("HUGGINGFACE_API_KEY", ""),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			EmbedTopicName:    getEnv("EMBED_CONTENT_TOPIC_NAME", "EMBED_CONTENT"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
