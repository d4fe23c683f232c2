package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	Chat ChatConfig
	Data DataConfig
	Ai   AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type ChatConfig struct {
	MaxHistory        int
	SessionTTLMinutes int
	SearchTopK        int
}

type DataConfig struct {
	CatalogPath string
	AnswersPath string
	ConvlogDir  string
}

type AIConfig struct {
	LLMProvider   string // "ollama"
	LLMModel      string // e.g. "llama3", "qwen2.5"
	OllamaBaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Chat: ChatConfig{
			MaxHistory:        getEnvAsInt("CHAT_MAX_HISTORY", 10),
			SessionTTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
			SearchTopK:        getEnvAsInt("SEARCH_TOP_K", 3),
		},
		Data: DataConfig{
			CatalogPath: getEnv("CATALOG_PATH", "data/products.json"),
			AnswersPath: getEnv("ANSWERS_PATH", "data/answers.json"),
			ConvlogDir:  getEnv("CONVLOG_DIR", "conversation_logs"),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:      getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
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
