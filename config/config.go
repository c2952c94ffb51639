package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment    string
	HTTPPort       string
	HTTPSPort      string
	Domains        []string
	CertCacheDir   string
	AllowedOrigins []string
	LLMService     string
	GeminiAPIKey   string
	GeminiAPIURL   string
	GeminiModel    string
	OpenAIAPIKey   string
	OpenAIAPIURL   string
	OpenAIModel    string
	MaxUploadSize  int64
}

var isTest bool

func init() {
	isTest = os.Getenv("GO_ENVIRONMENT") == "test"
	if !isTest {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Error loading .env file:", err)
		}
	}
}

func Load() Config {
	return Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		HTTPPort:       getEnv("HTTP_PORT", "8000"),
		HTTPSPort:      getEnv("HTTPS_PORT", "443"),
		Domains:        []string{getEnv("DOMAIN", "example.com")},
		CertCacheDir:   getEnv("CERT_CACHE_DIR", "/etc/letsencrypt/live/example.com"),
		AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", "http://localhost:3000,https://genai-assistant.vercel.app"),
		LLMService:     getEnv("LLM_SERVICE", "gemini"),
		GeminiAPIKey:   getEnv("GOOGLE_API_KEY", ""),
		GeminiAPIURL:   getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-lite:generateContent"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIURL:   getEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MaxUploadSize:  int64(getEnvAsInt("MAX_UPLOAD_SIZE_MB", 10)) << 20,
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

func getEnvAsList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
