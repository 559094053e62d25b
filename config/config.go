package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string

	OIDC_ISSUER_URL         string
	OIDC_CLIENT_ID          string
	OIDC_CLIENT_SECRET      string
	OIDC_REDIRECT_URL       string
	ADMIN_FRONTEND_REDIRECT string

	SMTP_HOST        string
	SMTP_PORT        int
	SMTP_SECURE      bool
	SMTP_USER        string
	SMTP_PASS        string
	MEETING_TO_EMAIL string
	SITE_NAME        string

	STORAGE_DRIVER     string
	STORAGE_LOCAL_PATH string
	STORAGE_PUBLIC_URL string
	S3_BUCKET          string
	S3_REGION          string
	S3_ENDPOINT        string
	S3_ACCESS_KEY      string
	S3_SECRET_KEY      string

	MAX_PHOTO_MB          int
	RATE_LIMIT_PER_MINUTE int

	// TRUSTED_PROXIES is nil unless set, so client IPs come from the socket.
	TRUSTED_PROXIES []string

	LOG_LEVEL string
	LOG_PATH  string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "")

	OIDC_ISSUER_URL = getEnv("OIDC_ISSUER_URL", "")
	OIDC_CLIENT_ID = getEnv("OIDC_CLIENT_ID", "")
	OIDC_CLIENT_SECRET = getEnv("OIDC_CLIENT_SECRET", "")
	OIDC_REDIRECT_URL = getEnv("OIDC_REDIRECT_URL", "")
	ADMIN_FRONTEND_REDIRECT = getEnv("ADMIN_FRONTEND_REDIRECT", "")

	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnvInt("SMTP_PORT", 465)
	SMTP_SECURE = getEnvBool("SMTP_SECURE", true)
	SMTP_USER = getEnv("SMTP_USER", "")
	SMTP_PASS = getEnv("SMTP_PASS", "")
	MEETING_TO_EMAIL = getEnvNonEmpty("MEETING_TO_EMAIL", SMTP_USER)
	SITE_NAME = getEnv("SITE_NAME", "CreativeEdge")

	STORAGE_DRIVER = getEnv("STORAGE_DRIVER", "local")
	STORAGE_LOCAL_PATH = getEnv("STORAGE_LOCAL_PATH", "./uploads")
	STORAGE_PUBLIC_URL = getEnv("STORAGE_PUBLIC_URL", "http://localhost:"+PORT+"/uploads")
	S3_BUCKET = getEnv("S3_BUCKET", "")
	S3_REGION = getEnv("S3_REGION", "us-east-1")
	S3_ENDPOINT = getEnv("S3_ENDPOINT", "")
	S3_ACCESS_KEY = getEnv("S3_ACCESS_KEY", "")
	S3_SECRET_KEY = getEnv("S3_SECRET_KEY", "")

	MAX_PHOTO_MB = getEnvInt("MAX_PHOTO_MB", 5)
	RATE_LIMIT_PER_MINUTE = getEnvInt("RATE_LIMIT_PER_MINUTE", 10)
	TRUSTED_PROXIES = getEnvList("TRUSTED_PROXIES")

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	LOG_PATH = getEnv("LOG_PATH", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvNonEmpty treats a blank value like an unset one.
func getEnvNonEmpty(key string, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}

// getEnvBool treats only the literal "true" as true, matching how the relay
// settings have always been read.
func getEnvBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return strings.TrimSpace(raw) == "true"
}
