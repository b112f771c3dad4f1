package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret      string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	ServerPort     string
	Issuer         string
	AllowedOrigins []string
	SessionBackend string
	RedisAddr      string
	RedisPassword  string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "formflow")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "formflow")

	if origins := getEnv("ALLOWED_ORIGINS", ""); origins != "" {
		AllowedOrigins = strings.Split(origins, ",")
	}

	SessionBackend = getEnv("SESSION_BACKEND", "memory")
	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
