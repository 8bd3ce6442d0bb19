package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv reads the .env file if present. Missing file is not an error:
// deployed environments inject real environment variables instead.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// AppPort returns the HTTP listen port.
func AppPort() string {
	return GetEnv("PORT", "3000")
}

// JWTSecret returns the HS256 signing key for issued tokens.
func JWTSecret() string {
	return GetEnv("JWT_SECRET", "")
}

// UploadDir is where uploaded images are written.
func UploadDir() string {
	return GetEnv("UPLOAD_DIR", "./uploads")
}
