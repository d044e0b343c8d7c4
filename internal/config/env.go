package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr    string
	GinMode    string
	DBUser     string
	DBPass     string
	DBHost     string
	DBPort     string
	DBName     string
	ConfigFile string
}

// LoadEnv reads environment variables, honoring a local .env file when one
// exists. Every value has a development default so a bare checkout runs.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:    getenv("APP_ADDR", ":8080"),
		GinMode:    strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:     getenv("DB_USER", "root"),
		DBPass:     strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:     getenv("DB_HOST", "127.0.0.1"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBName:     getenv("DB_NAME", "clicktoride"),
		ConfigFile: strings.TrimSpace(os.Getenv("APP_CONFIG")),
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
