package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	JWTSecret   string
	FrontendURL string
	LogLevel    string
	// BootstrapAdmins are principals granted the platform admin system role
	// at identity resolution, so a fresh deployment has someone who can
	// elevate others.
	BootstrapAdmins []string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if admins := getEnv("BOOTSTRAP_ADMINS", ""); admins != "" {
		for _, p := range strings.Split(admins, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.BootstrapAdmins = append(cfg.BootstrapAdmins, p)
			}
		}
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. All authenticated calls will be rejected.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
